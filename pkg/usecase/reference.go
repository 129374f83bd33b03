package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/types"
)

// AddReferenceValue appends a trimmed value to a category list and
// returns the updated list. Uniqueness is checked case-insensitively;
// the stored value keeps the caller's casing.
func (u *UseCases) AddReferenceValue(ctx context.Context, category types.ReferenceCategory, value string) ([]string, error) {
	if err := category.Validate(); err != nil {
		return nil, goerr.Wrap(err, "unknown reference category", goerr.T(errs.TagNotFound))
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, goerr.New("value is required", goerr.T(errs.TagValidation))
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	list := u.doc.ReferenceData[category]
	for _, item := range list {
		if strings.EqualFold(item, value) {
			return nil, goerr.New("that entry already exists",
				goerr.T(errs.TagConflict),
				goerr.V("category", category), goerr.V("value", value))
		}
	}

	u.doc.ReferenceData[category] = append(list, value)

	if err := u.persist(ctx); err != nil {
		return nil, err
	}
	return append([]string{}, u.doc.ReferenceData[category]...), nil
}

// RemoveReferenceValue deletes an exact value from a category list and
// returns the updated list. A value still referenced by a session in the
// field the category governs is refused rather than cascade-deleted.
func (u *UseCases) RemoveReferenceValue(ctx context.Context, category types.ReferenceCategory, value string) ([]string, error) {
	if err := category.Validate(); err != nil {
		return nil, goerr.Wrap(err, "unknown reference category", goerr.T(errs.TagNotFound))
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, goerr.New("value query parameter is required", goerr.T(errs.TagValidation))
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	list := u.doc.ReferenceData[category]
	index := -1
	for i, item := range list {
		if item == value {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, goerr.New("entry not found",
			goerr.T(errs.TagNotFound),
			goerr.V("category", category), goerr.V("value", value))
	}

	if u.doc.IsValueInUse(category, value) {
		return nil, goerr.New("entry is used in sessions and cannot be removed",
			goerr.T(errs.TagConflict),
			goerr.V("category", category), goerr.V("value", value))
	}

	u.doc.ReferenceData[category] = append(list[:index], list[index+1:]...)

	if err := u.persist(ctx); err != nil {
		return nil, err
	}
	return append([]string{}, u.doc.ReferenceData[category]...), nil
}

package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/types"
)

func TestAddReferenceValue(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and appends at the end", func(t *testing.T) {
		uc, repo := newStore(t)

		list, err := uc.AddReferenceValue(ctx, types.CategoryCoaches, "  Jamie Fox  ")
		gt.NoError(t, err)
		gt.A(t, list).Equal([]string{"Alex Morgan", "Priya Patel", "Jonas Eriksen", "Jamie Fox"})

		stored, err := repo.Load(ctx)
		gt.NoError(t, err)
		gt.A(t, stored.ReferenceData[types.CategoryCoaches]).Equal(list)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, _ := newStore(t)

		_, err := uc.AddReferenceValue(ctx, "mentors", "Jamie Fox")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})

	t.Run("blank value", func(t *testing.T) {
		uc, _ := newStore(t)

		_, err := uc.AddReferenceValue(ctx, types.CategoryCoaches, "   ")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagValidation))
	})

	t.Run("duplicate is case-insensitive", func(t *testing.T) {
		uc, _ := newStore(t)

		_, err := uc.AddReferenceValue(ctx, types.CategoryCoaches, "Jamie Fox")
		gt.NoError(t, err)

		for _, dup := range []string{"Jamie Fox", "jamie fox", "JAMIE FOX"} {
			_, err := uc.AddReferenceValue(ctx, types.CategoryCoaches, dup)
			gt.Error(t, err)
			gt.True(t, goerr.HasTag(err, errs.TagConflict))
		}
	})

	t.Run("returned list is a copy", func(t *testing.T) {
		uc, _ := newStore(t)

		list, err := uc.AddReferenceValue(ctx, types.CategoryStatuses, "On Hold")
		gt.NoError(t, err)
		list[0] = "changed"
		gt.V(t, uc.GetState(ctx).ReferenceData[types.CategoryStatuses][0]).Equal("Scheduled")
	})
}

func TestRemoveReferenceValue(t *testing.T) {
	ctx := context.Background()

	t.Run("removes exact value", func(t *testing.T) {
		uc, repo := newStore(t)

		_, err := uc.AddReferenceValue(ctx, types.CategoryCoaches, "Jamie Fox")
		gt.NoError(t, err)

		list, err := uc.RemoveReferenceValue(ctx, types.CategoryCoaches, "Jamie Fox")
		gt.NoError(t, err)
		gt.A(t, list).Equal([]string{"Alex Morgan", "Priya Patel", "Jonas Eriksen"})

		stored, err := repo.Load(ctx)
		gt.NoError(t, err)
		gt.A(t, stored.ReferenceData[types.CategoryCoaches]).Equal(list)
	})

	t.Run("unknown category", func(t *testing.T) {
		uc, _ := newStore(t)

		_, err := uc.RemoveReferenceValue(ctx, "mentors", "Jamie Fox")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		uc, _ := newStore(t)

		_, err := uc.RemoveReferenceValue(ctx, types.CategoryCoaches, "alex morgan")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagNotFound))
	})

	t.Run("blank value", func(t *testing.T) {
		uc, _ := newStore(t)

		_, err := uc.RemoveReferenceValue(ctx, types.CategoryCoaches, "")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagValidation))
	})

	t.Run("value in use is refused, free value is removed", func(t *testing.T) {
		uc, _ := newStore(t)

		payload := validSessionPayload()
		payload["coach"] = "Alex Morgan"
		_, err := uc.CreateSession(ctx, payload)
		gt.NoError(t, err)

		_, err = uc.RemoveReferenceValue(ctx, types.CategoryCoaches, "Alex Morgan")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagConflict))

		// a coach no session references can go
		list, err := uc.RemoveReferenceValue(ctx, types.CategoryCoaches, "Priya Patel")
		gt.NoError(t, err)
		gt.A(t, list).Equal([]string{"Alex Morgan", "Jonas Eriksen"})

		// every category checks its own session field
		_, err = uc.RemoveReferenceValue(ctx, types.CategoryStatuses, "Completed")
		gt.Error(t, err)
		gt.True(t, goerr.HasTag(err, errs.TagConflict))
	})
}

package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/interfaces"
	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/utils/logging"
)

// UseCases owns the authoritative in-memory state document. Every
// mutation runs inside the mutex so no caller ever observes a
// half-applied change; persistence happens after the in-memory commit.
type UseCases struct {
	repo interfaces.Repository

	mu  sync.Mutex
	doc *logbook.Document
}

type Option func(*UseCases)

func WithRepository(repo interfaces.Repository) Option {
	return func(u *UseCases) {
		u.repo = repo
	}
}

func New(opts ...Option) *UseCases {
	u := &UseCases{}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Init loads the document from the repository. A missing document is
// seeded with defaults and persisted immediately so the stored copy
// exists after first successful boot. Any other load failure is logged
// and also falls back to defaults: a corrupt file must not prevent the
// server from starting.
func (u *UseCases) Init(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	doc, err := u.repo.Load(ctx)
	switch {
	case err == nil:
		u.doc = doc
		return nil

	case errors.Is(err, errs.ErrNoDocument):
		logging.From(ctx).Info("no state document found, seeding defaults")

	default:
		logging.From(ctx).Warn("failed to load state document, using defaults instead",
			logging.ErrAttr(err))
	}

	u.doc = logbook.DefaultDocument()
	if err := u.persist(ctx); err != nil {
		return goerr.Wrap(err, "failed to persist seeded state")
	}
	return nil
}

// GetState returns a deep copy of the current document.
func (u *UseCases) GetState(ctx context.Context) *logbook.Document {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.doc.Clone()
}

// persist writes the whole document through the repository. Callers must
// hold the mutex. The in-memory document stays authoritative even when
// the write fails; the error is propagated so the caller of the failed
// mutation is not told success.
func (u *UseCases) persist(ctx context.Context) error {
	if err := u.repo.Save(ctx, u.doc); err != nil {
		return goerr.Wrap(err, "failed to persist state document", goerr.T(errs.TagStorage))
	}
	return nil
}

package interfaces

import (
	"context"

	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
)

// Repository persists the whole state document. There are no partial
// updates: the in-memory document is the source of truth between writes
// and the stored copy is a checkpoint.
type Repository interface {
	// Load returns the stored document, already normalized. It returns
	// an error wrapping errs.ErrNoDocument when nothing has been
	// persisted yet.
	Load(ctx context.Context) (*logbook.Document, error)

	// Save replaces the stored document with the given one.
	Save(ctx context.Context, doc *logbook.Document) error
}

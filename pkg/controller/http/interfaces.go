package http

import (
	"context"

	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/domain/types"
)

// UseCase is the state-store surface the HTTP layer consumes.
type UseCase interface {
	GetState(ctx context.Context) *logbook.Document
	CreateSession(ctx context.Context, payload map[string]any) (*logbook.Session, error)
	AddReferenceValue(ctx context.Context, category types.ReferenceCategory, value string) ([]string, error)
	RemoveReferenceValue(ctx context.Context, category types.ReferenceCategory, value string) ([]string, error)
}

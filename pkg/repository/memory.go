package repository

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/interfaces"
	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
)

// Memory keeps the document in memory. It is used by tests and as a
// throwaway backend for local experiments.
type Memory struct {
	mu        sync.RWMutex
	doc       *logbook.Document
	saveErr   error
	saveCount int
}

var _ interfaces.Repository = &Memory{}

func NewMemory() *Memory {
	return &Memory{}
}

func (r *Memory) Load(ctx context.Context) (*logbook.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.doc == nil {
		return nil, goerr.Wrap(errs.ErrNoDocument, "no document in memory repository")
	}
	return r.doc.Clone(), nil
}

func (r *Memory) Save(ctx context.Context, doc *logbook.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.saveCount++
	if r.saveErr != nil {
		return r.saveErr
	}
	r.doc = doc.Clone()
	return nil
}

// FailSave makes every subsequent Save return err. Pass nil to restore
// normal behavior.
func (r *Memory) FailSave(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveErr = err
}

func (r *Memory) SaveCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saveCount
}

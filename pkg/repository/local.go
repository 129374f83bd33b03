package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/interfaces"
	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/utils/safe"
)

// Local stores the document as one pretty-printed JSON file. Writes go
// to a temp file in the same directory followed by a rename, so a crash
// mid-write never leaves a truncated document behind.
type Local struct {
	path string
}

var _ interfaces.Repository = &Local{}

func NewLocal(path string) *Local {
	return &Local{path: path}
}

func (r *Local) Load(ctx context.Context) (*logbook.Document, error) {
	data, err := os.ReadFile(filepath.Clean(r.path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(errs.ErrNoDocument, "state file does not exist", goerr.V("path", r.path))
		}
		return nil, goerr.Wrap(err, "failed to read state file", goerr.T(errs.TagStorage), goerr.V("path", r.path))
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, goerr.Wrap(err, "failed to parse state file", goerr.T(errs.TagStorage), goerr.V("path", r.path))
	}

	return logbook.NormalizeDocument(ctx, raw), nil
}

func (r *Local) Save(ctx context.Context, doc *logbook.Document) error {
	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return goerr.Wrap(err, "failed to create state directory", goerr.T(errs.TagStorage), goerr.V("dir", dir))
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode state document", goerr.T(errs.TagStorage))
	}

	tmp, err := os.CreateTemp(dir, ".state-*.json")
	if err != nil {
		return goerr.Wrap(err, "failed to create temp state file", goerr.T(errs.TagStorage), goerr.V("dir", dir))
	}

	if _, err := tmp.Write(data); err != nil {
		safe.Close(ctx, tmp)
		_ = os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to write temp state file", goerr.T(errs.TagStorage), goerr.V("path", tmp.Name()))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to close temp state file", goerr.T(errs.TagStorage), goerr.V("path", tmp.Name()))
	}

	if err := os.Rename(tmp.Name(), r.path); err != nil {
		_ = os.Remove(tmp.Name())
		return goerr.Wrap(err, "failed to replace state file", goerr.T(errs.TagStorage), goerr.V("path", r.path))
	}

	return nil
}

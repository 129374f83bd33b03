package repository

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PaulNichols/coachlog/pkg/domain/interfaces"
	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
)

const (
	firestoreDataField      = "data"
	firestoreUpdatedAtField = "updatedAt"
)

// Firestore keeps the whole document in a single Firestore document for
// deployments without a writable disk. The logbook JSON is stored as one
// string field so the persisted shape stays identical to the local file
// format and loads go through the same normalizer.
type Firestore struct {
	db         *firestore.Client
	collection string
	docID      string
}

var _ interfaces.Repository = &Firestore{}

func NewFirestore(ctx context.Context, projectID, databaseID, collection, docID string) (*Firestore, error) {
	db, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("project_id", projectID))
	}

	return &Firestore{
		db:         db,
		collection: collection,
		docID:      docID,
	}, nil
}

func (r *Firestore) Close() error {
	return r.db.Close()
}

func (r *Firestore) Load(ctx context.Context) (*logbook.Document, error) {
	snapshot, err := r.db.Collection(r.collection).Doc(r.docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(errs.ErrNoDocument, "state document does not exist",
				goerr.V("collection", r.collection), goerr.V("doc", r.docID))
		}
		return nil, goerr.Wrap(err, "failed to get state document", goerr.T(errs.TagStorage))
	}

	data, err := snapshot.DataAt(firestoreDataField)
	if err != nil {
		return nil, goerr.Wrap(err, "state document has no data field", goerr.T(errs.TagStorage))
	}
	encoded, ok := data.(string)
	if !ok {
		return nil, goerr.New("state document data field is not a string", goerr.T(errs.TagStorage))
	}

	var raw any
	if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
		return nil, goerr.Wrap(err, "failed to parse state document", goerr.T(errs.TagStorage))
	}

	return logbook.NormalizeDocument(ctx, raw), nil
}

func (r *Firestore) Save(ctx context.Context, doc *logbook.Document) error {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return goerr.Wrap(err, "failed to encode state document", goerr.T(errs.TagStorage))
	}

	_, err = r.db.Collection(r.collection).Doc(r.docID).Set(ctx, map[string]any{
		firestoreDataField:      string(encoded),
		firestoreUpdatedAtField: time.Now().UTC(),
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save state document", goerr.T(errs.TagStorage),
			goerr.V("collection", r.collection), goerr.V("doc", r.docID))
	}

	return nil
}

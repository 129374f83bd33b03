package config

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/PaulNichols/coachlog/pkg/domain/interfaces"
	"github.com/PaulNichols/coachlog/pkg/repository"
)

// Storage selects the persistence backend: a local JSON file by
// default, or Firestore when a project ID is given.
type Storage struct {
	stateFile string

	firestoreProjectID  string
	firestoreDatabaseID string
	collection          string
	docID               string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "state-file",
			Usage:       "Path of the JSON state file",
			Category:    "Storage",
			Sources:     cli.EnvVars("COACHLOG_STATE_FILE"),
			Value:       "data/state.json",
			Destination: &x.stateFile,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Use Firestore instead of the local file (requires project ID)",
			Category:    "Storage",
			Sources:     cli.EnvVars("COACHLOG_FIRESTORE_PROJECT_ID"),
			Destination: &x.firestoreProjectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore database ID",
			Category:    "Storage",
			Sources:     cli.EnvVars("COACHLOG_FIRESTORE_DATABASE_ID"),
			Value:       "(default)",
			Destination: &x.firestoreDatabaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding the state document",
			Category:    "Storage",
			Sources:     cli.EnvVars("COACHLOG_FIRESTORE_COLLECTION"),
			Value:       "logbook",
			Destination: &x.collection,
		},
		&cli.StringFlag{
			Name:        "firestore-doc-id",
			Usage:       "Firestore document ID of the state document",
			Category:    "Storage",
			Sources:     cli.EnvVars("COACHLOG_FIRESTORE_DOC_ID"),
			Value:       "state",
			Destination: &x.docID,
		},
	}
}

func (x Storage) LogValue() slog.Value {
	if x.firestoreProjectID != "" {
		return slog.GroupValue(
			slog.String("backend", "firestore"),
			slog.String("project_id", x.firestoreProjectID),
			slog.String("database_id", x.firestoreDatabaseID),
			slog.String("collection", x.collection),
			slog.String("doc_id", x.docID),
		)
	}
	return slog.GroupValue(
		slog.String("backend", "local"),
		slog.String("state_file", x.stateFile),
	)
}

// Configure builds the repository. The returned closer is a no-op for
// the local backend.
func (x *Storage) Configure(ctx context.Context) (interfaces.Repository, func() error, error) {
	if x.firestoreProjectID != "" {
		repo, err := repository.NewFirestore(ctx, x.firestoreProjectID, x.firestoreDatabaseID, x.collection, x.docID)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo.Close, nil
	}

	return repository.NewLocal(x.stateFile), func() error { return nil }, nil
}

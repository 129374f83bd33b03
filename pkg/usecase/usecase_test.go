package usecase_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/domain/types"
	"github.com/PaulNichols/coachlog/pkg/repository"
	"github.com/PaulNichols/coachlog/pkg/usecase"
)

func newStore(t *testing.T) (*usecase.UseCases, *repository.Memory) {
	t.Helper()
	repo := repository.NewMemory()
	uc := usecase.New(usecase.WithRepository(repo))
	gt.NoError(t, uc.Init(context.Background()))
	return uc, repo
}

func TestInitSeedsDefaults(t *testing.T) {
	ctx := context.Background()
	uc, repo := newStore(t)

	doc := uc.GetState(ctx)
	gt.V(t, doc).Equal(logbook.DefaultDocument())

	// seeding persisted the defaults immediately
	gt.N(t, repo.SaveCount()).Equal(1)
	stored, err := repo.Load(ctx)
	gt.NoError(t, err)
	gt.V(t, stored).Equal(logbook.DefaultDocument())
}

func TestInitCreatesStateFileOnFirstBoot(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "state.json")

	uc := usecase.New(usecase.WithRepository(repository.NewLocal(path)))
	gt.NoError(t, uc.Init(ctx))

	// the durable copy exists after first successful boot
	data, err := os.ReadFile(path)
	gt.NoError(t, err)

	var raw map[string]any
	gt.NoError(t, json.Unmarshal(data, &raw))
	gt.V(t, raw["referenceData"]).NotNil()
	gt.V(t, raw["sessions"]).NotNil()
}

func TestInitFallsBackOnMalformedFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.json")
	gt.NoError(t, os.WriteFile(path, []byte("{broken"), 0600))

	uc := usecase.New(usecase.WithRepository(repository.NewLocal(path)))
	gt.NoError(t, uc.Init(ctx))
	gt.V(t, uc.GetState(ctx)).Equal(logbook.DefaultDocument())

	// the malformed file has been replaced by the seeded defaults
	data, err := os.ReadFile(path)
	gt.NoError(t, err)
	gt.S(t, string(data)).Contains(`"referenceData"`)
}

func TestInitLoadsExistingDocument(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()

	doc := logbook.DefaultDocument()
	doc.ReferenceData[types.CategoryCoaches] = []string{"Solo Coach"}
	gt.NoError(t, repo.Save(ctx, doc))

	uc := usecase.New(usecase.WithRepository(repo))
	gt.NoError(t, uc.Init(ctx))
	gt.A(t, uc.GetState(ctx).ReferenceData[types.CategoryCoaches]).Equal([]string{"Solo Coach"})
}

func TestGetStateReturnsDeepCopy(t *testing.T) {
	ctx := context.Background()
	uc, _ := newStore(t)

	doc := uc.GetState(ctx)
	doc.ReferenceData[types.CategoryCoaches][0] = "changed"

	gt.V(t, uc.GetState(ctx).ReferenceData[types.CategoryCoaches][0]).Equal("Alex Morgan")
}

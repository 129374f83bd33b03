package cli

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/PaulNichols/coachlog/pkg/cli/config"
	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/utils/logging"
	"github.com/PaulNichols/coachlog/pkg/utils/safe"
)

// cmdExport dumps the stored document to stdout for inspection and
// backup. A store that has never been written exports the defaults.
func cmdExport() *cli.Command {
	var storageCfg config.Storage

	return &cli.Command{
		Name:  "export",
		Usage: "Print the normalized state document as JSON",
		Flags: storageCfg.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			repo, closeRepo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeRepo(); err != nil {
					logging.From(ctx).Error("failed to close repository", logging.ErrAttr(err))
				}
			}()

			doc, err := repo.Load(ctx)
			if errors.Is(err, errs.ErrNoDocument) {
				doc = logbook.DefaultDocument()
			} else if err != nil {
				return goerr.Wrap(err, "failed to load state document")
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to encode state document")
			}
			data = append(data, '\n')

			safe.Write(ctx, os.Stdout, data)
			return nil
		},
	}
}

package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/PaulNichols/coachlog/pkg/cli/config"
	server "github.com/PaulNichols/coachlog/pkg/controller/http"
	"github.com/PaulNichols/coachlog/pkg/usecase"
	"github.com/PaulNichols/coachlog/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var (
		addr            string
		noAuthorization bool
		storageCfg      config.Storage
		authCfg         config.Auth
		sentryCfg       config.Sentry
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("COACHLOG_ADDR"),
				Usage:       "Listen address (default: 127.0.0.1:3000)",
				Value:       "127.0.0.1:3000",
				Destination: &addr,
			},
			&cli.BoolFlag{
				Name:        "no-authorization",
				Aliases:     []string{"no-authz"},
				Usage:       "Disable allow-list checks (development only)",
				Category:    "Auth",
				Sources:     cli.EnvVars("COACHLOG_NO_AUTHORIZATION"),
				Destination: &noAuthorization,
			},
		},
		storageCfg.Flags(),
		authCfg.Flags(),
		sentryCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run server",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting server",
				"addr", addr,
				"noAuthorization", noAuthorization,
				"storage", storageCfg,
				"auth", authCfg,
				"sentry", sentryCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			repo, closeRepo, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if err := closeRepo(); err != nil {
					logging.From(ctx).Error("failed to close repository", logging.ErrAttr(err))
				}
			}()

			uc := usecase.New(usecase.WithRepository(repo))
			if err := uc.Init(ctx); err != nil {
				return err
			}

			serverOptions := []server.Options{
				server.WithAllowList(authCfg.AllowedEmails()),
			}
			if noAuthorization {
				logging.From(ctx).Warn("⚠️  SECURITY WARNING: Authorization checks are DISABLED",
					"flag", "--no-authorization",
					"recommendation", "This should only be used in development environments")
				serverOptions = append(serverOptions, server.WithNoAuthorization(true))
			}

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.New(uc, serverOptions...),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(ctx)
			}
		},
	}
}

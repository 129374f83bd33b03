package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Auth holds the static allow-list checked against the identity the
// external provider asserts. There is no authentication logic beyond it.
type Auth struct {
	allowedEmails []string
}

func (x *Auth) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "allowed-email",
			Usage:       "Email address permitted to use the API (repeatable)",
			Category:    "Auth",
			Sources:     cli.EnvVars("COACHLOG_ALLOWED_EMAILS"),
			Destination: &x.allowedEmails,
		},
	}
}

func (x Auth) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("allowed_emails", len(x.allowedEmails)),
	)
}

func (x *Auth) AllowedEmails() []string {
	return x.allowedEmails
}

package auth

import (
	"context"
	"strings"
)

// Identity is the caller identity asserted by the external identity
// provider. The server never authenticates users itself; it only checks
// the asserted email against a static allow-list.
type Identity struct {
	Email   string
	Subject string
}

type ctxIdentityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxIdentityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxIdentityKey{}).(Identity)
	return id, ok
}

// AllowList is a set of permitted email addresses, compared
// case-insensitively after trimming.
type AllowList map[string]struct{}

func NewAllowList(emails []string) AllowList {
	list := AllowList{}
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			list[email] = struct{}{}
		}
	}
	return list
}

func (x AllowList) Contains(email string) bool {
	_, ok := x[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/model/auth"
	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/utils/logging"
)

const (
	iapJWTHeader = "x-goog-iap-jwt-assertion"
	iapJWKURL    = "https://www.gstatic.com/iap/verify/public_key-jwk"
	iapIssuer    = "https://cloud.google.com/iap"
)

func panicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				panicErr := goerr.New("panic recovered",
					goerr.V("panic", fmt.Sprintf("%v", err)),
					goerr.V("stack", string(debug.Stack())),
					goerr.V("method", r.Method),
					goerr.V("path", r.URL.Path),
				)

				handleError(w, r, panicErr)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// extractIdentity validates the identity-provider JWT asserted in the
// IAP header and, when valid, injects the caller identity into the
// request context. The server never authenticates users itself: a
// missing or invalid assertion just means no identity, and the
// allow-list check downstream decides whether that matters.
func extractIdentity(jwkURL string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assertion := r.Header.Get(iapJWTHeader)
			if assertion == "" {
				next.ServeHTTP(w, r)
				return
			}

			keySet, err := jwk.Fetch(r.Context(), jwkURL)
			if err != nil {
				logging.From(r.Context()).Warn("failed to fetch identity provider keys, continuing without identity", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			token, err := jwt.Parse([]byte(assertion), jwt.WithKeySet(keySet), jwt.WithValidate(true))
			if err != nil {
				logging.From(r.Context()).Warn("invalid identity assertion, continuing without identity", "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if token.Issuer() != iapIssuer {
				logging.From(r.Context()).Warn("unexpected assertion issuer, continuing without identity", "issuer", token.Issuer())
				next.ServeHTTP(w, r)
				return
			}

			now := time.Now()
			if token.Expiration().Before(now) || token.IssuedAt().After(now) {
				logging.From(r.Context()).Warn("identity assertion outside validity window, continuing without identity",
					"expiration", token.Expiration(), "issued_at", token.IssuedAt())
				next.ServeHTTP(w, r)
				return
			}

			email, _ := token.Get("email")
			emailStr, _ := email.(string)

			id := auth.Identity{
				Email:   emailStr,
				Subject: token.Subject(),
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}

// requireAuthorized rejects API calls from callers whose asserted email
// is not on the static allow-list. Authorization stops here: there are
// no roles, just the list.
func requireAuthorized(allowList auth.AllowList, noAuthorization bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if noAuthorization {
				next.ServeHTTP(w, r)
				return
			}

			id, ok := auth.IdentityFrom(r.Context())
			if !ok || id.Email == "" {
				handleError(w, r, goerr.New("identity is not asserted",
					goerr.T(errs.TagUnauthorized),
				))
				return
			}

			if !allowList.Contains(id.Email) {
				handleError(w, r, goerr.New("email is not allowed",
					goerr.T(errs.TagForbidden),
					goerr.V("email", id.Email),
				))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

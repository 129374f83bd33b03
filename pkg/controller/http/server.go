package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/PaulNichols/coachlog/pkg/domain/model/auth"
)

type Server struct {
	router          *chi.Mux
	allowList       auth.AllowList
	jwkURL          string
	noAuthorization bool
}

type Options func(*Server)

// WithAllowList sets the email addresses permitted to call the API.
func WithAllowList(emails []string) Options {
	return func(s *Server) {
		s.allowList = auth.NewAllowList(emails)
	}
}

// WithJWKURL overrides the JWK endpoint used to verify asserted identity
// tokens. Used by tests.
func WithJWKURL(url string) Options {
	return func(s *Server) {
		s.jwkURL = url
	}
}

// WithNoAuthorization disables the allow-list check (development only).
func WithNoAuthorization(disabled bool) Options {
	return func(s *Server) {
		s.noAuthorization = disabled
	}
}

func New(uc UseCase, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		jwkURL: iapJWKURL,
	}
	for _, opt := range opts {
		opt(s)
	}

	r.Use(loggingMiddleware)
	r.Use(panicRecoveryMiddleware)
	r.Use(extractIdentity(s.jwkURL))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(requireAuthorized(s.allowList, s.noAuthorization))

		r.Get("/state", stateHandler(uc))
		r.Post("/sessions", createSessionHandler(uc))
		r.Route("/reference/{category}", func(r chi.Router) {
			r.Post("/", addReferenceHandler(uc))
			r.Delete("/", removeReferenceHandler(uc))
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

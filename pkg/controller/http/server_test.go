package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	server "github.com/PaulNichols/coachlog/pkg/controller/http"
	"github.com/PaulNichols/coachlog/pkg/domain/model/logbook"
	"github.com/PaulNichols/coachlog/pkg/repository"
	"github.com/PaulNichols/coachlog/pkg/usecase"
)

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	uc := usecase.New(usecase.WithRepository(repository.NewMemory()))
	gt.NoError(t, uc.Init(context.Background()))
	return server.New(uc, server.WithNoAuthorization(true))
}

func doJSON(t *testing.T, srv *server.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Message string `json:"message"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	gt.V(t, resp.Message).NotEqual("")
	return resp.Message
}

func TestHealth(t *testing.T) {
	w := doJSON(t, newTestServer(t), "GET", "/health", "")
	gt.N(t, w.Code).Equal(http.StatusOK)
}

func TestGetStateFreshStore(t *testing.T) {
	w := doJSON(t, newTestServer(t), "GET", "/api/state", "")
	gt.N(t, w.Code).Equal(http.StatusOK)

	var doc logbook.Document
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	gt.V(t, doc.ReferenceData).Equal(logbook.DefaultDocument().ReferenceData)
	gt.A(t, doc.Sessions).Length(0)
}

func TestCreateSession(t *testing.T) {
	srv := newTestServer(t)

	t.Run("created", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/sessions", `{
			"date": "2024-05-01",
			"coach": "Alex Morgan",
			"coachee": "Jordan Lee",
			"sessionType": "1:1 Coaching",
			"focusArea": "Leadership",
			"status": "Completed",
			"duration": "45"
		}`)
		gt.N(t, w.Code).Equal(http.StatusCreated)

		var session logbook.Session
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
		gt.NoError(t, session.ID.Validate())
		gt.N(t, *session.Duration).Equal(45)

		state := doJSON(t, srv, "GET", "/api/state", "")
		var doc logbook.Document
		gt.NoError(t, json.Unmarshal(state.Body.Bytes(), &doc))
		gt.A(t, doc.Sessions).Length(1)
	})

	t.Run("missing field names the field", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/sessions", `{
			"date": "2024-05-01",
			"coach": "Alex Morgan",
			"sessionType": "1:1 Coaching",
			"focusArea": "Leadership",
			"status": "Completed"
		}`)
		gt.N(t, w.Code).Equal(http.StatusBadRequest)
		gt.S(t, errorMessage(t, w)).Contains("coachee")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/sessions", `{broken`)
		gt.N(t, w.Code).Equal(http.StatusBadRequest)
		errorMessage(t, w)
	})
}

func TestAddReference(t *testing.T) {
	srv := newTestServer(t)

	t.Run("appends trimmed value", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/reference/coaches", `{"value": "  Jamie Fox  "}`)
		gt.N(t, w.Code).Equal(http.StatusCreated)

		var list []string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		gt.A(t, list).Equal([]string{"Alex Morgan", "Priya Patel", "Jonas Eriksen", "Jamie Fox"})
	})

	t.Run("duplicate", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/reference/coaches", `{"value": "jamie fox"}`)
		gt.N(t, w.Code).Equal(http.StatusConflict)
		errorMessage(t, w)
	})

	t.Run("blank value", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/reference/coaches", `{"value": "   "}`)
		gt.N(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown category", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/reference/mentors", `{"value": "Jamie Fox"}`)
		gt.N(t, w.Code).Equal(http.StatusNotFound)
	})
}

func TestRemoveReference(t *testing.T) {
	srv := newTestServer(t)

	w := doJSON(t, srv, "POST", "/api/reference/coaches", `{"value": "Jamie Fox"}`)
	gt.N(t, w.Code).Equal(http.StatusCreated)

	t.Run("removes unused value", func(t *testing.T) {
		w := doJSON(t, srv, "DELETE", "/api/reference/coaches?value=Jamie%20Fox", "")
		gt.N(t, w.Code).Equal(http.StatusOK)

		var list []string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		gt.A(t, list).Equal([]string{"Alex Morgan", "Priya Patel", "Jonas Eriksen"})
	})

	t.Run("value not present", func(t *testing.T) {
		w := doJSON(t, srv, "DELETE", "/api/reference/coaches?value=Jamie%20Fox", "")
		gt.N(t, w.Code).Equal(http.StatusNotFound)
	})

	t.Run("missing value parameter", func(t *testing.T) {
		w := doJSON(t, srv, "DELETE", "/api/reference/coaches", "")
		gt.N(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("value in use", func(t *testing.T) {
		w := doJSON(t, srv, "POST", "/api/sessions", `{
			"date": "2024-05-01",
			"coach": "Alex Morgan",
			"coachee": "Jordan Lee",
			"sessionType": "1:1 Coaching",
			"focusArea": "Leadership",
			"status": "Completed"
		}`)
		gt.N(t, w.Code).Equal(http.StatusCreated)

		del := doJSON(t, srv, "DELETE", "/api/reference/coaches?value=Alex%20Morgan", "")
		gt.N(t, del.Code).Equal(http.StatusConflict)
		errorMessage(t, del)
	})
}

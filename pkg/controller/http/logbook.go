package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/domain/types"
)

func stateHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, r, http.StatusOK, uc.GetState(r.Context()))
	}
}

func createSessionHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			handleError(w, r, goerr.Wrap(err, "request body must be valid JSON",
				goerr.T(errs.TagInvalidRequest),
			))
			return
		}

		session, err := uc.CreateSession(r.Context(), payload)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusCreated, session)
	}
}

func addReferenceHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := types.ReferenceCategory(chi.URLParam(r, "category"))

		var payload struct {
			Value string `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			handleError(w, r, goerr.Wrap(err, "request body must be valid JSON",
				goerr.T(errs.TagInvalidRequest),
			))
			return
		}

		list, err := uc.AddReferenceValue(r.Context(), category, payload.Value)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusCreated, list)
	}
}

func removeReferenceHandler(uc UseCase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := types.ReferenceCategory(chi.URLParam(r, "category"))
		value := r.URL.Query().Get("value")

		list, err := uc.RemoveReferenceValue(r.Context(), category, value)
		if err != nil {
			handleError(w, r, err)
			return
		}

		respondJSON(w, r, http.StatusOK, list)
	}
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/goerr/v2"

	"github.com/PaulNichols/coachlog/pkg/domain/model/errs"
	"github.com/PaulNichols/coachlog/pkg/utils/logging"
)

type errorResponse struct {
	Message string `json:"message"`
}

func handleError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.From(r.Context())

	switch {
	case goerr.HasTag(err, errs.TagNotFound):
		logger.Warn("Not Found", "error", err)
		respondError(w, r, http.StatusNotFound, err)

	case goerr.HasTag(err, errs.TagValidation), goerr.HasTag(err, errs.TagInvalidRequest):
		logger.Warn("Bad Request", "error", err)
		respondError(w, r, http.StatusBadRequest, err)

	case goerr.HasTag(err, errs.TagUnauthorized):
		logger.Warn("Unauthorized", "error", err)
		respondError(w, r, http.StatusUnauthorized, err)

	case goerr.HasTag(err, errs.TagForbidden):
		logger.Warn("Forbidden", "error", err)
		respondError(w, r, http.StatusForbidden, err)

	case goerr.HasTag(err, errs.TagConflict):
		logger.Warn("Conflict", "error", err)
		respondError(w, r, http.StatusConflict, err)

	default:
		errs.Handle(r.Context(), err)
		respondError(w, r, http.StatusInternalServerError, err)
	}
}

// respondError writes the {"message": ...} envelope the client expects.
func respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	respondJSON(w, r, status, errorResponse{Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.From(r.Context()).Error("failed to encode response", logging.ErrAttr(err))
	}
}

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/logger"
)

type errorBody struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("encode response failed", "error", err)
		}
	}
}

// respondError maps the domain error taxonomy onto HTTP statuses.
// Invalid-state errors indicate corrupted records and are logged at
// error level before the generic 500 goes out.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		logger.Error("unclassified error", "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
		return
	}

	switch derr.Kind {
	case domain.KindNotFound:
		respondJSON(w, http.StatusNotFound, errorBody{Error: derr.Message, Kind: string(derr.Kind)})
	case domain.KindForbidden:
		respondJSON(w, http.StatusForbidden, errorBody{Error: derr.Message, Kind: string(derr.Kind)})
	case domain.KindConflict:
		respondJSON(w, http.StatusConflict, errorBody{Error: derr.Message, Kind: string(derr.Kind)})
	case domain.KindInvalidState:
		logger.Error("invalid state", "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error", Kind: string(derr.Kind)})
	default:
		logger.Error("upstream failure", "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "malformed request body"})
		return false
	}
	return true
}

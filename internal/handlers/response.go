package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/gw-wardrobe/internal/logger"
	"github.com/sbilibin2017/gw-wardrobe/internal/models"
	"github.com/sbilibin2017/gw-wardrobe/internal/validation"
)

// maxBodyBytes bounds every request body read by the handlers.
const maxBodyBytes = 1 << 20

const msgInternalError = "Internal server error"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}

func writeReport(w http.ResponseWriter, status int, report validation.Report) {
	writeJSON(w, status, models.ValidationErrorResponse{Errors: report})
}

// idParam parses a positive integer URL parameter.
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

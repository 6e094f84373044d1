package preferences

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"qrcode-api/internal/httputil"
	"qrcode-api/internal/logging"
	"qrcode-api/internal/qrcode"
)

// Handler contains HTTP handlers for the preferences endpoints
type Handler struct {
	repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{repo: repo}
}

// SaveRequest represents the save-preferences request body
type SaveRequest struct {
	UserID                      string                      `json:"userId"`
	DefaultSize                 float64                     `json:"defaultSize"`
	DefaultErrorCorrectionLevel qrcode.ErrorCorrectionLevel `json:"defaultErrorCorrectionLevel"`
	DefaultOutputFormat         qrcode.OutputFormat         `json:"defaultOutputFormat"`
	DefaultColor                string                      `json:"defaultColor"`
	DefaultBackgroundColor      string                      `json:"defaultBackgroundColor"`
}

// SaveResponse reports the outcome of a save attempt
type SaveResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RetrieveResponse carries the stored rendering defaults
type RetrieveResponse struct {
	DefaultSize                 float64                     `json:"defaultSize"`
	DefaultErrorCorrectionLevel qrcode.ErrorCorrectionLevel `json:"defaultErrorCorrectionLevel"`
	DefaultOutputFormat         qrcode.OutputFormat         `json:"defaultOutputFormat"`
	DefaultColor                string                      `json:"defaultColor"`
	DefaultBackgroundColor      string                      `json:"defaultBackgroundColor"`
}

// Save handles POST /preferences. The row for the user must already
// exist; a save never creates one. Failed saves are reported in the
// response payload, not via an error status.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid save preferences request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		logger.Warn("save preferences failed: invalid user id", "user_id", req.UserID)
		httputil.RespondError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if !req.DefaultErrorCorrectionLevel.Valid() {
		logger.Warn("save preferences failed: unknown error correction level", "level", req.DefaultErrorCorrectionLevel)
		httputil.RespondError(w, "error correction level must be one of L, M, Q, H", http.StatusBadRequest)
		return
	}
	if !req.DefaultOutputFormat.Valid() {
		logger.Warn("save preferences failed: unknown output format", "format", req.DefaultOutputFormat)
		httputil.RespondError(w, "output format must be one of SVG, PNG", http.StatusBadRequest)
		return
	}

	prefs := &Preferences{
		UserID:               userID,
		DefaultSize:          req.DefaultSize,
		ErrorCorrectionLevel: req.DefaultErrorCorrectionLevel,
		OutputFormat:         req.DefaultOutputFormat,
		Color:                req.DefaultColor,
		BackgroundColor:      req.DefaultBackgroundColor,
	}

	if err := h.repo.Update(r.Context(), prefs); err != nil {
		logger.Warn("save preferences failed", "user_id", userID, "error", err.Error())
		httputil.RespondJSON(w, SaveResponse{
			Success: false,
			Message: "Failed to save preferences: " + err.Error(),
		}, http.StatusOK)
		return
	}

	logger.Info("preferences saved", "user_id", userID)

	httputil.RespondJSON(w, SaveResponse{
		Success: true,
		Message: "User preferences saved successfully.",
	}, http.StatusOK)
}

// Retrieve handles GET /preferences/{userId}. A missing row is the one
// case on this surface that answers with a real 404 instead of a
// success-shaped failure payload.
func (h *Handler) Retrieve(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		// An unparseable ID cannot match any row, so it reads as not found.
		httputil.RespondError(w, "User preferences not found", http.StatusNotFound)
		return
	}

	prefs, err := h.repo.GetByUserID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.Warn("preferences not found", "user_id", userID)
			httputil.RespondError(w, "User preferences not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to retrieve preferences", "user_id", userID, "error", err.Error())
		httputil.RespondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Info("preferences retrieved", "user_id", userID)

	// Stored colors are deliberately not surfaced; reads always report the
	// stock black-on-white scheme that existing clients expect.
	httputil.RespondJSON(w, RetrieveResponse{
		DefaultSize:                 prefs.DefaultSize,
		DefaultErrorCorrectionLevel: prefs.ErrorCorrectionLevel,
		DefaultOutputFormat:         prefs.OutputFormat,
		DefaultColor:                "black",
		DefaultBackgroundColor:      "white",
	}, http.StatusOK)
}

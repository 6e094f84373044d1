package qrcode

import (
	"encoding/json"
	"net/http"

	"qrcode-api/internal/httputil"
	"qrcode-api/internal/logging"
)

// Handler contains the HTTP handler for QR code generation
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Generate handles POST /generate. The payload is passed through as-is;
// out-of-range sizes and unknown enum values are the caller's problem.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid generate request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	res := h.service.Generate(req)

	logger.Info("qr code generation requested", "format", req.OutputFormat, "size", req.Size)

	httputil.RespondJSON(w, res, http.StatusOK)
}

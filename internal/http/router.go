package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"qrcode-api/internal/auth"
	"qrcode-api/internal/config"
	"qrcode-api/internal/httputil"
	"qrcode-api/internal/logging"
	"qrcode-api/internal/preferences"
	"qrcode-api/internal/qrcode"
)

// NewRouter creates and configures the HTTP router.
// None of the endpoints require authentication; the session token issued
// by login is not checked anywhere on this surface.
func NewRouter(
	cfg *config.Config,
	authHandler *auth.Handler,
	prefsHandler *preferences.Handler,
	qrHandler *qrcode.Handler,
	logger *logging.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(Recover(logger))
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)

	r.Post("/user", authHandler.Register)
	r.Post("/user/login", authHandler.Login)
	r.Post("/preferences", prefsHandler.Save)
	r.Get("/preferences/{userId}", prefsHandler.Retrieve)
	r.Post("/generate", qrHandler.Generate)

	return r
}

// handleHealth is a simple health check endpoint
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}

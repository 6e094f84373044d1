package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"

	"qrcode-api/internal/httputil"
	"qrcode-api/internal/logging"
	"qrcode-api/internal/user"
)

// Handler contains HTTP handlers for the registration and login endpoints.
//
// Expected domain outcomes (duplicate email, unknown user, wrong password)
// are reported inside a 200 payload; only malformed requests and genuinely
// unexpected failures use error status codes.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse reports the outcome of an account creation attempt
type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse reports the outcome of a login attempt. SessionToken is
// empty unless Status is "success".
type LoginResponse struct {
	Status       string `json:"status"`
	SessionToken string `json:"session_token"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// Register handles POST /user
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid registration request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	if _, err := mail.ParseAddress(req.Email); err != nil || len(req.Email) > 254 {
		logger.Warn("registration failed: malformed email")
		httputil.RespondError(w, "invalid email address", http.StatusBadRequest)
		return
	}

	newUser, err := h.service.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrDuplicateEmail) {
			logger.Warn("registration failed: email already exists")
			httputil.RespondJSON(w, RegisterResponse{
				Success: false,
				Message: "Email already exists.",
			}, http.StatusOK)
			return
		}
		logger.Error("registration failed", "error", err.Error())
		httputil.RespondJSON(w, RegisterResponse{
			Success: false,
			Message: "An unexpected error occurred: " + err.Error(),
		}, http.StatusOK)
		return
	}

	logger.Info("user registered", "user_id", newUser.ID)

	httputil.RespondJSON(w, RegisterResponse{
		Success: true,
		Message: "User created successfully.",
		UserID:  newUser.ID.String(),
	}, http.StatusOK)
}

// Login handles POST /user/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid login request body", "error", err.Error())
		httputil.RespondError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	logger = logger.WithFields(map[string]any{"email": req.Email})

	token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			logger.Warn("login failed: user not found")
			httputil.RespondJSON(w, LoginResponse{
				Status:       "failed",
				ErrorMessage: "User not found",
			}, http.StatusOK)
			return
		}
		if errors.Is(err, ErrIncorrectPassword) {
			logger.Warn("login failed: incorrect password")
			httputil.RespondJSON(w, LoginResponse{
				Status:       "failed",
				ErrorMessage: "Incorrect password",
			}, http.StatusOK)
			return
		}
		logger.Error("login failed", "error", err.Error())
		httputil.RespondError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	logger.Info("user logged in")

	httputil.RespondJSON(w, LoginResponse{
		Status:       "success",
		SessionToken: token,
	}, http.StatusOK)
}

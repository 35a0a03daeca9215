package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/middleware"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(auth ports.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: auth, logger: logger}
}

// LoginRequest carries a single identifier; clients that still send a
// dedicated email or username field are accepted too.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *domain.User `json:"user"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	identifier := req.Identifier
	if identifier == "" {
		identifier = req.Email
	}
	if identifier == "" {
		identifier = req.Username
	}
	if identifier == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Identifier and password are required", h.logger)
		return
	}

	token, user, err := h.authService.Login(r.Context(), identifier, req.Password)
	if err != nil {
		writeMessage(w, http.StatusUnauthorized, "Invalid email/username or password", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    user,
	}, h.logger)
}

// Logout revokes the presented session token. The middleware stores the
// raw token on the context before this handler runs.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, _ := r.Context().Value(middleware.TokenKey).(string)
	if token == "" {
		// Middleware guarantees a token; reaching here means a wiring bug.
		writeMessage(w, http.StatusUnauthorized, "missing session token", h.logger)
		return
	}

	if err := h.authService.Logout(r.Context(), token); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Logged out successfully", h.logger)
}

// Me resolves the current session into a full user record. Clients call
// it on load to decide routing before rendering anything gated.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value(middleware.UserIDKey).(string)

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, user, h.logger)
}

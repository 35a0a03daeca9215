package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type RegistrationHandler struct {
	registrationService ports.RegistrationService
	logger              *zap.Logger
}

func NewRegistrationHandler(registration ports.RegistrationService, logger *zap.Logger) *RegistrationHandler {
	return &RegistrationHandler{registrationService: registration, logger: logger}
}

// RegistrationRequest is a tagged union over role: role=user uses the
// email field, role=admin uses username and hospital.
type RegistrationRequest struct {
	Role       string `json:"role"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Username   string `json:"username,omitempty"`
	Hospital   string `json:"hospital,omitempty"`
	Mobile     string `json:"mobile"`
	BloodGroup string `json:"blood_group"`
	Password   string `json:"password"`
}

func (h *RegistrationHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request payload", h.logger)
		return
	}

	var message string
	var err error

	switch req.Role {
	case "user", "":
		message, err = h.registrationService.RegisterUser(
			r.Context(), req.Name, req.Email, req.Mobile, req.BloodGroup, req.Password)
	case "admin":
		message, err = h.registrationService.RegisterAdmin(
			r.Context(), req.Name, req.Username, req.Hospital, req.Mobile, req.BloodGroup, req.Password)
	default:
		writeMessage(w, http.StatusBadRequest, "unsupported role", h.logger)
		return
	}

	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusCreated, message, h.logger)
}

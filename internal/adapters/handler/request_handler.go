package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/middleware"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type BloodRequestHandler struct {
	requestService ports.BloodRequestService
	logger         *zap.Logger
}

func NewBloodRequestHandler(requests ports.BloodRequestService, logger *zap.Logger) *BloodRequestHandler {
	return &BloodRequestHandler{requestService: requests, logger: logger}
}

// List returns all requests in stable order. Admin views pass optional
// status, blood_group and search query parameters.
func (h *BloodRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := ports.RequestFilter{
		Status:     domain.RequestStatus(q.Get("status")),
		BloodGroup: q.Get("blood_group"),
		Search:     q.Get("search"),
	}

	requests, err := h.requestService.List(r.Context(), filter)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, requests, h.logger)
}

type createRequestPayload struct {
	Hospital  string `json:"hospital"`
	BloodType string `json:"blood_type"`
	Units     int    `json:"units"`
	Urgency   string `json:"urgency"`
	Notes     string `json:"notes"`
}

func (h *BloodRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createRequestPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request payload", h.logger)
		return
	}

	userID, _ := r.Context().Value(middleware.UserIDKey).(string)

	req, err := h.requestService.Create(r.Context(), userID, ports.CreateRequestInput{
		Hospital:  payload.Hospital,
		BloodType: payload.BloodType,
		Units:     payload.Units,
		Urgency:   domain.Urgency(payload.Urgency),
		Notes:     payload.Notes,
	})
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, req, h.logger)
}

type statusPayload struct {
	Status string `json:"status"`
}

// UpdateStatus handles PUT /api/blood-requests/{id}/status (admin-only,
// enforced by the route guard).
func (h *BloodRequestHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request payload", h.logger)
		return
	}

	err := h.requestService.UpdateStatus(r.Context(), id, domain.RequestStatus(payload.Status))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Request status updated", h.logger)
}

package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/adapters/middleware"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type DonationHandler struct {
	donationService ports.DonationService
	logger          *zap.Logger
}

func NewDonationHandler(donations ports.DonationService, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{donationService: donations, logger: logger}
}

func (h *DonationHandler) List(w http.ResponseWriter, r *http.Request) {
	donations, err := h.donationService.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, donations, h.logger)
}

type createDonationPayload struct {
	DonorName     string `json:"donor_name"`
	DonationDate  string `json:"donation_date"`
	DonationTime  string `json:"donation_time"`
	BloodType     string `json:"blood_type"`
	ContactNumber string `json:"contact_number"`
	Hospital      string `json:"hospital"`
	Notes         string `json:"notes"`
}

func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload createDonationPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request payload", h.logger)
		return
	}

	donorID, _ := r.Context().Value(middleware.UserIDKey).(string)

	don, err := h.donationService.Create(r.Context(), donorID, ports.CreateDonationInput{
		DonorName:     payload.DonorName,
		DonationDate:  payload.DonationDate,
		DonationTime:  payload.DonationTime,
		BloodType:     payload.BloodType,
		ContactNumber: payload.ContactNumber,
		Hospital:      payload.Hospital,
		Notes:         payload.Notes,
	})
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusCreated, don, h.logger)
}

// UpdateStatus handles PUT /api/donations/{id}/status (admin-only).
func (h *DonationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var payload statusPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request payload", h.logger)
		return
	}

	err := h.donationService.UpdateStatus(r.Context(), id, domain.DonationStatus(payload.Status))
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeMessage(w, http.StatusOK, "Donation status updated", h.logger)
}

package handler

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type InventoryHandler struct {
	inventoryService ports.InventoryService
	logger           *zap.Logger
}

func NewInventoryHandler(inventory ports.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventory, logger: logger}
}

func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.inventoryService.List(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, records, h.logger)
}

// Summary returns global per-blood-type unit totals across hospitals.
func (h *InventoryHandler) Summary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.inventoryService.Summary(r.Context())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, totals, h.logger)
}

type upsertInventoryPayload struct {
	Hospital       string `json:"hospital"`
	BloodType      string `json:"blood_type"`
	UnitsAvailable int    `json:"units_available"`
}

// Upsert handles PUT /api/inventory (admin-only). Writing an existing
// (hospital, blood_type) pair replaces its units.
func (h *InventoryHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var payload upsertInventoryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request payload", h.logger)
		return
	}

	rec, err := h.inventoryService.Upsert(r.Context(), payload.Hospital, payload.BloodType, payload.UnitsAvailable)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeData(w, http.StatusOK, rec, h.logger)
}

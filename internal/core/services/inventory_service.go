package services

import (
	"context"
	"time"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type InventoryService struct {
	inventoryRepo ports.InventoryRepository
}

var _ ports.InventoryService = (*InventoryService)(nil)

func NewInventoryService(inventoryRepo ports.InventoryRepository) *InventoryService {
	return &InventoryService{inventoryRepo: inventoryRepo}
}

// List returns all inventory records with their derived stock level.
func (s *InventoryService) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	records, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].StockLevel = domain.StockLevelFor(records[i].UnitsAvailable)
	}
	return records, nil
}

// Summary sums units_available per blood type across all hospitals.
func (s *InventoryService) Summary(ctx context.Context) (map[string]int, error) {
	records, err := s.inventoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totals := make(map[string]int)
	for _, rec := range records {
		totals[rec.BloodType] += rec.UnitsAvailable
	}
	return totals, nil
}

// Upsert replaces the units for a (hospital, blood_type) pair, creating
// the record if it does not exist. Repeating the same write is a no-op
// beyond the refreshed timestamp.
func (s *InventoryService) Upsert(ctx context.Context, hospital, bloodType string, units int) (*domain.InventoryRecord, error) {
	if hospital == "" || bloodType == "" {
		return nil, domain.Invalid("hospital and blood type are required")
	}
	if units < 0 {
		return nil, domain.Invalid("units available cannot be negative")
	}

	rec := domain.InventoryRecord{
		Hospital:       hospital,
		BloodType:      bloodType,
		UnitsAvailable: units,
		UpdatedAt:      time.Now(),
	}
	if err := s.inventoryRepo.Upsert(ctx, rec); err != nil {
		return nil, err
	}
	rec.StockLevel = domain.StockLevelFor(rec.UnitsAvailable)
	return &rec, nil
}

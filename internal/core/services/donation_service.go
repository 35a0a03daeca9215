package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

const donationDateLayout = "2006-01-02"

type DonationService struct {
	donationRepo ports.DonationRepository
}

var _ ports.DonationService = (*DonationService)(nil)

func NewDonationService(donationRepo ports.DonationRepository) *DonationService {
	return &DonationService{donationRepo: donationRepo}
}

func (s *DonationService) Create(ctx context.Context, donorID string, in ports.CreateDonationInput) (*domain.Donation, error) {
	if in.DonorName == "" || in.DonationDate == "" || in.DonationTime == "" ||
		in.BloodType == "" || in.ContactNumber == "" || in.Hospital == "" {
		return nil, domain.Invalid("all fields are required")
	}

	date, err := time.Parse(donationDateLayout, in.DonationDate)
	if err != nil {
		return nil, domain.Invalid("donation date must be in YYYY-MM-DD format")
	}

	// Appointments may not be scheduled in the past. Same-day is allowed.
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return nil, domain.Invalid("donation date cannot be in the past")
	}

	don := domain.Donation{
		ID:            uuid.NewString(),
		DonorID:       donorID,
		DonorName:     in.DonorName,
		DonationDate:  date,
		DonationTime:  in.DonationTime,
		BloodType:     in.BloodType,
		ContactNumber: in.ContactNumber,
		Hospital:      in.Hospital,
		Notes:         in.Notes,
		Status:        domain.DonationScheduled,
		CreatedAt:     time.Now(),
	}

	if err := s.donationRepo.Create(ctx, don); err != nil {
		return nil, err
	}
	return &don, nil
}

func (s *DonationService) List(ctx context.Context) ([]domain.Donation, error) {
	return s.donationRepo.List(ctx)
}

// UpdateStatus applies a scheduled -> completed|cancelled transition with
// the same terminal-state and outbox guarantees as blood requests.
func (s *DonationService) UpdateStatus(ctx context.Context, id string, status domain.DonationStatus) error {
	if !status.CanBeTransitionTarget() {
		return domain.Invalid("status must be completed or cancelled")
	}

	don, err := s.donationRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !don.Status.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}

	payload, err := json.Marshal(ports.StatusChangedEvent{
		EntityType: "donation",
		EntityID:   don.ID,
		Status:     string(status),
		Hospital:   don.Hospital,
		BloodType:  don.BloodType,
		OwnerID:    don.DonorID,
	})
	if err != nil {
		return err
	}

	updated, err := s.donationRepo.UpdateStatus(ctx, id, status, payload)
	if err != nil {
		return err
	}
	if !updated {
		return domain.ErrInvalidTransition
	}
	return nil
}

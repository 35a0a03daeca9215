package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

type BloodRequestService struct {
	requestRepo ports.BloodRequestRepository
}

var _ ports.BloodRequestService = (*BloodRequestService)(nil)

func NewBloodRequestService(requestRepo ports.BloodRequestRepository) *BloodRequestService {
	return &BloodRequestService{requestRepo: requestRepo}
}

func (s *BloodRequestService) Create(ctx context.Context, userID string, in ports.CreateRequestInput) (*domain.BloodRequest, error) {
	if in.Hospital == "" || in.BloodType == "" {
		return nil, domain.Invalid("hospital and blood type are required")
	}
	if in.Units < domain.MinRequestUnits || in.Units > domain.MaxRequestUnits {
		return nil, domain.Invalid("units must be between 1 and 10")
	}
	if in.Urgency == "" {
		in.Urgency = domain.UrgencyNormal
	}
	if !in.Urgency.Valid() {
		return nil, domain.Invalid("urgency must be normal or urgent")
	}

	req := domain.BloodRequest{
		ID:        uuid.NewString(),
		UserID:    userID,
		Hospital:  in.Hospital,
		BloodType: in.BloodType,
		Units:     in.Units,
		Urgency:   in.Urgency,
		Status:    domain.RequestPending,
		Notes:     in.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (s *BloodRequestService) List(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error) {
	return s.requestRepo.List(ctx, filter)
}

// UpdateStatus applies a pending -> successful|rejected transition and
// records the change on the outbox in the same transaction. Terminal
// records are never moved again.
func (s *BloodRequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	if !status.CanBeTransitionTarget() {
		return domain.Invalid("status must be successful or rejected")
	}

	req, err := s.requestRepo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !req.Status.CanTransitionTo(status) {
		return domain.ErrInvalidTransition
	}

	payload, err := json.Marshal(ports.StatusChangedEvent{
		EntityType: "blood_request",
		EntityID:   req.ID,
		Status:     string(status),
		Hospital:   req.Hospital,
		BloodType:  req.BloodType,
		OwnerID:    req.UserID,
	})
	if err != nil {
		return err
	}

	updated, err := s.requestRepo.UpdateStatus(ctx, id, status, payload)
	if err != nil {
		return err
	}
	if !updated {
		// Lost the race against another admin's transition.
		return domain.ErrInvalidTransition
	}
	return nil
}

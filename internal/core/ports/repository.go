package ports

import (
	"context"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) error
}

// RequestFilter narrows admin list views. Zero values mean "no filter".
type RequestFilter struct {
	Status     domain.RequestStatus
	BloodGroup string
	Search     string
}

type BloodRequestRepository interface {
	Create(ctx context.Context, req domain.BloodRequest) error
	// List returns requests in stable insertion order (created_at, id).
	List(ctx context.Context, filter RequestFilter) ([]domain.BloodRequest, error)
	ListByUser(ctx context.Context, userID string) ([]domain.BloodRequest, error)
	Get(ctx context.Context, id string) (*domain.BloodRequest, error)
	// UpdateStatus applies the transition and writes the outbox event in
	// one transaction. It only matches rows still in the pending state.
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, outboxPayload []byte) (bool, error)
}

type DonationRepository interface {
	Create(ctx context.Context, don domain.Donation) error
	List(ctx context.Context) ([]domain.Donation, error)
	ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error)
	Get(ctx context.Context, id string) (*domain.Donation, error)
	UpdateStatus(ctx context.Context, id string, status domain.DonationStatus, outboxPayload []byte) (bool, error)
}

type InventoryRepository interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	// Upsert replaces units_available and updated_at for an existing
	// (hospital, blood_type) pair, or inserts a new record.
	Upsert(ctx context.Context, rec domain.InventoryRecord) error
	// Seed inserts zero-unit records for every hospital/blood-group pair
	// that does not exist yet. Re-running it is a no-op.
	Seed(ctx context.Context, hospitals, bloodGroups []string) error
}

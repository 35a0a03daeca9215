package ports

import (
	"context"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
)

type AuthService interface {
	// Login resolves the identifier to an email or username login
	// (presence of '@' decides) and returns a signed session token.
	Login(ctx context.Context, identifier, password string) (string, *domain.User, error)
	// Logout revokes the given token until its natural expiry.
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}

type RegistrationService interface {
	RegisterUser(ctx context.Context, name, email, mobile, bloodGroup, password string) (string, error)
	RegisterAdmin(ctx context.Context, name, username, hospital, mobile, bloodGroup, password string) (string, error)
}

type CreateRequestInput struct {
	Hospital  string
	BloodType string
	Units     int
	Urgency   domain.Urgency
	Notes     string
}

type BloodRequestService interface {
	Create(ctx context.Context, userID string, in CreateRequestInput) (*domain.BloodRequest, error)
	List(ctx context.Context, filter RequestFilter) ([]domain.BloodRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error
}

type CreateDonationInput struct {
	DonorName     string
	DonationDate  string // YYYY-MM-DD, validated against today
	DonationTime  string
	BloodType     string
	ContactNumber string
	Hospital      string
	Notes         string
}

type DonationService interface {
	Create(ctx context.Context, donorID string, in CreateDonationInput) (*domain.Donation, error)
	List(ctx context.Context) ([]domain.Donation, error)
	UpdateStatus(ctx context.Context, id string, status domain.DonationStatus) error
}

type InventoryService interface {
	List(ctx context.Context) ([]domain.InventoryRecord, error)
	// Summary returns the global units total per blood type across all
	// hospitals.
	Summary(ctx context.Context) (map[string]int, error)
	Upsert(ctx context.Context, hospital, bloodType string, units int) (*domain.InventoryRecord, error)
}

type DashboardService interface {
	UserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}

package handler

import (
	"context"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

// Function-field mocks: tests set only the method under exercise and a
// nil field means the path must not be reached.

type mockAuthService struct {
	LoginFunc       func(ctx context.Context, identifier, password string) (string, *domain.User, error)
	LogoutFunc      func(ctx context.Context, token string) error
	CurrentUserFunc func(ctx context.Context, userID string) (*domain.User, error)
}

var _ ports.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) Login(ctx context.Context, identifier, password string) (string, *domain.User, error) {
	return m.LoginFunc(ctx, identifier, password)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.LogoutFunc(ctx, token)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return m.CurrentUserFunc(ctx, userID)
}

type mockRegistrationService struct {
	RegisterUserFunc  func(ctx context.Context, name, email, mobile, bloodGroup, password string) (string, error)
	RegisterAdminFunc func(ctx context.Context, name, username, hospital, mobile, bloodGroup, password string) (string, error)
}

var _ ports.RegistrationService = (*mockRegistrationService)(nil)

func (m *mockRegistrationService) RegisterUser(ctx context.Context, name, email, mobile, bloodGroup, password string) (string, error) {
	return m.RegisterUserFunc(ctx, name, email, mobile, bloodGroup, password)
}

func (m *mockRegistrationService) RegisterAdmin(ctx context.Context, name, username, hospital, mobile, bloodGroup, password string) (string, error) {
	return m.RegisterAdminFunc(ctx, name, username, hospital, mobile, bloodGroup, password)
}

type mockRequestService struct {
	CreateFunc       func(ctx context.Context, userID string, in ports.CreateRequestInput) (*domain.BloodRequest, error)
	ListFunc         func(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.RequestStatus) error
}

var _ ports.BloodRequestService = (*mockRequestService)(nil)

func (m *mockRequestService) Create(ctx context.Context, userID string, in ports.CreateRequestInput) (*domain.BloodRequest, error) {
	return m.CreateFunc(ctx, userID, in)
}

func (m *mockRequestService) List(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error) {
	return m.ListFunc(ctx, filter)
}

func (m *mockRequestService) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

type mockDonationService struct {
	CreateFunc       func(ctx context.Context, donorID string, in ports.CreateDonationInput) (*domain.Donation, error)
	ListFunc         func(ctx context.Context) ([]domain.Donation, error)
	UpdateStatusFunc func(ctx context.Context, id string, status domain.DonationStatus) error
}

var _ ports.DonationService = (*mockDonationService)(nil)

func (m *mockDonationService) Create(ctx context.Context, donorID string, in ports.CreateDonationInput) (*domain.Donation, error) {
	return m.CreateFunc(ctx, donorID, in)
}

func (m *mockDonationService) List(ctx context.Context) ([]domain.Donation, error) {
	return m.ListFunc(ctx)
}

func (m *mockDonationService) UpdateStatus(ctx context.Context, id string, status domain.DonationStatus) error {
	return m.UpdateStatusFunc(ctx, id, status)
}

type mockInventoryService struct {
	ListFunc    func(ctx context.Context) ([]domain.InventoryRecord, error)
	SummaryFunc func(ctx context.Context) (map[string]int, error)
	UpsertFunc  func(ctx context.Context, hospital, bloodType string, units int) (*domain.InventoryRecord, error)
}

var _ ports.InventoryService = (*mockInventoryService)(nil)

func (m *mockInventoryService) List(ctx context.Context) ([]domain.InventoryRecord, error) {
	return m.ListFunc(ctx)
}

func (m *mockInventoryService) Summary(ctx context.Context) (map[string]int, error) {
	return m.SummaryFunc(ctx)
}

func (m *mockInventoryService) Upsert(ctx context.Context, hospital, bloodType string, units int) (*domain.InventoryRecord, error) {
	return m.UpsertFunc(ctx, hospital, bloodType, units)
}

type mockDashboardService struct {
	UserStatsFunc  func(ctx context.Context, userID string) (*domain.UserStats, error)
	AdminStatsFunc func(ctx context.Context) (*domain.AdminStats, error)
}

var _ ports.DashboardService = (*mockDashboardService)(nil)

func (m *mockDashboardService) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	return m.UserStatsFunc(ctx, userID)
}

func (m *mockDashboardService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	return m.AdminStatsFunc(ctx)
}

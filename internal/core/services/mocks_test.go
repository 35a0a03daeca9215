package services

import (
	"context"
	"sync"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

// mockUserRepository implements ports.UserRepository in memory, with
// call tracking and error injection in the style of the rest of the
// service tests.
type mockUserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	CreateCalls []domain.User
	CreateError error
}

var _ ports.UserRepository = (*mockUserRepository)(nil)

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) SeedUser(user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.ID] = user
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if user, ok := m.users[id]; ok {
		return user, nil
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls = append(m.CreateCalls, user)
	if m.CreateError != nil {
		return m.CreateError
	}
	m.users[user.ID] = &user
	return nil
}

// mockRequestRepository implements ports.BloodRequestRepository over a
// slice kept in insertion order.
type mockRequestRepository struct {
	mu       sync.RWMutex
	requests []domain.BloodRequest

	UpdateStatusCalls []string
	UpdateStatusError error
	ListError         error
}

var _ ports.BloodRequestRepository = (*mockRequestRepository)(nil)

func newMockRequestRepository() *mockRequestRepository {
	return &mockRequestRepository{}
}

func (m *mockRequestRepository) SeedRequest(req domain.BloodRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
}

func (m *mockRequestRepository) Create(ctx context.Context, req domain.BloodRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	return nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter ports.RequestFilter) ([]domain.BloodRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := []domain.BloodRequest{}
	for _, req := range m.requests {
		if filter.Status != "" && req.Status != filter.Status {
			continue
		}
		if filter.BloodGroup != "" && req.BloodType != filter.BloodGroup {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (m *mockRequestRepository) ListByUser(ctx context.Context, userID string) ([]domain.BloodRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := []domain.BloodRequest{}
	for _, req := range m.requests {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (m *mockRequestRepository) Get(ctx context.Context, id string) (*domain.BloodRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.requests {
		if m.requests[i].ID == id {
			req := m.requests[i]
			return &req, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus, outboxPayload []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, id)
	if m.UpdateStatusError != nil {
		return false, m.UpdateStatusError
	}
	for i := range m.requests {
		if m.requests[i].ID == id && m.requests[i].Status == domain.RequestPending {
			m.requests[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

// mockDonationRepository implements ports.DonationRepository.
type mockDonationRepository struct {
	mu        sync.RWMutex
	donations []domain.Donation

	UpdateStatusCalls []string
	ListError         error
}

var _ ports.DonationRepository = (*mockDonationRepository)(nil)

func newMockDonationRepository() *mockDonationRepository {
	return &mockDonationRepository{}
}

func (m *mockDonationRepository) SeedDonation(don domain.Donation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donations = append(m.donations, don)
}

func (m *mockDonationRepository) Create(ctx context.Context, don domain.Donation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.donations = append(m.donations, don)
	return nil
}

func (m *mockDonationRepository) List(ctx context.Context) ([]domain.Donation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	return append([]domain.Donation{}, m.donations...), nil
}

func (m *mockDonationRepository) ListByDonor(ctx context.Context, donorID string) ([]domain.Donation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	out := []domain.Donation{}
	for _, don := range m.donations {
		if don.DonorID == donorID {
			out = append(out, don)
		}
	}
	return out, nil
}

func (m *mockDonationRepository) Get(ctx context.Context, id string) (*domain.Donation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for i := range m.donations {
		if m.donations[i].ID == id {
			don := m.donations[i]
			return &don, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDonationRepository) UpdateStatus(ctx context.Context, id string, status domain.DonationStatus, outboxPayload []byte) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateStatusCalls = append(m.UpdateStatusCalls, id)
	for i := range m.donations {
		if m.donations[i].ID == id && m.donations[i].Status == domain.DonationScheduled {
			m.donations[i].Status = status
			return true, nil
		}
	}
	return false, nil
}

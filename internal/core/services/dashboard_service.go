package services

import (
	"context"
	"sync"

	"github.com/haemolink/lifeline/blood-bank-service/internal/core/domain"
	"github.com/haemolink/lifeline/blood-bank-service/internal/core/ports"
)

const (
	userRecentLimit  = 3
	adminRecentLimit = 5
)

// DashboardService derives dashboard statistics from the request and
// donation collections. Both lists are loaded concurrently and joined
// all-or-nothing: a failure on either side fails the whole stats call.
type DashboardService struct {
	requestRepo  ports.BloodRequestRepository
	donationRepo ports.DonationRepository
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(requestRepo ports.BloodRequestRepository, donationRepo ports.DonationRepository) *DashboardService {
	return &DashboardService{
		requestRepo:  requestRepo,
		donationRepo: donationRepo,
	}
}

func (s *DashboardService) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	var (
		wg        sync.WaitGroup
		requests  []domain.BloodRequest
		donations []domain.Donation
		reqErr    error
		donErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		requests, reqErr = s.requestRepo.ListByUser(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		donations, donErr = s.donationRepo.ListByDonor(ctx, userID)
	}()
	wg.Wait()

	if reqErr != nil {
		return nil, reqErr
	}
	if donErr != nil {
		return nil, donErr
	}

	stats := &domain.UserStats{
		TotalRequests:   len(requests),
		TotalDonations:  len(donations),
		RecentRequests:  domain.RecentRequests(requests, userRecentLimit),
		RecentDonations: domain.RecentDonations(donations, userRecentLimit),
	}
	for _, r := range requests {
		if r.Status == domain.RequestPending {
			stats.PendingRequests++
		}
	}
	for _, d := range donations {
		if d.Status == domain.DonationScheduled {
			stats.ScheduledDonations++
		}
	}
	return stats, nil
}

func (s *DashboardService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	var (
		wg        sync.WaitGroup
		requests  []domain.BloodRequest
		donations []domain.Donation
		reqErr    error
		donErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		requests, reqErr = s.requestRepo.List(ctx, ports.RequestFilter{})
	}()
	go func() {
		defer wg.Done()
		donations, donErr = s.donationRepo.List(ctx)
	}()
	wg.Wait()

	if reqErr != nil {
		return nil, reqErr
	}
	if donErr != nil {
		return nil, donErr
	}

	stats := &domain.AdminStats{
		TotalRequests:   len(requests),
		TotalDonations:  len(donations),
		ActiveUsers:     domain.DistinctActiveUsers(requests, donations),
		RecentRequests:  domain.RecentRequests(requests, adminRecentLimit),
		RecentDonations: domain.RecentDonations(donations, adminRecentLimit),
	}
	for _, r := range requests {
		if r.Status == domain.RequestPending {
			stats.PendingRequests++
		}
	}
	for _, d := range donations {
		if d.Status == domain.DonationScheduled {
			stats.ScheduledDonations++
		}
	}
	return stats, nil
}

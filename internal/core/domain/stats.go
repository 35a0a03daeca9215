package domain

// UserStats is the dashboard summary for a single (non-admin) user.
type UserStats struct {
	TotalRequests      int            `json:"total_requests"`
	TotalDonations     int            `json:"total_donations"`
	PendingRequests    int            `json:"pending_requests"`
	ScheduledDonations int            `json:"scheduled_donations"`
	RecentRequests     []BloodRequest `json:"recent_requests"`
	RecentDonations    []Donation     `json:"recent_donations"`
}

// AdminStats is the global dashboard summary.
type AdminStats struct {
	TotalRequests      int            `json:"total_requests"`
	TotalDonations     int            `json:"total_donations"`
	PendingRequests    int            `json:"pending_requests"`
	ScheduledDonations int            `json:"scheduled_donations"`
	ActiveUsers        int            `json:"active_users"`
	RecentRequests     []BloodRequest `json:"recent_requests"`
	RecentDonations    []Donation     `json:"recent_donations"`
}

// RecentRequests returns the last n elements of the list in reverse,
// so the newest (by position, which matches insertion order under the
// repository's ordering contract) comes first.
func RecentRequests(list []BloodRequest, n int) []BloodRequest {
	if n > len(list) {
		n = len(list)
	}
	out := make([]BloodRequest, 0, n)
	for i := len(list) - 1; i >= len(list)-n; i-- {
		out = append(out, list[i])
	}
	return out
}

// RecentDonations is the donation counterpart of RecentRequests.
func RecentDonations(list []Donation, n int) []Donation {
	if n > len(list) {
		n = len(list)
	}
	out := make([]Donation, 0, n)
	for i := len(list) - 1; i >= len(list)-n; i-- {
		out = append(out, list[i])
	}
	return out
}

// DistinctActiveUsers counts the union of requester and donor ids across
// the fetched lists.
func DistinctActiveUsers(requests []BloodRequest, donations []Donation) int {
	seen := make(map[string]struct{})
	for _, r := range requests {
		seen[r.UserID] = struct{}{}
	}
	for _, d := range donations {
		seen[d.DonorID] = struct{}{}
	}
	return len(seen)
}

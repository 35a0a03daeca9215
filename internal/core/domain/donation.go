package domain

import "time"

type DonationStatus string

const (
	DonationScheduled DonationStatus = "scheduled"
	DonationCompleted DonationStatus = "completed"
	DonationCancelled DonationStatus = "cancelled"
)

// Donation is a scheduled donation appointment owned by its donor.
type Donation struct {
	ID            string         `json:"id"`
	DonorID       string         `json:"donor_id"`
	DonorName     string         `json:"donor_name"`
	DonationDate  time.Time      `json:"donation_date"`
	DonationTime  string         `json:"donation_time"`
	BloodType     string         `json:"blood_type"`
	ContactNumber string         `json:"contact_number"`
	Hospital      string         `json:"hospital"`
	Notes         string         `json:"notes,omitempty"`
	Status        DonationStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
}

// CanTransitionTo mirrors the request workflow: scheduled may move to
// completed or cancelled, both of which are terminal.
func (s DonationStatus) CanTransitionTo(next DonationStatus) bool {
	if s != DonationScheduled {
		return false
	}
	return next == DonationCompleted || next == DonationCancelled
}

// CanBeTransitionTarget reports whether the status is a legal target of
// an admin transition. Scheduled is an initial state only.
func (s DonationStatus) CanBeTransitionTarget() bool {
	return s == DonationCompleted || s == DonationCancelled
}

func (s DonationStatus) Valid() bool {
	switch s {
	case DonationScheduled, DonationCompleted, DonationCancelled:
		return true
	}
	return false
}

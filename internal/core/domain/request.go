package domain

import "time"

type RequestStatus string

const (
	RequestPending    RequestStatus = "pending"
	RequestSuccessful RequestStatus = "successful"
	RequestRejected   RequestStatus = "rejected"
)

type Urgency string

const (
	UrgencyNormal Urgency = "normal"
	UrgencyUrgent Urgency = "urgent"
)

const (
	MinRequestUnits = 1
	MaxRequestUnits = 10
)

// BloodRequest is owned by exactly one user for its whole lifetime.
type BloodRequest struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	UserName  string        `json:"user_name,omitempty"`
	Hospital  string        `json:"hospital"`
	BloodType string        `json:"blood_type"`
	Units     int           `json:"units"`
	Urgency   Urgency       `json:"urgency"`
	Status    RequestStatus `json:"status"`
	Notes     string        `json:"notes,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// CanTransitionTo enforces the one-way workflow: pending is the only
// non-terminal state, and it may move to successful or rejected.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	if s != RequestPending {
		return false
	}
	return next == RequestSuccessful || next == RequestRejected
}

// CanBeTransitionTarget reports whether the status is a legal target of
// an admin transition. Pending is an initial state only.
func (s RequestStatus) CanBeTransitionTarget() bool {
	return s == RequestSuccessful || s == RequestRejected
}

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestPending, RequestSuccessful, RequestRejected:
		return true
	}
	return false
}

func (u Urgency) Valid() bool {
	return u == UrgencyNormal || u == UrgencyUrgent
}

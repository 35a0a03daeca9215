package ports

import "context"

// StatusChangedEvent is emitted whenever an admin moves a blood request
// or a donation out of its initial state.
type StatusChangedEvent struct {
	EntityType string `json:"entity_type"` // "blood_request" or "donation"
	EntityID   string `json:"entity_id"`
	Status     string `json:"status"`
	Hospital   string `json:"hospital"`
	BloodType  string `json:"blood_type"`
	OwnerID    string `json:"owner_id"`
}

type StatusEventPublisher interface {
	PublishStatusChanged(ctx context.Context, evt StatusChangedEvent) error
}

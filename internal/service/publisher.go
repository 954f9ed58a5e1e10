package service

import (
	"github.com/google/uuid"
)

// EventPublisher fans a domain event out to the tenant's subscribers.
// Publishing is best-effort and happens only after a successful commit;
// implementations must never fail the calling operation.
type EventPublisher interface {
	Publish(companyID *uuid.UUID, topic, title, message string)
}

// NopPublisher drops all events. Used in tests and the ops CLI.
type NopPublisher struct{}

// Publish implements EventPublisher
func (NopPublisher) Publish(companyID *uuid.UUID, topic, title, message string) {}

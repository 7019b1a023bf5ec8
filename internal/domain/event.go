package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType defines the type of domain event.
type EventType string

const (
	// Receive stage
	EventPackageReceived    EventType = "PACKAGE_RECEIVED"
	EventPackageQuarantined EventType = "PACKAGE_QUARANTINED"

	// Staging and validation
	EventPackageLoaded    EventType = "PACKAGE_LOADED"
	EventPackageValidated EventType = "PACKAGE_VALIDATED"
	EventPackageInvalid   EventType = "PACKAGE_INVALID"

	// Duplicate review
	EventConflictsDetected EventType = "CONFLICTS_DETECTED"
	EventConflictResolved  EventType = "CONFLICT_RESOLVED"

	// Commit stage
	EventPackageCommitted    EventType = "PACKAGE_COMMITTED"
	EventPackageCommitFailed EventType = "PACKAGE_COMMIT_FAILED"

	// Lifecycle
	EventPackageCancelled EventType = "PACKAGE_CANCELLED"
)

// EventStatus defines the status of a domain event.
type EventStatus string

const (
	EventStatusPending    EventStatus = "PENDING"
	EventStatusProcessing EventStatus = "PROCESSING"
	EventStatusCompleted  EventStatus = "COMPLETED"
	EventStatusFailed     EventStatus = "FAILED"
	EventStatusCancelled  EventStatus = "CANCELLED"
)

// DomainEvent represents an immutable domain event.
type DomainEvent struct {
	EventID       string      `json:"event_id"`
	EventType     EventType   `json:"event_type"`
	AggregateType string      `json:"aggregate_type"`
	AggregateID   string      `json:"aggregate_id"`
	Payload       []byte      `json:"payload"`
	Status        EventStatus `json:"status"`
	CreatedBy     string      `json:"created_by"`
	CreatedAt     time.Time   `json:"created_at"`
	ArchivedAt    *time.Time  `json:"archived_at,omitempty"`
}

// PackageEventPayload is the payload for package lifecycle events.
type PackageEventPayload struct {
	PackageID     uuid.UUID     `json:"package_id"`
	PackageNumber string        `json:"package_number"`
	Status        PackageStatus `json:"status"`
	DeviceID      string        `json:"device_id,omitempty"`
	Actor         string        `json:"actor,omitempty"`
	Detail        string        `json:"detail,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p PackageEventPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ConflictEventPayload is the payload for conflict events.
type ConflictEventPayload struct {
	ConflictID      uuid.UUID          `json:"conflict_id"`
	ImportPackageID uuid.UUID          `json:"import_package_id"`
	EntityType      ConflictEntityType `json:"entity_type"`
	Score           float64            `json:"score"`
	Resolution      string             `json:"resolution,omitempty"`
	Actor           string             `json:"actor,omitempty"`
}

// ToJSON converts payload to JSON bytes.
func (p ConflictEventPayload) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

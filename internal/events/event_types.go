package events

import (
	"time"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCareRequestCreated       EventType = "care_request_created"
	EventCareRequestStatusChanged EventType = "care_request_status_changed"
	EventActivityLogged           EventType = "activity_logged"
	EventCaretakerVerified        EventType = "caretaker_verified"
)

// Actor encapsulates who triggered an event.
type Actor struct {
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	SubjectID string      `json:"subject_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CareRequestCreatedPayload payload.
type CareRequestCreatedPayload struct {
	PetID       string    `json:"pet_id"`
	CaretakerID string    `json:"caretaker_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
}

// CareRequestStatusChangedPayload payload.
type CareRequestStatusChangedPayload struct {
	OldStatus domain.CareRequestStatus `json:"old_status"`
	NewStatus domain.CareRequestStatus `json:"new_status"`
}

// ActivityLoggedPayload payload.
type ActivityLoggedPayload struct {
	ActivityID  string              `json:"activity_id"`
	PetID       string              `json:"pet_id"`
	Type        domain.ActivityType `json:"activity_type"`
	HasLocation bool                `json:"has_location"`
	PhotoCount  int                 `json:"photo_count"`
}

// CaretakerVerifiedPayload payload.
type CaretakerVerifiedPayload struct {
	Verified bool `json:"verified"`
}

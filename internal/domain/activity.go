package domain

import "time"

// ActivityType enumerates loggable care activities.
type ActivityType string

const (
	ActivityFeeding  ActivityType = "feeding"
	ActivityWalking  ActivityType = "walking"
	ActivityPlaying  ActivityType = "playing"
	ActivitySleeping ActivityType = "sleeping"
	ActivityMedical  ActivityType = "medical"
	ActivityOther    ActivityType = "other"
)

// ValidActivityType reports whether t is a known activity type.
func ValidActivityType(t ActivityType) bool {
	switch t {
	case ActivityFeeding, ActivityWalking, ActivityPlaying, ActivitySleeping, ActivityMedical, ActivityOther:
		return true
	}
	return false
}

// Location is an optional geotag captured when logging an activity.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Activity records a single care action a caretaker performed against an
// accepted care request. Photos are opaque storage references.
type Activity struct {
	ID            string
	CareRequestID string
	PetID         string
	CaretakerID   string
	Type          ActivityType
	Description   string
	Location      *Location
	Photos        []string
	Timestamp     time.Time
}

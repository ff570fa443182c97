package dto

import (
	"time"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// ActivityLogRequest payload for logging a care activity.
type ActivityLogRequest struct {
	CareRequestID string           `json:"careRequestId"`
	ActivityType  string           `json:"activityType"`
	Description   string           `json:"description"`
	Location      *domain.Location `json:"location"`
	Photos        []string         `json:"photos"`
}

// ActivityResponse projection of an activity.
type ActivityResponse struct {
	ID            string           `json:"id"`
	CareRequestID string           `json:"careRequestId"`
	PetID         string           `json:"petId"`
	CaretakerID   string           `json:"createdBy"`
	ActivityType  string           `json:"activityType"`
	Description   string           `json:"description"`
	Location      *domain.Location `json:"location,omitempty"`
	Photos        []string         `json:"photos"`
	Timestamp     time.Time        `json:"timestamp"`
}

// NewActivityResponse maps a domain activity.
func NewActivityResponse(activity *domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:            activity.ID,
		CareRequestID: activity.CareRequestID,
		PetID:         activity.PetID,
		CaretakerID:   activity.CaretakerID,
		ActivityType:  string(activity.Type),
		Description:   activity.Description,
		Location:      activity.Location,
		Photos:        activity.Photos,
		Timestamp:     activity.Timestamp,
	}
}

// NewActivityResponses maps a slice of domain activities.
func NewActivityResponses(activities []*domain.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(activities))
	for _, activity := range activities {
		out = append(out, NewActivityResponse(activity))
	}
	return out
}

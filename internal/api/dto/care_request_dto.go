package dto

import (
	"time"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// CareRequestCreateRequest payload for filing a care request.
type CareRequestCreateRequest struct {
	PetID       string    `json:"petId"`
	CaretakerID string    `json:"caretakerId"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes"`
}

// CareRequestStatusRequest payload for status transitions.
type CareRequestStatusRequest struct {
	Status string `json:"status"`
}

// CareRequestResponse projection of a care request.
type CareRequestResponse struct {
	ID          string    `json:"id"`
	PetID       string    `json:"petId"`
	OwnerID     string    `json:"ownerId"`
	CaretakerID string    `json:"caretakerId"`
	Status      string    `json:"status"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewCareRequestResponse maps a domain care request.
func NewCareRequestResponse(request *domain.CareRequest) CareRequestResponse {
	return CareRequestResponse{
		ID:          request.ID,
		PetID:       request.PetID,
		OwnerID:     request.OwnerID,
		CaretakerID: request.CaretakerID,
		Status:      string(request.Status),
		StartDate:   request.StartDate,
		EndDate:     request.EndDate,
		Notes:       request.Notes,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}

// NewCareRequestResponses maps a slice of domain care requests.
func NewCareRequestResponses(requests []*domain.CareRequest) []CareRequestResponse {
	out := make([]CareRequestResponse, 0, len(requests))
	for _, request := range requests {
		out = append(out, NewCareRequestResponse(request))
	}
	return out
}

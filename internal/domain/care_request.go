package domain

import "time"

// CareRequestStatus represents lifecycle states for a care request.
type CareRequestStatus string

const (
	CareRequestPending   CareRequestStatus = "pending"
	CareRequestAccepted  CareRequestStatus = "accepted"
	CareRequestRejected  CareRequestStatus = "rejected"
	CareRequestCompleted CareRequestStatus = "completed"
)

// ValidCareRequestStatus reports whether s is a known status.
func ValidCareRequestStatus(s CareRequestStatus) bool {
	switch s {
	case CareRequestPending, CareRequestAccepted, CareRequestRejected, CareRequestCompleted:
		return true
	}
	return false
}

// CanTransition reports whether a care request may move from one status to
// another. Pending requests are resolved by the caretaker; accepted ones are
// closed out on completion.
func (s CareRequestStatus) CanTransition(to CareRequestStatus) bool {
	switch s {
	case CareRequestPending:
		return to == CareRequestAccepted || to == CareRequestRejected
	case CareRequestAccepted:
		return to == CareRequestCompleted
	}
	return false
}

// CareRequest links an owner's pet to a caretaker for a date range.
type CareRequest struct {
	ID          string
	PetID       string
	OwnerID     string
	CaretakerID string
	Status      CareRequestStatus
	StartDate   time.Time
	EndDate     time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

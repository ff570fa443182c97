package domain

import "time"

// Pet belongs to exactly one owner. Photo is an opaque storage reference.
type Pet struct {
	ID          string
	OwnerID     string
	Name        string
	Breed       string
	Age         int
	MedicalInfo string
	Photo       string
	CreatedAt   time.Time
}

package dto

import (
	"time"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// PetCreateRequest payload for registering a pet.
type PetCreateRequest struct {
	Name        string `json:"name"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	MedicalInfo string `json:"medicalInfo"`
	Photo       string `json:"photo"`
}

// PetResponse projection of a pet.
type PetResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Name        string    `json:"name"`
	Breed       string    `json:"breed"`
	Age         int       `json:"age"`
	MedicalInfo string    `json:"medicalInfo,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPetResponse maps a domain pet.
func NewPetResponse(pet *domain.Pet) PetResponse {
	return PetResponse{
		ID:          pet.ID,
		OwnerID:     pet.OwnerID,
		Name:        pet.Name,
		Breed:       pet.Breed,
		Age:         pet.Age,
		MedicalInfo: pet.MedicalInfo,
		Photo:       pet.Photo,
		CreatedAt:   pet.CreatedAt,
	}
}

// NewPetResponses maps a slice of domain pets.
func NewPetResponses(pets []*domain.Pet) []PetResponse {
	out := make([]PetResponse, 0, len(pets))
	for _, pet := range pets {
		out = append(out, NewPetResponse(pet))
	}
	return out
}

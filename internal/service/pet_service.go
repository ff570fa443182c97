package service

import (
	"context"
	"strings"

	"github.com/spec-kit/petcare-service/internal/domain"
	"github.com/spec-kit/petcare-service/internal/repository"
	apperrors "github.com/spec-kit/petcare-service/pkg/util"
)

// PetCreateInput describes a new pet registration.
type PetCreateInput struct {
	Name        string
	Breed       string
	Age         int
	MedicalInfo string
	Photo       string
}

// PetService manages an owner's pets.
type PetService struct {
	pets repository.PetRepository
}

// NewPetService constructs the service.
func NewPetService(pets repository.PetRepository) *PetService {
	return &PetService{pets: pets}
}

// Create registers a pet for the owner.
func (s *PetService) Create(ctx context.Context, ownerID string, input PetCreateInput) (*domain.Pet, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Breed) == "" {
		return nil, apperrors.NewValidationError("name and breed required", nil)
	}
	if input.Age < 0 {
		return nil, apperrors.NewValidationError("age must not be negative", nil)
	}

	pet := &domain.Pet{
		OwnerID:     ownerID,
		Name:        input.Name,
		Breed:       input.Breed,
		Age:         input.Age,
		MedicalInfo: input.MedicalInfo,
		Photo:       input.Photo,
	}
	if err := s.pets.Create(ctx, pet); err != nil {
		return nil, err
	}
	return pet, nil
}

// ListByOwner returns the owner's pets, newest first.
func (s *PetService) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	return s.pets.ListByOwner(ctx, ownerID)
}

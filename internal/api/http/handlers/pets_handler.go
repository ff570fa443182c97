package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/petcare-service/internal/api/dto"
	"github.com/spec-kit/petcare-service/internal/auth"
	"github.com/spec-kit/petcare-service/internal/service"
)

// PetsHandler exposes pet CRUD for owners.
type PetsHandler struct {
	pets *service.PetService
}

// NewPetsHandler constructs the handler.
func NewPetsHandler(petService *service.PetService) *PetsHandler {
	return &PetsHandler{pets: petService}
}

// List handles GET /api/pets.
func (h *PetsHandler) List(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	pets, err := h.pets.ListByOwner(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"pets": dto.NewPetResponses(pets)}})
}

// Create handles POST /api/pets.
func (h *PetsHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return fiber.NewError(http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
	}

	var req dto.PetCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	pet, err := h.pets.Create(c.Context(), principal.User.ID, service.PetCreateInput{
		Name:        req.Name,
		Breed:       req.Breed,
		Age:         req.Age,
		MedicalInfo: req.MedicalInfo,
		Photo:       req.Photo,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"pet": dto.NewPetResponse(pet)},
	})
}

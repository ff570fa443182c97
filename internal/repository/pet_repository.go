package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// PetRepository defines persistence access for pets.
type PetRepository interface {
	Create(ctx context.Context, pet *domain.Pet) error
	GetByID(ctx context.Context, id string) (*domain.Pet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error)
}

type petRepository struct {
	pool *pgxpool.Pool
}

// NewPetRepository returns a Postgres-backed implementation.
func NewPetRepository(pool *pgxpool.Pool) PetRepository {
	return &petRepository{pool: pool}
}

func (r *petRepository) Create(ctx context.Context, pet *domain.Pet) error {
	const query = `
        INSERT INTO pets (owner_id, name, breed, age, medical_info, photo)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		pet.OwnerID,
		pet.Name,
		pet.Breed,
		pet.Age,
		pet.MedicalInfo,
		pet.Photo,
	).Scan(&pet.ID, &pet.CreatedAt)
}

func (r *petRepository) GetByID(ctx context.Context, id string) (*domain.Pet, error) {
	const query = `
        SELECT id, owner_id, name, breed, age, medical_info, photo, created_at
        FROM pets WHERE id=$1`

	var pet domain.Pet
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&pet.ID,
		&pet.OwnerID,
		&pet.Name,
		&pet.Breed,
		&pet.Age,
		&pet.MedicalInfo,
		&pet.Photo,
		&pet.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (r *petRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Pet, error) {
	const query = `
        SELECT id, owner_id, name, breed, age, medical_info, photo, created_at
        FROM pets WHERE owner_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := make([]*domain.Pet, 0)
	for rows.Next() {
		var pet domain.Pet
		if err := rows.Scan(
			&pet.ID,
			&pet.OwnerID,
			&pet.Name,
			&pet.Breed,
			&pet.Age,
			&pet.MedicalInfo,
			&pet.Photo,
			&pet.CreatedAt,
		); err != nil {
			return nil, err
		}
		pets = append(pets, &pet)
	}
	return pets, rows.Err()
}

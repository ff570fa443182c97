package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// ActivityRepository defines persistence access for care activities.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	ListByCareRequest(ctx context.Context, careRequestID string) ([]*domain.Activity, error)
}

type activityRepository struct {
	pool *pgxpool.Pool
}

// NewActivityRepository returns a Postgres-backed implementation.
func NewActivityRepository(pool *pgxpool.Pool) ActivityRepository {
	return &activityRepository{pool: pool}
}

func (r *activityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	const query = `
        INSERT INTO activities (care_request_id, pet_id, caretaker_id, activity_type, description, location, photos)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, logged_at`

	return r.pool.QueryRow(ctx, query,
		activity.CareRequestID,
		activity.PetID,
		activity.CaretakerID,
		activity.Type,
		activity.Description,
		activity.Location,
		activity.Photos,
	).Scan(&activity.ID, &activity.Timestamp)
}

func (r *activityRepository) ListByCareRequest(ctx context.Context, careRequestID string) ([]*domain.Activity, error) {
	const query = `
        SELECT id, care_request_id, pet_id, caretaker_id, activity_type, description, location, photos, logged_at
        FROM activities WHERE care_request_id=$1 ORDER BY logged_at DESC`

	rows, err := r.pool.Query(ctx, query, careRequestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]*domain.Activity, 0)
	for rows.Next() {
		activity, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	return activities, rows.Err()
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var activity domain.Activity
	if err := row.Scan(
		&activity.ID,
		&activity.CareRequestID,
		&activity.PetID,
		&activity.CaretakerID,
		&activity.Type,
		&activity.Description,
		&activity.Location,
		&activity.Photos,
		&activity.Timestamp,
	); err != nil {
		return nil, err
	}
	return &activity, nil
}

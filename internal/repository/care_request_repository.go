package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/petcare-service/internal/domain"
)

// CareRequestRepository defines persistence access for care requests.
type CareRequestRepository interface {
	Create(ctx context.Context, request *domain.CareRequest) error
	GetByID(ctx context.Context, id string) (*domain.CareRequest, error)
	UpdateStatus(ctx context.Context, id string, status domain.CareRequestStatus) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.CareRequest, error)
	ListByCaretaker(ctx context.Context, caretakerID string) ([]*domain.CareRequest, error)
	ListAll(ctx context.Context) ([]*domain.CareRequest, error)
}

type careRequestRepository struct {
	pool *pgxpool.Pool
}

// NewCareRequestRepository returns a Postgres-backed implementation.
func NewCareRequestRepository(pool *pgxpool.Pool) CareRequestRepository {
	return &careRequestRepository{pool: pool}
}

const careRequestColumns = `id, pet_id, owner_id, caretaker_id, status, start_date, end_date, notes, created_at, updated_at`

func scanCareRequest(row pgx.Row) (*domain.CareRequest, error) {
	var request domain.CareRequest
	if err := row.Scan(
		&request.ID,
		&request.PetID,
		&request.OwnerID,
		&request.CaretakerID,
		&request.Status,
		&request.StartDate,
		&request.EndDate,
		&request.Notes,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *careRequestRepository) Create(ctx context.Context, request *domain.CareRequest) error {
	const query = `
        INSERT INTO care_requests (pet_id, owner_id, caretaker_id, status, start_date, end_date, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		request.PetID,
		request.OwnerID,
		request.CaretakerID,
		request.Status,
		request.StartDate,
		request.EndDate,
		request.Notes,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *careRequestRepository) GetByID(ctx context.Context, id string) (*domain.CareRequest, error) {
	const query = `SELECT ` + careRequestColumns + ` FROM care_requests WHERE id=$1`
	return scanCareRequest(r.pool.QueryRow(ctx, query, id))
}

func (r *careRequestRepository) UpdateStatus(ctx context.Context, id string, status domain.CareRequestStatus) error {
	const query = `UPDATE care_requests SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *careRequestRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.CareRequest, error) {
	const query = `SELECT ` + careRequestColumns + ` FROM care_requests WHERE owner_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, ownerID)
}

func (r *careRequestRepository) ListByCaretaker(ctx context.Context, caretakerID string) ([]*domain.CareRequest, error) {
	const query = `SELECT ` + careRequestColumns + ` FROM care_requests WHERE caretaker_id=$1 ORDER BY created_at DESC`
	return r.list(ctx, query, caretakerID)
}

func (r *careRequestRepository) ListAll(ctx context.Context) ([]*domain.CareRequest, error) {
	const query = `SELECT ` + careRequestColumns + ` FROM care_requests ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *careRequestRepository) list(ctx context.Context, query string, args ...any) ([]*domain.CareRequest, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.CareRequest, 0)
	for rows.Next() {
		request, err := scanCareRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}
	return requests, rows.Err()
}

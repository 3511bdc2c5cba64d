package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository reads couriers out of the users table. Couriers are users with
// role = 'courier'; availability lives in the courier_status column.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate locks the courier row so that the availability check and
// the following status write are atomic within the ambient transaction.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Courier, error) {
	query := `SELECT id, name, email, courier_status, created_at, updated_at
		FROM users
		WHERE id = $1 AND role = 'courier'`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var courierDB CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierDB.ID,
			&courierDB.Name,
			&courierDB.Email,
			&courierDB.Status,
			&courierDB.CreatedAt,
			&courierDB.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(&courierDB), nil
}

func (r *Repository) SetStatus(ctx context.Context, id int64, status entities.CourierStatusType) error {
	query := `UPDATE users
		SET courier_status = $2, updated_at = NOW()
		WHERE id = $1 AND role = 'courier'`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return fmt.Errorf("unexpected courier repository set status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return courier.ErrCourierNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error) {
	builder := qb.
		Select("id", "name", "email", "courier_status", "created_at", "updated_at").
		From("users").
		Where(sq.Eq{"role": "courier"}).
		OrderBy("created_at DESC", "id DESC")

	if status != nil {
		builder = builder.Where(sq.Eq{"courier_status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierDB CourierDB
		err := rows.Scan(
			&courierDB.ID,
			&courierDB.Name,
			&courierDB.Email,
			&courierDB.Status,
			&courierDB.CreatedAt,
			&courierDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
		}
		courierModels = append(courierModels, courierDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository list error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

package address

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Address, error) {
	query := `SELECT id, user_id, label, recipient_name, phone_number, district_code, full_address
		FROM user_addresses
		WHERE id = $1`

	var addressEntity entities.Address
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&addressEntity.ID,
			&addressEntity.UserID,
			&addressEntity.Label,
			&addressEntity.RecipientName,
			&addressEntity.PhoneNumber,
			&addressEntity.DistrictCode,
			&addressEntity.FullAddress,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository get error: %w", err)
	}

	return &addressEntity, nil
}

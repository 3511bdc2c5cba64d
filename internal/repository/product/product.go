package product

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

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Product, error) {
	query := `SELECT id, name, price, created_at, updated_at
		FROM products
		WHERE id = $1`

	var productEntity entities.Product
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&productEntity.ID,
			&productEntity.Name,
			&productEntity.Price,
			&productEntity.CreatedAt,
			&productEntity.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrProductNotFound
		}
		return nil, fmt.Errorf("unexpected product repository get error: %w", err)
	}

	return &productEntity, nil
}

package shippingrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"marketplace/internal/entities"
	"marketplace/internal/service/shipping"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
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

func (r *Repository) GetByRegionCode(ctx context.Context, regionCode string) (*entities.ShippingRate, error) {
	query := `SELECT region_code, price, created_at, updated_at
		FROM shipping_rates
		WHERE region_code = $1`

	var rate entities.ShippingRate
	err := r.querier.QueryRow(ctx, query, regionCode).
		Scan(&rate.RegionCode, &rate.Price, &rate.CreatedAt, &rate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipping.ErrRateNotFound
		}
		return nil, fmt.Errorf("unexpected shipping rate repository get error: %w", err)
	}

	return &rate, nil
}

func (r *Repository) Upsert(ctx context.Context, regionCode string, price int64) (*entities.ShippingRate, error) {
	query := `INSERT INTO shipping_rates (region_code, price)
		VALUES ($1, $2)
		ON CONFLICT (region_code) DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()
		RETURNING region_code, price, created_at, updated_at`

	var rate entities.ShippingRate
	err := r.querier.QueryRow(ctx, query, regionCode, price).
		Scan(&rate.RegionCode, &rate.Price, &rate.CreatedAt, &rate.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipping rate repository upsert error: %w", err)
	}

	return &rate, nil
}

func (r *Repository) Delete(ctx context.Context, regionCode string) error {
	query := `DELETE FROM shipping_rates WHERE region_code = $1`

	result, err := r.querier.Exec(ctx, query, regionCode)
	if err != nil {
		return fmt.Errorf("unexpected shipping rate repository delete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipping.ErrRateNotFound
	}

	return nil
}

func (r *Repository) List(ctx context.Context) ([]entities.ShippingRate, error) {
	query := `SELECT region_code, price, created_at, updated_at
		FROM shipping_rates
		ORDER BY region_code`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipping rate repository list error: %w", err)
	}
	defer rows.Close()

	rates := make([]entities.ShippingRate, 0, 8)
	for rows.Next() {
		var rate entities.ShippingRate
		err := rows.Scan(&rate.RegionCode, &rate.Price, &rate.CreatedAt, &rate.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipping rate repository list error: %w", err)
		}
		rates = append(rates, rate)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipping rate repository list error: %w", err)
	}

	return rates, nil
}

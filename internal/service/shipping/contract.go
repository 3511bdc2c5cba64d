//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipping_test
package shipping

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByRegionCode(ctx context.Context, regionCode string) (*entities.ShippingRate, error)
	Upsert(ctx context.Context, regionCode string, price int64) (*entities.ShippingRate, error)
	Delete(ctx context.Context, regionCode string) error
	List(ctx context.Context) ([]entities.ShippingRate, error)
}

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"io"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderListFilter) ([]entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type AddressStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Address, error)
}

type ProductStore interface {
	GetByID(ctx context.Context, id int64) (*entities.Product, error)
}

type RateLookup interface {
	RateFor(ctx context.Context, regionCode string) (int64, error)
}

// CourierRegistry is the availability registry. MarkBusy assumes the caller
// has already verified availability inside the same transaction; it is a pure
// state mutator. MarkAvailable is idempotent.
type CourierRegistry interface {
	IsAvailable(ctx context.Context, courierID int64) (bool, error)
	MarkBusy(ctx context.Context, courierID int64) error
	MarkAvailable(ctx context.Context, courierID int64) error
}

type ImageStore interface {
	Store(ctx context.Context, orderID int64, filename string, content io.Reader) (string, error)
	Remove(ctx context.Context, reference string) error
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, order *entities.Order) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

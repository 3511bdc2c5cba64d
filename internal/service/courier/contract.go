//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Courier, error)
	SetStatus(ctx context.Context, id int64, status entities.CourierStatusType) error
	List(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error)
}

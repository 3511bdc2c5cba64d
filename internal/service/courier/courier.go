package courier

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
)

// Courier is the availability registry. Availability is only ever mutated
// from inside an order transition's transaction; there is no direct endpoint
// for flipping a courier's state.
type Courier struct {
	repository Repository
}

func New(repository Repository) *Courier {
	return &Courier{
		repository: repository,
	}
}

// IsAvailable reads the courier's state under a row lock, so a concurrent
// transition in another transaction waits until the caller commits.
func (s *Courier) IsAvailable(ctx context.Context, courierID int64) (bool, error) {
	courierEntity, err := s.repository.GetByIDForUpdate(ctx, courierID)
	if err != nil {
		return false, fmt.Errorf("get courier: %w", err)
	}
	return courierEntity.Status == entities.CourierAvailable, nil
}

// MarkBusy sets the courier busy. The caller is expected to have verified
// availability inside the same transaction; no re-check happens here.
func (s *Courier) MarkBusy(ctx context.Context, courierID int64) error {
	err := s.repository.SetStatus(ctx, courierID, entities.CourierBusy)
	if err != nil {
		return fmt.Errorf("set courier busy: %w", err)
	}
	return nil
}

// MarkAvailable releases the courier. Releasing an already-available courier
// is a no-op rather than an error.
func (s *Courier) MarkAvailable(ctx context.Context, courierID int64) error {
	err := s.repository.SetStatus(ctx, courierID, entities.CourierAvailable)
	if err != nil {
		return fmt.Errorf("set courier available: %w", err)
	}
	return nil
}

func (s *Courier) ListCouriers(ctx context.Context, status *entities.CourierStatusType) ([]entities.Courier, error) {
	if status != nil && *status != entities.CourierAvailable && *status != entities.CourierBusy {
		return nil, ErrInvalidStatus
	}

	couriers, err := s.repository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list couriers: %w", err)
	}
	return couriers, nil
}

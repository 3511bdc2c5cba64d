package shipping

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

// Shipping resolves delivery prices per district. Districts without a stored
// rate get the configured default; absence is policy, not an error.
type Shipping struct {
	repository  Repository
	defaultRate int64
}

func New(repository Repository, defaultRate int64) *Shipping {
	return &Shipping{
		repository:  repository,
		defaultRate: defaultRate,
	}
}

func (s *Shipping) RateFor(ctx context.Context, regionCode string) (int64, error) {
	rate, err := s.repository.GetByRegionCode(ctx, regionCode)
	if err != nil {
		if errors.Is(err, ErrRateNotFound) {
			return s.defaultRate, nil
		}
		return 0, fmt.Errorf("get shipping rate: %w", err)
	}
	return rate.Price, nil
}

func (s *Shipping) UpsertRate(ctx context.Context, regionCode string, price int64) (*entities.ShippingRate, error) {
	if strings.TrimSpace(regionCode) == "" {
		return nil, ErrInvalidRegionCode
	}
	if price < 0 {
		return nil, ErrInvalidPrice
	}

	rate, err := s.repository.Upsert(ctx, regionCode, price)
	if err != nil {
		return nil, fmt.Errorf("upsert shipping rate: %w", err)
	}
	return rate, nil
}

func (s *Shipping) DeleteRate(ctx context.Context, regionCode string) error {
	if strings.TrimSpace(regionCode) == "" {
		return ErrInvalidRegionCode
	}

	err := s.repository.Delete(ctx, regionCode)
	if err != nil {
		return fmt.Errorf("delete shipping rate: %w", err)
	}
	return nil
}

func (s *Shipping) ListRates(ctx context.Context) ([]entities.ShippingRate, error) {
	rates, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipping rates: %w", err)
	}
	return rates, nil
}

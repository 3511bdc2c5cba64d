package shipping

import "errors"

var (
	ErrRateNotFound      = errors.New("shipping rate not found")
	ErrInvalidRegionCode = errors.New("invalid region code")
	ErrInvalidPrice      = errors.New("price must not be negative")
)

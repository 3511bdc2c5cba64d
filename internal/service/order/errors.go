package order

import "errors"

// Validation: rejected before any state change.
var (
	ErrEmptyItems           = errors.New("order needs at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be positive")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrMissingProof         = errors.New("payment proof file is required")
)

// Not found: a referenced entity does not exist.
var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrAddressNotFound = errors.New("address not found")
	ErrProductNotFound = errors.New("product not found")
)

// Conflict: the transition is not legal from the current state.
var (
	ErrCourierRequired   = errors.New("courier required for delivery")
	ErrCourierBusy       = errors.New("courier busy")
	ErrOrderFinalized    = errors.New("order already finalized")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotOnDelivery     = errors.New("order is not on delivery")
)

// Authorization: the caller lacks ownership of the target.
var (
	ErrNotOrderOwner      = errors.New("order belongs to another customer")
	ErrNotAddressOwner    = errors.New("address belongs to another customer")
	ErrNotAssignedCourier = errors.New("order is assigned to another courier")
)

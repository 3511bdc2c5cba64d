package entities

import "time"

// ShippingRate maps a district code to a delivery price. Districts without a
// stored rate fall back to the configured default, which is policy rather
// than an error.
type ShippingRate struct {
	RegionCode string
	Price      int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

package entities

import "time"

type Product struct {
	ID        int64
	Name      string
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

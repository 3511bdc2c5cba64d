package order

import "time"

type OrderDB struct {
	ID              int64
	CustomerID      int64
	CourierID       *int64
	CustomerName    string
	ShippingAddress string
	RegionCode      string
	Subtotal        int64
	ShippingCost    int64
	GrandTotal      int64
	PaymentMethod   string
	PaymentStatus   string
	Status          string
	PaymentProof    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
	Price     int64
}

package dto

import (
	"time"

	"marketplace/internal/entities"
)

type OrderCreateRequest struct {
	AddressID     int64                    `json:"address_id"`
	PaymentMethod string                   `json:"payment_method"`
	Items         []OrderItemCreateRequest `json:"items"`

	// Legacy clients still send these; the server recomputes both and
	// ignores the submitted values.
	ShippingCost *int64 `json:"shipping_cost,omitempty"`
	TotalPrice   *int64 `json:"total_price,omitempty"`
}

type OrderItemCreateRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

type OrderStatusUpdateRequest struct {
	Status    string `json:"status"`
	CourierID *int64 `json:"courier_id,omitempty"`
}

type Order struct {
	ID              int64       `json:"id"`
	CustomerID      int64       `json:"customer_id"`
	CourierID       *int64      `json:"courier_id,omitempty"`
	CustomerName    string      `json:"customer_name"`
	ShippingAddress string      `json:"shipping_address"`
	RegionCode      string      `json:"region_code"`
	Subtotal        int64       `json:"subtotal"`
	ShippingCost    int64       `json:"shipping_cost"`
	GrandTotal      int64       `json:"grand_total"`
	PaymentMethod   string      `json:"payment_method"`
	PaymentStatus   string      `json:"payment_status"`
	Status          string      `json:"status"`
	PaymentProof    *string     `json:"payment_proof,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
	Price     int64 `json:"price"`
}

type OrderListResponse struct {
	Data []Order `json:"data"`
}

type Courier struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type CourierListResponse struct {
	Data []Courier `json:"data"`
}

type PingResponse struct {
	Message *string `json:"message"`
}

func FromOrder(o *entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CourierID:       o.CourierID,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		RegionCode:      o.RegionCode,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		GrandTotal:      o.GrandTotal,
		PaymentMethod:   o.PaymentMethod.String(),
		PaymentStatus:   o.PaymentStatus.String(),
		Status:          o.Status.String(),
		PaymentProof:    o.PaymentProof,
		Items:           items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}
	return result
}

func FromCourier(c *entities.Courier) Courier {
	return Courier{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Status:    c.Status.String(),
		CreatedAt: c.CreatedAt,
	}
}

func FromCourierList(couriers []entities.Courier) []Courier {
	result := make([]Courier, 0, len(couriers))
	for i := range couriers {
		result = append(result, FromCourier(&couriers[i]))
	}
	return result
}

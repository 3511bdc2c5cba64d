package entities

import "time"

type Order struct {
	ID              int64
	CustomerID      int64
	CourierID       *int64
	CustomerName    string
	ShippingAddress string
	RegionCode      string
	Subtotal        int64
	ShippingCost    int64
	GrandTotal      int64
	PaymentMethod   PaymentMethodType
	PaymentStatus   PaymentStatusType
	Status          OrderStatusType
	PaymentProof    *string
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
	Price     int64
}

// OrderDraft carries what the customer submits on checkout. Shipping cost and
// totals are always computed server-side from the rate table, so the draft
// intentionally has no money fields.
type OrderDraft struct {
	AddressID     int64
	PaymentMethod PaymentMethodType
	Items         []OrderDraftItem
}

type OrderDraftItem struct {
	ProductID int64
	Quantity  int32
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderProcessing OrderStatusType = "processing"
	OrderOnDelivery OrderStatusType = "on_delivery"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderOnDelivery, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// orderTransitions is the single source of truth for the order state machine.
var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:    {OrderProcessing, OrderOnDelivery, OrderCancelled},
	OrderProcessing: {OrderOnDelivery, OrderCancelled},
	OrderOnDelivery: {OrderCompleted, OrderCancelled},
}

func (s OrderStatusType) CanTransitionTo(target OrderStatusType) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

type PaymentMethodType string

const (
	PaymentCashOnDelivery PaymentMethodType = "cod"
	PaymentQRTransfer     PaymentMethodType = "qr_transfer"
)

func (m PaymentMethodType) String() string {
	return string(m)
}

func (m PaymentMethodType) Valid() bool {
	return m == PaymentCashOnDelivery || m == PaymentQRTransfer
}

type PaymentStatusType string

const (
	PaymentUnpaid PaymentStatusType = "unpaid"
	PaymentPaid   PaymentStatusType = "paid"
)

func (p PaymentStatusType) String() string {
	return string(p)
}

// OrderModify describes a partial order update. Nil fields stay untouched.
type OrderModify struct {
	ID            *int64
	CourierID     *int64
	Status        *OrderStatusType
	PaymentStatus *PaymentStatusType
	PaymentProof  *string
}

// OrderListFilter narrows order listings. CustomerID/CourierID scope the query
// to one caller; Type is the active/history split shared by the customer and
// courier listings.
type OrderListFilter struct {
	CustomerID *int64
	CourierID  *int64
	Type       OrderListType
	Status     *OrderStatusType
}

type OrderListType string

const (
	OrderListAll     OrderListType = ""
	OrderListActive  OrderListType = "active"
	OrderListHistory OrderListType = "history"
)

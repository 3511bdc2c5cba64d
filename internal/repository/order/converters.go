package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CourierID:       o.CourierID,
		CustomerName:    o.CustomerName,
		ShippingAddress: o.ShippingAddress,
		RegionCode:      o.RegionCode,
		Subtotal:        o.Subtotal,
		ShippingCost:    o.ShippingCost,
		GrandTotal:      o.GrandTotal,
		PaymentMethod:   entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus:   entities.PaymentStatusType(o.PaymentStatus),
		Status:          entities.OrderStatusType(o.Status),
		PaymentProof:    o.PaymentProof,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToItemDomain(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Price:     i.Price,
	}
}

func ToDomainList(orders []OrderDB) []entities.Order {
	result := make([]entities.Order, 0, len(orders))
	for i := range orders {
		result = append(result, *ToDomain(&orders[i]))
	}
	return result
}

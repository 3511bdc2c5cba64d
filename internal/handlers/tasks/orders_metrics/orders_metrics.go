package orders_metrics

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Service interface {
	CountOrdersByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type OrdersMetrics struct {
	service  Service
	interval time.Duration
}

func New(service Service, interval time.Duration) *OrdersMetrics {
	return &OrdersMetrics{
		service:  service,
		interval: interval,
	}
}

func (o *OrdersMetrics) TTL() time.Duration {
	return o.interval
}

func (o *OrdersMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.CountOrdersByStatus(ctxWithTimeout)
	if err != nil {
		return err
	}

	// Statuses absent from the result must be reset, not left stale.
	for _, status := range []entities.OrderStatusType{
		entities.OrderPending,
		entities.OrderProcessing,
		entities.OrderOnDelivery,
		entities.OrderCompleted,
		entities.OrderCancelled,
	} {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (o *OrdersMetrics) Info() string {
	return "orders metrics"
}

package orderevents

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"marketplace/internal/entities"
)

// Gateway publishes order.status.changed events for downstream consumers
// (notifications, analytics). Publishing is best effort: the order transition
// has already committed by the time an event goes out.
type Gateway struct {
	producer Producer
	topic    string
}

func New(producer Producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

type statusChangedEvent struct {
	OrderID       int64     `json:"order_id"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CourierID     *int64    `json:"courier_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (g *Gateway) PublishStatusChanged(ctx context.Context, orderEntity *entities.Order) error {
	start := time.Now()

	event := statusChangedEvent{
		OrderID:       orderEntity.ID,
		Status:        orderEntity.Status.String(),
		PaymentStatus: orderEntity.PaymentStatus.String(),
		CourierID:     orderEntity.CourierID,
		OccurredAt:    time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	err = g.producer.Send(ctx, g.topic, strconv.FormatInt(orderEntity.ID, 10), payload)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	EventPublishDuration.WithLabelValues(g.topic, outcome).Observe(time.Since(start).Seconds())
	EventPublishTotal.WithLabelValues(g.topic, outcome).Inc()

	if err != nil {
		return fmt.Errorf("publish status changed event: %w", err)
	}
	return nil
}

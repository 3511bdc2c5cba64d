package orderevents

import "context"

type Producer interface {
	Send(ctx context.Context, topic, key string, value []byte) error
}

package messaging

import (
	"context"
	"time"
)

// Noop accepts and discards every message.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Publish(ctx context.Context, destination string, _ OutgoingMessage) (PublishResult, error) {
	if err := ctx.Err(); err != nil {
		return PublishResult{}, err
	}
	return PublishResult{Subject: destination, Timestamp: time.Now()}, nil
}

func (*Noop) Close() error {
	return nil
}

package messaging

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrUnsupported is returned when a driver cannot honour a message option.
var ErrUnsupported = errors.New("messaging: unsupported operation")

// Publisher sends messages to a destination subject.
type Publisher interface {
	io.Closer
	Publish(ctx context.Context, destination string, msg OutgoingMessage) (PublishResult, error)
}

// OutgoingMessage is a broker-agnostic message.
type OutgoingMessage struct {
	Body    []byte
	Headers []Header
	// Delay requests deferred delivery; drivers without support return
	// ErrUnsupported.
	Delay time.Duration
}

// Header is a key/value pair carried with a message.
type Header struct {
	Key   string
	Value []byte
}

// PublishResult carries what the broker reports about an accepted message.
type PublishResult struct {
	Subject   string
	Timestamp time.Time
}

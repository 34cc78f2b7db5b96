package mail

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNoRecipients is returned when Message.To is empty.
	ErrNoRecipients = errors.New("mail: no recipients provided")
	// ErrNoSender is returned when neither Message.From nor the driver default is set.
	ErrNoSender = errors.New("mail: no sender provided")
)

// Message is a provider-agnostic email payload.
type Message struct {
	// From overrides the driver's default sender when set.
	From     string
	To       []string
	Subject  string
	TextBody string
	// HTMLBody is optional; drivers send multipart when both bodies are set.
	HTMLBody string
}

// Mail abstracts an email provider.
type Mail interface {
	io.Closer
	Send(ctx context.Context, msg Message) error
}

func (m Message) validate(defaultFrom string) (string, error) {
	if len(m.To) == 0 {
		return "", ErrNoRecipients
	}

	from := m.From
	if from == "" {
		from = defaultFrom
	}
	if from == "" {
		return "", ErrNoSender
	}

	return from, nil
}

package mail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mailersend/mailersend-go"
)

// ErrMailerSendAPIKeyRequired is returned when the API key is missing.
var ErrMailerSendAPIKeyRequired = errors.New("mail: mailersend api key is required")

// MailerSendConfig configures the MailerSend driver.
type MailerSendConfig struct {
	APIKey   string
	FromName string
	// From is the default sender address when Message.From is empty.
	From string
}

// MailerSend delivers through the MailerSend HTTP API.
type MailerSend struct {
	client   *mailersend.Mailersend
	fromName string
	from     string
}

func NewMailerSend(cfg MailerSendConfig) (*MailerSend, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMailerSendAPIKeyRequired
	}

	return &MailerSend{
		client:   mailersend.NewMailersend(cfg.APIKey),
		fromName: cfg.FromName,
		from:     cfg.From,
	}, nil
}

func (m *MailerSend) Send(ctx context.Context, msg Message) error {
	from, err := msg.validate(m.from)
	if err != nil {
		return err
	}

	recipients := make([]mailersend.Recipient, 0, len(msg.To))
	for _, to := range msg.To {
		recipients = append(recipients, mailersend.Recipient{Email: to})
	}

	out := m.client.Email.NewMessage()
	out.SetFrom(mailersend.From{Name: m.fromName, Email: from})
	out.SetRecipients(recipients)
	out.SetSubject(msg.Subject)
	if msg.TextBody != "" {
		out.SetText(msg.TextBody)
	}
	if msg.HTMLBody != "" {
		out.SetHTML(msg.HTMLBody)
	}

	res, err := m.client.Email.Send(ctx, out)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		//nolint:errcheck // body only enriches the error
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return fmt.Errorf("mail: mailersend status=%d body=%s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}

// Close implements io.Closer; the HTTP client holds no dedicated resources.
func (m *MailerSend) Close() error {
	return nil
}

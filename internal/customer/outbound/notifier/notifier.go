// Package notifier delivers one-time passcodes to customers by email.
package notifier

import (
	"bytes"
	"context"
	"errors"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/sethvargo/go-retry"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/mail"
	"go.opentelemetry.io/otel/codes"
)

// DefaultSubject matches the subject customers already receive.
const DefaultSubject = "OTP verification for password change"

var (
	textTpl = template.Must(template.New("otp.txt").Parse(
		"Your EatElite verification code is {{.Code}}.\n" +
			"It expires in {{.Minutes}} minutes. If you did not ask to change your password, ignore this email.\n"))

	htmlTpl = htmltemplate.Must(htmltemplate.New("otp.html").Parse(
		`<p>Your EatElite verification code is <strong>{{.Code}}</strong>.</p>` +
			`<p>It expires in {{.Minutes}} minutes. If you did not ask to change your password, ignore this email.</p>`))
)

type Config struct {
	Subject string
	// From overrides the mail driver's default sender.
	From string
	// MaxRetries bounds re-sends after the first attempt.
	MaxRetries uint64
	// Backoff is the base of the Fibonacci retry backoff.
	Backoff time.Duration
}

type Notifier struct {
	client  mail.Mail
	ins     instrument.Instrumentation
	subject string
	from    string
	retries uint64
	backoff time.Duration
}

func New(client mail.Mail, ins instrument.Instrumentation, cfg Config) *Notifier {
	if ins == nil {
		ins = instrument.NewNoop()
	}
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 200 * time.Millisecond
	}

	return &Notifier{
		client:  client,
		ins:     ins,
		subject: cfg.Subject,
		from:    cfg.From,
		retries: cfg.MaxRetries,
		backoff: cfg.Backoff,
	}
}

// SendOTP mails code to email, retrying transport failures. Message
// validation errors are not retried.
func (n *Notifier) SendOTP(ctx context.Context, email, code string, ttl time.Duration) (err error) {
	ctx, span := n.ins.Tracer("customer.outbound.notifier").Start(ctx, "SendOTP")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	data := map[string]any{"Code": code, "Minutes": int(ttl.Minutes())}

	var text, html bytes.Buffer
	if err := textTpl.Execute(&text, data); err != nil {
		return err
	}
	if err := htmlTpl.Execute(&html, data); err != nil {
		return err
	}

	msg := mail.Message{
		From:     n.from,
		To:       []string{email},
		Subject:  n.subject,
		TextBody: text.String(),
		HTMLBody: html.String(),
	}

	b := retry.WithMaxRetries(n.retries, retry.NewFibonacci(n.backoff))
	return retry.Do(ctx, b, func(ctx context.Context) error {
		err := n.client.Send(ctx, msg)
		if err == nil || errors.Is(err, mail.ErrNoRecipients) || errors.Is(err, mail.ErrNoSender) {
			return err
		}
		return retry.RetryableError(err)
	})
}

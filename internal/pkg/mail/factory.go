package mail

import (
	"errors"
	"strings"
)

// Supported drivers.
const (
	DriverSMTP       = "smtp"
	DriverMailerSend = "mailersend"
)

// ErrUnknownDriver is returned by NewFromDriver for an unsupported name.
var ErrUnknownDriver = errors.New("mail: unknown driver")

// FactoryOptions carries the configuration of every driver; only the one
// named by the driver argument is used.
type FactoryOptions struct {
	SMTP       SMTPConfig
	MailerSend MailerSendConfig
}

// NewFromDriver builds the Mail implementation for driver. An empty driver
// selects SMTP.
func NewFromDriver(driver string, opts FactoryOptions) (Mail, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", DriverSMTP:
		return NewSMTP(opts.SMTP)
	case DriverMailerSend:
		return NewMailerSend(opts.MailerSend)
	default:
		return nil, ErrUnknownDriver
	}
}

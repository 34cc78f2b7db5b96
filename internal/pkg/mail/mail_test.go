package mail

import (
	"context"
	"net/smtp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriver(t *testing.T) {
	m, err := NewFromDriver("", FactoryOptions{SMTP: SMTPConfig{Host: "localhost", Port: 1025}})
	require.NoError(t, err)
	assert.IsType(t, &SMTP{}, m)

	m, err = NewFromDriver(" MailerSend ", FactoryOptions{MailerSend: MailerSendConfig{APIKey: "key", From: "no-reply@eatelite.test"}})
	require.NoError(t, err)
	assert.IsType(t, &MailerSend{}, m)
	assert.NoError(t, m.Close())

	_, err = NewFromDriver("mailersend", FactoryOptions{})
	assert.ErrorIs(t, err, ErrMailerSendAPIKeyRequired)

	_, err = NewFromDriver("smtp", FactoryOptions{})
	assert.ErrorIs(t, err, ErrSMTPHostPortRequired)

	_, err = NewFromDriver("pigeon", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestSMTP_Send(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "localhost", Port: 1025, From: "no-reply@eatelite.test"})
	require.NoError(t, err)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotRaw string
	s.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotRaw = addr, from, to, string(msg)
		return nil
	}

	err = s.Send(context.Background(), Message{
		To:       []string{"a@b.co"},
		Subject:  "OTP verification for password change",
		TextBody: "1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost:1025", gotAddr)
	assert.Equal(t, "no-reply@eatelite.test", gotFrom)
	assert.Equal(t, []string{"a@b.co"}, gotTo)
	assert.Contains(t, gotRaw, "Subject: OTP verification for password change\r\n")
	assert.True(t, strings.HasSuffix(gotRaw, "\r\n\r\n1234"))
}

func TestSMTP_SendValidation(t *testing.T) {
	s, err := NewSMTP(SMTPConfig{Host: "localhost", Port: 1025})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Send(context.Background(), Message{}), ErrNoRecipients)
	assert.ErrorIs(t, s.Send(context.Background(), Message{To: []string{"a@b.co"}}), ErrNoSender)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, Message{To: []string{"a@b.co"}, From: "x@y.z"}), context.Canceled)
}

func TestBuildBody_Multipart(t *testing.T) {
	body, ct := buildBody(Message{TextBody: "plain", HTMLBody: "<b>html</b>"})

	assert.True(t, strings.HasPrefix(ct, "multipart/alternative; boundary=eatelite-"))
	assert.Contains(t, body, "Content-Type: text/plain; charset=UTF-8\r\n\r\nplain")
	assert.Contains(t, body, "Content-Type: text/html; charset=UTF-8\r\n\r\n<b>html</b>")
}

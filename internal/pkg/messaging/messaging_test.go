package messaging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromDriver(t *testing.T) {
	p, err := NewFromDriver("", FactoryOptions{})
	require.NoError(t, err)
	assert.IsType(t, &Noop{}, p)

	p, err = NewFromDriver(" NOOP ", FactoryOptions{})
	require.NoError(t, err)
	assert.IsType(t, &Noop{}, p)

	_, err = NewFromDriver("nats", FactoryOptions{})
	assert.ErrorIs(t, err, ErrNATSURLRequired)

	_, err = NewFromDriver("kafka", FactoryOptions{})
	assert.ErrorIs(t, err, ErrUnknownDriver)
}

func TestNoop_Publish(t *testing.T) {
	n := NewNoop()

	res, err := n.Publish(context.Background(), "customer.registered", OutgoingMessage{Body: []byte("{}")})
	require.NoError(t, err)
	assert.Equal(t, "customer.registered", res.Subject)
	assert.NoError(t, n.Close())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = n.Publish(ctx, "x", OutgoingMessage{})
	assert.ErrorIs(t, err, context.Canceled)
}

package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/eatelite/internal/customer/usecase"
	"github.com/shandysiswandi/eatelite/internal/pkg/instrument"
	"github.com/shandysiswandi/eatelite/internal/pkg/messaging"
	"github.com/shandysiswandi/eatelite/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	if ins == nil {
		ins = instrument.NewNoop()
	}
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishCustomerRegistered(ctx context.Context, msg usecase.CustomerRegisteredEvent) error {
	ctx, span := m.ins.Tracer("customer.outbound.mq").Start(ctx, "PublishCustomerRegistered")
	defer span.End()

	return m.publish(ctx, span, event.CustomerRegisteredSubject, event.CustomerRegisteredMessage{
		CustomerID: msg.CustomerID,
		Username:   msg.Username,
		Email:      msg.Email,
		OccurredAt: msg.OccurredAt.UnixMilli(),
	})
}

func (m *Messaging) PublishCustomerPasswordReset(ctx context.Context, msg usecase.CustomerPasswordResetEvent) error {
	ctx, span := m.ins.Tracer("customer.outbound.mq").Start(ctx, "PublishCustomerPasswordReset")
	defer span.End()

	return m.publish(ctx, span, event.CustomerPasswordResetSubject, event.CustomerPasswordResetMessage{
		CustomerID: msg.CustomerID,
		Email:      msg.Email,
		OccurredAt: msg.OccurredAt.UnixMilli(),
	})
}

func (m *Messaging) publish(ctx context.Context, span trace.Span, subject string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, subject, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

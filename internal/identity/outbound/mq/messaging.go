// Package mq publishes identity events to the message broker.
package mq

import (
	"context"
	"encoding/json"

	"github.com/shandysiswandi/gotix/internal/identity/usecase"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/messaging"
	"github.com/shandysiswandi/gotix/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client messaging.Messaging
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Messaging, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

// PublishOTPIssued announces a freshly issued OTP so the notification module
// can email it to the account owner.
func (m *Messaging) PublishOTPIssued(ctx context.Context, msg usecase.OTPIssuedEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishOTPIssued")
	defer span.End()

	body, err := json.Marshal(event.OTPIssuedMessage{
		UserID:    msg.UserID,
		Email:     msg.Email,
		Username:  msg.Username,
		Code:      msg.Code,
		ExpiresIn: int64(msg.TTL.Seconds()),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if err := m.client.Publish(ctx, event.OTPIssuedDestination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

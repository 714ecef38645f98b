package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/pkg/storage"
	"github.com/shandysiswandi/gotix/internal/ticketing/entity"
)

type PurchaseInput struct {
	ExpiredDate time.Time `validate:"required"`
}

type PurchaseOutput struct {
	Ticket Ticket
}

// Ticket is the usecase-level view of a ticket, with the QR object resolved
// to a downloadable URL.
type Ticket struct {
	ID          int64
	UserID      int64
	ExpiredDate time.Time
	Image       string
	QRCode      string
	CreatedAt   time.Time
}

// Purchase creates a ticket for the current account. The expiry date must be
// strictly in the future.
func (s *Usecase) Purchase(ctx context.Context, in PurchaseInput) (*PurchaseOutput, error) {
	ctx, span := s.startSpan(ctx, "Purchase")
	defer span.End()

	sess := session.GetCurrent(ctx)
	if sess == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if !in.ExpiredDate.After(s.clock.Now()) {
		return nil, goerror.NewInvalidInput(nil, "expired_date", "must be a future date")
	}

	ticketID := s.uid.Generate()
	qrKey := fmt.Sprintf("tickets/%d/qr.png", ticketID)

	ticket, err := s.repoDB.CreateTicket(ctx, entity.NewTicket{
		ID:          ticketID,
		UserID:      sess.UserID,
		ExpiredDate: in.ExpiredDate,
		Image:       s.ticketImage(),
		QRCode:      qrKey,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo create ticket", "user_id", sess.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Upload only once the row exists so a failed insert leaves no orphaned
	// object. Upload failure is logged, not fatal; the listing falls back to
	// the raw object key until the object appears.
	if len(s.qrPlaceholder) > 0 {
		_, err := s.storage.PutObject(ctx, s.bucket(), qrKey, bytes.NewReader(s.qrPlaceholder), storage.PutOptions{
			Size:        int64(len(s.qrPlaceholder)),
			ContentType: "image/png",
		})
		if err != nil {
			slog.ErrorContext(ctx, "failed to upload qr placeholder", "key", qrKey, "error", err)
		}
	}

	return &PurchaseOutput{Ticket: Ticket{
		ID:          ticket.ID,
		UserID:      ticket.UserID,
		ExpiredDate: ticket.ExpiredDate,
		Image:       ticket.Image,
		QRCode:      s.qrURL(ctx, ticket.QRCode),
		CreatedAt:   ticket.CreatedAt,
	}}, nil
}

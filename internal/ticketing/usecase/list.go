package usecase

import (
	"context"
	"log/slog"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/ticketing/entity"
)

type ListOutput struct {
	Tickets []Ticket
}

// List returns the current account's tickets, newest first.
func (s *Usecase) List(ctx context.Context) (*ListOutput, error) {
	ctx, span := s.startSpan(ctx, "List")
	defer span.End()

	sess := session.GetCurrent(ctx)
	if sess == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	tickets, err := s.repoDB.ListTicketsByUser(ctx, sess.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo list tickets", "user_id", sess.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &ListOutput{Tickets: lo.Map(tickets, func(t entity.Ticket, _ int) Ticket {
		return Ticket{
			ID:          t.ID,
			UserID:      t.UserID,
			ExpiredDate: t.ExpiredDate,
			Image:       t.Image,
			QRCode:      s.qrURL(ctx, t.QRCode),
			CreatedAt:   t.CreatedAt,
		}
	})}, nil
}

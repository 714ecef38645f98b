package db

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/ticketing/entity"
)

const queryCreateTicket = `
INSERT INTO tickets (id, user_id, expired_date, image, qr_code)
VALUES ($1, $2, $3, $4, $5)
RETURNING created_at
`

// CreateTicket inserts a new ticket row and returns the stored record.
func (s *DB) CreateTicket(ctx context.Context, in entity.NewTicket) (ticket *entity.Ticket, err error) {
	ctx, span := s.startSpan(ctx, "CreateTicket")
	defer func() { s.endSpan(span, err) }()

	t := entity.Ticket{
		ID:          in.ID,
		UserID:      in.UserID,
		ExpiredDate: in.ExpiredDate,
		Image:       in.Image,
		QRCode:      in.QRCode,
	}

	err = s.conn.QueryRow(ctx, queryCreateTicket, in.ID, in.UserID, in.ExpiredDate, in.Image, in.QRCode).
		Scan(&t.CreatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &t, nil
}

package db

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/ticketing/entity"
)

const queryListTicketsByUser = `
SELECT id, user_id, expired_date, image, qr_code, created_at
FROM tickets
WHERE user_id = $1
ORDER BY created_at DESC
`

// ListTicketsByUser returns all tickets owned by the user, newest first.
func (s *DB) ListTicketsByUser(ctx context.Context, userID int64) (tickets []entity.Ticket, err error) {
	ctx, span := s.startSpan(ctx, "ListTicketsByUser")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, queryListTicketsByUser, userID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var t entity.Ticket
		if err = rows.Scan(&t.ID, &t.UserID, &t.ExpiredDate, &t.Image, &t.QRCode, &t.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		tickets = append(tickets, t)
	}

	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return tickets, nil
}

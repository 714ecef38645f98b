package entity

import "time"

// Ticket is a purchased ticket row as stored in Postgres.
type Ticket struct {
	ID          int64
	UserID      int64
	ExpiredDate time.Time
	Image       string
	QRCode      string
	CreatedAt   time.Time
}

// NewTicket carries the fields needed to insert a ticket.
type NewTicket struct {
	ID          int64
	UserID      int64
	ExpiredDate time.Time
	Image       string
	QRCode      string
}

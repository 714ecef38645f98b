package inbound

import (
	"net/http"
	"time"

	"github.com/shandysiswandi/gotix/internal/ticketing/usecase"
)

// dateLayout is the accepted format for ticket expiry dates.
const dateLayout = "2006-01-02"

type PurchaseRequest struct {
	ExpiredDate string `json:"expired_date"`
}

type TicketResponse struct {
	ID          int64  `json:"id,string"`
	UserID      int64  `json:"user_id,string"`
	ExpiredDate string `json:"expired_date"`
	Image       string `json:"image"`
	QRCode      string `json:"qr_code"`
	CreatedAt   string `json:"created_at"`
}

type PurchaseResponse struct {
	Ticket TicketResponse `json:"ticket"`
}

func (PurchaseResponse) Message() string {
	return "Ticket purchased"
}

func (PurchaseResponse) StatusCode() int {
	return http.StatusCreated
}

type ListResponse struct {
	Tickets []TicketResponse `json:"tickets"`
}

func (ListResponse) Message() string {
	return "Tickets retrieved"
}

func toTicketResponse(t usecase.Ticket) TicketResponse {
	return TicketResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		ExpiredDate: t.ExpiredDate.Format(dateLayout),
		Image:       t.Image,
		QRCode:      t.QRCode,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

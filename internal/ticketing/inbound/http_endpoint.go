package inbound

import (
	"time"

	"github.com/samber/lo"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/router"
	"github.com/shandysiswandi/gotix/internal/ticketing/usecase"
)

// HTTPEndpoint exposes HTTP handlers for ticket purchase and listing.
type HTTPEndpoint struct {
	uc uc
}

// Purchase creates a ticket for the authenticated account.
func (h *HTTPEndpoint) Purchase(r *router.Request) (any, error) {
	var req PurchaseRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	expiredDate, err := time.Parse(dateLayout, req.ExpiredDate)
	if err != nil {
		return nil, goerror.NewInvalidInput(nil, "expired_date", "must be a date in YYYY-MM-DD format")
	}

	resp, err := h.uc.Purchase(r.Context(), usecase.PurchaseInput{ExpiredDate: expiredDate})
	if err != nil {
		return nil, err
	}

	return PurchaseResponse{Ticket: toTicketResponse(resp.Ticket)}, nil
}

// List returns the authenticated account's tickets.
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	resp, err := h.uc.List(r.Context())
	if err != nil {
		return nil, err
	}

	return ListResponse{
		Tickets: lo.Map(resp.Tickets, func(t usecase.Ticket, _ int) TicketResponse {
			return toTicketResponse(t)
		}),
	}, nil
}

package inbound

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/pkg/router"
	"github.com/shandysiswandi/gotix/internal/ticketing/usecase"
)

type uc interface {
	Purchase(ctx context.Context, in usecase.PurchaseInput) (*usecase.PurchaseOutput, error)
	List(ctx context.Context) (*usecase.ListOutput, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/tickets", end.Purchase)
	r.GET("/api/v1/tickets", end.List)
}

package app

import (
	"context"
	"time"

	"github.com/shandysiswandi/gotix/internal/pkg/router"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

func (healthResponse) Message() string {
	return "Service is healthy"
}

// registerHealthEndpoint exposes a liveness probe that also reports the
// state of the backing stores. A degraded dependency is reported in the
// body but does not fail the probe.
func (a *App) registerHealthEndpoint() {
	a.router.GET("/health", func(r *router.Request) (any, error) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok", Database: "up", Cache: "up"}

		if err := a.dbConn.Ping(ctx); err != nil {
			resp.Database = "down"
		}
		if err := a.cacheConn.Ping(ctx).Err(); err != nil {
			resp.Cache = "down"
		}

		return resp, nil
	})
}

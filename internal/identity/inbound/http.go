package inbound

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/identity/usecase"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	Verify(ctx context.Context, in usecase.VerifyInput) (*usecase.VerifyOutput, error)
	Logout(ctx context.Context) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc, cfg config.Config) {
	end := &HTTPEndpoint{
		uc: uc,
		cookie: cookieSettings{
			name:   cookieName(cfg),
			secure: cfg.GetBool("session.cookie_secure"),
		},
	}

	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/login", end.Login)
	r.POST("/api/v1/auth/verify", end.Verify)
	r.POST("/api/v1/auth/logout", end.Logout)
}

func cookieName(cfg config.Config) string {
	if name := cfg.GetString("session.cookie_name"); name != "" {
		return name
	}
	return router.DefaultCookieName
}

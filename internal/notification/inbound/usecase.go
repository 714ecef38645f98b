package inbound

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/notification/usecase"
)

type uc interface {
	SendOTPEmail(ctx context.Context, in usecase.SendOTPEmailInput) error
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
)

// Logout destroys the current session. Logging out twice is harmless since
// the second call simply deletes a missing record.
func (s *Usecase) Logout(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "Logout")
	defer span.End()

	sess := session.GetCurrent(ctx)
	if sess == nil {
		return goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if err := s.sessions.Destroy(ctx, sess.ID); err != nil {
		slog.ErrorContext(ctx, "failed to destroy session", "user_id", sess.UserID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}

package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"

	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
)

type VerifyInput struct {
	Code string `validate:"required,numeric,len=6"`
}

type VerifyOutput struct {
	Token string
}

// Verify compares the submitted code with the live OTP for the session's
// account. On success the code is consumed, the session is marked verified
// without extending its lifetime, and a bearer token is issued.
func (s *Usecase) Verify(ctx context.Context, in VerifyInput) (*VerifyOutput, error) {
	ctx, span := s.startSpan(ctx, "Verify")
	defer span.End()

	sess := session.GetCurrent(ctx)
	if sess == nil {
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user, err := s.repoDB.GetUserByID(ctx, sess.UserID)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "session user no longer exists", "user_id", sess.UserID)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by id", "user_id", sess.UserID, "error", err)
		return nil, goerror.NewServer(err)
	}

	code, err := s.otpCache.GetOTP(ctx, user.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "no live otp for account", "user_id", user.ID)
		return nil, goerror.NewBusiness("invalid or expired otp", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to get otp code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	if subtle.ConstantTimeCompare([]byte(code), []byte(in.Code)) != 1 {
		slog.WarnContext(ctx, "otp code does not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("invalid or expired otp", goerror.CodeUnauthorized)
	}

	// Mark the session verified before consuming the code so a failed
	// session write leaves the single-use code intact for a retry.
	sess.OTPVerified = true
	err = s.sessions.Set(ctx, *sess, session.KeepTTL)
	if errors.Is(err, goerror.ErrNotFound) {
		// The session expired between the cookie check and this update.
		slog.WarnContext(ctx, "session expired during verification", "user_id", user.ID)
		return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to update session", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	// Consume the code so it cannot be replayed. Failure to delete is not
	// fatal, the key expires on its own shortly after.
	if err := s.otpCache.DeleteOTP(ctx, user.Email); err != nil {
		slog.ErrorContext(ctx, "failed to delete otp code", "user_id", user.ID, "error", err)
	}

	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate jwt token", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOutput{Token: token}, nil
}

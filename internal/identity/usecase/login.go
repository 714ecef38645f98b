package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
)

type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type LoginOutput struct {
	SessionID  string
	SessionTTL time.Duration
	OTP        string
	OTPTTL     time.Duration
}

// Login checks credentials, issues a fresh OTP, and opens an unverified
// session. A repeated login overwrites the previous OTP, so only the most
// recently issued code is accepted.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	email := strings.TrimSpace(strings.ToLower(in.Email))
	user, err := s.repoDB.GetUserByEmail(ctx, email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "user account not found", "email", email)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get user by email", "email", email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		slog.WarnContext(ctx, "password user account not match", "user_id", user.ID)
		return nil, goerror.NewBusiness("invalid email or password", goerror.CodeUnauthorized)
	}

	code, err := s.otpGen.Code()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate otp code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	otpTTL := s.otpTTL()
	if err := s.otpCache.SaveOTP(ctx, user.Email, code, otpTTL); err != nil {
		slog.ErrorContext(ctx, "failed to save otp code", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	sessionTTL := s.sessionTTL()
	sess := session.Session{
		ID:     s.uuid.Generate(),
		UserID: user.ID,
	}

	// The session write must succeed before responding, otherwise the client
	// would hold a cookie that resolves to nothing.
	if err := s.sessions.Set(ctx, sess, sessionTTL); err != nil {
		slog.ErrorContext(ctx, "failed to save session", "user_id", user.ID, "error", err)
		return nil, goerror.NewServer(err)
	}

	evt := OTPIssuedEvent{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Code:     code,
		TTL:      otpTTL,
	}
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishOTPIssued(ctx, evt); err != nil {
			slog.ErrorContext(ctx, "failed to publish otp issued", "user_id", evt.UserID, "error", err)
		}
		return nil
	})

	return &LoginOutput{
		SessionID:  sess.ID,
		SessionTTL: sessionTTL,
		OTP:        code,
		OTPTTL:     otpTTL,
	}, nil
}

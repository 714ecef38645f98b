package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shandysiswandi/gotix/internal/pkg/mail"
)

const otpEmailSubject = "Your GoTix login code"

const otpEmailHTMLTemplate = `<html>
<body style="font-family: sans-serif">
  <p>Hi {{.username}},</p>
  <p>Your one-time login code is:</p>
  <p style="font-size: 24px; letter-spacing: 4px"><strong>{{.code}}</strong></p>
  <p>The code expires in {{.expires_in}} seconds. If you did not try to log in, ignore this email.</p>
  <p>{{.company_name}} &copy; {{.year}}</p>
</body>
</html>`

type SendOTPEmailInput struct {
	UserID    int64  `validate:"required,gt=0"`
	Email     string `validate:"required,email"`
	Username  string `validate:"required"`
	Code      string `validate:"required,numeric,len=6"`
	ExpiresIn int64  `validate:"required,gt=0"`
}

// SendOTPEmail delivers the one-time code issued at login. Invalid payloads
// are dropped rather than redelivered since a malformed event will never
// become valid.
func (s *Usecase) SendOTPEmail(ctx context.Context, in SendOTPEmailInput) error {
	ctx, span := s.startSpan(ctx, "SendOTPEmail")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		slog.ErrorContext(ctx, "Validation failed", "user_id", in.UserID, "error", err)
		return nil
	}

	data := s.baseEmailTemplateData()
	data["username"] = in.Username
	data["code"] = in.Code
	data["expires_in"] = in.ExpiresIn

	htmlBody, err := s.renderTemplate("otp_email", otpEmailHTMLTemplate, data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to render otp email template", "user_id", in.UserID, "error", err)
		return err
	}

	textBody := fmt.Sprintf(
		"Hi %s,\n\nYour one-time login code is %s. It expires in %d seconds.\n\nIf you did not try to log in, ignore this email.\n",
		in.Username, in.Code, in.ExpiresIn,
	)

	msg := mail.Message{
		From:     s.cfg.GetString("mail.from_address"),
		To:       []string{in.Email},
		Subject:  otpEmailSubject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}

	if err := s.repoMail.Send(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "failed to send otp email", "user_id", in.UserID, "error", err)
		return err
	}

	return nil
}

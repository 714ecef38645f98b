package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/shandysiswandi/gotix/internal/identity/entity"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
)

type RegisterInput struct {
	Email    string `validate:"required,email"`
	Username string `validate:"required,username"`
	Password string `validate:"required,password"`
}

type RegisterOutput struct {
	UserID   int64
	Email    string
	Username string
}

// Register creates a new account with a bcrypt-hashed password.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Username = strings.TrimSpace(in.Username)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	hashedPassword, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)
		return nil, goerror.NewServer(err)
	}

	newUser := entity.NewUser{
		ID:       s.uid.Generate(),
		Email:    in.Email,
		Username: in.Username,
		Password: string(hashedPassword),
	}

	if err := s.repoDB.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, goerror.ErrConflict) {
			slog.WarnContext(ctx, "account already exists", "email", in.Email)
			return nil, goerror.NewBusiness("Email or username already registered", goerror.CodeConflict)
		}
		slog.ErrorContext(ctx, "failed to repo create user", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{
		UserID:   newUser.ID,
		Email:    newUser.Email,
		Username: newUser.Username,
	}, nil
}

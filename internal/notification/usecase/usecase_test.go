package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/mail"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepoMail struct {
	sent    []mail.Message
	sendErr error
}

func (f *fakeRepoMail) Send(_ context.Context, msg mail.Message) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newFixture(t *testing.T) (*Usecase, *fakeRepoMail) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(`
mail:
  from_address: no-reply@gotix.local
  support_address: support@gotix.local
`))
	require.NoError(t, err)

	repoMail := &fakeRepoMail{}

	uc := New(Dependency{
		Config:     cfg,
		Clock:      clock.Static{T: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		Validator:  v10,
		RepoMail:   repoMail,
		Instrument: instrument.NewNoop(),
	})

	return uc, repoMail
}

func TestSendOTPEmail(t *testing.T) {
	uc, repoMail := newFixture(t)

	err := uc.SendOTPEmail(context.Background(), SendOTPEmailInput{
		UserID:    42,
		Email:     "jane@example.com",
		Username:  "jane",
		Code:      "123456",
		ExpiresIn: 60,
	})
	require.NoError(t, err)

	require.Len(t, repoMail.sent, 1)
	msg := repoMail.sent[0]
	assert.Equal(t, "no-reply@gotix.local", msg.From)
	assert.Equal(t, []string{"jane@example.com"}, msg.To)
	assert.Equal(t, otpEmailSubject, msg.Subject)
	assert.Contains(t, msg.TextBody, "123456")
	assert.Contains(t, msg.HTMLBody, "123456")
	assert.Contains(t, msg.HTMLBody, "jane")
}

func TestSendOTPEmailInvalidPayloadDropped(t *testing.T) {
	uc, repoMail := newFixture(t)

	err := uc.SendOTPEmail(context.Background(), SendOTPEmailInput{
		UserID:    42,
		Email:     "not-an-email",
		Username:  "jane",
		Code:      "123456",
		ExpiresIn: 60,
	})

	require.NoError(t, err)
	assert.Empty(t, repoMail.sent)
}

func TestSendOTPEmailProviderFailure(t *testing.T) {
	uc, repoMail := newFixture(t)
	repoMail.sendErr = errors.New("smtp down")

	err := uc.SendOTPEmail(context.Background(), SendOTPEmailInput{
		UserID:    42,
		Email:     "jane@example.com",
		Username:  "jane",
		Code:      "654321",
		ExpiresIn: 60,
	})

	require.Error(t, err)
}

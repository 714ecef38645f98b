package usecase

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	pkgstorage "github.com/shandysiswandi/gotix/internal/pkg/storage"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
	"github.com/shandysiswandi/gotix/internal/ticketing/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepoDB struct {
	tickets   []entity.Ticket
	createErr error
	listErr   error
}

func (f *fakeRepoDB) CreateTicket(_ context.Context, in entity.NewTicket) (*entity.Ticket, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	t := entity.Ticket{
		ID:          in.ID,
		UserID:      in.UserID,
		ExpiredDate: in.ExpiredDate,
		Image:       in.Image,
		QRCode:      in.QRCode,
		CreatedAt:   time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	}
	f.tickets = append(f.tickets, t)
	return &t, nil
}

func (f *fakeRepoDB) ListTicketsByUser(_ context.Context, userID int64) ([]entity.Ticket, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []entity.Ticket
	for _, t := range f.tickets {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeStorage struct {
	putKeys    []string
	putErr     error
	presignErr error
}

func (f *fakeStorage) PutObject(_ context.Context, _, key string, _ io.Reader, _ pkgstorage.PutOptions) (pkgstorage.ObjectInfo, error) {
	if f.putErr != nil {
		return pkgstorage.ObjectInfo{}, f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	return pkgstorage.ObjectInfo{Key: key}, nil
}

func (f *fakeStorage) StatObject(context.Context, string, string) (pkgstorage.ObjectInfo, error) {
	return pkgstorage.ObjectInfo{}, nil
}

func (f *fakeStorage) DeleteObject(context.Context, string, string) error {
	return nil
}

func (f *fakeStorage) PresignGet(_ context.Context, _, key string, _ time.Duration) (string, error) {
	if f.presignErr != nil {
		return "", f.presignErr
	}
	return "https://storage.local/" + key, nil
}

func (f *fakeStorage) Close() error { return nil }

type fixedNumberID struct{ id int64 }

func (f fixedNumberID) Generate() int64 { return f.id }

func newFixture(t *testing.T) (*Usecase, *fakeRepoDB, *fakeStorage) {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte("storage:\n  bucket: gotix-test\n"))
	require.NoError(t, err)

	repoDB := &fakeRepoDB{}
	store := &fakeStorage{}

	uc := New(Dependency{
		RepoDB:     repoDB,
		Storage:    store,
		Validator:  v10,
		Config:     cfg,
		UID:        fixedNumberID{id: 555},
		Clock:      clock.Static{T: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
		Instrument: instrument.NewNoop(),
	})

	return uc, repoDB, store
}

func authedContext(userID int64) context.Context {
	return session.SetCurrent(context.Background(), &session.Session{
		ID:          "sid-test",
		UserID:      userID,
		OTPVerified: true,
	})
}

func TestPurchase(t *testing.T) {
	uc, repoDB, store := newFixture(t)

	out, err := uc.Purchase(authedContext(7), PurchaseInput{
		ExpiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(555), out.Ticket.ID)
	assert.Equal(t, int64(7), out.Ticket.UserID)
	assert.Equal(t, defaultTicketImage, out.Ticket.Image)
	assert.Equal(t, "https://storage.local/tickets/555/qr.png", out.Ticket.QRCode)

	require.Len(t, repoDB.tickets, 1)
	assert.Equal(t, []string{"tickets/555/qr.png"}, store.putKeys)
}

func TestPurchasePastDate(t *testing.T) {
	uc, repoDB, _ := newFixture(t)

	_, err := uc.Purchase(authedContext(7), PurchaseInput{
		ExpiredDate: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
	assert.Contains(t, gerr.Fields(), "expired_date")
	assert.Empty(t, repoDB.tickets)
}

func TestPurchaseSameInstantRejected(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.Purchase(authedContext(7), PurchaseInput{
		ExpiredDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
}

func TestPurchaseUploadFailureIsNotFatal(t *testing.T) {
	uc, repoDB, store := newFixture(t)
	store.putErr = errors.New("storage down")

	out, err := uc.Purchase(authedContext(7), PurchaseInput{
		ExpiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Ticket.QRCode)
	require.Len(t, repoDB.tickets, 1)
}

func TestPurchaseInsertFailureUploadsNothing(t *testing.T) {
	uc, repoDB, store := newFixture(t)
	repoDB.createErr = errors.New("db down")

	_, err := uc.Purchase(authedContext(7), PurchaseInput{
		ExpiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInternal, gerr.Code())

	// a failed insert must not leave an orphaned object behind
	assert.Empty(t, store.putKeys)
}

func TestPurchaseWithoutSession(t *testing.T) {
	uc, _, _ := newFixture(t)

	_, err := uc.Purchase(context.Background(), PurchaseInput{
		ExpiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestList(t *testing.T) {
	uc, repoDB, _ := newFixture(t)

	_, err := uc.Purchase(authedContext(7), PurchaseInput{
		ExpiredDate: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	repoDB.tickets = append(repoDB.tickets, entity.Ticket{ID: 556, UserID: 9, QRCode: "tickets/556/qr.png"})

	out, err := uc.List(authedContext(7))
	require.NoError(t, err)

	require.Len(t, out.Tickets, 1)
	assert.Equal(t, int64(555), out.Tickets[0].ID)
	assert.Equal(t, "https://storage.local/tickets/555/qr.png", out.Tickets[0].QRCode)
}

func TestListPresignFallback(t *testing.T) {
	uc, repoDB, store := newFixture(t)
	store.presignErr = errors.New("signer down")

	repoDB.tickets = append(repoDB.tickets, entity.Ticket{ID: 1, UserID: 7, QRCode: "tickets/1/qr.png"})

	out, err := uc.List(authedContext(7))
	require.NoError(t, err)

	require.Len(t, out.Tickets, 1)
	assert.Equal(t, "tickets/1/qr.png", out.Tickets[0].QRCode)
}

func TestListEmpty(t *testing.T) {
	uc, _, _ := newFixture(t)

	out, err := uc.List(authedContext(7))
	require.NoError(t, err)
	assert.Empty(t, out.Tickets)
}

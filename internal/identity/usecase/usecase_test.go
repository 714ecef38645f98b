package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/pquerna/otp"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/identity/entity"
	"github.com/shandysiswandi/gotix/internal/pkg/clock"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/goroutine"
	"github.com/shandysiswandi/gotix/internal/pkg/hash"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/jwt"
	pkgotp "github.com/shandysiswandi/gotix/internal/pkg/otp"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepoDB struct {
	usersByEmail map[string]*entity.User
	usersByID    map[int64]*entity.User
	createErr    error
	created      []entity.NewUser
}

func (f *fakeRepoDB) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if u, ok := f.usersByEmail[email]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	if u, ok := f.usersByID[id]; ok {
		return u, nil
	}
	return nil, goerror.ErrNotFound
}

func (f *fakeRepoDB) CreateUser(_ context.Context, in entity.NewUser) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, in)
	return nil
}

type fakeOTPCache struct {
	codes   map[string]string
	saveErr error
}

func (f *fakeOTPCache) SaveOTP(_ context.Context, email, code string, _ time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.codes == nil {
		f.codes = make(map[string]string)
	}
	f.codes[email] = code
	return nil
}

func (f *fakeOTPCache) GetOTP(_ context.Context, email string) (string, error) {
	if code, ok := f.codes[email]; ok {
		return code, nil
	}
	return "", goerror.ErrNotFound
}

func (f *fakeOTPCache) DeleteOTP(_ context.Context, email string) error {
	delete(f.codes, email)
	return nil
}

type fakeMessaging struct {
	published []OTPIssuedEvent
}

func (f *fakeMessaging) PublishOTPIssued(_ context.Context, msg OTPIssuedEvent) error {
	f.published = append(f.published, msg)
	return nil
}

type fixedNumberID struct{ id int64 }

func (f fixedNumberID) Generate() int64 { return f.id }

type fixedStringID struct{ id string }

func (f fixedStringID) Generate() string { return f.id }

type fixture struct {
	uc       *Usecase
	repoDB   *fakeRepoDB
	otpCache *fakeOTPCache
	msg      *fakeMessaging
	sessions session.Store
	bcrypt   hash.Hash
	grm      *goroutine.Manager
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	cfg, err := config.NewViperFromBytes("yaml", []byte(
		"session:\n  ttl_seconds: 300\nmodules:\n  identity:\n    otp_ttl_seconds: 60\n",
	))
	require.NoError(t, err)

	fixedClock := clock.Static{T: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	signer, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "gotix",
		Audiences: []string{"gotix-api"},
		TTL:       time.Hour,
		Clock:     fixedClock,
		UUID:      fixedStringID{id: "token-id"},
	})
	require.NoError(t, err)

	repoDB := &fakeRepoDB{
		usersByEmail: make(map[string]*entity.User),
		usersByID:    make(map[int64]*entity.User),
	}
	otpCache := &fakeOTPCache{}
	msg := &fakeMessaging{}
	sessions := session.NewRedisStore(client)
	bc := hash.NewBcrypt(4, "")
	grm := goroutine.NewManager(10)

	uc := New(Dependency{
		RepoDB:        repoDB,
		RepoMessaging: msg,
		OTPCache:      otpCache,
		Sessions:      sessions,
		Validator:     v10,
		Config:        cfg,
		Bcrypt:        bc,
		UID:           fixedNumberID{id: 101},
		UUID:          fixedStringID{id: "sid-test"},
		OTP:           pkgotp.NewNumeric(otp.DigitsSix),
		Clock:         fixedClock,
		JWT:           signer,
		Instrument:    instrument.NewNoop(),
		Goroutine:     grm,
	})

	return &fixture{
		uc:       uc,
		repoDB:   repoDB,
		otpCache: otpCache,
		msg:      msg,
		sessions: sessions,
		bcrypt:   bc,
		grm:      grm,
	}
}

func (f *fixture) seedUser(t *testing.T, id int64, email, username, password string) *entity.User {
	t.Helper()

	hashed, err := f.bcrypt.Hash(password)
	require.NoError(t, err)

	u := &entity.User{ID: id, Email: email, Username: username, Password: string(hashed)}
	f.repoDB.usersByEmail[email] = u
	f.repoDB.usersByID[id] = u
	return u
}

func TestRegister(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Register(context.Background(), RegisterInput{
		Email:    "New@Example.com",
		Username: "newuser",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), out.UserID)
	assert.Equal(t, "new@example.com", out.Email)
	require.Len(t, f.repoDB.created, 1)
	assert.NotEqual(t, "supersecret", f.repoDB.created[0].Password)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Register(context.Background(), RegisterInput{
		Email:    "not-an-email",
		Username: "x",
		Password: "short",
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInvalidInput, gerr.Code())
}

func TestRegisterDuplicate(t *testing.T) {
	f := newFixture(t)
	f.repoDB.createErr = goerror.ErrConflict

	_, err := f.uc.Register(context.Background(), RegisterInput{
		Email:    "dup@example.com",
		Username: "dupuser",
		Password: "supersecret",
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeConflict, gerr.Code())
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")

	out, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	assert.Equal(t, "sid-test", out.SessionID)
	assert.Len(t, out.OTP, 6)
	assert.Equal(t, time.Minute, out.OTPTTL)

	// the issued OTP is live for the account
	code, err := f.otpCache.GetOTP(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, out.OTP, code)

	// the session exists and is not verified yet
	sess, err := f.sessions.Get(context.Background(), out.SessionID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sess.UserID)
	assert.False(t, sess.OTPVerified)

	// the event is published in the background
	require.NoError(t, f.grm.Wait())
	require.Len(t, f.msg.published, 1)
	assert.Equal(t, out.OTP, f.msg.published[0].Code)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "wrongpassword",
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "ghost@example.com",
		Password: "supersecret",
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestLoginReissueReplacesOTP(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")
	ctx := context.Background()

	first, err := f.uc.Login(ctx, LoginInput{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)

	second, err := f.uc.Login(ctx, LoginInput{Email: "user@example.com", Password: "supersecret"})
	require.NoError(t, err)

	code, err := f.otpCache.GetOTP(ctx, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, second.OTP, code)

	if first.OTP != second.OTP {
		assert.NotEqual(t, first.OTP, code)
	}
}

func TestLoginSessionSaveFailure(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")

	brokenSessions := brokenStore{}
	f.uc.sessions = brokenSessions

	_, err := f.uc.Login(context.Background(), LoginInput{
		Email:    "user@example.com",
		Password: "supersecret",
	})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInternal, gerr.Code())
}

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (*session.Session, error) {
	return nil, errors.New("store down")
}

func (brokenStore) Set(context.Context, session.Session, time.Duration) error {
	return errors.New("store down")
}

func (brokenStore) Destroy(context.Context, string) error {
	return errors.New("store down")
}

func verifyContext(t *testing.T, f *fixture, sess session.Session) context.Context {
	t.Helper()

	require.NoError(t, f.sessions.Set(context.Background(), sess, 5*time.Minute))
	return session.SetCurrent(context.Background(), &sess)
}

func TestVerify(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")
	require.NoError(t, f.otpCache.SaveOTP(context.Background(), "user@example.com", "123456", time.Minute))

	ctx := verifyContext(t, f, session.Session{ID: "sid-v", UserID: 7})

	out, err := f.uc.Verify(ctx, VerifyInput{Code: "123456"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	// code is single use
	_, err = f.otpCache.GetOTP(context.Background(), "user@example.com")
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	// session is marked verified
	sess, err := f.sessions.Get(context.Background(), "sid-v")
	require.NoError(t, err)
	assert.True(t, sess.OTPVerified)
}

func TestVerifyWrongCode(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")
	require.NoError(t, f.otpCache.SaveOTP(context.Background(), "user@example.com", "123456", time.Minute))

	ctx := verifyContext(t, f, session.Session{ID: "sid-w", UserID: 7})

	_, err := f.uc.Verify(ctx, VerifyInput{Code: "654321"})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())

	// a wrong guess does not consume the live code
	code, err := f.otpCache.GetOTP(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestVerifyExpiredCode(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")

	ctx := verifyContext(t, f, session.Session{ID: "sid-e", UserID: 7})

	_, err := f.uc.Verify(ctx, VerifyInput{Code: "123456"})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestVerifyReplayRejected(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")
	require.NoError(t, f.otpCache.SaveOTP(context.Background(), "user@example.com", "123456", time.Minute))

	ctx := verifyContext(t, f, session.Session{ID: "sid-r", UserID: 7})

	_, err := f.uc.Verify(ctx, VerifyInput{Code: "123456"})
	require.NoError(t, err)

	_, err = f.uc.Verify(ctx, VerifyInput{Code: "123456"})
	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestVerifySessionExpiredMidFlight(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")
	require.NoError(t, f.otpCache.SaveOTP(context.Background(), "user@example.com", "123456", time.Minute))

	// the cookie resolved earlier but the record is gone from the store
	ctx := session.SetCurrent(context.Background(), &session.Session{ID: "sid-gone", UserID: 7})

	_, err := f.uc.Verify(ctx, VerifyInput{Code: "123456"})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())

	// the session must not be recreated as a never-expiring record
	_, err = f.sessions.Get(context.Background(), "sid-gone")
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	// the code survives for a retry after a fresh login
	code, err := f.otpCache.GetOTP(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestVerifySessionSaveFailureKeepsCode(t *testing.T) {
	f := newFixture(t)
	f.seedUser(t, 7, "user@example.com", "user7", "supersecret")
	require.NoError(t, f.otpCache.SaveOTP(context.Background(), "user@example.com", "123456", time.Minute))

	f.uc.sessions = brokenStore{}
	ctx := session.SetCurrent(context.Background(), &session.Session{ID: "sid-b", UserID: 7})

	_, err := f.uc.Verify(ctx, VerifyInput{Code: "123456"})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeInternal, gerr.Code())

	// a transient store failure must not burn the single-use code
	code, err := f.otpCache.GetOTP(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestVerifyWithoutSession(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Verify(context.Background(), VerifyInput{Code: "123456"})

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	assert.Equal(t, goerror.CodeUnauthorized, gerr.Code())
}

func TestLogout(t *testing.T) {
	f := newFixture(t)

	ctx := verifyContext(t, f, session.Session{ID: "sid-l", UserID: 7})

	require.NoError(t, f.uc.Logout(ctx))

	_, err := f.sessions.Get(context.Background(), "sid-l")
	assert.ErrorIs(t, err, goerror.ErrNotFound)

	// second logout is harmless
	require.NoError(t, f.uc.Logout(ctx))
}

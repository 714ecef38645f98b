package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shandysiswandi/gotix/internal/pkg/config"
	"github.com/shandysiswandi/gotix/internal/pkg/goerror"
	"github.com/shandysiswandi/gotix/internal/pkg/instrument"
	"github.com/shandysiswandi/gotix/internal/pkg/session"
	"github.com/shandysiswandi/gotix/internal/pkg/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*Router, session.Store) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := session.NewRedisStore(client)

	cfg, err := config.NewViperFromBytes("yaml", []byte("session:\n  cookie_name: gotix_session\n"))
	require.NoError(t, err)

	ro := NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		Sessions:   store,
		Instrument: instrument.NewNoop(),
	})

	ro.GET("/health", func(_ *Request) (any, error) {
		return map[string]string{"status": "ok"}, nil
	})
	ro.POST("/api/v1/auth/verify", func(_ *Request) (any, error) {
		return map[string]string{"message": "verified"}, nil
	})
	ro.GET("/api/v1/tickets", func(r *Request) (any, error) {
		sess := session.GetCurrent(r.Context())
		require.NotNil(t, sess)
		return map[string]int64{"user_id": sess.UserID}, nil
	})

	return ro, store
}

func TestRouterPublicEndpoint(t *testing.T) {
	ro, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProtectedWithoutCookie(t *testing.T) {
	ro, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/tickets", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, rec.Body.String())
}

func TestRouterProtectedWithUnknownSession(t *testing.T) {
	ro, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets", nil)
	req.AddCookie(&http.Cookie{Name: "gotix_session", Value: "ghost"})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouterProtectedWithUnverifiedSession(t *testing.T) {
	ro, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.Session{ID: "sid-1", UserID: 7}, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets", nil)
	req.AddCookie(&http.Cookie{Name: "gotix_session", Value: "sid-1"})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"OTP verification required"}`, rec.Body.String())
}

func TestRouterSessionOnlyEndpointAllowsUnverified(t *testing.T) {
	ro, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.Session{ID: "sid-2", UserID: 7}, time.Minute))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/verify", nil)
	req.AddCookie(&http.Cookie{Name: "gotix_session", Value: "sid-2"})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterProtectedWithVerifiedSession(t *testing.T) {
	ro, store := newTestRouter(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, session.Session{ID: "sid-3", UserID: 42, OTPVerified: true}, time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tickets", nil)
	req.AddCookie(&http.Cookie{Name: "gotix_session", Value: "sid-3"})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_id":42`)
}

func TestRouterErrorCodec(t *testing.T) {
	ro, _ := newTestRouter(t)

	ro.POST("/api/v1/auth/register", func(_ *Request) (any, error) {
		return nil, goerror.NewBusiness("email already taken", goerror.CodeConflict)
	})

	rec := httptest.NewRecorder()
	ro.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", nil))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"email already taken"}`, rec.Body.String())
}

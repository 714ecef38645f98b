package inbound

import (
	"net/http"

	"github.com/shandysiswandi/gotix/internal/identity/usecase"
	"github.com/shandysiswandi/gotix/internal/pkg/router"
)

type cookieSettings struct {
	name   string
	secure bool
}

// HTTPEndpoint exposes HTTP handlers for the authentication workflow.
type HTTPEndpoint struct {
	uc     uc
	cookie cookieSettings
}

// Register creates a new account.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return RegisterResponse{
		UserID:   resp.UserID,
		Email:    resp.Email,
		Username: resp.Username,
	}, nil
}

// Login checks credentials, sets the session cookie, and issues an OTP.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	r.SetCookie(&http.Cookie{
		Name:     h.cookie.name,
		Value:    resp.SessionID,
		Path:     "/",
		MaxAge:   int(resp.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return LoginResponse{
		OTP:       resp.OTP,
		ExpiresIn: int64(resp.OTPTTL.Seconds()),
	}, nil
}

// Verify completes the OTP challenge for the current session.
func (h *HTTPEndpoint) Verify(r *router.Request) (any, error) {
	var req VerifyRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Verify(r.Context(), usecase.VerifyInput{Code: req.Code})
	if err != nil {
		return nil, err
	}

	return VerifyResponse{Token: resp.Token}, nil
}

// Logout destroys the current session and expires the cookie.
func (h *HTTPEndpoint) Logout(r *router.Request) (any, error) {
	if err := h.uc.Logout(r.Context()); err != nil {
		return nil, err
	}

	r.SetCookie(&http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil, nil
}

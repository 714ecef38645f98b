package session

import (
	"context"
	"time"
)

// KeepTTL preserves the remaining TTL when passed to Store.Set.
const KeepTTL time.Duration = -1

// Session is the state bound to one authenticated browser session.
type Session struct {
	// ID is the opaque identifier carried by the cookie.
	ID string `json:"-"`
	// UserID references the authenticated account.
	UserID int64 `json:"user_id"`
	// OTPVerified reports whether the second factor has been confirmed.
	OTPVerified bool `json:"otp_verified"`
}

// Store persists session records with per-key expiration.
type Store interface {
	// Get resolves a session by ID. Missing or expired sessions return
	// goerror.ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Set writes the session with the given TTL. Pass KeepTTL to preserve
	// the remaining lifetime of an existing record; updating a record that
	// no longer exists returns goerror.ErrNotFound rather than recreating
	// it without expiry.
	Set(ctx context.Context, sess Session, ttl time.Duration) error
	// Destroy removes the session. Destroying an absent session is not an error.
	Destroy(ctx context.Context, id string) error
}

// Package session implements cookie-backed session records on an expiring
// key-value store.
//
// A session is created at login with otp_verified=false and flipped to true
// once the one-time passcode is confirmed. Expiration is handled entirely by
// the store's TTL; there are no background sweepers.
package session

// Package jwt is helpers for working with JSON Web Tokens (JWT).
//
// It includes a typed Claims wrapper, a symmetric HS512 implementation for
// generating and verifying tokens, and context helpers for storing and
// retrieving authenticated claims.
package jwt

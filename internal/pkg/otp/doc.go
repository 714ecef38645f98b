// Package otp generates fixed-length numeric one-time passcodes.
//
// Codes are derived with the RFC 4226 HOTP algorithm over a random secret and
// counter, so every code is uniformly distributed over the digit space. The
// caller is responsible for storing the code with a TTL and comparing it on
// verification; this package has no state.
package otp

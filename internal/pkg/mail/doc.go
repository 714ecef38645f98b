// Package mail abstracts outbound email delivery behind a small interface
// with an SMTP implementation.
package mail

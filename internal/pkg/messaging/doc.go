// Package messaging provides a broker-agnostic publish/consume abstraction
// with a NATS implementation.
package messaging

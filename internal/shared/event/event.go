// Package event defines the message contracts exchanged between modules
// over the message broker.
package event

// OTPIssuedDestination is the subject used when a login issues a new OTP.
const OTPIssuedDestination = "gotix.identity.otp.issued"

// OTPIssuedConsumerNotification is the consumer name for the notification
// module's OTP email delivery.
const OTPIssuedConsumerNotification = "notification-otp-issued"

// OTPIssuedMessage is published after a successful password check so the
// notification module can deliver the code out-of-band.
type OTPIssuedMessage struct {
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Code      string `json:"code"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}

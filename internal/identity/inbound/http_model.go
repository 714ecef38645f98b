package inbound

import "net/http"

type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	UserID   int64  `json:"user_id,string"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (RegisterResponse) Message() string {
	return "Registration successful"
}

func (RegisterResponse) StatusCode() int {
	return http.StatusCreated
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse echoes the OTP in the body. There is no real delivery channel
// in development setups, so the code rides along next to the email that the
// notification module sends.
type LoginResponse struct {
	OTP       string `json:"otp"`
	ExpiresIn int64  `json:"expires_in_seconds"`
}

func (LoginResponse) Message() string {
	return "OTP has been sent to your email"
}

type VerifyRequest struct {
	Code string `json:"code"`
}

type VerifyResponse struct {
	Token string `json:"token"`
}

func (VerifyResponse) Message() string {
	return "OTP verified"
}

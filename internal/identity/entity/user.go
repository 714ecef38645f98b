package entity

import "time"

// User is an account row as stored in Postgres.
type User struct {
	ID        int64
	Email     string
	Username  string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser carries the fields needed to insert an account.
type NewUser struct {
	ID       int64
	Email    string
	Username string
	Password string
}

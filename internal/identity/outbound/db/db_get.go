package db

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/identity/entity"
)

const queryGetUserByEmail = `
SELECT id, email, username, password, created_at, updated_at
FROM users
WHERE email = $1
`

// GetUserByEmail fetches an account by email.
func (s *DB) GetUserByEmail(ctx context.Context, email string) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	var u entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByEmail, email).
		Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &u, nil
}

const queryGetUserByID = `
SELECT id, email, username, password, created_at, updated_at
FROM users
WHERE id = $1
`

// GetUserByID fetches an account by primary key.
func (s *DB) GetUserByID(ctx context.Context, id int64) (user *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	var u entity.User
	err = s.conn.QueryRow(ctx, queryGetUserByID, id).
		Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &u, nil
}

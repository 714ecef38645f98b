package db

import (
	"context"

	"github.com/shandysiswandi/gotix/internal/identity/entity"
)

const queryCreateUser = `
INSERT INTO users (id, email, username, password)
VALUES ($1, $2, $3, $4)
`

// CreateUser inserts a new account row.
func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, queryCreateUser, in.ID, in.Email, in.Username, in.Password)
	err = s.mapError(err)
	return err
}

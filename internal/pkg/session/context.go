package session

import "context"

type contextKey struct{}

// SetCurrent stores the resolved session on the context.
func SetCurrent(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, sess)
}

// GetCurrent returns the session stored on the context, or nil when absent.
func GetCurrent(ctx context.Context) *Session {
	if sess, ok := ctx.Value(contextKey{}).(*Session); ok {
		return sess
	}
	return nil
}

package log

import "context"

// SessionIDKey is the context key under which the chat session id travels.
type SessionIDKey struct{}

// WithSessionID returns a context whose log lines carry session_id.
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, SessionIDKey{}, sessionID)
}

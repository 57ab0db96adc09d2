package session

import "context"

type ctxKey string

const sessionKey ctxKey = "snapfest.session"

// WithSession stores the resolved session in context.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromCtx fetches the session from context.
func FromCtx(ctx context.Context) (Session, bool) {
	v := ctx.Value(sessionKey)
	if v == nil {
		return Session{}, false
	}
	s, ok := v.(Session)
	return s, ok
}

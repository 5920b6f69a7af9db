package auth

import (
	"context"
)

type contextKey string

const (
	// ContextKeySubject is the context key for the authenticated token subject
	ContextKeySubject contextKey = "subject"
)

// WithSubject adds the token subject to the context
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, ContextKeySubject, subject)
}

// SubjectFromContext retrieves the token subject from the context
func SubjectFromContext(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(ContextKeySubject).(string)
	return sub, ok
}

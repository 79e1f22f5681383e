// Package session carries the caller's cart owner through the request context.
package session

import (
	"context"
	"regexp"
)

type ctxKey struct{}

var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Valid reports whether id is an acceptable session identifier.
func Valid(id string) bool {
	return validID.MatchString(id)
}

// WithID returns a context carrying the session id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// ID returns the session id, or "" for anonymous callers.
func ID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

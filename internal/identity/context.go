package identity

import (
	"context"
	"strings"
)

// SubjectContextKey is the request context key for the authenticated subject.
type SubjectContextKey struct{}

// RoleContextKey is the request context key for the authenticated role.
type RoleContextKey struct{}

// WithSubject stores the subject in the context.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectContextKey{}, subject)
}

// SubjectFromContext returns the subject from context, if set.
func SubjectFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	subject, ok := ctx.Value(SubjectContextKey{}).(string)
	if !ok || strings.TrimSpace(subject) == "" {
		return "", false
	}
	return subject, true
}

// WithRole stores the role in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, RoleContextKey{}, role)
}

// RoleFromContext returns the role from context, if set.
func RoleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	role, ok := ctx.Value(RoleContextKey{}).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

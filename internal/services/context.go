package services

import "context"

type contextKey string

const (
	runIDKey   contextKey = "run_id"
	mediaIDKey contextKey = "media_id"
)

// WithRunID annotates context with the sync run correlation identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the sync run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(runIDKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

// WithMediaID annotates context with the identity key of the record being processed.
func WithMediaID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, mediaIDKey, id)
}

// MediaIDFromContext extracts the identity key of the record being processed.
func MediaIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(mediaIDKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}

package utils

import (
	"context"
	"strings"
)

type contextKey string

const (
	ActorKey contextKey = "actor"
)

// SystemActor names mutations made without a known caller.
const SystemActor = "System"

// SetActorContext stores the caller's display name for audit entries
func SetActorContext(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey, actor)
}

// GetActorFromContext returns the caller's display name if one was set
func GetActorFromContext(ctx context.Context) (string, bool) {
	actorVal := ctx.Value(ActorKey)
	if actorVal == nil {
		return "", false
	}

	actor, ok := actorVal.(string)
	if !ok || strings.TrimSpace(actor) == "" {
		return "", false
	}

	return actor, true
}

// ActorOrSystem falls back to SystemActor when no caller is known
func ActorOrSystem(ctx context.Context) string {
	if actor, ok := GetActorFromContext(ctx); ok {
		return actor
	}
	return SystemActor
}

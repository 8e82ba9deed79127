package utils

import "context"

const (
	RoleEmployee = "employee"
	RoleUser     = "user"
)

// DefaultActorID stamps audit fields when no identity is attached, e.g. seed jobs.
const DefaultActorID int64 = 1

// Identity is the acting principal for one request.
type Identity struct {
	ID        int64
	Role      string
	SessionID string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.ID != 0
}

// ActorID returns the acting id or DefaultActorID.
func ActorID(ctx context.Context) int64 {
	if id, ok := IdentityFrom(ctx); ok {
		return id.ID
	}
	return DefaultActorID
}

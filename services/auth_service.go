package services

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/Lulu77Donc/reggie-take-out/session"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// TokenIssuer opens and closes login sessions and signs their tokens.
type TokenIssuer struct {
	Sessions *session.Store
	Secret   string
	TTL      time.Duration
}

func NewTokenIssuer(store *session.Store, secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{Sessions: store, Secret: secret, TTL: ttl}
}

func (t *TokenIssuer) Issue(ctx context.Context, id int64, role string) (string, error) {
	ident, err := t.Sessions.Create(ctx, id, role)
	if err != nil {
		return "", err
	}
	token, err := utils.GenerateToken(ident, t.Secret, t.TTL)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return token, nil
}

// Revoke ends the session attached to ctx; it is a no-op without one.
func (t *TokenIssuer) Revoke(ctx context.Context) error {
	ident, ok := utils.IdentityFrom(ctx)
	if !ok || ident.SessionID == "" {
		return nil
	}
	return t.Sessions.Delete(ctx, ident.SessionID)
}

// Authenticate resolves a bearer token to a live session.
func (t *TokenIssuer) Authenticate(ctx context.Context, token string) (utils.Identity, error) {
	claimed, err := utils.ParseToken(token, t.Secret)
	if err != nil {
		return utils.Identity{}, err
	}
	ident, err := t.Sessions.Get(ctx, claimed.SessionID)
	if err != nil {
		return utils.Identity{}, err
	}
	if ident.ID != claimed.ID || ident.Role != claimed.Role {
		return utils.Identity{}, session.ErrNotFound
	}
	return ident, nil
}

package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the session id plus the principal it was issued to.
type Claims struct {
	SessionID   string `json:"sid"`
	PrincipalID int64  `json:"pid,string"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs an HS256 token for one session.
func GenerateToken(id Identity, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID:   id.SessionID,
		PrincipalID: id.ID,
		Role:        id.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken verifies the signature and expiry and returns the identity.
func ParseToken(tokenStr, secret string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid || claims.PrincipalID == 0 || claims.SessionID == "" {
		return Identity{}, fmt.Errorf("invalid token")
	}
	return Identity{ID: claims.PrincipalID, Role: claims.Role, SessionID: claims.SessionID}, nil
}

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	assert.Equal(t, "e10adc3949ba59abbe56e057f20f883e", HashPassword("123456"))
}

func TestCheckPassword(t *testing.T) {
	assert.True(t, CheckPassword(HashPassword("secret"), "secret"))
	assert.False(t, CheckPassword(HashPassword("secret"), "Secret"))

	b, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	assert.True(t, CheckPassword(string(b), "secret"))
	assert.False(t, CheckPassword(string(b), "other"))
}

func TestToken_RoundTrip(t *testing.T) {
	in := Identity{ID: 42, Role: RoleEmployee, SessionID: "s-1"}
	tok, err := GenerateToken(in, "k", time.Minute)
	require.NoError(t, err)

	out, err := ParseToken(tok, "k")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = ParseToken(tok, "other-key")
	assert.Error(t, err)
}

func TestToken_Expired(t *testing.T) {
	tok, err := GenerateToken(Identity{ID: 1, SessionID: "s"}, "k", -time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(tok, "k")
	assert.Error(t, err)
}

func TestActorID(t *testing.T) {
	assert.Equal(t, DefaultActorID, ActorID(context.Background()))
	ctx := WithIdentity(context.Background(), Identity{ID: 7})
	assert.Equal(t, int64(7), ActorID(ctx))
}

func TestSnowflake_Unique(t *testing.T) {
	g, err := NewSnowflake(1)
	require.NoError(t, err)
	seen := map[int64]bool{}
	for i := 0; i < 1000; i++ {
		id := g.NextID()
		assert.False(t, seen[id])
		seen[id] = true
	}
	_, err = NewSnowflake(5000)
	assert.Error(t, err)
}

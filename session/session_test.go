package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lulu77Donc/reggie-take-out/utils"
)

func newStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewStore(rdb, time.Hour), mr
}

func TestStore_CreateGetDelete(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	ident, err := s.Create(ctx, 9, utils.RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, ident.SessionID)

	got, err := s.Get(ctx, ident.SessionID)
	require.NoError(t, err)
	assert.Equal(t, ident, got)

	require.NoError(t, s.Delete(ctx, ident.SessionID))
	_, err = s.Get(ctx, ident.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_Expires(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	ident, err := s.Create(ctx, 1, utils.RoleUser)
	require.NoError(t, err)
	mr.FastForward(2 * time.Hour)

	_, err = s.Get(ctx, ident.SessionID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_CreateSetsTTLAtomically(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	ident, err := s.Create(ctx, 3, utils.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, mr.TTL(sessionPrefix+ident.SessionID))

	mr.SetError("READONLY replica")
	_, err = s.Create(ctx, 4, utils.RoleEmployee)
	require.Error(t, err)
	mr.SetError("")
	assert.Len(t, mr.Keys(), 1, "a failed create leaves no session without TTL")
}

func TestStore_LoginCode(t *testing.T) {
	s, mr := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveCode(ctx, "13800000000", "1234", 5*time.Minute))

	ok, err := s.ConsumeCode(ctx, "13800000000", "9999")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.ConsumeCode(ctx, "13800000000", "1234")
	require.NoError(t, err)
	assert.True(t, ok)

	// single use
	ok, err = s.ConsumeCode(ctx, "13800000000", "1234")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SaveCode(ctx, "139", "1111", 5*time.Minute))
	mr.FastForward(6 * time.Minute)
	ok, err = s.ConsumeCode(ctx, "139", "1111")
	require.NoError(t, err)
	assert.False(t, ok)
}

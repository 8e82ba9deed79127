package services

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/session"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

type seqIDs struct{ n atomic.Int64 }

func (s *seqIDs) NextID() int64 { return 1_000_000 + s.n.Add(1) }

func userCtx(id int64) context.Context {
	return utils.WithIdentity(context.Background(), utils.Identity{ID: id, Role: utils.RoleUser, SessionID: "s"})
}

func employeeCtx(id int64) context.Context {
	return utils.WithIdentity(context.Background(), utils.Identity{ID: id, Role: utils.RoleEmployee, SessionID: "s"})
}

func money(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func newTokens(t *testing.T) *TokenIssuer {
	rdb, _ := newRedis(t)
	return NewTokenIssuer(session.NewStore(rdb, time.Hour), "test-secret", time.Hour)
}

func mustCreate(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, r := range rows {
		require.NoError(t, db.Create(r).Error)
	}
}

func seedCategory(t *testing.T, db *gorm.DB, typ int, name string) *entity.Category {
	c := &entity.Category{Type: typ, Name: name}
	mustCreate(t, db, c)
	return c
}

func seedDish(t *testing.T, db *gorm.DB, categoryID int64, name, price string, status int) *entity.Dish {
	d := &entity.Dish{Name: name, CategoryID: categoryID, Price: money(price), Status: status}
	mustCreate(t, db, d)
	return d
}

func seedSetmeal(t *testing.T, db *gorm.DB, categoryID int64, name, price string, status int) *entity.Setmeal {
	s := &entity.Setmeal{Name: name, CategoryID: categoryID, Price: money(price), Status: status}
	mustCreate(t, db, s)
	return s
}

func count[T any](t *testing.T, db *gorm.DB, query string, args ...any) int64 {
	t.Helper()
	var n int64
	q := db.Model(new(T))
	if query != "" {
		q = q.Where(query, args...)
	}
	require.NoError(t, q.Count(&n).Error)
	return n
}

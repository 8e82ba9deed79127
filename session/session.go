package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// ErrNotFound is returned when a session has expired or was removed.
var ErrNotFound = errors.New("session not found")

const (
	sessionPrefix = "session:"
	codePrefix    = "login_code:"
)

// Store keeps login sessions and customer login codes in Redis.
type Store struct {
	rdb redis.UniversalClient
	ttl time.Duration
}

func NewStore(rdb redis.UniversalClient, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create registers a new session for the principal and returns its identity.
func (s *Store) Create(ctx context.Context, id int64, role string) (utils.Identity, error) {
	ident := utils.Identity{ID: id, Role: role, SessionID: uuid.NewString()}
	key := sessionPrefix + ident.SessionID
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, map[string]any{
			"id":   strconv.FormatInt(id, 10),
			"role": role,
		})
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return utils.Identity{}, errors.Wrap(err, "save session")
	}
	return ident, nil
}

// Get loads a session by id.
func (s *Store) Get(ctx context.Context, sessionID string) (utils.Identity, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		return utils.Identity{}, errors.Wrap(err, "load session")
	}
	if len(vals) == 0 {
		return utils.Identity{}, ErrNotFound
	}
	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return utils.Identity{}, fmt.Errorf("corrupt session %s: %w", sessionID, err)
	}
	return utils.Identity{ID: id, Role: vals["role"], SessionID: sessionID}, nil
}

func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return errors.Wrap(s.rdb.Del(ctx, sessionPrefix+sessionID).Err(), "delete session")
}

// SaveCode stores a one-time login code for a phone.
func (s *Store) SaveCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	return errors.Wrap(s.rdb.Set(ctx, codePrefix+phone, code, ttl).Err(), "save login code")
}

// ConsumeCode checks the code and removes it on a match.
func (s *Store) ConsumeCode(ctx context.Context, phone, code string) (bool, error) {
	stored, err := s.rdb.Get(ctx, codePrefix+phone).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "load login code")
	}
	if stored != code {
		return false, nil
	}
	if err := s.rdb.Del(ctx, codePrefix+phone).Err(); err != nil {
		return false, errors.Wrap(err, "delete login code")
	}
	return true, nil
}

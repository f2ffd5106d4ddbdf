package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrNoSession = errors.New("no active session")

// Store keeps sign-in sessions in Redis as session:<id> -> user id. A token is
// only honoured while its session key exists, so signing out takes effect
// before the token expires.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if client == nil {
		panic("session.NewStore: redis client is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &Store{redis: client, ttl: ttl}
}

// Create opens a session for userID and returns its id.
func (s *Store) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	sid := uuid.NewString()
	if err := s.redis.Set(ctx, sessionKey(sid), userID.String(), s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return sid, nil
}

// Current returns the user signed in under sid.
func (s *Store) Current(ctx context.Context, sid string) (uuid.UUID, error) {
	if sid == "" {
		return uuid.Nil, ErrNoSession
	}
	raw, err := s.redis.Get(ctx, sessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return uuid.Nil, ErrNoSession
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("read session: %w", err)
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		_ = s.redis.Del(ctx, sessionKey(sid)).Err()
		return uuid.Nil, ErrNoSession
	}
	return userID, nil
}

// SignOut ends the session. Ending one that is already gone is not an error.
func (s *Store) SignOut(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	if err := s.redis.Del(ctx, sessionKey(sid)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func sessionKey(sid string) string {
	return "session:" + sid
}

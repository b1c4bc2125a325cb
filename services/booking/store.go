package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"homeserve/models"

	"github.com/go-redis/redis/v8"
)

// SessionStore persists booking-session drafts and the per-session
// confirmation lock. Backed by Redis in production; tests supply an
// in-memory implementation.
type SessionStore interface {
	Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	Delete(ctx context.Context, sessionID string) error
	// AcquireConfirmLock returns true when this caller won the lock.
	AcquireConfirmLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error)
	ReleaseConfirmLock(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps sessions as JSON blobs keyed by session ID.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

const confirmLockPrefix = "confirm:"

func (s *RedisSessionStore) Save(ctx context.Context, session *models.BookingSession, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Client.Set(ctx, session.SessionID, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Client.Get(ctx, sessionID).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) AcquireConfirmLock(ctx context.Context, sessionID string, ttl time.Duration) (bool, error) {
	ok, err := s.Client.SetNX(ctx, confirmLockPrefix+sessionID, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire confirm lock: %w", err)
	}
	return ok, nil
}

func (s *RedisSessionStore) ReleaseConfirmLock(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, confirmLockPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to release confirm lock: %w", err)
	}
	return nil
}

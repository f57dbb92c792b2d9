package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CookieName is the cookie carrying the session ID.
const CookieName = "session_id"

// ErrNotFound is returned when a session ID is unknown or expired.
var ErrNotFound = errors.New("session not found")

// Data is the payload stored per login session.
type Data struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// Store keeps login sessions keyed by opaque session IDs.
type Store interface {
	New(data *Data, ttl time.Duration) (string, error)
	Get(sessionID string) (*Data, error)
	Delete(sessionID string) error
}

type redisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to redis and returns a session store backed by it.
func NewRedisStore(redisURL string) (Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{rdb: rdb}, nil
}

func (s *redisStore) New(data *Data, ttl time.Duration) (string, error) {
	sessionID, err := newSessionID()
	if err != nil {
		return "", err
	}

	data.CreatedAt = time.Now()
	jsonData, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session data: %w", err)
	}

	ctx := context.Background()
	if err := s.rdb.Set(ctx, "session:"+sessionID, jsonData, ttl).Err(); err != nil {
		return "", err
	}
	return sessionID, nil
}

func (s *redisStore) Get(sessionID string) (*Data, error) {
	ctx := context.Background()
	val, err := s.rdb.Get(ctx, "session:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var data Data
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session data: %w", err)
	}
	return &data, nil
}

func (s *redisStore) Delete(sessionID string) error {
	ctx := context.Background()
	return s.rdb.Del(ctx, "session:"+sessionID).Err()
}

func newSessionID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/farhanzaidann/paw-12/internal/domain/entity"
	"github.com/farhanzaidann/paw-12/internal/domain/repository"
	"github.com/farhanzaidann/paw-12/pkg/config"
)

const sessionKeyPrefix = "session:"

var _ repository.SessionStore = (*SessionStore)(nil)

// SessionStore penyimpanan sesi di Redis. TTL key mengikuti ExpiresAt sesi,
// jadi Redis yang menggugurkan sesi kedaluwarsa.
type SessionStore struct {
	client *redis.Client
}

// sessionPayload bentuk JSON sesi di Redis.
type sessionPayload struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// New membuat store dengan koneksi Redis baru dan memastikan server terjangkau.
func New(ctx context.Context, cfg config.RedisConfig) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &SessionStore{client: client}, nil
}

// Put menyimpan sesi dengan TTL sampai ExpiresAt.
func (s *SessionStore) Put(ctx context.Context, session *entity.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("sesi sudah kedaluwarsa sebelum disimpan")
	}
	payload, err := json.Marshal(sessionPayload{
		UserID:    session.UserID,
		Username:  session.Username,
		Role:      string(session.Role),
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	})
	if err != nil {
		return fmt.Errorf("marshal sesi: %w", err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+session.Token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("set sesi: %w", err)
	}
	return nil
}

// Get mengambil sesi berdasarkan token. (nil, nil) bila key tidak ada (termasuk yang
// sudah digugurkan TTL Redis).
func (s *SessionStore) Get(ctx context.Context, token string) (*entity.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get sesi: %w", err)
	}
	var p sessionPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal sesi: %w", err)
	}
	return &entity.Session{
		Token:     token,
		UserID:    p.UserID,
		Username:  p.Username,
		Role:      entity.ParseRole(p.Role),
		CreatedAt: p.CreatedAt,
		ExpiresAt: p.ExpiresAt,
	}, nil
}

// Delete menghapus sesi. Idempoten: DEL key yang tidak ada bukan error.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("delete sesi: %w", err)
	}
	return nil
}

// Close menutup koneksi Redis.
func (s *SessionStore) Close() error {
	return s.client.Close()
}

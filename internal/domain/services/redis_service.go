package services

import (
	"context"
	"encoding/json"
	"time"

	"boardinghouse-http-service/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

const (
	revokedTokenKeyPrefix = "revoked_token:"
	dashboardCacheKey     = "dashboard:summary"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	RevokeToken(tokenID string, ttl time.Duration) error
	IsTokenRevoked(tokenID string) (bool, error)
	CacheDashboard(data interface{}, expiration time.Duration) error
	GetDashboard(dest interface{}) error
	Ping() error
}

// RedisService handles Redis operations: the logout denylist and the
// dashboard summary cache
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetRedisAddr(),
		Password: "", // No password set
		DB:       cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// RevokeToken puts a token ID on the denylist until its natural expiry
func (s *RedisService) RevokeToken(tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to deny
		return nil
	}
	return s.Client.Set(s.Ctx, revokedTokenKeyPrefix+tokenID, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token ID is on the denylist
func (s *RedisService) IsTokenRevoked(tokenID string) (bool, error) {
	n, err := s.Client.Exists(s.Ctx, revokedTokenKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CacheDashboard caches the dashboard summary
func (s *RedisService) CacheDashboard(data interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, dashboardCacheKey, jsonValue, expiration).Err()
}

// GetDashboard reads the cached dashboard summary
func (s *RedisService) GetDashboard(dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, dashboardCacheKey).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// Ping checks the Redis connection
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}

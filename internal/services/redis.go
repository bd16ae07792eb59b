package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"guess-the-number/internal/config"
	"guess-the-number/internal/models"
)

// RedisService stores player sessions as JSON values with a TTL, plus an
// index set used for listing.
type RedisService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = TTLSession
	}

	return &RedisService{
		client: client,
		ttl:    ttl,
	}, nil
}

func (s *RedisService) Save(ctx context.Context, session *models.PlayerSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, fmt.Sprintf(KeySession, session.ID), data, s.ttl)
	pipe.SAdd(ctx, KeySessionIndex, session.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *RedisService) Get(ctx context.Context, id string) (*models.PlayerSession, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf(KeySession, id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.PlayerSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (s *RedisService) Delete(ctx context.Context, id string) (bool, error) {
	pipe := s.client.TxPipeline()
	del := pipe.Del(ctx, fmt.Sprintf(KeySession, id))
	pipe.SRem(ctx, KeySessionIndex, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return del.Val() > 0, nil
}

func (s *RedisService) List(ctx context.Context) ([]*models.PlayerSession, error) {
	ids, err := s.client.SMembers(ctx, KeySessionIndex).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	sessions, _, err := s.bulkGet(ctx, ids)
	return sessions, err
}

// CleanupStale removes sessions idle for longer than maxAge and prunes index
// entries whose keys already expired.
func (s *RedisService) CleanupStale(ctx context.Context, maxAge time.Duration) (int, error) {
	ids, err := s.client.SMembers(ctx, KeySessionIndex).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions, expired, err := s.bulkGet(ctx, ids)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-maxAge)
	stale := expired
	for _, session := range sessions {
		if session.UpdatedAt.Before(cutoff) {
			stale = append(stale, session.ID)
		}
	}
	if len(stale) == 0 {
		return 0, nil
	}

	pipe := s.client.TxPipeline()
	members := make([]interface{}, 0, len(stale))
	for _, id := range stale {
		pipe.Del(ctx, fmt.Sprintf(KeySession, id))
		members = append(members, id)
	}
	pipe.SRem(ctx, KeySessionIndex, members...)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to remove stale sessions: %w", err)
	}
	return len(stale), nil
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

func (s *RedisService) bulkGet(ctx context.Context, ids []string) ([]*models.PlayerSession, []string, error) {
	if len(ids) == 0 {
		return []*models.PlayerSession{}, nil, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, fmt.Sprintf(KeySession, id))
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, nil, fmt.Errorf("failed to bulk get sessions: %w", err)
	}

	sessions := make([]*models.PlayerSession, 0, len(ids))
	var expired []string
	for i, cmd := range cmds {
		data, err := cmd.Result()
		if errors.Is(err, redis.Nil) {
			expired = append(expired, ids[i])
			continue
		}
		if err != nil {
			continue
		}

		var session models.PlayerSession
		if err := json.Unmarshal([]byte(data), &session); err != nil {
			continue
		}
		sessions = append(sessions, &session)
	}
	return sessions, expired, nil
}

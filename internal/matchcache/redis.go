package matchcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/talentdesk/matcher/internal/matching"
)

// Redis is a shared store so several back-office processes can reuse each
// other's computed results. Values are JSON-encoded MatchResults; per-id
// index sets make invalidation by candidate or vacancy a set scan instead
// of a keyspace scan.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to the given redis URL and verifies the connection.
// A zero ttl keeps results until invalidated.
func NewRedis(ctx context.Context, redisURL string, ttl time.Duration) (*Redis, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis.ParseURL: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return &Redis{client: client, ttl: ttl}, nil
}

func resultKey(candidateID, vacancyID string) string {
	return "match:" + vacancyID + ":" + candidateID
}

func candidateIndexKey(candidateID string) string {
	return "match-idx:candidate:" + candidateID
}

func vacancyIndexKey(vacancyID string) string {
	return "match-idx:vacancy:" + vacancyID
}

func (r *Redis) Get(ctx context.Context, candidateID, vacancyID string) (*matching.MatchResult, error) {
	data, err := r.client.Get(ctx, resultKey(candidateID, vacancyID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var result matching.MatchResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decoding cached match result: %w", err)
	}
	return &result, nil
}

func (r *Redis) Put(ctx context.Context, result *matching.MatchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encoding match result: %w", err)
	}

	key := resultKey(result.CandidateID, result.VacancyID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.SAdd(ctx, candidateIndexKey(result.CandidateID), key)
	pipe.SAdd(ctx, vacancyIndexKey(result.VacancyID), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

func (r *Redis) InvalidateCandidate(ctx context.Context, candidateID string) error {
	return r.invalidateIndex(ctx, candidateIndexKey(candidateID))
}

func (r *Redis) InvalidateVacancy(ctx context.Context, vacancyID string) error {
	return r.invalidateIndex(ctx, vacancyIndexKey(vacancyID))
}

func (r *Redis) invalidateIndex(ctx context.Context, indexKey string) error {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return fmt.Errorf("redis smembers: %w", err)
	}

	pipe := r.client.TxPipeline()
	if len(keys) > 0 {
		pipe.Del(ctx, keys...)
	}
	pipe.Del(ctx, indexKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis invalidate: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.client.Close()
}

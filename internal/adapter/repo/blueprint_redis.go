package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"vibecraft/internal/domain"
)

// DefaultRedisLibraryKey is the list holding blueprint ids, newest first.
const DefaultRedisLibraryKey = "vibecraft_library"

// BlueprintRepositoryRedis keeps blueprint ids in a Redis list and the JSON
// documents in a hash next to it.
type BlueprintRepositoryRedis struct {
	client  redis.Cmdable
	listKey string
	docsKey string
}

// NewBlueprintRedisRepository creates a Redis-backed library under key.
func NewBlueprintRedisRepository(client redis.Cmdable, key string) *BlueprintRepositoryRedis {
	if key == "" {
		key = DefaultRedisLibraryKey
	}
	return &BlueprintRepositoryRedis{client: client, listKey: key, docsKey: key + ":docs"}
}

func (r *BlueprintRepositoryRedis) Append(ctx context.Context, bp domain.Blueprint) error {
	payload, err := json.Marshal(bp)
	if err != nil {
		return fmt.Errorf("encode blueprint: %w", err)
	}
	added, err := r.client.HSetNX(ctx, r.docsKey, bp.ID, payload).Result()
	if err != nil {
		return fmt.Errorf("redis hsetnx: %w", err)
	}
	if !added {
		return domain.ErrDuplicateBlueprint
	}
	if err := r.client.LPush(ctx, r.listKey, bp.ID).Err(); err != nil {
		_ = r.client.HDel(ctx, r.docsKey, bp.ID).Err()
		return fmt.Errorf("redis lpush: %w", err)
	}
	return nil
}

func (r *BlueprintRepositoryRedis) List(ctx context.Context, limit int) ([]domain.Blueprint, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	ids, err := r.client.LRange(ctx, r.listKey, 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lrange: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}
	docs, err := r.client.HMGet(ctx, r.docsKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hmget: %w", err)
	}
	items := make([]domain.Blueprint, 0, len(docs))
	for i, doc := range docs {
		raw, ok := doc.(string)
		if !ok {
			continue
		}
		var bp domain.Blueprint
		if err := json.Unmarshal([]byte(raw), &bp); err != nil {
			return nil, fmt.Errorf("decode blueprint %s: %w", ids[i], err)
		}
		items = append(items, bp)
	}
	return items, nil
}

func (r *BlueprintRepositoryRedis) Get(ctx context.Context, id string) (*domain.Blueprint, error) {
	raw, err := r.client.HGet(ctx, r.docsKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis hget: %w", err)
	}
	var bp domain.Blueprint
	if err := json.Unmarshal([]byte(raw), &bp); err != nil {
		return nil, fmt.Errorf("decode blueprint %s: %w", id, err)
	}
	return &bp, nil
}

func (r *BlueprintRepositoryRedis) Delete(ctx context.Context, id string) error {
	var removed *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, r.docsKey, id)
		pipe.LRem(ctx, r.listKey, 0, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	if removed.Val() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.BlueprintRepository = (*BlueprintRepositoryRedis)(nil)

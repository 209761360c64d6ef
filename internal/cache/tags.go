package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pageza/foodgram/backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	tagListKey       = "foodgram:tags:all"
	tagGenerationKey = "foodgram:tags:generation"
)

// TagCache keeps the full, name-ordered tag list in Redis. Tags change
// rarely and are read on every recipe listing.
//
// Every invalidation bumps a generation counter. A list read from the
// database is only stored if the generation has not moved since the read
// started, so a reader racing a tag write cannot put the old list back.
type TagCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTagCache creates a cache whose entries expire after ttl
func NewTagCache(client *redis.Client, ttl time.Duration) *TagCache {
	return &TagCache{client: client, ttl: ttl}
}

// GetTags returns the cached list. ok is false on a miss.
func (c *TagCache) GetTags(ctx context.Context) (tags []models.Tag, ok bool, err error) {
	data, err := c.client.Get(ctx, tagListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read tag cache: %w", err)
	}
	if err := json.Unmarshal(data, &tags); err != nil {
		return nil, false, fmt.Errorf("failed to decode tag cache: %w", err)
	}
	return tags, true, nil
}

// Generation returns the current invalidation counter. Read it before
// loading the list that will be passed to SetTags.
func (c *TagCache) Generation(ctx context.Context) (int64, error) {
	gen, err := generation(ctx, c.client)
	if err != nil {
		return 0, fmt.Errorf("failed to read tag cache generation: %w", err)
	}
	return gen, nil
}

// SetTags stores the list if no invalidation happened after gen was read.
// A stale list is silently dropped.
func (c *TagCache) SetTags(ctx context.Context, tags []models.Tag, gen int64) error {
	data, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tag cache: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := generation(ctx, tx)
		if err != nil {
			return err
		}
		if current != gen {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, tagListKey, data, c.ttl)
			return nil
		})
		return err
	}, tagGenerationKey)

	switch {
	case err == nil, errors.Is(err, errStaleGeneration), errors.Is(err, redis.TxFailedErr):
		return nil
	default:
		return fmt.Errorf("failed to write tag cache: %w", err)
	}
}

// Invalidate drops the cached list and bumps the generation
func (c *TagCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, tagGenerationKey)
		pipe.Del(ctx, tagListKey)
		return nil
	})
	return err
}

var errStaleGeneration = errors.New("tag cache generation moved")

type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func generation(ctx context.Context, r getter) (int64, error) {
	gen, err := r.Get(ctx, tagGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Package redis caches rating averages. The cache is a read accelerator:
// every value in it can be recomputed from the ratings table, so failures
// here degrade to slower reads, never to wrong answers.
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/rating"

	"github.com/redis/go-redis/v9"
)

// RatingCache implements ports.RatingCache on a Redis client.
type RatingCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRatingCache creates a rating cache with the given entry TTL.
func NewRatingCache(client *redis.Client, ttl time.Duration) *RatingCache {
	return &RatingCache{client: client, ttl: ttl}
}

func averageKey(subjectID kernel.UUID, role rating.SubjectRole) string {
	return "rating:avg:" + role.String() + ":" + subjectID.String()
}

// GetAverage returns the cached average for the subject. A missing key is a
// miss, not an error.
func (c *RatingCache) GetAverage(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole) (float64, bool, error) {
	val, err := c.client.Get(ctx, averageKey(subjectID, role)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	avg, err := strconv.ParseFloat(val, 64)
	if err != nil {
		// A corrupt entry behaves like a miss so the caller recomputes it.
		return 0, false, nil
	}
	return avg, true, nil
}

// SetAverage stores the average under the configured TTL.
func (c *RatingCache) SetAverage(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole, avg float64) error {
	return c.client.Set(ctx, averageKey(subjectID, role), strconv.FormatFloat(avg, 'f', -1, 64), c.ttl).Err()
}

// Invalidate drops the cached average for the subject.
func (c *RatingCache) Invalidate(ctx context.Context, subjectID kernel.UUID, role rating.SubjectRole) error {
	return c.client.Del(ctx, averageKey(subjectID, role)).Err()
}

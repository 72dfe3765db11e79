package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"atsoptimizer/ats-backend/internal/models"
)

const jobCachePrefix = "job:"

// JobCache is a read-through cache for job responses. Cache failures are
// never surfaced to callers: a miss or a broken Redis connection just falls
// back to the database.
type JobCache interface {
	GetJob(ctx context.Context, id uuid.UUID) *models.JobResponse
	SetJob(ctx context.Context, id uuid.UUID, job *models.JobResponse)
	InvalidateJob(ctx context.Context, id uuid.UUID)
}

type redisJobCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisJobCache(addr, password string, db int, ttl time.Duration) JobCache {
	return &redisJobCache{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

func (c *redisJobCache) GetJob(ctx context.Context, id uuid.UUID) *models.JobResponse {
	data, err := c.client.Get(ctx, jobCachePrefix+id.String()).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Error retrieving cached job %s: %v\n", id, err)
		}
		return nil
	}

	var job models.JobResponse
	if err := json.Unmarshal(data, &job); err != nil {
		log.Printf("Error decoding cached job %s: %v\n", id, err)
		return nil
	}
	return &job
}

func (c *redisJobCache) SetJob(ctx context.Context, id uuid.UUID, job *models.JobResponse) {
	data, err := json.Marshal(job)
	if err != nil {
		log.Printf("Error encoding job %s for cache: %v\n", id, err)
		return
	}

	if err := c.client.Set(ctx, jobCachePrefix+id.String(), data, c.ttl).Err(); err != nil {
		log.Printf("Error caching job %s: %v\n", id, err)
	}
}

func (c *redisJobCache) InvalidateJob(ctx context.Context, id uuid.UUID) {
	if err := c.client.Del(ctx, jobCachePrefix+id.String()).Err(); err != nil {
		log.Printf("Error invalidating cache for job %s: %v\n", id, err)
	}
}

type noopJobCache struct{}

// NewNoopJobCache returns a JobCache that caches nothing, used when no
// Redis address is configured.
func NewNoopJobCache() JobCache {
	return noopJobCache{}
}

func (noopJobCache) GetJob(ctx context.Context, id uuid.UUID) *models.JobResponse { return nil }

func (noopJobCache) SetJob(ctx context.Context, id uuid.UUID, job *models.JobResponse) {}

func (noopJobCache) InvalidateJob(ctx context.Context, id uuid.UUID) {}

package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"tripcarbon/internal/domain"
)

// EstimateStore caches computed trip estimates in Redis so clients can
// re-fetch a quote by id without recomputing it.
type EstimateStore struct {
	client *redis.Client
}

// NewEstimateStore creates a new EstimateStore.
func NewEstimateStore(client *redis.Client) *EstimateStore {
	return &EstimateStore{client: client}
}

// EstimateCacheTTL bounds how long a quoted estimate stays retrievable.
const EstimateCacheTTL = 24 * time.Hour

const estimateCachePrefix = "cache:estimate:"

// Set stores an estimate under its id.
func (s *EstimateStore) Set(ctx context.Context, estimate *domain.TripEstimate) error {
	data, err := json.Marshal(estimate)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, estimateCachePrefix+estimate.ID, data, EstimateCacheTTL).Err()
}

// Get retrieves an estimate by id. A cache miss returns (nil, nil).
func (s *EstimateStore) Get(ctx context.Context, id string) (*domain.TripEstimate, error) {
	data, err := s.client.Get(ctx, estimateCachePrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var estimate domain.TripEstimate
	if err := json.Unmarshal(data, &estimate); err != nil {
		return nil, err
	}
	return &estimate, nil
}

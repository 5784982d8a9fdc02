package redis

import (
	"context"

	"tripcarbon/internal/domain"
)

// EstimateStoreInterface defines the estimate cache contract.
// This interface allows for testing with mock implementations.
type EstimateStoreInterface interface {
	Set(ctx context.Context, estimate *domain.TripEstimate) error
	Get(ctx context.Context, id string) (*domain.TripEstimate, error)
}

// Ensure EstimateStore implements EstimateStoreInterface.
var _ EstimateStoreInterface = (*EstimateStore)(nil)

package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tripcarbon/internal/domain"
	"tripcarbon/internal/redis"
)

// RouteFinder resolves stored distances between city pairs.
// This interface allows for testing with mock implementations.
type RouteFinder interface {
	FindDistance(origin, destination string) (float64, bool)
}

// EstimateService composes the route directory, the emission
// calculator, and the credit estimator into full trip estimates.
type EstimateService struct {
	routes     RouteFinder
	calculator *CalculatorService
	credits    *CreditService
	store      redis.EstimateStoreInterface
	logger     *zap.Logger
}

// NewEstimateService creates a new EstimateService.
func NewEstimateService(
	routes RouteFinder,
	calculator *CalculatorService,
	credits *CreditService,
	store redis.EstimateStoreInterface,
	logger *zap.Logger,
) *EstimateService {
	return &EstimateService{
		routes:     routes,
		calculator: calculator,
		credits:    credits,
		store:      store,
		logger:     logger,
	}
}

// EstimateTripRequest contains the parameters for estimating a trip.
type EstimateTripRequest struct {
	Origin      string
	Destination string
	Mode        string
	DistanceKm  *float64 // Optional: nil means resolve from the route directory
}

// EstimateTrip computes the full estimate for a trip. An explicit
// distance always wins; otherwise the route directory resolves the city
// pair, and ErrDistanceUnknown is returned when it cannot so the caller
// can prompt for a manual distance.
func (s *EstimateService) EstimateTrip(ctx context.Context, req EstimateTripRequest) (*domain.TripEstimate, error) {
	distance, fromTable, err := s.resolveDistance(req)
	if err != nil {
		return nil, err
	}

	mode := domain.NormalizeMode(req.Mode)
	emission := s.calculator.CalculateEmission(distance, req.Mode)
	baseline := s.calculator.CalculateEmission(distance, string(domain.BaselineMode))

	estimate := &domain.TripEstimate{
		ID:                uuid.New().String(),
		Origin:            req.Origin,
		Destination:       req.Destination,
		Mode:              mode,
		DistanceKm:        distance,
		DistanceFromTable: fromTable,
		EmissionKg:        emission,
		BaselineKg:        baseline,
		Savings:           s.calculator.CalculateSavings(emission, baseline),
		Comparison:        s.calculator.CalculateAllModes(distance),
		Credits:           s.credits.Estimate(emission),
		CreatedAt:         time.Now().UTC(),
	}

	if err := s.store.Set(ctx, estimate); err != nil {
		// The estimate is already computed; losing the cache entry only
		// breaks later re-fetch by id.
		s.logger.Warn("failed to cache estimate",
			zap.String("estimate_id", estimate.ID), zap.Error(err))
	}

	return estimate, nil
}

// GetEstimate fetches a previously computed estimate by id.
func (s *EstimateService) GetEstimate(ctx context.Context, id string) (*domain.TripEstimate, error) {
	estimate, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if estimate == nil {
		return nil, ErrEstimateNotFound
	}
	return estimate, nil
}

func (s *EstimateService) resolveDistance(req EstimateTripRequest) (km float64, fromTable bool, err error) {
	if req.DistanceKm != nil {
		d := *req.DistanceKm
		if !validNumber(d) || d < 0 {
			d = 0
		}
		return d, false, nil
	}

	if d, ok := s.routes.FindDistance(req.Origin, req.Destination); ok {
		return d, true, nil
	}
	return 0, false, ErrDistanceUnknown
}

// Package directory resolves known distances between named cities from
// a static route table.
package directory

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"tripcarbon/internal/domain"
)

// Directory answers distance lookups over an immutable route table.
// All methods are read-only and safe for concurrent use.
type Directory struct {
	routes []domain.Route
}

// New builds a Directory over the built-in route table.
func New(logger *zap.Logger) *Directory {
	return NewWithRoutes(logger, knownRoutes)
}

// NewWithRoutes builds a Directory over the given routes. Duplicate
// unordered city pairs are tolerated (first match wins on lookup) but
// flagged at load time as a data-quality problem.
func NewWithRoutes(logger *zap.Logger, routes []domain.Route) *Directory {
	seen := make(map[string]float64, len(routes))
	for _, r := range routes {
		key := pairKey(r.Origin, r.Destination)
		if prev, ok := seen[key]; ok {
			logger.Warn("duplicate route in distance table, first entry wins",
				zap.String("origin", r.Origin),
				zap.String("destination", r.Destination),
				zap.Float64("kept_km", prev),
				zap.Float64("ignored_km", r.DistanceKm),
			)
			continue
		}
		seen[key] = r.DistanceKm
	}
	return &Directory{routes: routes}
}

// FindDistance returns the stored distance between two cities. Matching
// is case-insensitive, whitespace-trimmed, and direction-agnostic: a
// route stored as (A, B) answers queries for (B, A) as well. The second
// return value is false when either name is blank or no route matches;
// blank input is a normal miss, not an error.
func (d *Directory) FindDistance(origin, destination string) (float64, bool) {
	from := normalizeCity(origin)
	to := normalizeCity(destination)
	if from == "" || to == "" {
		return 0, false
	}

	for _, r := range d.routes {
		o := normalizeCity(r.Origin)
		dst := normalizeCity(r.Destination)
		if (o == from && dst == to) || (o == to && dst == from) {
			return r.DistanceKm, true
		}
	}
	return 0, false
}

// AllCities returns every city named by a route, deduplicated and
// sorted with locale-aware collation so accented names order correctly.
func (d *Directory) AllCities() []string {
	set := make(map[string]struct{}, len(d.routes)*2)
	for _, r := range d.routes {
		set[r.Origin] = struct{}{}
		set[r.Destination] = struct{}{}
	}

	cities := make([]string, 0, len(set))
	for city := range set {
		cities = append(cities, city)
	}

	collate.New(language.BrazilianPortuguese).SortStrings(cities)
	return cities
}

// Routes returns the route table. Callers must not modify it.
func (d *Directory) Routes() []domain.Route {
	return d.routes
}

func normalizeCity(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// pairKey canonicalizes an unordered city pair for duplicate detection.
func pairKey(a, b string) string {
	a = normalizeCity(a)
	b = normalizeCity(b)
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}

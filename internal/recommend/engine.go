// Package recommend derives product recommendations from the requirements
// a customer entered in the configurator.
package recommend

import (
	"context"
	"log/slog"
	"sort"

	"github.com/ITTVDU45/goetzrental/internal/catalog"
	"github.com/ITTVDU45/goetzrental/internal/domain"
	"github.com/ITTVDU45/goetzrental/internal/metrics"
)

// fallbackCount is how many catalog products are offered when nothing
// meets the requirements: the most expensive machines system-wide, as
// premium alternatives.
const fallbackCount = 3

// ProductSource supplies the full product catalog for one recommendation
// run. Implemented by the catalog client; swapped for a stub in tests.
type ProductSource interface {
	FullProductList(ctx context.Context) ([]domain.Product, error)
}

// Engine filters the product catalog against customer requirements and
// derives the set of compatible device types.
type Engine struct {
	source ProductSource
	logger *slog.Logger
}

// NewEngine creates a recommendation engine.
func NewEngine(source ProductSource, logger *slog.Logger) *Engine {
	return &Engine{
		source: source,
		logger: logger,
	}
}

// Recommend loads the product catalog fresh and returns the products
// meeting the slider requirements, or the premium fallback when none do.
//
// A product qualifies iff each of its specs meets or exceeds the matching
// slider threshold; a requirement the customer never touched counts as 0
// and matches everything. Select-typed requirements are carried in the
// criteria but do not narrow the product set.
//
// A catalog fetch failure degrades to a fixed result with no matches; the
// wizard step stays navigable and invites manual follow-up instead of
// blocking the customer.
func (e *Engine) Recommend(ctx context.Context, criteria domain.RecommendCriteria) (*domain.RecommendationResult, error) {
	products, err := e.source.FullProductList(ctx)
	if err != nil {
		e.logger.Warn("product catalog unavailable, returning fallback recommendation", "error", err)
		metrics.RecommendationsComputed.WithLabelValues("error").Inc()
		return unavailableResult(), nil
	}

	matched := Filter(products, criteria.Filters)

	result := &domain.RecommendationResult{
		HasMatches: len(matched) > 0,
	}
	if result.HasMatches {
		result.Products = matched
		metrics.RecommendationsComputed.WithLabelValues("matched").Inc()
	} else {
		result.Products = premiumFallback(products)
		metrics.RecommendationsComputed.WithLabelValues("fallback").Inc()
	}
	result.SuitableDeviceTypes = deviceTypesOf(result.Products)

	return result, nil
}

// Filter returns the products whose specs meet or exceed every slider
// threshold. The match is monotonic: raising any single threshold can only
// shrink the result set.
func Filter(products []domain.Product, reqs domain.Requirements) []domain.Product {
	height := reqs.Slider("height")
	reach := reqs.Slider("reach")
	load := reqs.Slider("load")

	var out []domain.Product
	for _, p := range products {
		if p.Specs.MaxHeight >= height && p.Specs.MaxReach >= reach && p.Specs.MaxLoad >= load {
			out = append(out, p)
		}
	}
	return out
}

// premiumFallback returns up to fallbackCount products sorted by price
// descending. An empty catalog yields an empty list, not an error.
func premiumFallback(products []domain.Product) []domain.Product {
	sorted := append([]domain.Product(nil), products...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})
	if len(sorted) > fallbackCount {
		sorted = sorted[:fallbackCount]
	}
	return sorted
}

// deviceTypesOf collects the unique device types referenced by the given
// products, labeled from the static device-type table, in first-seen order.
func deviceTypesOf(products []domain.Product) []domain.DeviceTypeRef {
	seen := make(map[string]bool, len(products))
	var out []domain.DeviceTypeRef
	for _, p := range products {
		if p.DeviceTypeID == "" || seen[p.DeviceTypeID] {
			continue
		}
		seen[p.DeviceTypeID] = true
		out = append(out, domain.DeviceTypeRef{
			ID:    p.DeviceTypeID,
			Label: catalog.DeviceTypeLabel(p.DeviceTypeID),
		})
	}
	return out
}

// unavailableResult is the fixed degraded result used when the catalog
// cannot be fetched.
func unavailableResult() *domain.RecommendationResult {
	return &domain.RecommendationResult{
		SuitableDeviceTypes: []domain.DeviceTypeRef{},
		Products:            []domain.Product{},
		HasMatches:          false,
	}
}

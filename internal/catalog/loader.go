package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Loader assembles the catalog snapshot for one configurator run.
//
// Load never fails hard: if the catalog service is unreachable the caller
// receives a minimal empty snapshot together with the error, so the wizard
// can render in a degraded state and surface a reload hint. Nothing is
// cached across calls; callers own caching if they need it.
type Loader struct {
	client *Client
	logger *slog.Logger
}

// NewLoader creates a snapshot loader on top of a catalog client.
func NewLoader(client *Client, logger *slog.Logger) *Loader {
	return &Loader{
		client: client,
		logger: logger,
	}
}

// Load fetches and normalizes the catalog state active for the given
// location into one snapshot.
//
// All seven reads run in parallel. Active-ID lists are joined against
// the full catalog lists, preserving activation order. The filter-field
// fetch degrades on its own: a failure (or an empty result) falls back
// to the built-in default filter set instead of degrading the whole
// snapshot.
func (l *Loader) Load(ctx context.Context, locationSlug string) (*domain.ConfiguratorData, error) {
	const op = "catalog.load"

	var (
		categories        []rawCategory
		activeCategoryIDs []string
		addons            []rawAddon
		activeAddonIDs    []string
		products          []rawProduct
		upsellingIDs      []string
		filters           []domain.FilterField
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		categories, err = l.client.ListCategories(gctx)
		return err
	})
	g.Go(func() (err error) {
		activeCategoryIDs, err = l.client.ActiveCategoryIDs(gctx, locationSlug)
		return err
	})
	g.Go(func() (err error) {
		addons, err = l.client.ListAddons(gctx)
		return err
	})
	g.Go(func() (err error) {
		activeAddonIDs, err = l.client.ActiveAddonIDs(gctx, locationSlug)
		return err
	})
	g.Go(func() (err error) {
		products, err = l.client.ListProducts(gctx)
		return err
	})
	g.Go(func() (err error) {
		upsellingIDs, err = l.client.ActiveUpsellingIDs(gctx, locationSlug)
		return err
	})
	g.Go(func() error {
		// Filter failure degrades on its own and never fails the group.
		filters = l.loadFilters(gctx)
		return nil
	})

	if err := g.Wait(); err != nil {
		l.logger.Warn("catalog load degraded to empty snapshot",
			"location", locationSlug, "error", err)
		return EmptySnapshot(locationSlug), domain.Unavailable(err, op, "Catalog is temporarily unavailable. Please reload.")
	}

	data := &domain.ConfiguratorData{
		Location: domain.Location{
			ID:   locationSlug,
			Slug: locationSlug,
			Name: locationDisplayName(locationSlug),
		},
		Categories:        []domain.Category{},
		Extras:            []domain.Extra{},
		UpsellingProducts: []domain.Product{},
		Filters:           filters,
		Steps:             DefaultSteps(),
	}

	for _, c := range joinActive(activeCategoryIDs, categories, func(c rawCategory) string { return c.ID }) {
		data.Categories = append(data.Categories, normalizeCategory(c))
	}
	for _, a := range joinActive(activeAddonIDs, addons, func(a rawAddon) string { return a.ID }) {
		data.Extras = append(data.Extras, normalizeAddon(a))
	}
	for _, p := range joinActive(upsellingIDs, products, func(p rawProduct) string { return p.ID }) {
		data.UpsellingProducts = append(data.UpsellingProducts, NormalizeProduct(p))
	}
	data.DeviceTypes = DeviceTypesForCategories(activeCategoryIDs)

	return data, nil
}

// loadFilters fetches the filter-field definitions, falling back to the
// built-in defaults when the fetch fails or returns nothing.
func (l *Loader) loadFilters(ctx context.Context) []domain.FilterField {
	raw, err := l.client.ListFilterFields(ctx)
	if err != nil {
		l.logger.Warn("filter fields unavailable, using defaults", "error", err)
		return DefaultFilterFields()
	}
	if len(raw) == 0 {
		return DefaultFilterFields()
	}

	fields := make([]domain.FilterField, 0, len(raw))
	for _, f := range raw {
		fields = append(fields, normalizeFilterField(f))
	}
	return fields
}

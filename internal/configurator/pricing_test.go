package configurator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

func pricingFixture() domain.ConfiguratorState {
	s := domain.NewConfiguratorState()
	s.ConfigData = &domain.ConfiguratorData{
		Extras: []domain.Extra{
			{ID: "e-insurance", Label: "Maschinenversicherung", Price: 20, PriceType: domain.PriceTypeDaily},
			{ID: "e-delivery", Label: "Lieferung", Price: 50, PriceType: domain.PriceTypeOneTime},
			{ID: "e-untyped", Label: "Bedienereinweisung", Price: 30},
		},
		UpsellingProducts: []domain.Product{
			{ID: "up-1", Title: "Anhänger", Price: 35},
		},
	}
	s.Recommendations = &domain.RecommendationResult{
		Products: []domain.Product{
			{ID: "p-1", Title: "Compact 12", Price: 100},
			{ID: "p-2", Title: "Liftlux 203", Price: 100},
		},
	}
	return s
}

func TestComputePricingAdditivity(t *testing.T) {
	s := pricingFixture()
	s.SelectedProductIDs = []string{"p-1", "p-2"}
	s.SelectedExtras = []string{"e-insurance", "e-delivery"}
	s.Contact.StartDate = time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	s.Contact.EndDate = time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC)

	p := ComputePricing(s)

	// (100 + 100 + 20) * 3 + 50
	assert.True(t, p.Active)
	assert.Equal(t, 3, p.Days)
	assert.Equal(t, 220.0, p.DailyTotal)
	assert.Equal(t, 50.0, p.OneTimeTotal)
	assert.Equal(t, 710.0, p.GrandTotal)
}

func TestComputePricingDefaultsToOneDay(t *testing.T) {
	s := pricingFixture()
	s.SelectedProductIDs = []string{"p-1"}

	p := ComputePricing(s)

	assert.Equal(t, 1, p.Days)
	assert.Equal(t, 100.0, p.GrandTotal)
}

func TestComputePricingInactiveWithoutProducts(t *testing.T) {
	s := pricingFixture()
	s.SelectedExtras = []string{"e-delivery"}

	p := ComputePricing(s)

	// Extras alone never activate the estimate
	assert.False(t, p.Active)
}

func TestComputePricingUpsellingBillsDaily(t *testing.T) {
	s := pricingFixture()
	s.SelectedProductIDs = []string{"p-1"}
	s.AddedUpsellingIDs = []string{"up-1"}
	s.Contact.StartDate = time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)
	s.Contact.EndDate = time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)

	p := ComputePricing(s)

	assert.Equal(t, 2, p.Days)
	assert.Equal(t, 135.0, p.DailyTotal)
	assert.Equal(t, 270.0, p.GrandTotal)
}

func TestComputePricingUntypedExtraBillsDaily(t *testing.T) {
	s := pricingFixture()
	s.SelectedProductIDs = []string{"p-1"}
	s.SelectedExtras = []string{"e-untyped"}

	p := ComputePricing(s)

	assert.Equal(t, 130.0, p.DailyTotal)
	assert.Equal(t, 0.0, p.OneTimeTotal)
}

func TestComputePricingIgnoresUnknownIDs(t *testing.T) {
	s := pricingFixture()
	s.SelectedProductIDs = []string{"p-1", "p-gone"}
	s.SelectedExtras = []string{"e-gone"}
	s.AddedUpsellingIDs = []string{"up-gone"}

	p := ComputePricing(s)

	assert.Equal(t, 100.0, p.DailyTotal)
	assert.Equal(t, 0.0, p.OneTimeTotal)
}

func TestComputePricingWithoutSnapshot(t *testing.T) {
	s := domain.NewConfiguratorState()
	s.Recommendations = &domain.RecommendationResult{
		Products: []domain.Product{{ID: "p-1", Price: 100}},
	}
	s.SelectedProductIDs = []string{"p-1"}
	s.SelectedExtras = []string{"e-delivery"}
	s.AddedUpsellingIDs = []string{"up-1"}

	p := ComputePricing(s)

	// Extras and upselling resolve against the snapshot; without one
	// only the recommended product prices in.
	assert.Equal(t, 100.0, p.GrandTotal)
}

func TestRentalDays(t *testing.T) {
	base := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"both unset", time.Time{}, time.Time{}, 1},
		{"start unset", time.Time{}, base, 1},
		{"end unset", base, time.Time{}, 1},
		{"same day", base, base, 1},
		{"exact three days", base, base.AddDate(0, 0, 3), 3},
		{"partial day rounds up", base, base.Add(36 * time.Hour), 2},
		{"reversed range uses magnitude", base.AddDate(0, 0, 4), base, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rentalDays(tt.start, tt.end))
		})
	}
}

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

func TestParseSpecValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"plain integer", "12", 12},
		{"with unit", "16m", 16},
		{"unit and space", "12,5 m", 12.5},
		{"decimal comma", "17,8", 17.8},
		{"decimal point", "17.8", 17.8},
		{"leading text", "ca. 230 kg", 230},
		{"thousands separator", "1.234,5", 1234.5},
		{"thousands with decimal zero", "ca. 1.000,0 kg", 1000},
		{"trailing point", "230.", 230},
		{"empty", "", 0},
		{"no digits", "auf Anfrage", 0},
		{"lone comma", ",", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSpecValue(tt.input))
		})
	}
}

func TestNormalizeProduct(t *testing.T) {
	p := NormalizeProduct(rawProduct{
		ID:            "p-1",
		Title:         "Compact 12",
		DeviceType:    "dt-scissor",
		WorkingHeight: "12,1 m",
		Reach:         "",
		LoadCapacity:  "ca. 320 kg",
		Badges:        []string{"bestseller"},
		PricePerDay:   115,
	})

	assert.Equal(t, "p-1", p.ID)
	assert.Equal(t, "dt-scissor", p.DeviceTypeID)
	assert.Equal(t, 12.1, p.Specs.MaxHeight)
	assert.Equal(t, 0.0, p.Specs.MaxReach)
	assert.Equal(t, 320.0, p.Specs.MaxLoad)
	assert.Equal(t, 115.0, p.Price)
}

func TestNormalizeAddonPriceTypeDefaultsToDaily(t *testing.T) {
	daily := normalizeAddon(rawAddon{ID: "e-1", Name: "Versicherung", Price: 20})
	assert.Equal(t, domain.PriceTypeDaily, daily.PriceType)

	oneTime := normalizeAddon(rawAddon{ID: "e-2", Name: "Lieferung", Price: 50, PriceType: "one-time"})
	assert.Equal(t, domain.PriceTypeOneTime, oneTime.PriceType)

	bogus := normalizeAddon(rawAddon{ID: "e-3", Name: "Einweisung", Price: 30, PriceType: "weekly"})
	assert.Equal(t, domain.PriceTypeDaily, bogus.PriceType)
}

func TestNormalizeAddonDerivesKey(t *testing.T) {
	e := normalizeAddon(rawAddon{ID: "e-1", Name: "Maschinenversicherung", Price: 20})
	assert.Equal(t, "maschinenversicherung", e.Key)

	keyed := normalizeAddon(rawAddon{ID: "e-2", Key: "delivery", Name: "Lieferung"})
	assert.Equal(t, "delivery", keyed.Key)
}

func TestNormalizeFilterFieldUnknownTypeBecomesSelect(t *testing.T) {
	f := normalizeFilterField(rawFilterField{ID: "f-1", Key: "drive", Type: "dropdown"})
	assert.Equal(t, domain.FilterTypeSelect, f.Type)

	slider := normalizeFilterField(rawFilterField{ID: "f-2", Key: "height", Type: "slider"})
	assert.Equal(t, domain.FilterTypeSlider, slider.Type)
}

func TestJoinActivePreservesActivationOrder(t *testing.T) {
	items := []rawCategory{
		{ID: "cat-1", Name: "Arbeitsbühnen"},
		{ID: "cat-2", Name: "Stapler"},
		{ID: "cat-3", Name: "Baumaschinen"},
	}

	// Activation order wins over catalog order; unknown IDs are dropped.
	out := joinActive([]string{"cat-3", "cat-1", "cat-9"}, items, func(c rawCategory) string { return c.ID })

	assert.Len(t, out, 2)
	assert.Equal(t, "cat-3", out[0].ID)
	assert.Equal(t, "cat-1", out[1].ID)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Arbeitsbühnen", "arbeitsbuehnen"},
		{"Minibagger & Radlader", "minibagger-radlader"},
		{"  Stapler  ", "stapler"},
		{"Straßenbau", "strassenbau"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.input), "slugify(%q)", tt.input)
	}
}

func TestLocationDisplayName(t *testing.T) {
	assert.Equal(t, "Duesseldorf", locationDisplayName("duesseldorf"))
	assert.Equal(t, "Koeln Sued", locationDisplayName("koeln-sued"))
}

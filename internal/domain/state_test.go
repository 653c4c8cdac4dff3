package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequirementsClone(t *testing.T) {
	orig := NewRequirements()
	orig.Sliders["height"] = 12
	orig.Selects["drive"] = "electric"

	clone := orig.Clone()
	clone.Sliders["height"] = 99
	clone.Selects["drive"] = "diesel"

	assert.Equal(t, 12.0, orig.Sliders["height"])
	assert.Equal(t, "electric", orig.Selects["drive"])
}

func TestRequirementsSliderDefaultsToZero(t *testing.T) {
	r := NewRequirements()
	assert.Equal(t, 0.0, r.Slider("height"))

	r.Sliders["height"] = 12
	assert.Equal(t, 12.0, r.Slider("height"))
}

func TestContactPatchApply(t *testing.T) {
	c := Contact{Name: "Erika Mustermann", Email: "erika@example.com"}

	phone := "+49 211 123456"
	c = ContactPatch{Phone: &phone}.Apply(c)

	assert.Equal(t, "Erika Mustermann", c.Name)
	assert.Equal(t, "+49 211 123456", c.Phone)

	empty := ""
	c = ContactPatch{Email: &empty}.Apply(c)
	// Setting a field to empty is distinct from omitting it
	assert.Empty(t, c.Email)
	assert.Equal(t, "Erika Mustermann", c.Name)
}

func TestProductByID(t *testing.T) {
	s := NewConfiguratorState()
	s.Recommendations = &RecommendationResult{
		Products: []Product{{ID: "p-1", Title: "Compact 12"}},
	}
	s.ConfigData = &ConfiguratorData{
		UpsellingProducts: []Product{{ID: "up-1", Title: "Anhänger"}},
	}

	require.NotNil(t, s.ProductByID("p-1"))
	assert.Equal(t, "Compact 12", s.ProductByID("p-1").Title)

	require.NotNil(t, s.ProductByID("up-1"))
	assert.Equal(t, "Anhänger", s.ProductByID("up-1").Title)

	assert.Nil(t, s.ProductByID("p-gone"))
}

func TestConfiguratorDataLookups(t *testing.T) {
	d := &ConfiguratorData{
		Categories:  []Category{{ID: "cat-1", Label: "Arbeitsbühnen"}},
		DeviceTypes: []DeviceType{{ID: "dt-scissor", Label: "Scherenbühne"}},
		Extras:      []Extra{{ID: "e-1", Label: "Lieferung"}},
		Steps:       []WizardStep{{Key: "category", Order: 1}, {Key: "summary", Order: 2}},
	}

	assert.Equal(t, 2, d.StepCount())
	assert.Equal(t, "Arbeitsbühnen", d.CategoryLabel("cat-1"))
	assert.Empty(t, d.CategoryLabel("cat-gone"))
	assert.Equal(t, "Scherenbühne", d.DeviceTypeLabel("dt-scissor"))
	require.NotNil(t, d.ExtraByID("e-1"))
	assert.Nil(t, d.ExtraByID("e-gone"))
}

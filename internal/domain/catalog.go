// Package domain contains core business types and interfaces.
//
// This file defines the catalog snapshot types that drive a single
// configurator wizard run: categories, device types, filter fields,
// extras and upselling products active for one rental location.
package domain

// Location identifies the rental location a snapshot was loaded for.
type Location struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// Category is a selectable top-level equipment grouping.
type Category struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	IconKey string `json:"icon_key"`
	Image   string `json:"image,omitempty"`
}

// DeviceType is a sub-grouping within a category (e.g. "Scherenbühne").
// Each device type belongs to exactly one category.
type DeviceType struct {
	ID          string `json:"id"`
	CategoryID  string `json:"category_id"`
	Label       string `json:"label"`
	IconKey     string `json:"icon_key"`
	Description string `json:"description,omitempty"`
}

// FilterFieldType enumerates the supported requirement input kinds.
type FilterFieldType string

const (
	FilterTypeSlider   FilterFieldType = "slider"
	FilterTypeSelect   FilterFieldType = "select"
	FilterTypeRadio    FilterFieldType = "radio"
	FilterTypeCheckbox FilterFieldType = "checkbox"
)

// FilterOption is one choice of a non-slider filter field.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FilterField describes one requirement input of the requirements step.
//
// Key is the stable identifier used in requirement maps; ID is a UI-only
// identity. Min/Max/Step/Unit apply to slider fields only, Options to the
// other types.
type FilterField struct {
	ID           string          `json:"id"`
	Key          string          `json:"key"`
	Label        string          `json:"label"`
	Type         FilterFieldType `json:"type"`
	Min          float64         `json:"min,omitempty"`
	Max          float64         `json:"max,omitempty"`
	Step         float64         `json:"step,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	Options      []FilterOption  `json:"options,omitempty"`
	DefaultValue string          `json:"default_value,omitempty"`
}

// PriceType distinguishes recurring from one-time charges.
type PriceType string

const (
	PriceTypeDaily   PriceType = "daily"
	PriceTypeOneTime PriceType = "one-time"
)

// Extra is an optional add-on service or accessory with its own price
// and billing mode.
type Extra struct {
	ID          string    `json:"id"`
	Key         string    `json:"key"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	PriceType   PriceType `json:"price_type"`
}

// ProductSpecs holds the unit-normalized numeric capabilities of a product.
// Values are parsed from externally authored free text; unparsable fields
// coerce to 0.
type ProductSpecs struct {
	MaxHeight float64 `json:"max_height"`
	MaxReach  float64 `json:"max_reach"`
	MaxLoad   float64 `json:"max_load"`
}

// Product is a rentable machine with a daily rate.
type Product struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	DeviceTypeID string       `json:"device_type_id"`
	Image        string       `json:"image,omitempty"`
	Specs        ProductSpecs `json:"specs"`
	Badges       []string     `json:"badges,omitempty"`
	Price        float64      `json:"price"`
}

// WizardStep describes one stage of the fixed wizard sequence.
type WizardStep struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Required bool   `json:"required"`
	Order    int    `json:"order"`
}

// ConfiguratorData is the immutable-per-session catalog snapshot used to
// drive one wizard run. Once loaded it is treated as read-only for the
// remainder of the session.
type ConfiguratorData struct {
	Location          Location      `json:"location"`
	Categories        []Category    `json:"categories"`
	DeviceTypes       []DeviceType  `json:"device_types"`
	Filters           []FilterField `json:"filters"`
	Extras            []Extra       `json:"extras"`
	UpsellingProducts []Product     `json:"upselling_products"`
	Steps             []WizardStep  `json:"steps"`
}

// StepCount returns the number of wizard steps in the snapshot.
func (d *ConfiguratorData) StepCount() int {
	return len(d.Steps)
}

// CategoryLabel resolves a category ID to its label, or "" if unknown.
func (d *ConfiguratorData) CategoryLabel(id string) string {
	for _, c := range d.Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return ""
}

// DeviceTypeLabel resolves a device type ID to its label, or "" if unknown.
func (d *ConfiguratorData) DeviceTypeLabel(id string) string {
	for _, dt := range d.DeviceTypes {
		if dt.ID == id {
			return dt.Label
		}
	}
	return ""
}

// ExtraByID returns the extra with the given ID, or nil.
func (d *ConfiguratorData) ExtraByID(id string) *Extra {
	for i := range d.Extras {
		if d.Extras[i].ID == id {
			return &d.Extras[i]
		}
	}
	return nil
}

// UpsellingByID returns the upselling product with the given ID, or nil.
func (d *ConfiguratorData) UpsellingByID(id string) *Product {
	for i := range d.UpsellingProducts {
		if d.UpsellingProducts[i].ID == id {
			return &d.UpsellingProducts[i]
		}
	}
	return nil
}

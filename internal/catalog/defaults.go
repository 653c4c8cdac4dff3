package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// deviceTypeTable is the static device-type directory. Product records
// reference these IDs; recommendation results label device types from
// this table and fall back to the raw ID when unknown.
var deviceTypeTable = []domain.DeviceType{
	{ID: "dt-scissor", CategoryID: "cat-1", Label: "Scherenbühne", IconKey: "scissor-lift", Description: "Vertikale Hubarbeitsbühne für Montage- und Wartungsarbeiten"},
	{ID: "dt-articulated", CategoryID: "cat-1", Label: "Gelenkteleskopbühne", IconKey: "articulated-boom", Description: "Bühne mit Gelenkarm zum Übergreifen von Hindernissen"},
	{ID: "dt-telescopic", CategoryID: "cat-1", Label: "Teleskopbühne", IconKey: "telescopic-boom", Description: "Bühne mit großer Reichweite für hohe Arbeitsplätze"},
	{ID: "dt-trailer", CategoryID: "cat-1", Label: "Anhängerbühne", IconKey: "trailer-lift", Description: "Mobile Bühne am Anhänger, PKW-transportabel"},
	{ID: "dt-forklift", CategoryID: "cat-2", Label: "Gabelstapler", IconKey: "forklift", Description: "Stapler für Paletten- und Stückguttransport"},
	{ID: "dt-telehandler", CategoryID: "cat-2", Label: "Teleskopstapler", IconKey: "telehandler", Description: "Stapler mit Teleskoparm für Höhe und Reichweite"},
	{ID: "dt-mini-excavator", CategoryID: "cat-3", Label: "Minibagger", IconKey: "mini-excavator", Description: "Kompaktbagger für beengte Baustellen"},
	{ID: "dt-wheel-loader", CategoryID: "cat-3", Label: "Radlader", IconKey: "wheel-loader", Description: "Lader für Schüttgut und Erdbewegung"},
}

// DeviceTypeLabel resolves a device type ID against the static table.
// Unknown IDs return the raw ID so a result row never loses its identity.
func DeviceTypeLabel(id string) string {
	for _, dt := range deviceTypeTable {
		if dt.ID == id {
			return dt.Label
		}
	}
	return id
}

// DeviceTypesForCategories returns the static device types belonging to
// any of the given categories, in table order.
func DeviceTypesForCategories(categoryIDs []string) []domain.DeviceType {
	active := make(map[string]bool, len(categoryIDs))
	for _, id := range categoryIDs {
		active[id] = true
	}
	var out []domain.DeviceType
	for _, dt := range deviceTypeTable {
		if active[dt.CategoryID] {
			out = append(out, dt)
		}
	}
	return out
}

// DefaultFilterFields is the built-in requirement set used when the
// filter-field fetch fails or comes back empty.
func DefaultFilterFields() []domain.FilterField {
	return []domain.FilterField{
		{ID: "f-height", Key: "height", Label: "Arbeitshöhe", Type: domain.FilterTypeSlider, Min: 0, Max: 40, Step: 1, Unit: "m", DefaultValue: "0"},
		{ID: "f-reach", Key: "reach", Label: "Seitliche Reichweite", Type: domain.FilterTypeSlider, Min: 0, Max: 25, Step: 1, Unit: "m", DefaultValue: "0"},
		{ID: "f-load", Key: "load", Label: "Tragkraft", Type: domain.FilterTypeSlider, Min: 0, Max: 5000, Step: 50, Unit: "kg", DefaultValue: "0"},
		{ID: "f-drive", Key: "drive", Label: "Antrieb", Type: domain.FilterTypeSelect, Options: []domain.FilterOption{
			{Value: "electric", Label: "Elektro"},
			{Value: "diesel", Label: "Diesel"},
			{Value: "hybrid", Label: "Hybrid"},
		}},
		{ID: "f-ground", Key: "ground", Label: "Untergrund", Type: domain.FilterTypeRadio, Options: []domain.FilterOption{
			{Value: "paved", Label: "Befestigt"},
			{Value: "rough", Label: "Gelände"},
		}},
		{ID: "f-environment", Key: "environment", Label: "Einsatzbereich", Type: domain.FilterTypeRadio, Options: []domain.FilterOption{
			{Value: "indoor", Label: "Innen"},
			{Value: "outdoor", Label: "Außen"},
		}},
	}
}

// DefaultSteps is the fixed six-stage wizard sequence.
func DefaultSteps() []domain.WizardStep {
	return []domain.WizardStep{
		{Key: "category", Title: "Kategorie wählen", Required: true, Order: 1},
		{Key: "requirements", Title: "Anforderungen angeben", Required: true, Order: 2},
		{Key: "device-type", Title: "Gerätetyp wählen", Required: true, Order: 3},
		{Key: "extras", Title: "Extras hinzufügen", Required: false, Order: 4},
		{Key: "contact", Title: "Kontaktdaten", Required: true, Order: 5},
		{Key: "summary", Title: "Zusammenfassung", Required: true, Order: 6},
	}
}

// EmptySnapshot is the minimal degraded snapshot returned when the catalog
// service is unreachable. The wizard renders in a degraded state instead
// of crashing on load.
func EmptySnapshot(locationSlug string) *domain.ConfiguratorData {
	return &domain.ConfiguratorData{
		Location: domain.Location{
			ID:   locationSlug,
			Slug: locationSlug,
			Name: locationDisplayName(locationSlug),
		},
		Categories:        []domain.Category{},
		DeviceTypes:       []domain.DeviceType{},
		Filters:           DefaultFilterFields(),
		Extras:            []domain.Extra{},
		UpsellingProducts: []domain.Product{},
		Steps:             DefaultSteps(),
	}
}

// locationDisplayName turns a location slug into a readable name
// ("duesseldorf" -> "Duesseldorf", "koeln-sued" -> "Koeln Sued").
func locationDisplayName(slug string) string {
	name := strings.ReplaceAll(slug, "-", " ")
	return cases.Title(language.German).String(name)
}

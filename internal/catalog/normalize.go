package catalog

import (
	"strconv"
	"strings"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// ParseSpecValue extracts a numeric value from an externally authored
// free-text spec field ("12,5 m", "ca. 230 kg", "16m"). Non-numeric
// characters are stripped and a decimal comma is normalized to a decimal
// point. Unparsable input coerces to 0; the catalog is authored by hand
// and availability wins over strict validation.
func ParseSpecValue(s string) float64 {
	// Keep digits; keep a separator only when it directly follows a digit,
	// so punctuation in surrounding text ("ca. 230 kg") is ignored.
	var kept []rune
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			kept = append(kept, r)
		case r == ',' || r == '.':
			if n := len(kept); n > 0 && kept[n-1] >= '0' && kept[n-1] <= '9' {
				kept = append(kept, r)
			}
		}
	}

	// The last separator is the decimal point; earlier ones are thousands
	// grouping ("1.234,5"). A trailing separator is punctuation again.
	last := -1
	for i, r := range kept {
		if r == ',' || r == '.' {
			last = i
		}
	}

	var b strings.Builder
	for i, r := range kept {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case i == last && i < len(kept)-1:
			b.WriteByte('.')
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

// normalizeCategory maps a raw catalog category into the engine shape.
// The icon key is derived from the category name.
func normalizeCategory(r rawCategory) domain.Category {
	return domain.Category{
		ID:      r.ID,
		Label:   r.Name,
		IconKey: slugify(r.Name),
		Image:   r.Image,
	}
}

// normalizeAddon maps a raw add-on into an Extra. A missing price type
// defaults to daily billing.
func normalizeAddon(r rawAddon) domain.Extra {
	pt := domain.PriceType(r.PriceType)
	if pt != domain.PriceTypeOneTime {
		pt = domain.PriceTypeDaily
	}
	key := r.Key
	if key == "" {
		key = slugify(r.Name)
	}
	return domain.Extra{
		ID:          r.ID,
		Key:         key,
		Label:       r.Name,
		Description: r.Description,
		Price:       r.Price,
		PriceType:   pt,
	}
}

// NormalizeProduct maps a raw product record into the engine shape,
// parsing the free-text spec fields into numbers.
func NormalizeProduct(r rawProduct) domain.Product {
	return domain.Product{
		ID:           r.ID,
		Title:        r.Title,
		DeviceTypeID: r.DeviceType,
		Image:        r.Image,
		Specs: domain.ProductSpecs{
			MaxHeight: ParseSpecValue(r.WorkingHeight),
			MaxReach:  ParseSpecValue(r.Reach),
			MaxLoad:   ParseSpecValue(r.LoadCapacity),
		},
		Badges: r.Badges,
		Price:  r.PricePerDay,
	}
}

// normalizeFilterField maps a raw filter-field definition into the engine
// shape. Unknown types degrade to select so the field still renders.
func normalizeFilterField(r rawFilterField) domain.FilterField {
	t := domain.FilterFieldType(r.Type)
	switch t {
	case domain.FilterTypeSlider, domain.FilterTypeSelect, domain.FilterTypeRadio, domain.FilterTypeCheckbox:
	default:
		t = domain.FilterTypeSelect
	}

	f := domain.FilterField{
		ID:           r.ID,
		Key:          r.Key,
		Label:        r.Label,
		Type:         t,
		Min:          r.Min,
		Max:          r.Max,
		Step:         r.Step,
		Unit:         r.Unit,
		DefaultValue: r.DefaultValue,
	}
	for _, o := range r.Options {
		f.Options = append(f.Options, domain.FilterOption{Value: o.Value, Label: o.Label})
	}
	return f
}

// joinActive filters items down to the given active IDs, preserving the
// activation order of the ID list rather than catalog order. Display
// order is owned by the activation list.
func joinActive[T any](activeIDs []string, items []T, idOf func(T) string) []T {
	byID := make(map[string]T, len(items))
	for _, it := range items {
		byID[idOf(it)] = it
	}
	out := make([]T, 0, len(activeIDs))
	for _, id := range activeIDs {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// slugify lowercases a label and replaces runs of non-alphanumerics with
// single dashes. German umlauts are transliterated so icon keys stay ASCII.
func slugify(s string) string {
	replacer := strings.NewReplacer(
		"ä", "ae", "ö", "oe", "ü", "ue", "ß", "ss",
		"Ä", "ae", "Ö", "oe", "Ü", "ue",
	)
	s = strings.ToLower(replacer.Replace(s))

	var b strings.Builder
	lastDash := true
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

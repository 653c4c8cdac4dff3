package domain

import "time"

// Requirements accumulates the user's answers on the requirements step,
// keyed by filter-field key. Slider values are numeric thresholds, select
// values are enum choices. Requirements survive a category change; filter
// fields are category-agnostic.
type Requirements struct {
	Sliders map[string]float64 `json:"sliders"`
	Selects map[string]string  `json:"selects"`
}

// NewRequirements returns an empty requirement set with initialized maps.
func NewRequirements() Requirements {
	return Requirements{
		Sliders: map[string]float64{},
		Selects: map[string]string{},
	}
}

// Clone returns a deep copy. The reducer never mutates maps in place, so
// every merge works on a fresh copy.
func (r Requirements) Clone() Requirements {
	out := Requirements{
		Sliders: make(map[string]float64, len(r.Sliders)),
		Selects: make(map[string]string, len(r.Selects)),
	}
	for k, v := range r.Sliders {
		out.Sliders[k] = v
	}
	for k, v := range r.Selects {
		out.Selects[k] = v
	}
	return out
}

// Slider returns the slider value for key, or 0 when the requirement is
// not present. The zero default makes the recommendation predicate match
// everything for untouched sliders.
func (r Requirements) Slider(key string) float64 {
	return r.Sliders[key]
}

// Contact holds the final-step form data.
type Contact struct {
	StartDate time.Time `json:"start_date,omitzero"`
	EndDate   time.Time `json:"end_date,omitzero"`
	Delivery  bool      `json:"delivery"`
	Location  string    `json:"location,omitempty"`
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Company   string    `json:"company,omitempty"`
	Message   string    `json:"message,omitempty"`
	Files     []string  `json:"files,omitempty"`
}

// ContactPatch is a partial contact update. Nil fields are left untouched,
// mirroring a shallow merge.
type ContactPatch struct {
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Delivery  *bool      `json:"delivery,omitempty"`
	Location  *string    `json:"location,omitempty"`
	Name      *string    `json:"name,omitempty"`
	Email     *string    `json:"email,omitempty"`
	Phone     *string    `json:"phone,omitempty"`
	Company   *string    `json:"company,omitempty"`
	Message   *string    `json:"message,omitempty"`
	Files     []string   `json:"files,omitempty"`
}

// Apply merges the patch into c and returns the result.
func (p ContactPatch) Apply(c Contact) Contact {
	if p.StartDate != nil {
		c.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		c.EndDate = *p.EndDate
	}
	if p.Delivery != nil {
		c.Delivery = *p.Delivery
	}
	if p.Location != nil {
		c.Location = *p.Location
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.Company != nil {
		c.Company = *p.Company
	}
	if p.Files != nil {
		c.Files = append([]string(nil), p.Files...)
	}
	if p.Message != nil {
		c.Message = *p.Message
	}
	return c
}

// ConfiguratorState is the wizard's mutable session state. It is the
// single source of truth for one wizard run and is mutated exclusively
// through the reducer.
//
// Empty-string IDs mean "nothing selected".
type ConfiguratorState struct {
	Step               int                   `json:"step"`
	CategoryID         string                `json:"category_id,omitempty"`
	Requirements       Requirements          `json:"requirements"`
	DeviceTypeID       string                `json:"device_type_id,omitempty"`
	SelectedProductIDs []string              `json:"selected_product_ids"`
	AddedUpsellingIDs  []string              `json:"added_upselling_ids"`
	SelectedExtras     []string              `json:"selected_extras"`
	Contact            Contact               `json:"contact"`
	ConfigData         *ConfiguratorData     `json:"config_data,omitempty"`
	Recommendations    *RecommendationResult `json:"recommendations,omitempty"`
	IsLoading          bool                  `json:"is_loading"`
	IsSubmitting       bool                  `json:"is_submitting"`
	IsSuccess          bool                  `json:"is_success"`
	Error              string                `json:"error,omitempty"`
}

// NewConfiguratorState returns the initial state of a fresh wizard run,
// positioned on step 1 with nothing selected.
func NewConfiguratorState() ConfiguratorState {
	return ConfiguratorState{
		Step:               1,
		Requirements:       NewRequirements(),
		SelectedProductIDs: []string{},
		AddedUpsellingIDs:  []string{},
		SelectedExtras:     []string{},
	}
}

// ProductByID looks up a product by ID across the recommendation result
// and the snapshot's upselling products, the only two pools a selection
// may be drawn from.
func (s *ConfiguratorState) ProductByID(id string) *Product {
	if s.Recommendations != nil {
		for i := range s.Recommendations.Products {
			if s.Recommendations.Products[i].ID == id {
				return &s.Recommendations.Products[i]
			}
		}
	}
	if s.ConfigData != nil {
		return s.ConfigData.UpsellingByID(id)
	}
	return nil
}

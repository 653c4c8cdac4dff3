// Package configurator owns the wizard state machine: a sealed action
// union, a pure reducer, the derived pricing computation, and the session
// objects that serialize dispatches for one wizard run.
package configurator

import "github.com/ITTVDU45/goetzrental/internal/domain"

// Action is the sealed union of wizard state transitions. Every variant is
// a plain data struct; all I/O happens in callers, which then dispatch the
// resulting action. The reducer matches the union exhaustively.
type Action interface {
	isAction()
}

// NextStep advances the step cursor by one. The reducer applies it
// unconditionally; callers gate invocation on their own "can advance"
// predicate.
type NextStep struct{}

// PrevStep moves the step cursor back, bounded at step 1.
type PrevStep struct{}

// GotoStep jumps directly to a step, as the summary screen's edit links
// do. No bounds validation beyond the caller's intent.
type GotoStep struct {
	Step int `json:"step"`
}

// SelectCategory picks a top-level category. Selecting the already-current
// category is a no-op; a real change cascades: device type, product picks
// and recommendations are invalidated. Requirements survive, filter fields
// are category-agnostic.
type SelectCategory struct {
	CategoryID string `json:"category_id"`
}

// UpdateRequirements shallow-merges slider/select partials into the
// accumulated requirement maps. Single-field updates never clobber
// sibling entries.
type UpdateRequirements struct {
	Sliders map[string]float64 `json:"sliders,omitempty"`
	Selects map[string]string  `json:"selects,omitempty"`
}

// SetRecommendations stores a recommendation engine result verbatim.
type SetRecommendations struct {
	Result *domain.RecommendationResult `json:"result"`
}

// SelectDeviceType picks a device type and unconditionally clears prior
// product picks.
type SelectDeviceType struct {
	DeviceTypeID string `json:"device_type_id"`
}

// ToggleProductSelection adds or removes a recommended product.
type ToggleProductSelection struct {
	ProductID string `json:"product_id"`
}

// ToggleExtra adds or removes an extra.
type ToggleExtra struct {
	ExtraID string `json:"extra_id"`
}

// ToggleUpselling adds or removes an upselling product.
type ToggleUpselling struct {
	ProductID string `json:"product_id"`
}

// UpdateContact shallow-merges a partial contact form update.
type UpdateContact struct {
	Patch domain.ContactPatch `json:"patch"`
}

// EnterDeviceTypeStep fires once when the device-type step is entered. If
// no device type is selected yet and candidates exist, the first candidate
// is selected, and the first matching product is pre-selected when the
// product list is still empty. Kept as an explicit transition so the
// behavior is testable as a pure input/output pair.
type EnterDeviceTypeStep struct{}

// SubmitStart marks a submission in flight and clears any prior error.
type SubmitStart struct{}

// SubmitSuccess marks the submission as accepted.
type SubmitSuccess struct{}

// SubmitFailure records a submission error; the submit control re-enables.
type SubmitFailure struct {
	Message string `json:"message"`
}

// SetLoading toggles the initial-load flag.
type SetLoading struct {
	Loading bool `json:"loading"`
}

// SetError sets or clears the session error message.
type SetError struct {
	Message string `json:"message"`
}

// SetData stores the loaded catalog snapshot.
type SetData struct {
	Data *domain.ConfiguratorData `json:"data"`
}

func (NextStep) isAction()               {}
func (PrevStep) isAction()               {}
func (GotoStep) isAction()               {}
func (SelectCategory) isAction()         {}
func (UpdateRequirements) isAction()     {}
func (SetRecommendations) isAction()     {}
func (SelectDeviceType) isAction()       {}
func (ToggleProductSelection) isAction() {}
func (ToggleExtra) isAction()            {}
func (ToggleUpselling) isAction()        {}
func (UpdateContact) isAction()          {}
func (EnterDeviceTypeStep) isAction()    {}
func (SubmitStart) isAction()            {}
func (SubmitSuccess) isAction()          {}
func (SubmitFailure) isAction()          {}
func (SetLoading) isAction()             {}
func (SetError) isAction()               {}
func (SetData) isAction()                {}

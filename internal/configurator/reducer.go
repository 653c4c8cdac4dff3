package configurator

import (
	"fmt"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Reduce applies one action to a state and returns the next state. It is
// pure: no I/O, no mutation of the input's maps or slices, fully testable
// via input/output pairs. Unknown action types panic; the union is sealed
// and a missing case is a programming error.
func Reduce(s domain.ConfiguratorState, a Action) domain.ConfiguratorState {
	switch a := a.(type) {
	case NextStep:
		s.Step++
		return s

	case PrevStep:
		if s.Step > 1 {
			s.Step--
		}
		return s

	case GotoStep:
		s.Step = a.Step
		return s

	case SelectCategory:
		if a.CategoryID == s.CategoryID {
			return s
		}
		s.CategoryID = a.CategoryID
		s.DeviceTypeID = ""
		s.SelectedProductIDs = []string{}
		s.Recommendations = nil
		return s

	case UpdateRequirements:
		reqs := s.Requirements.Clone()
		for k, v := range a.Sliders {
			reqs.Sliders[k] = v
		}
		for k, v := range a.Selects {
			reqs.Selects[k] = v
		}
		s.Requirements = reqs
		return s

	case SetRecommendations:
		s.Recommendations = a.Result
		return s

	case SelectDeviceType:
		s.DeviceTypeID = a.DeviceTypeID
		s.SelectedProductIDs = []string{}
		return s

	case ToggleProductSelection:
		s.SelectedProductIDs = toggle(s.SelectedProductIDs, a.ProductID)
		return s

	case ToggleExtra:
		s.SelectedExtras = toggle(s.SelectedExtras, a.ExtraID)
		return s

	case ToggleUpselling:
		s.AddedUpsellingIDs = toggle(s.AddedUpsellingIDs, a.ProductID)
		return s

	case UpdateContact:
		s.Contact = a.Patch.Apply(s.Contact)
		return s

	case EnterDeviceTypeStep:
		return autoSelect(s)

	case SubmitStart:
		s.IsSubmitting = true
		s.Error = ""
		return s

	case SubmitSuccess:
		s.IsSubmitting = false
		s.IsSuccess = true
		return s

	case SubmitFailure:
		s.IsSubmitting = false
		s.Error = a.Message
		return s

	case SetLoading:
		s.IsLoading = a.Loading
		return s

	case SetError:
		s.Error = a.Message
		return s

	case SetData:
		s.ConfigData = a.Data
		return s
	}

	panic(fmt.Sprintf("configurator: unhandled action type %T", a))
}

// toggle returns ids with id appended when absent, or removed when
// present. The input slice is never mutated.
func toggle(ids []string, id string) []string {
	for i, existing := range ids {
		if existing == id {
			out := make([]string, 0, len(ids)-1)
			out = append(out, ids[:i]...)
			return append(out, ids[i+1:]...)
		}
	}
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids...)
	return append(out, id)
}

// autoSelect pre-populates the device-type step: the first recommended
// device type when none is chosen, and the first product of that device
// type when the product list is still empty. Product selection is
// therefore pre-populated by default; an empty initial selection must not
// be assumed.
func autoSelect(s domain.ConfiguratorState) domain.ConfiguratorState {
	if s.Recommendations == nil {
		return s
	}

	if s.DeviceTypeID == "" && len(s.Recommendations.SuitableDeviceTypes) > 0 {
		s.DeviceTypeID = s.Recommendations.SuitableDeviceTypes[0].ID
		s.SelectedProductIDs = []string{}
	}

	if s.DeviceTypeID != "" && len(s.SelectedProductIDs) == 0 {
		for _, p := range s.Recommendations.Products {
			if p.DeviceTypeID == s.DeviceTypeID {
				s.SelectedProductIDs = []string{p.ID}
				break
			}
		}
	}

	return s
}

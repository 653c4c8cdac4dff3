package handler

import (
	"encoding/json"
	"io"

	"github.com/ITTVDU45/goetzrental/internal/configurator"
	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// actionEnvelope is the wire form of a dispatched action: a type tag plus
// the variant's fields inline.
type actionEnvelope struct {
	Type string `json:"type"`

	Step         int                 `json:"step,omitempty"`
	CategoryID   string              `json:"category_id,omitempty"`
	DeviceTypeID string              `json:"device_type_id,omitempty"`
	ProductID    string              `json:"product_id,omitempty"`
	ExtraID      string              `json:"extra_id,omitempty"`
	Sliders      map[string]float64  `json:"sliders,omitempty"`
	Selects      map[string]string   `json:"selects,omitempty"`
	Contact      domain.ContactPatch `json:"contact,omitempty"`
}

// decodeAction maps a request body onto a wizard action. Only the actions
// a client may dispatch are reachable here; lifecycle actions (loading,
// submission, recommendations) belong to the server and have dedicated
// endpoints.
func decodeAction(body io.Reader) (configurator.Action, error) {
	const op = "configurator.decode_action"

	var env actionEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, domain.Invalid(op, "request body must be a JSON action")
	}

	switch env.Type {
	case "next_step":
		return configurator.NextStep{}, nil
	case "prev_step":
		return configurator.PrevStep{}, nil
	case "goto_step":
		if env.Step < 1 {
			return nil, domain.Invalid(op, "step must be at least 1")
		}
		return configurator.GotoStep{Step: env.Step}, nil
	case "select_category":
		if env.CategoryID == "" {
			return nil, domain.Invalid(op, "category_id is required")
		}
		return configurator.SelectCategory{CategoryID: env.CategoryID}, nil
	case "update_requirements":
		return configurator.UpdateRequirements{Sliders: env.Sliders, Selects: env.Selects}, nil
	case "select_device_type":
		if env.DeviceTypeID == "" {
			return nil, domain.Invalid(op, "device_type_id is required")
		}
		return configurator.SelectDeviceType{DeviceTypeID: env.DeviceTypeID}, nil
	case "toggle_product":
		if env.ProductID == "" {
			return nil, domain.Invalid(op, "product_id is required")
		}
		return configurator.ToggleProductSelection{ProductID: env.ProductID}, nil
	case "toggle_extra":
		if env.ExtraID == "" {
			return nil, domain.Invalid(op, "extra_id is required")
		}
		return configurator.ToggleExtra{ExtraID: env.ExtraID}, nil
	case "toggle_upselling":
		if env.ProductID == "" {
			return nil, domain.Invalid(op, "product_id is required")
		}
		return configurator.ToggleUpselling{ProductID: env.ProductID}, nil
	case "update_contact":
		return configurator.UpdateContact{Patch: env.Contact}, nil
	case "enter_device_type_step":
		return configurator.EnterDeviceTypeStep{}, nil
	}

	return nil, domain.Errorf(domain.EINVALID, op, "unknown action type %q", env.Type)
}

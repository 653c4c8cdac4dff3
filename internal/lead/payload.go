package lead

import "github.com/ITTVDU45/goetzrental/internal/domain"

// BuildPayload serializes a wizard state into the intake payload. Category
// and device-type labels are resolved from the catalog snapshot at submit
// time; an ID the snapshot no longer knows carries an empty label. Products
// are stripped to id/title/price.
func BuildPayload(state domain.ConfiguratorState) domain.InquiryPayload {
	p := domain.InquiryPayload{
		Contact:           state.Contact,
		CategoryID:        state.CategoryID,
		DeviceTypeID:      state.DeviceTypeID,
		Requirements:      state.Requirements,
		Products:          []domain.InquiryProduct{},
		Extras:            []domain.InquiryExtra{},
		UpsellingProducts: []domain.InquiryProduct{},
	}

	data := state.ConfigData
	if data != nil {
		p.CategoryLabel = data.CategoryLabel(state.CategoryID)
		p.DeviceTypeLabel = data.DeviceTypeLabel(state.DeviceTypeID)
		p.LocationSlug = data.Location.Slug
		p.LocationName = data.Location.Name
	}

	for _, id := range state.SelectedProductIDs {
		if prod := state.ProductByID(id); prod != nil {
			p.Products = append(p.Products, domain.InquiryProduct{
				ID:    prod.ID,
				Title: prod.Title,
				Price: prod.Price,
			})
		}
	}

	if data != nil {
		for _, id := range state.SelectedExtras {
			if extra := data.ExtraByID(id); extra != nil {
				p.Extras = append(p.Extras, domain.InquiryExtra{
					ID:        extra.ID,
					Label:     extra.Label,
					Price:     extra.Price,
					PriceType: extra.PriceType,
				})
			}
		}
		for _, id := range state.AddedUpsellingIDs {
			if prod := data.UpsellingByID(id); prod != nil {
				p.UpsellingProducts = append(p.UpsellingProducts, domain.InquiryProduct{
					ID:    prod.ID,
					Title: prod.Title,
					Price: prod.Price,
				})
			}
		}
	}

	return p
}

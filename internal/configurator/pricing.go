package configurator

import (
	"math"
	"time"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// Pricing is the live price estimate derived from the current selections.
// It is recomputed on every query, never stored in state.
//
// Active is false until at least one product is selected; a zero total
// with no machine chosen would imply a priced quote that does not exist.
type Pricing struct {
	Active       bool    `json:"active"`
	Days         int     `json:"days"`
	DailyTotal   float64 `json:"daily_total"`
	OneTimeTotal float64 `json:"one_time_total"`
	GrandTotal   float64 `json:"grand_total"`
}

// ComputePricing derives the price estimate from the current state:
// the daily rates of all selected products (recommended and upselling)
// plus daily-billed extras, multiplied by the rental duration, plus
// one-time extras.
func ComputePricing(s domain.ConfiguratorState) Pricing {
	p := Pricing{
		Days: rentalDays(s.Contact.StartDate, s.Contact.EndDate),
	}

	for _, id := range s.SelectedProductIDs {
		if prod := s.ProductByID(id); prod != nil {
			p.DailyTotal += prod.Price
		}
	}
	for _, id := range s.AddedUpsellingIDs {
		if s.ConfigData == nil {
			break
		}
		if prod := s.ConfigData.UpsellingByID(id); prod != nil {
			p.DailyTotal += prod.Price
		}
	}

	if s.ConfigData != nil {
		for _, id := range s.SelectedExtras {
			extra := s.ConfigData.ExtraByID(id)
			if extra == nil {
				continue
			}
			// A missing price type bills daily.
			if extra.PriceType == domain.PriceTypeOneTime {
				p.OneTimeTotal += extra.Price
			} else {
				p.DailyTotal += extra.Price
			}
		}
	}

	p.GrandTotal = p.DailyTotal*float64(p.Days) + p.OneTimeTotal
	p.Active = len(s.SelectedProductIDs) > 0 || len(s.AddedUpsellingIDs) > 0

	return p
}

// rentalDays is the rental duration in whole days, rounded up, with a
// floor of 1. Unset dates default to a single day.
func rentalDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 1
	}
	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// InquiryProduct is a product reference in an inquiry payload, stripped
// down to what the intake service needs.
type InquiryProduct struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

// InquiryExtra is an extra reference in an inquiry payload.
type InquiryExtra struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Price     float64   `json:"price"`
	PriceType PriceType `json:"price_type"`
}

// InquiryPayload is the structured rental request posted to the intake
// service at the end of a wizard run. Labels are resolved from the catalog
// snapshot at submit time; unresolvable IDs carry an empty label.
type InquiryPayload struct {
	Contact           Contact          `json:"contact"`
	CategoryID        string           `json:"category_id"`
	CategoryLabel     string           `json:"category_label"`
	DeviceTypeID      string           `json:"device_type_id"`
	DeviceTypeLabel   string           `json:"device_type_label"`
	Products          []InquiryProduct `json:"products"`
	Requirements      Requirements     `json:"requirements"`
	Extras            []InquiryExtra   `json:"extras"`
	UpsellingProducts []InquiryProduct `json:"upselling_products"`
	LocationSlug      string           `json:"location_slug"`
	LocationName      string           `json:"location_name"`
}

// LeadReceipt is the intake service's acknowledgement of a submitted
// inquiry: an opaque lead identifier plus a status token.
type LeadReceipt struct {
	LeadID string `json:"lead_id"`
	Status string `json:"status"`
}

// Inquiry is the archived record of a submitted lead. It is written best
// effort after a successful submission and feeds the notification job.
type Inquiry struct {
	ID              uuid.UUID
	LeadID          string
	LocationSlug    string
	CategoryLabel   string
	DeviceTypeLabel string
	Name            string
	Email           string
	Phone           string
	Company         string
	Message         string
	StartDate       time.Time
	EndDate         time.Time
	Delivery        bool
	ProductIDs      []string
	ExtraIDs        []string
	UpsellingIDs    []string
	Requirements    []byte // raw JSON of the requirement maps
	DailyTotal      float64
	OneTimeTotal    float64
	GrandTotal      float64
	CreatedAt       time.Time
}

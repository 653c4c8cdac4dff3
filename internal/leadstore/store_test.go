package leadstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

func archivableState() domain.ConfiguratorState {
	s := domain.NewConfiguratorState()
	s.CategoryID = "cat-1"
	s.DeviceTypeID = "dt-scissor"
	s.SelectedProductIDs = []string{"p-1"}
	s.SelectedExtras = []string{"e-1"}
	s.Contact = domain.Contact{
		Name:      "Erika Mustermann",
		Email:     "erika@example.com",
		StartDate: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC),
	}
	s.Recommendations = &domain.RecommendationResult{
		Products: []domain.Product{{ID: "p-1", Title: "Compact 12", Price: 100}},
	}
	s.ConfigData = &domain.ConfiguratorData{
		Location:   domain.Location{Slug: "duesseldorf", Name: "Duesseldorf"},
		Categories: []domain.Category{{ID: "cat-1", Label: "Arbeitsbühnen"}},
		DeviceTypes: []domain.DeviceType{
			{ID: "dt-scissor", CategoryID: "cat-1", Label: "Scherenbühne"},
		},
		Extras: []domain.Extra{
			{ID: "e-1", Label: "Lieferung", Price: 50, PriceType: domain.PriceTypeOneTime},
		},
	}
	return s
}

func TestBuildRecord(t *testing.T) {
	r := buildRecord(archivableState(), &domain.LeadReceipt{LeadID: "inq-42", Status: "received"})

	assert.Equal(t, "inq-42", r.LeadID)
	assert.Equal(t, "duesseldorf", r.LocationSlug)
	assert.Equal(t, "Arbeitsbühnen", r.CategoryLabel)
	assert.Equal(t, "Scherenbühne", r.DeviceTypeLabel)
	assert.Equal(t, "Erika Mustermann", r.Name)
	assert.Equal(t, []string{"p-1"}, r.ProductIDs)
	assert.Equal(t, []string{"e-1"}, r.ExtraIDs)

	// Pricing is frozen into the record: 100 * 3 days + 50 one-time
	assert.Equal(t, 100.0, r.DailyTotal)
	assert.Equal(t, 50.0, r.OneTimeTotal)
	assert.Equal(t, 350.0, r.GrandTotal)
}

func TestBuildRecordWithoutSnapshotOrReceipt(t *testing.T) {
	s := archivableState()
	s.ConfigData = nil

	r := buildRecord(s, nil)

	assert.Empty(t, r.LeadID)
	assert.Empty(t, r.LocationSlug)
	assert.Empty(t, r.CategoryLabel)
	assert.Equal(t, "erika@example.com", r.Email)
}

func TestNullTime(t *testing.T) {
	assert.False(t, nullTime(time.Time{}).Valid)

	set := nullTime(time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC))
	assert.True(t, set.Valid)
}

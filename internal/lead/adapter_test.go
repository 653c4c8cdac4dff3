package lead

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

func submittableState() domain.ConfiguratorState {
	s := domain.NewConfiguratorState()
	s.CategoryID = "cat-1"
	s.DeviceTypeID = "dt-scissor"
	s.SelectedProductIDs = []string{"p-1"}
	s.SelectedExtras = []string{"e-1"}
	s.AddedUpsellingIDs = []string{"up-1"}
	s.Contact = domain.Contact{Name: "Erika Mustermann", Email: "erika@example.com"}
	s.Recommendations = &domain.RecommendationResult{
		Products: []domain.Product{
			{ID: "p-1", Title: "Compact 12", DeviceTypeID: "dt-scissor", Price: 115,
				Specs: domain.ProductSpecs{MaxHeight: 12}},
		},
	}
	s.ConfigData = &domain.ConfiguratorData{
		Location:   domain.Location{Slug: "duesseldorf", Name: "Duesseldorf"},
		Categories: []domain.Category{{ID: "cat-1", Label: "Arbeitsbühnen"}},
		DeviceTypes: []domain.DeviceType{
			{ID: "dt-scissor", CategoryID: "cat-1", Label: "Scherenbühne"},
		},
		Extras: []domain.Extra{
			{ID: "e-1", Label: "Maschinenversicherung", Price: 20, PriceType: domain.PriceTypeDaily},
		},
		UpsellingProducts: []domain.Product{
			{ID: "up-1", Title: "Anhänger", Price: 35},
		},
	}
	return s
}

func TestBuildPayloadResolvesLabels(t *testing.T) {
	p := BuildPayload(submittableState())

	assert.Equal(t, "Arbeitsbühnen", p.CategoryLabel)
	assert.Equal(t, "Scherenbühne", p.DeviceTypeLabel)
	assert.Equal(t, "duesseldorf", p.LocationSlug)
	assert.Equal(t, "Duesseldorf", p.LocationName)

	require.Len(t, p.Products, 1)
	assert.Equal(t, "Compact 12", p.Products[0].Title)
	assert.Equal(t, 115.0, p.Products[0].Price)

	require.Len(t, p.Extras, 1)
	assert.Equal(t, domain.PriceTypeDaily, p.Extras[0].PriceType)

	require.Len(t, p.UpsellingProducts, 1)
	assert.Equal(t, "up-1", p.UpsellingProducts[0].ID)
}

func TestBuildPayloadWithoutSnapshot(t *testing.T) {
	s := submittableState()
	s.ConfigData = nil

	p := BuildPayload(s)

	// Labels resolve to empty, the lists stay non-nil
	assert.Empty(t, p.CategoryLabel)
	assert.Empty(t, p.DeviceTypeLabel)
	assert.NotNil(t, p.Extras)
	assert.Empty(t, p.Extras)
	// Recommended products still resolve, they live outside the snapshot
	require.Len(t, p.Products, 1)
}

func TestBuildPayloadSkipsUnknownIDs(t *testing.T) {
	s := submittableState()
	s.SelectedProductIDs = append(s.SelectedProductIDs, "p-gone")
	s.SelectedExtras = append(s.SelectedExtras, "e-gone")

	p := BuildPayload(s)

	assert.Len(t, p.Products, 1)
	assert.Len(t, p.Extras, 1)
}

func TestSubmitSuccess(t *testing.T) {
	var received domain.InquiryPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"inquiryId": "inq-42", "status": "received"})
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL, 2*time.Second, slog.New(slog.DiscardHandler))

	receipt, err := a.Submit(context.Background(), submittableState())
	require.NoError(t, err)

	assert.Equal(t, "inq-42", receipt.LeadID)
	assert.Equal(t, "received", receipt.Status)
	assert.Equal(t, "erika@example.com", received.Contact.Email)
	assert.Equal(t, "duesseldorf", received.LocationSlug)
}

func TestSubmitSurfacesIntakeErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid email"})
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL, 2*time.Second, slog.New(slog.DiscardHandler))

	_, err := a.Submit(context.Background(), submittableState())
	require.Error(t, err)
	assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	assert.Equal(t, "Invalid email", domain.ErrorMessage(err))
}

func TestSubmitGenericMessageOnOpaqueFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>gateway error</html>", http.StatusBadGateway)
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL, 2*time.Second, slog.New(slog.DiscardHandler))

	_, err := a.Submit(context.Background(), submittableState())
	require.Error(t, err)
	assert.Equal(t, "Your inquiry could not be submitted. Please try again.", domain.ErrorMessage(err))
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	a := NewAdapter(srv.URL, time.Second, slog.New(slog.DiscardHandler))

	_, err := a.Submit(context.Background(), submittableState())
	require.Error(t, err)
	assert.Equal(t, domain.EUNAVAILABLE, domain.ErrorCode(err))
}

func TestSubmitDefaultsAckStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"inquiryId": "inq-7"})
	}))
	defer srv.Close()

	a := NewAdapter(srv.URL, 2*time.Second, slog.New(slog.DiscardHandler))

	receipt, err := a.Submit(context.Background(), submittableState())
	require.NoError(t, err)
	assert.Equal(t, "received", receipt.Status)
}

// Package catalog talks to the catalog/content service and assembles the
// snapshot that drives one configurator run.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/ITTVDU45/goetzrental/internal/domain"
)

// =============================================================================
// Raw wire shapes
// =============================================================================

// rawCategory is a category record as the catalog service stores it.
type rawCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// rawAddon is an add-on record as the catalog service stores it.
type rawAddon struct {
	ID          string  `json:"id"`
	Key         string  `json:"key"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	PriceType   string  `json:"priceType"`
}

// rawProduct is a product record as the catalog service stores it. The
// spec fields are externally authored free text ("12,5 m", "ca. 230 kg").
type rawProduct struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	DeviceType    string   `json:"deviceType"`
	Image         string   `json:"image"`
	WorkingHeight string   `json:"workingHeight"`
	Reach         string   `json:"reach"`
	LoadCapacity  string   `json:"loadCapacity"`
	Badges        []string `json:"badges"`
	PricePerDay   float64  `json:"pricePerDay"`
}

// rawFilterField is a filter-field definition as stored by the service.
type rawFilterField struct {
	ID           string  `json:"id"`
	Key          string  `json:"key"`
	Label        string  `json:"label"`
	Type         string  `json:"type"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	Step         float64 `json:"step"`
	Unit         string  `json:"unit"`
	DefaultValue string  `json:"defaultValue"`
	Options      []struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"options"`
}

// =============================================================================
// Client
// =============================================================================

// Client is an HTTP client for the catalog service's read endpoints.
// Transient failures (network errors, 5xx) are retried with exponential
// backoff before the loader's degradation rules apply.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// NewClient creates a catalog client for the given base URL.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// ListCategories returns all catalog categories.
func (c *Client) ListCategories(ctx context.Context) ([]rawCategory, error) {
	var out []rawCategory
	if err := c.getJSON(ctx, "/api/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveCategoryIDs returns the category IDs active for the configurator
// at the given location, in display order.
func (c *Client) ActiveCategoryIDs(ctx context.Context, locationSlug string) ([]string, error) {
	var out []string
	q := url.Values{"location": {locationSlug}}
	if err := c.getJSON(ctx, "/api/configurator/active-categories", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAddons returns all add-ons.
func (c *Client) ListAddons(ctx context.Context) ([]rawAddon, error) {
	var out []rawAddon
	if err := c.getJSON(ctx, "/api/addons", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ActiveAddonIDs returns the add-on IDs active for the configurator at the
// given location, in display order.
func (c *Client) ActiveAddonIDs(ctx context.Context, locationSlug string) ([]string, error) {
	var out []string
	q := url.Values{"location": {locationSlug}}
	if err := c.getJSON(ctx, "/api/configurator/active-addons", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListProducts returns the full product catalog.
func (c *Client) ListProducts(ctx context.Context) ([]rawProduct, error) {
	var out []rawProduct
	if err := c.getJSON(ctx, "/api/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FullProductList returns the entire product catalog in the normalized
// engine shape. The recommendation engine fetches this fresh on every run.
func (c *Client) FullProductList(ctx context.Context) ([]domain.Product, error) {
	raw, err := c.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Product, 0, len(raw))
	for _, p := range raw {
		out = append(out, NormalizeProduct(p))
	}
	return out, nil
}

// ActiveUpsellingIDs returns the product IDs surfaced as upselling
// suggestions at the given location, in display order.
func (c *Client) ActiveUpsellingIDs(ctx context.Context, locationSlug string) ([]string, error) {
	var out []string
	q := url.Values{"location": {locationSlug}}
	if err := c.getJSON(ctx, "/api/configurator/upselling", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListFilterFields returns the active filter-field definitions. The
// endpoint historically returned either a bare array or a wrapped
// {"value": [...]} object; both shapes are accepted here so nothing
// downstream ever branches on shape.
func (c *Client) ListFilterFields(ctx context.Context) ([]rawFilterField, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "/api/configurator/filter-fields", nil, &raw); err != nil {
		return nil, err
	}

	var fields []rawFilterField
	if err := json.Unmarshal(raw, &fields); err == nil {
		return fields, nil
	}

	var wrapped struct {
		Value []rawFilterField `json:"value"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("filter fields: unexpected response shape: %w", err)
	}
	return wrapped.Value, nil
}

// getJSON performs a GET with bounded retry and decodes the response body.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			// Network-level failures are worth another attempt.
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			io.Copy(io.Discard, resp.Body)
			return retry.RetryableError(fmt.Errorf("GET %s: status %d", path, resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s: status %d", path, resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("GET %s: decode: %w", path, err)
		}
		return nil
	})
}

// Package rakuten queries the Rakuten Books item search API for live prices.
package rakuten

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	apperrors "searchscout/internal/common/errors"
	"searchscout/internal/common/logger"
	"searchscout/internal/common/observability"
)

const metricSource = "rakuten"

type Config struct {
	BaseURL       string
	ApplicationID string
	Timeout       time.Duration
}

type Client struct {
	config     Config
	httpClient *http.Client
	obs        *observability.Observability
	logger     logger.Logger
}

func NewClient(cfg Config, obs *observability.Observability, log logger.Logger) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		obs:    obs,
		logger: log,
	}
}

// Enabled reports whether live lookups can be attempted at all.
func (c *Client) Enabled() bool {
	return c.config.ApplicationID != ""
}

// Offer is a live price hit for one ISBN.
type Offer struct {
	Price       int
	PostageFree bool
	InStock     bool
	URL         string
}

type booksSearchResponse struct {
	Items []struct {
		Item struct {
			ItemPrice    int    `json:"itemPrice"`
			PostageFlag  int    `json:"postageFlag"`
			Availability string `json:"availability"`
			ItemURL      string `json:"itemUrl"`
		} `json:"Item"`
	} `json:"Items"`
}

// PriceByISBN looks up the live Rakuten Books offer for an ISBN.
// Returns nil when the book is not listed.
func (c *Client) PriceByISBN(ctx context.Context, isbn string) (*Offer, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("isbn", isbn)
	params.Set("applicationId", c.config.ApplicationID)

	endpoint := fmt.Sprintf("%s/services/api/BooksBook/Search/20170404?%s", c.config.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create price request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewPriceLookupFailedError("rakuten", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewPriceLookupFailedError("rakuten",
			fmt.Errorf("price endpoint returned %d", resp.StatusCode))
	}

	var out booksSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewPriceLookupFailedError("rakuten", err)
	}
	c.obs.RecordUpstreamCall(ctx, metricSource, "success")

	if len(out.Items) == 0 {
		return nil, nil
	}

	item := out.Items[0].Item
	offer := &Offer{
		Price:       item.ItemPrice,
		PostageFree: item.PostageFlag == 1,
		InStock:     item.Availability == "1",
		URL:         item.ItemURL,
	}

	c.logger.Debug("Live price lookup completed", map[string]interface{}{
		"isbn":        isbn,
		"price":       offer.Price,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return offer, nil
}

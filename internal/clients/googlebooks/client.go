// Package googlebooks queries the Google Books volumes API.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "searchscout/internal/common/errors"
	"searchscout/internal/common/logger"
	"searchscout/internal/common/observability"
)

const metricSource = "book_search"

// Config holds the volumes API settings.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
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

// Volume is a single search hit, flattened from the volumes API shape.
type Volume struct {
	Title         string
	Authors       []string
	Publisher     string
	PublishedDate string
	Description   string
	ISBN          string
	Thumbnail     string
	Categories    []string
	PageCount     int
	ListPrice     float64
	InfoLink      string
}

type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title               string   `json:"title"`
			Authors             []string `json:"authors"`
			Publisher           string   `json:"publisher"`
			PublishedDate       string   `json:"publishedDate"`
			Description         string   `json:"description"`
			IndustryIdentifiers []struct {
				Type       string `json:"type"`
				Identifier string `json:"identifier"`
			} `json:"industryIdentifiers"`
			ImageLinks struct {
				Thumbnail string `json:"thumbnail"`
			} `json:"imageLinks"`
			Categories []string `json:"categories"`
			PageCount  int      `json:"pageCount"`
			InfoLink   string   `json:"infoLink"`
		} `json:"volumeInfo"`
		SaleInfo struct {
			ListPrice struct {
				Amount float64 `json:"amount"`
			} `json:"listPrice"`
		} `json:"saleInfo"`
	} `json:"items"`
}

// Search runs a full-text volumes query and returns flattened hits.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]Volume, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	if c.config.APIKey != "" {
		params.Set("key", c.config.APIKey)
	}

	endpoint := fmt.Sprintf("%s/volumes?%s", c.config.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewBookSearchTimeoutError()
		}
		return nil, apperrors.NewBookSearchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewBookSearchFailedError(
			fmt.Errorf("volumes endpoint returned %d", resp.StatusCode))
	}

	var out volumesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewBookSearchFailedError(err)
	}
	c.obs.RecordUpstreamCall(ctx, metricSource, "success")

	volumes := make([]Volume, 0, len(out.Items))
	for _, item := range out.Items {
		info := item.VolumeInfo
		v := Volume{
			Title:         info.Title,
			Authors:       info.Authors,
			Publisher:     info.Publisher,
			PublishedDate: info.PublishedDate,
			Description:   info.Description,
			Thumbnail:     info.ImageLinks.Thumbnail,
			Categories:    info.Categories,
			PageCount:     info.PageCount,
			ListPrice:     item.SaleInfo.ListPrice.Amount,
			InfoLink:      info.InfoLink,
		}
		for _, id := range info.IndustryIdentifiers {
			if id.Type == "ISBN_13" {
				v.ISBN = id.Identifier
				break
			}
			if id.Type == "ISBN_10" && v.ISBN == "" {
				v.ISBN = id.Identifier
			}
		}
		volumes = append(volumes, v)
	}

	c.logger.Debug("Book search completed", map[string]interface{}{
		"query":       query,
		"hits":        len(volumes),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return volumes, nil
}

// SearchByISBN looks up a single volume by its ISBN.
func (c *Client) SearchByISBN(ctx context.Context, isbn string) (*Volume, error) {
	normalized := strings.ReplaceAll(isbn, "-", "")
	volumes, err := c.Search(ctx, fmt.Sprintf("isbn:%s", normalized), 1)
	if err != nil {
		return nil, err
	}
	if len(volumes) == 0 {
		return nil, nil
	}
	v := volumes[0]
	if v.ISBN == "" {
		v.ISBN = normalized
	}
	return &v, nil
}

// Package openbd queries the openBD bibliographic API.
package openbd

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

const metricSource = "book_catalog"

type Config struct {
	BaseURL string
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

// Record is the summary block of an openBD entry.
type Record struct {
	ISBN      string
	Title     string
	Author    string
	Publisher string
	PubDate   string
	Cover     string
}

type openbdEntry struct {
	Summary struct {
		ISBN      string `json:"isbn"`
		Title     string `json:"title"`
		Author    string `json:"author"`
		Publisher string `json:"publisher"`
		PubDate   string `json:"pubdate"`
		Cover     string `json:"cover"`
	} `json:"summary"`
}

// Lookup fetches bibliographic records for the given ISBNs.
// The result is aligned with the input; unknown ISBNs yield nil entries.
func (c *Client) Lookup(ctx context.Context, isbns []string) ([]*Record, error) {
	if len(isbns) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("isbn", strings.Join(isbns, ","))

	endpoint := fmt.Sprintf("%s/v1/get?%s", c.config.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create lookup request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewCatalogLookupFailedError(strings.Join(isbns, ","), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewCatalogLookupFailedError(strings.Join(isbns, ","),
			fmt.Errorf("catalog endpoint returned %d", resp.StatusCode))
	}

	var entries []*openbdEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewCatalogLookupFailedError(strings.Join(isbns, ","), err)
	}
	c.obs.RecordUpstreamCall(ctx, metricSource, "success")

	// The endpoint echoes one entry per requested ISBN. Drop any excess so
	// callers can index records by the position of their input.
	if len(entries) > len(isbns) {
		entries = entries[:len(isbns)]
	}

	records := make([]*Record, len(entries))
	for i, entry := range entries {
		if entry == nil || entry.Summary.Title == "" {
			continue
		}
		records[i] = &Record{
			ISBN:      entry.Summary.ISBN,
			Title:     entry.Summary.Title,
			Author:    entry.Summary.Author,
			Publisher: entry.Summary.Publisher,
			PubDate:   entry.Summary.PubDate,
			Cover:     entry.Summary.Cover,
		}
	}

	c.logger.Debug("Catalog lookup completed", map[string]interface{}{
		"requested":   len(isbns),
		"found":       countNonNil(records),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return records, nil
}

func countNonNil(records []*Record) int {
	n := 0
	for _, r := range records {
		if r != nil {
			n++
		}
	}
	return n
}

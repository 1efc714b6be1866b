// Package gourmetapi queries a Hot Pepper style restaurant search API,
// including its genre and area master endpoints.
package gourmetapi

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

const metricSource = "gourmet"

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

// Shop is a single restaurant hit.
type Shop struct {
	ID            string
	Name          string
	Address       string
	Phone         string
	GenreName     string
	BudgetName    string
	Access        string
	URL           string
	PhotoURL      string
	Catch         string
	Open          string
	PartyCapacity int
}

// SearchParams narrows a shop search. Zero values are omitted from the request.
type SearchParams struct {
	Keyword   string
	AreaCode  string
	GenreCode string
	Budget    string
	PartySize int
	Count     int
}

type shopResponse struct {
	Results struct {
		Shop []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Address string `json:"address"`
			Tel     string `json:"tel"`
			Genre   struct {
				Name string `json:"name"`
			} `json:"genre"`
			Budget struct {
				Name    string `json:"name"`
				Average string `json:"average"`
			} `json:"budget"`
			Access string `json:"access"`
			URLs   struct {
				PC string `json:"pc"`
			} `json:"urls"`
			Photo struct {
				PC struct {
					L string `json:"l"`
				} `json:"pc"`
			} `json:"photo"`
			Catch         string `json:"catch"`
			Open          string `json:"open"`
			PartyCapacity int    `json:"party_capacity"`
		} `json:"shop"`
	} `json:"results"`
}

// Search runs a shop search with the given params.
func (c *Client) Search(ctx context.Context, p SearchParams) ([]Shop, error) {
	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("format", "json")
	if p.Keyword != "" {
		params.Set("keyword", p.Keyword)
	}
	if p.AreaCode != "" {
		params.Set("small_area", p.AreaCode)
	}
	if p.GenreCode != "" {
		params.Set("genre", p.GenreCode)
	}
	if p.Budget != "" {
		params.Set("budget", p.Budget)
	}
	if p.PartySize > 0 {
		params.Set("party_capacity", fmt.Sprintf("%d", p.PartySize))
	}
	count := p.Count
	if count == 0 {
		count = 15
	}
	params.Set("count", fmt.Sprintf("%d", count))

	endpoint := fmt.Sprintf("%s/gourmet/v1/?%s", c.config.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create shop search request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		if ctx.Err() == context.DeadlineExceeded {
			return nil, apperrors.NewGourmetSearchTimeoutError()
		}
		return nil, apperrors.NewGourmetSearchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewGourmetSearchFailedError(
			fmt.Errorf("shop search endpoint returned %d", resp.StatusCode))
	}

	var out shopResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewGourmetSearchFailedError(err)
	}
	c.obs.RecordUpstreamCall(ctx, metricSource, "success")

	shops := make([]Shop, 0, len(out.Results.Shop))
	for _, s := range out.Results.Shop {
		shops = append(shops, Shop{
			ID:            s.ID,
			Name:          s.Name,
			Address:       s.Address,
			Phone:         s.Tel,
			GenreName:     s.Genre.Name,
			BudgetName:    s.Budget.Name,
			Access:        s.Access,
			URL:           s.URLs.PC,
			PhotoURL:      s.Photo.PC.L,
			Catch:         s.Catch,
			Open:          s.Open,
			PartyCapacity: s.PartyCapacity,
		})
	}

	c.logger.Debug("Shop search completed", map[string]interface{}{
		"keyword":     p.Keyword,
		"hits":        len(shops),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return shops, nil
}

// MasterEntry is a code/name pair from the genre or area master.
type MasterEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type masterResponse struct {
	Results struct {
		Genre     []MasterEntry `json:"genre"`
		SmallArea []MasterEntry `json:"small_area"`
	} `json:"results"`
}

// Genres fetches the genre master list.
func (c *Client) Genres(ctx context.Context) ([]MasterEntry, error) {
	res, err := c.fetchMaster(ctx, "genre/v1")
	if err != nil {
		return nil, err
	}
	return res.Results.Genre, nil
}

// Areas fetches the small-area master list.
func (c *Client) Areas(ctx context.Context) ([]MasterEntry, error) {
	res, err := c.fetchMaster(ctx, "small_area/v1")
	if err != nil {
		return nil, err
	}
	return res.Results.SmallArea, nil
}

func (c *Client) fetchMaster(ctx context.Context, path string) (*masterResponse, error) {
	params := url.Values{}
	params.Set("key", c.config.APIKey)
	params.Set("format", "json")

	endpoint := fmt.Sprintf("%s/%s/?%s", c.config.BaseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create master request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewGourmetSearchFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewGourmetSearchFailedError(
			fmt.Errorf("master endpoint returned %d", resp.StatusCode))
	}

	var out masterResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.obs.RecordUpstreamCall(ctx, metricSource, "error")
		return nil, apperrors.NewGourmetSearchFailedError(err)
	}
	c.obs.RecordUpstreamCall(ctx, metricSource, "success")
	return &out, nil
}

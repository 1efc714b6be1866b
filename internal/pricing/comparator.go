package pricing

import (
	"context"
	"sync"

	"searchscout/internal/clients/rakuten"
	"searchscout/internal/common/logger"
)

// Source answers one price quote for an item. A nil quote with nil error
// means the source has no listing.
type Source interface {
	Name() string
	Quote(ctx context.Context, itemID string) (*Quote, error)
}

// Comparator fans an item id out to its source list concurrently and
// flags the cheapest total. A failing or empty source is omitted; it
// never aborts the others.
type Comparator struct {
	sources []Source
	logger  logger.Logger
}

func NewComparator(sources []Source, log logger.Logger) *Comparator {
	return &Comparator{sources: sources, logger: log}
}

// NewBookComparator builds the fixed book source list. When live is
// enabled it replaces the simulated 楽天ブックス slot.
func NewBookComparator(live *rakuten.Client, log logger.Logger) *Comparator {
	sources := make([]Source, 0, len(bookProfiles))
	for _, p := range bookProfiles {
		if p.site == "楽天ブックス" && live != nil && live.Enabled() {
			sources = append(sources, &rakutenSource{client: live, fallback: p, logger: log})
			continue
		}
		sources = append(sources, p)
	}
	return NewComparator(sources, log)
}

// NewGourmetComparator builds the fixed reservation source list.
func NewGourmetComparator(log logger.Logger) *Comparator {
	sources := make([]Source, 0, len(gourmetProfiles))
	for _, p := range gourmetProfiles {
		sources = append(sources, p)
	}
	return NewComparator(sources, log)
}

// Compare collects quotes from every source, preserving source order,
// and flags all quotes tied at the minimum total.
func (c *Comparator) Compare(ctx context.Context, itemID string) []Quote {
	slots := make([]*Quote, len(c.sources))

	var wg sync.WaitGroup
	for i, source := range c.sources {
		wg.Add(1)
		go func(i int, source Source) {
			defer wg.Done()
			quote, err := source.Quote(ctx, itemID)
			if err != nil {
				c.logger.Warn("Price source failed", map[string]interface{}{
					"source": source.Name(),
					"error":  err.Error(),
				})
				return
			}
			slots[i] = quote
		}(i, source)
	}
	wg.Wait()

	quotes := make([]Quote, 0, len(slots))
	for _, q := range slots {
		if q != nil {
			quotes = append(quotes, *q)
		}
	}

	flagCheapest(quotes)

	c.logger.Info("Price comparison completed", map[string]interface{}{
		"item_id": itemID,
		"sources": len(quotes),
	})
	return quotes
}

// rakutenSource wraps the live Rakuten Books API and degrades to the
// simulated profile when the call fails or returns no listing.
type rakutenSource struct {
	client   *rakuten.Client
	fallback profile
	logger   logger.Logger
}

func (s *rakutenSource) Name() string { return s.fallback.site }

func (s *rakutenSource) Quote(ctx context.Context, itemID string) (*Quote, error) {
	offer, err := s.client.PriceByISBN(ctx, itemID)
	if err != nil || offer == nil {
		if err != nil {
			s.logger.Warn("Live price lookup failed, using simulated data", map[string]interface{}{
				"isbn":  itemID,
				"error": err.Error(),
			})
		}
		return s.fallback.Quote(ctx, itemID)
	}

	shipping := 280
	if offer.PostageFree || offer.Price >= 3980 {
		shipping = 0
	}

	return &Quote{
		Site:       s.fallback.site,
		Price:      offer.Price,
		Shipping:   shipping,
		TotalPrice: offer.Price + shipping,
		Condition:  "新品",
		InStock:    offer.InStock,
		URL:        offer.URL,
	}, nil
}

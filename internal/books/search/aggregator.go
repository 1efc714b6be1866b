package search

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"searchscout/internal/books/dictionary"
	"searchscout/internal/books/intent"
	"searchscout/internal/clients/googlebooks"
	"searchscout/internal/clients/openbd"
	"searchscout/internal/common/cache"
	"searchscout/internal/common/logger"
)

// Config bounds the aggregation pipeline.
type Config struct {
	MaxCandidates        int
	AccumulateThreshold  int
	SecondaryThreshold   int
	MaxConcurrentLookups int
	CacheTTL             time.Duration
}

// Aggregator fans search-phrase variants out against the full-text
// catalog, merges and deduplicates the hits, and opportunistically
// consults the curated ISBN table through the bibliographic catalog.
type Aggregator struct {
	books   *googlebooks.Client
	catalog *openbd.Client
	cache   *cache.RedisClient
	config  Config
	logger  logger.Logger
}

func NewAggregator(books *googlebooks.Client, catalog *openbd.Client, redis *cache.RedisClient, cfg Config, log logger.Logger) *Aggregator {
	return &Aggregator{
		books:   books,
		catalog: catalog,
		cache:   redis,
		config:  cfg,
		logger:  log,
	}
}

// Aggregate returns a deduplicated, bounded candidate list for the
// intent. Individual phrase failures are logged and skipped; the result
// is whatever the surviving calls produced.
func (a *Aggregator) Aggregate(ctx context.Context, it intent.Intent) []Candidate {
	cacheKey := a.cacheKey(it)
	if a.cache != nil {
		var cached []Candidate
		if err := a.cache.GetJSON(ctx, cacheKey, &cached); err == nil {
			a.logger.Debug("Search cache hit", map[string]interface{}{"key": cacheKey})
			return cached
		}
	}

	phrases := phraseVariants(it)
	a.logger.Info("Aggregating candidates", map[string]interface{}{
		"phrase_count": len(phrases),
		"category":     it.Category,
	})

	seen := make(map[string]bool)
	var results []Candidate

	batchSize := a.config.MaxConcurrentLookups
	if batchSize <= 0 {
		batchSize = 3
	}

	for start := 0; start < len(phrases); start += batchSize {
		if len(results) >= a.config.AccumulateThreshold {
			break
		}
		if ctx.Err() != nil {
			break
		}

		end := start + batchSize
		if end > len(phrases) {
			end = len(phrases)
		}
		batch := phrases[start:end]

		// Slots keep per-variant results so the merge below stays in
		// variant order regardless of completion order.
		slots := make([][]googlebooks.Volume, len(batch))
		var wg sync.WaitGroup
		for i, phrase := range batch {
			wg.Add(1)
			go func(i int, phrase string) {
				defer wg.Done()
				volumes, err := a.books.Search(ctx, phrase, 10)
				if err != nil {
					a.logger.Warn("Search phrase failed", map[string]interface{}{
						"phrase": phrase,
						"error":  err.Error(),
					})
					return
				}
				slots[i] = volumes
			}(i, phrase)
		}
		wg.Wait()

		for _, volumes := range slots {
			for _, v := range volumes {
				if v.ISBN == "" || seen[v.ISBN] {
					continue
				}
				seen[v.ISBN] = true
				results = append(results, Candidate{
					Title:       v.Title,
					Author:      strings.Join(v.Authors, ", "),
					ISBN:        v.ISBN,
					CoverImage:  v.Thumbnail,
					Publisher:   v.Publisher,
					Description: truncateDescription(v.Description),
				})
			}
		}
	}

	if it.Author != "" && len(results) < a.config.SecondaryThreshold {
		results = append(results, a.lookupFamousWorks(ctx, it, seen)...)
	}

	if len(results) > a.config.MaxCandidates {
		results = results[:a.config.MaxCandidates]
	}

	if a.cache != nil && len(results) > 0 {
		if err := a.cache.SetJSON(ctx, cacheKey, results, a.config.CacheTTL); err != nil {
			a.logger.Warn("Search cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	a.logger.Info("Aggregation completed", map[string]interface{}{"total": len(results)})
	return results
}

// Seen returns the set of ISBNs in candidates, for padding exclusion.
func Seen(candidates []Candidate) map[string]bool {
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		if c.ISBN != "" {
			seen[c.ISBN] = true
		}
	}
	return seen
}

func (a *Aggregator) cacheKey(it intent.Intent) string {
	raw, _ := json.Marshal(it)
	return fmt.Sprintf("books:search:%x", sha1.Sum(raw))
}

// lookupFamousWorks consults the curated title→ISBN table, gated by the
// known works of the matched author, and resolves hits through the
// bibliographic catalog.
func (a *Aggregator) lookupFamousWorks(ctx context.Context, it intent.Intent, seen map[string]bool) []Candidate {
	var wanted []string
	titleByISBN := make(map[string]string)

	for _, bookTitle := range dictionary.FamousISBNOrder {
		isbn := dictionary.FamousISBNs[bookTitle]
		if seen[isbn] {
			continue
		}

		match := false
		if it.Title != "" && (strings.Contains(bookTitle, it.Title) || strings.Contains(it.Title, bookTitle)) {
			match = true
		}
		if strings.Contains(it.Author, "村上") && containsAnyOf(bookTitle, dictionary.MurakamiWorks) {
			match = true
		}
		if strings.Contains(it.Author, "東野") && containsAnyOf(bookTitle, dictionary.HigashinoWorks) {
			match = true
		}

		if match {
			wanted = append(wanted, isbn)
			titleByISBN[isbn] = bookTitle
		}
	}

	if len(wanted) == 0 {
		return nil
	}

	records, err := a.catalog.Lookup(ctx, wanted)
	if err != nil {
		a.logger.Warn("Catalog lookup failed", map[string]interface{}{"error": err.Error()})
		return nil
	}

	var results []Candidate
	for i, record := range records {
		if record == nil {
			continue
		}
		isbn := wanted[i]
		seen[isbn] = true
		results = append(results, Candidate{
			Title:       record.Title,
			Author:      record.Author,
			ISBN:        isbn,
			CoverImage:  record.Cover,
			Publisher:   record.Publisher,
			Description: fmt.Sprintf("人気作品: %s", titleByISBN[isbn]),
		})
	}
	return results
}

func containsAnyOf(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Package books orchestrates the book search pipeline: rule extraction,
// model fallback, aggregation, and padding.
package books

import (
	"context"

	"searchscout/internal/books/intent"
	"searchscout/internal/books/search"
	"searchscout/internal/clients/openbd"
	"searchscout/internal/common/logger"
)

// Search outcome statuses.
const (
	StatusCandidatesFound = "candidates_found"
	StatusNoResults       = "no_results"
	StatusISBNConfirmed   = "isbn_confirmed"
)

// Config bounds the service-level result assembly.
type Config struct {
	PaddingThreshold int
	MaxCandidates    int
}

// Result is the outcome of one search request.
type Result struct {
	Status        string
	Candidates    []search.Candidate
	ExtractedInfo intent.Intent
	ISBN          string
	BookInfo      *openbd.Record
}

type Service struct {
	extractor   *intent.Extractor
	interpreter *intent.Interpreter
	aggregator  *search.Aggregator
	padder      *search.Padder
	catalog     *openbd.Client
	config      Config
	logger      logger.Logger
}

func NewService(
	extractor *intent.Extractor,
	interpreter *intent.Interpreter,
	aggregator *search.Aggregator,
	padder *search.Padder,
	catalog *openbd.Client,
	cfg Config,
	log logger.Logger,
) *Service {
	return &Service{
		extractor:   extractor,
		interpreter: interpreter,
		aggregator:  aggregator,
		padder:      padder,
		catalog:     catalog,
		config:      cfg,
		logger:      log,
	}
}

// Search runs the full pipeline for one query. It never returns an
// error: every failure path degrades to a smaller or empty result.
func (s *Service) Search(ctx context.Context, query string) Result {
	extracted := s.extractor.Extract(query)
	if extracted.Empty() {
		s.logger.Info("No direct match, falling back to model", map[string]interface{}{"query": query})
		extracted = s.interpreter.Interpret(ctx, query)
	}

	if extracted.ISBN != "" {
		if record := s.confirmISBN(ctx, extracted.ISBN); record != nil {
			return Result{
				Status:        StatusISBNConfirmed,
				ExtractedInfo: extracted,
				ISBN:          extracted.ISBN,
				BookInfo:      record,
			}
		}
	}

	candidates := s.aggregator.Aggregate(ctx, extracted)

	if len(candidates) < s.config.PaddingThreshold {
		s.logger.Info("Sparse results, padding", map[string]interface{}{"live_count": len(candidates)})
		seen := search.Seen(candidates)
		candidates = append(candidates, s.padder.Pad(extracted, seen, extracted.Category)...)
	}

	if len(candidates) > s.config.MaxCandidates {
		candidates = candidates[:s.config.MaxCandidates]
	}

	status := StatusCandidatesFound
	if len(candidates) == 0 {
		status = StatusNoResults
	}

	return Result{
		Status:        status,
		Candidates:    candidates,
		ExtractedInfo: extracted,
	}
}

// BookInfo resolves bibliographic details for one ISBN. Returns nil when
// the catalog has no record.
func (s *Service) BookInfo(ctx context.Context, isbn string) *openbd.Record {
	return s.confirmISBN(ctx, isbn)
}

func (s *Service) confirmISBN(ctx context.Context, isbn string) *openbd.Record {
	records, err := s.catalog.Lookup(ctx, []string{isbn})
	if err != nil {
		s.logger.Warn("ISBN confirmation failed", map[string]interface{}{
			"isbn":  isbn,
			"error": err.Error(),
		})
		return nil
	}
	if len(records) == 0 || records[0] == nil {
		return nil
	}
	return records[0]
}

// Package gourmet orchestrates the restaurant search pipeline: rule
// extraction, model fallback, aggregation, and padding.
package gourmet

import (
	"context"

	"searchscout/internal/common/logger"
	"searchscout/internal/gourmet/intent"
	"searchscout/internal/gourmet/search"
)

// Search outcome statuses.
const (
	StatusCandidatesFound = "candidates_found"
	StatusNoResults       = "no_results"
)

// Config bounds the service-level result assembly.
type Config struct {
	PaddingMinimum int
	MaxRestaurants int
}

// Result is the outcome of one restaurant search request.
type Result struct {
	Status       string
	Restaurants  []search.Candidate
	SearchParams intent.Intent
}

type Service struct {
	extractor   *intent.Extractor
	interpreter *intent.Interpreter
	aggregator  *search.Aggregator
	padder      *search.Padder
	config      Config
	logger      logger.Logger
}

func NewService(
	extractor *intent.Extractor,
	interpreter *intent.Interpreter,
	aggregator *search.Aggregator,
	padder *search.Padder,
	cfg Config,
	log logger.Logger,
) *Service {
	return &Service{
		extractor:   extractor,
		interpreter: interpreter,
		aggregator:  aggregator,
		padder:      padder,
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

	restaurants := s.aggregator.Aggregate(ctx, extracted)

	if len(restaurants) < s.config.PaddingMinimum {
		s.logger.Info("Sparse results, padding", map[string]interface{}{"live_count": len(restaurants)})
		seen := search.Seen(restaurants)
		limit := s.config.MaxRestaurants - len(restaurants)
		restaurants = append(restaurants, s.padder.Pad(extracted, seen, limit)...)
	}

	if len(restaurants) > s.config.MaxRestaurants {
		restaurants = restaurants[:s.config.MaxRestaurants]
	}

	status := StatusCandidatesFound
	if len(restaurants) == 0 {
		status = StatusNoResults
	}

	return Result{
		Status:       status,
		Restaurants:  restaurants,
		SearchParams: extracted,
	}
}

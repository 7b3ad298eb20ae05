// internal/screens/search/service.go
package search

import (
	"context"

	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/metrics"
	"helper-directory/internal/directory"
	"helper-directory/internal/models"
)

// Outcome distinguishes a successful-but-empty search from a failed one.
type Outcome string

const (
	OutcomeResults   Outcome = "results"
	OutcomeNoResults Outcome = "no_results"
)

// Result is one search invocation's output. Helpers keeps the fetch order
// of the candidates that passed the filter.
type Result struct {
	Outcome Outcome                `json:"outcome"`
	Helpers []models.HelperProfile `json:"helpers"`
}

// Service runs the fetch-then-filter search flow: one pincode-scoped fetch
// from the directory, then the in-memory predicate filter. Stateless.
type Service struct {
	directory directory.Service
	logger    logger.Logger
}

func NewService(dir directory.Service, log logger.Logger) *Service {
	return &Service{
		directory: dir,
		logger:    log.WithFields(map[string]interface{}{"component": "search"}),
	}
}

// Search fetches the candidate set for the pincode and filters it with the
// criteria. An empty pincode skips the fetch and yields an empty result. A
// fetch failure returns a SearchError; zero post-filter matches on a
// successful fetch is the NoResults outcome, not an error.
func (s *Service) Search(ctx context.Context, pincode string, criteria models.SearchCriteria) (Result, error) {
	if pincode == "" {
		metrics.HelperSearches.WithLabelValues(string(OutcomeNoResults)).Inc()
		return Result{Outcome: OutcomeNoResults, Helpers: []models.HelperProfile{}}, nil
	}

	candidates, err := s.directory.ListByPincode(ctx, pincode)
	if err != nil {
		metrics.HelperSearches.WithLabelValues("error").Inc()
		s.logger.Warn("candidate fetch failed", map[string]interface{}{
			"pincode": pincode,
			"error":   err.Error(),
		})
		return Result{}, err
	}

	matched := Filter(candidates, criteria)

	outcome := OutcomeResults
	if len(matched) == 0 {
		outcome = OutcomeNoResults
	}
	metrics.HelperSearches.WithLabelValues(string(outcome)).Inc()

	s.logger.Debug("search completed", map[string]interface{}{
		"pincode":    pincode,
		"candidates": len(candidates),
		"matched":    len(matched),
	})

	return Result{Outcome: outcome, Helpers: matched}, nil
}

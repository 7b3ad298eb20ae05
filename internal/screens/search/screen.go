// internal/screens/search/screen.go
package search

import (
	"context"
	"sync"

	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/metrics"
	"helper-directory/internal/geo"
	"helper-directory/internal/models"
	"helper-directory/internal/screens/geoselect"
)

// Filters holds the non-geo filter panel entries. Age is free text,
// matched exactly.
type Filters struct {
	FarmingType string
	Wages       string
	Age         string
	Pincode     string
}

// Screen is the stateful search screen controller. The filter panel's geo
// selects cascade exactly like the registration form's; each search
// invocation is sequence-stamped so a superseded search can never
// overwrite the result set of a search issued after it.
type Screen struct {
	mu      sync.Mutex
	cascade *geoselect.Cascade
	service *Service
	logger  logger.Logger

	filters   Filters
	results   []models.HelperProfile
	outcome   Outcome
	searchSeq uint64
}

func NewScreen(lookup geo.Lookup, service *Service, log logger.Logger) *Screen {
	return &Screen{
		cascade: geoselect.New(lookup, log),
		service: service,
		logger:  log.WithFields(map[string]interface{}{"component": "search-screen"}),
	}
}

// LoadCountries populates the country filter select at screen load; it is
// not re-triggered by searches.
func (s *Screen) LoadCountries(ctx context.Context) error {
	return s.cascade.LoadCountries(ctx)
}

func (s *Screen) SelectCountry(ctx context.Context, countryCode string) error {
	return s.cascade.SelectCountry(ctx, countryCode)
}

func (s *Screen) SelectState(ctx context.Context, stateCode string) error {
	return s.cascade.SelectState(ctx, stateCode)
}

func (s *Screen) SelectCity(cityName string) {
	s.cascade.SelectCity(cityName)
}

// SetFilters replaces the non-geo filter entries.
func (s *Screen) SetFilters(filters Filters) {
	s.mu.Lock()
	s.filters = filters
	s.mu.Unlock()
}

// Geo returns the cascade snapshot for rendering the filter selects.
func (s *Screen) Geo() geoselect.Snapshot {
	return s.cascade.Snapshot()
}

// Criteria builds the SearchCriteria from the current selections. Unset
// fields stay empty and act as wildcards.
func (s *Screen) Criteria() models.SearchCriteria {
	geoState := s.cascade.Snapshot()
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SearchCriteria{
		Country:     geoState.Country,
		State:       geoState.State,
		City:        geoState.City,
		FarmingType: s.filters.FarmingType,
		Wages:       s.filters.Wages,
		Age:         s.filters.Age,
	}
}

// Search runs one fetch-then-filter invocation with the current criteria.
// Last-issued wins: the screen's result set is only replaced when this
// invocation is still the newest one at the time its response lands. A
// failed fetch leaves the previous result set untouched, so an error can
// never masquerade as an empty result.
func (s *Screen) Search(ctx context.Context) (Result, error) {
	criteria := s.Criteria()

	s.mu.Lock()
	s.searchSeq++
	seq := s.searchSeq
	pincode := s.filters.Pincode
	s.mu.Unlock()

	result, err := s.service.Search(ctx, pincode, criteria)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.searchSeq {
		metrics.StaleResponsesDiscarded.WithLabelValues("search").Inc()
		s.logger.Debug("discarding superseded search response", map[string]interface{}{
			"pincode": pincode,
		})
		return result, err
	}

	if err != nil {
		return Result{}, err
	}

	s.results = result.Helpers
	s.outcome = result.Outcome
	return result, nil
}

// Results returns the last applied result set and its outcome.
func (s *Screen) Results() ([]models.HelperProfile, Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.HelperProfile(nil), s.results...), s.outcome
}

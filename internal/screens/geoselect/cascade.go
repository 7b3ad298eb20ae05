// internal/screens/geoselect/cascade.go

// Package geoselect implements the country/state/city cascading-select
// chain shared by the registration form and the search screen. The cascade
// is one record mutated by reducer-style transitions, so a parent change
// atomically clears every descendant selection and option list.
package geoselect

import (
	"context"
	"sync"

	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/metrics"
	"helper-directory/internal/geo"
	"helper-directory/internal/models"
)

// Phase is the selection scope the cascade has reached.
type Phase string

const (
	PhaseIdle            Phase = "idle"
	PhaseCountrySelected Phase = "country_selected"
	PhaseStateSelected   Phase = "state_selected"
	PhaseCitySelected    Phase = "city_selected"
)

// Snapshot is a point-in-time copy of the cascade state.
type Snapshot struct {
	Country string
	State   string
	City    string

	Countries []models.GeoEntity
	States    []models.GeoEntity
	Cities    []models.GeoEntity
}

// Phase derives the state-machine phase from the selections.
func (s Snapshot) Phase() Phase {
	switch {
	case s.City != "":
		return PhaseCitySelected
	case s.State != "":
		return PhaseStateSelected
	case s.Country != "":
		return PhaseCountrySelected
	default:
		return PhaseIdle
	}
}

// Cascade owns the selection state for one screen. Every mutation takes a
// generation under the lock; a lookup response is applied only if its
// generation is still current, so a superseded in-flight response is
// discarded instead of clobbering newer state.
type Cascade struct {
	mu     sync.Mutex
	lookup geo.Lookup
	logger logger.Logger

	country string
	state   string
	city    string

	countries []models.GeoEntity
	states    []models.GeoEntity
	cities    []models.GeoEntity

	generation uint64
}

func New(lookup geo.Lookup, log logger.Logger) *Cascade {
	return &Cascade{
		lookup: lookup,
		logger: log.WithFields(map[string]interface{}{"component": "geo-cascade"}),
	}
}

// LoadCountries populates the country option list. It is issued once at
// screen load and is not part of the invalidation chain.
func (c *Cascade) LoadCountries(ctx context.Context) error {
	countries, err := c.lookup.ListCountries(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.countries = countries
	c.mu.Unlock()
	return nil
}

// SelectCountry sets the country, clears state and city selections and
// their option lists, then fetches the state list for the new country.
// Passing an empty code clears the selection without a lookup.
func (c *Cascade) SelectCountry(ctx context.Context, countryCode string) error {
	c.mu.Lock()
	c.country = countryCode
	c.state = ""
	c.city = ""
	c.states = nil
	c.cities = nil
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	if countryCode == "" {
		return nil
	}

	states, err := c.lookup.ListStates(ctx, countryCode)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		metrics.StaleResponsesDiscarded.WithLabelValues("states").Inc()
		c.logger.Debug("discarding superseded state list", map[string]interface{}{
			"country": countryCode,
		})
		return nil
	}
	c.states = states
	return nil
}

// SelectState sets the state, clears the city selection and its option
// list, then fetches the city list for the country/state pair.
func (c *Cascade) SelectState(ctx context.Context, stateCode string) error {
	c.mu.Lock()
	country := c.country
	c.state = stateCode
	c.city = ""
	c.cities = nil
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	if stateCode == "" {
		return nil
	}

	cities, err := c.lookup.ListCities(ctx, country, stateCode)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		metrics.StaleResponsesDiscarded.WithLabelValues("cities").Inc()
		c.logger.Debug("discarding superseded city list", map[string]interface{}{
			"country": country,
			"state":   stateCode,
		})
		return nil
	}
	c.cities = cities
	return nil
}

// SelectCity sets the city. Nothing downstream depends on it, so there is
// no lookup and no invalidation.
func (c *Cascade) SelectCity(cityName string) {
	c.mu.Lock()
	c.city = cityName
	c.mu.Unlock()
}

// Reset returns the cascade to Idle: no selections, no state or city
// options. The country option list survives, matching a screen reset that
// does not refetch countries.
func (c *Cascade) Reset() {
	c.mu.Lock()
	c.country = ""
	c.state = ""
	c.city = ""
	c.states = nil
	c.cities = nil
	c.generation++
	c.mu.Unlock()
}

// Snapshot copies the current state for reading.
func (c *Cascade) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Country:   c.country,
		State:     c.state,
		City:      c.city,
		Countries: append([]models.GeoEntity(nil), c.countries...),
		States:    append([]models.GeoEntity(nil), c.states...),
		Cities:    append([]models.GeoEntity(nil), c.cities...),
	}
}

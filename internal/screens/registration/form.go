// internal/screens/registration/form.go
package registration

import (
	"context"
	"strconv"
	"sync"

	"helper-directory/internal/common/errors"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/geo"
	"helper-directory/internal/models"
	"helper-directory/internal/screens/geoselect"
)

// Fields holds the non-geo form entries. Age is kept as entered text and
// parsed at submit time.
type Fields struct {
	Name         string
	Age          string
	Gender       string
	MobileNumber string
	Pincode      string
	Wages        string
	FarmingType  string
	Machinery    string
}

// Form is the stateful registration screen controller: a geo cascade plus
// the profile fields, driven by discrete user actions. All state lives in
// this one value; the identity of the submitting user, when relevant, is
// passed in by the caller rather than read from ambient session state.
type Form struct {
	mu      sync.Mutex
	cascade *geoselect.Cascade
	service *Service
	fields  Fields
}

func NewForm(lookup geo.Lookup, service *Service, log logger.Logger) *Form {
	return &Form{
		cascade: geoselect.New(lookup, log),
		service: service,
	}
}

// LoadCountries populates the country select at screen load.
func (f *Form) LoadCountries(ctx context.Context) error {
	return f.cascade.LoadCountries(ctx)
}

// SelectCountry runs the cascade transition: country set, descendants
// cleared, state options fetched. A stale in-flight lookup for a previous
// country is discarded, not applied.
func (f *Form) SelectCountry(ctx context.Context, countryCode string) error {
	return f.cascade.SelectCountry(ctx, countryCode)
}

func (f *Form) SelectState(ctx context.Context, stateCode string) error {
	return f.cascade.SelectState(ctx, stateCode)
}

func (f *Form) SelectCity(cityName string) {
	f.cascade.SelectCity(cityName)
}

// SetFields replaces the non-geo entries.
func (f *Form) SetFields(fields Fields) {
	f.mu.Lock()
	f.fields = fields
	f.mu.Unlock()
}

// Fields returns a copy of the current non-geo entries.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Geo returns the cascade snapshot for rendering the selects.
func (f *Form) Geo() geoselect.Snapshot {
	return f.cascade.Snapshot()
}

// Submit builds the profile from the current state, validates it, and
// issues the create call. On success every field is cleared and the
// cascade returns to Idle; on any failure the entered values are kept so
// the user can retry without re-entering data.
func (f *Form) Submit(ctx context.Context) (*models.HelperProfile, error) {
	geoState := f.cascade.Snapshot()

	f.mu.Lock()
	fields := f.fields
	f.mu.Unlock()

	age, ageErr := strconv.Atoi(fields.Age)
	if fields.Age != "" && ageErr != nil {
		return nil, errors.NewValidationError([]errors.FieldError{
			{Field: "age", Message: "age must be a number"},
		})
	}

	profile := &models.HelperProfile{
		Name:         fields.Name,
		Age:          age,
		Gender:       fields.Gender,
		MobileNumber: fields.MobileNumber,
		Country:      geoState.Country,
		State:        geoState.State,
		City:         geoState.City,
		Pincode:      fields.Pincode,
		Wages:        fields.Wages,
		FarmingType:  fields.FarmingType,
		Machinery:    fields.Machinery,
	}

	created, err := f.service.Register(ctx, profile)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	f.fields = Fields{}
	f.mu.Unlock()
	f.cascade.Reset()

	return created, nil
}

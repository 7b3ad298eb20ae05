// internal/gateway/handlers_test.go
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helper-directory/internal/common/errors"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/models"
	"helper-directory/internal/screens/registration"
	"helper-directory/internal/screens/search"
	"helper-directory/pkg/catalog"
)

type fakeLookup struct {
	failStates bool
}

func (f *fakeLookup) ListCountries(context.Context) ([]models.GeoEntity, error) {
	return []models.GeoEntity{{Code: "IN", Name: "India"}}, nil
}

func (f *fakeLookup) ListStates(_ context.Context, countryCode string) ([]models.GeoEntity, error) {
	if f.failStates {
		return nil, errors.NewLookupError(models.GeoScopeState, assert.AnError)
	}
	return []models.GeoEntity{{Code: "TS", Name: "Telangana", ParentCode: countryCode}}, nil
}

func (f *fakeLookup) ListCities(_ context.Context, _, stateCode string) ([]models.GeoEntity, error) {
	return []models.GeoEntity{{Name: "Warangal", ParentCode: stateCode}}, nil
}

type fakeDirectory struct {
	helpersByPin map[string][]models.HelperProfile
	failCreate   error
	failFetch    bool
}

func (f *fakeDirectory) CreateHelper(_ context.Context, p *models.HelperProfile) (*models.HelperProfile, error) {
	if f.failCreate != nil {
		return nil, f.failCreate
	}
	out := *p
	out.ID = "h-1"
	return &out, nil
}

func (f *fakeDirectory) ListByPincode(_ context.Context, pincode string) ([]models.HelperProfile, error) {
	if f.failFetch {
		return nil, errors.NewSearchError(assert.AnError)
	}
	return f.helpersByPin[pincode], nil
}

func newTestRouter(lookup *fakeLookup, dir *fakeDirectory) *mux.Router {
	log := logger.NewNoOpLogger()
	cat := catalog.Default()
	h := NewHandlers(lookup, registration.NewService(dir, cat, log), search.NewService(dir, log), cat, log)

	r := mux.NewRouter()
	h.Register(r.PathPrefix("/api/v1").Subrouter())
	return r
}

func doRequest(t *testing.T, router *mux.Router, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validHelperBody = `{
	"name": "Ramesh Kumar",
	"age": 34,
	"gender": "male",
	"mobilenumber": "9876543210",
	"country": "IN",
	"state": "TS",
	"city": "Warangal",
	"pincode": "500001",
	"wages": "501 - 1000",
	"farmingType": "organic"
}`

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleCountries(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/geo/countries", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var countries []models.GeoEntity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &countries))
	require.Len(t, countries, 1)
	assert.Equal(t, "IN", countries[0].Code)
}

func TestHandleStates_LookupFailureIsBadGateway(t *testing.T) {
	router := newTestRouter(&fakeLookup{failStates: true}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/geo/countries/IN/states", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, errors.ErrCodeGeoLookupFailed, appErr.Code)
}

func TestHandleCities(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/geo/countries/IN/states/TS/cities", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cities []models.GeoEntity
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cities))
	require.Len(t, cities, 1)
	assert.Equal(t, "Warangal", cities[0].Name)
}

func TestHandleCatalog(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/catalog", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cat))
	assert.NotEmpty(t, cat.FarmingTypes)
	assert.NotEmpty(t, cat.WageBands)
}

func TestHandleCreateHelper_Success(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/helpers", validHelperBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.HelperProfile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "h-1", created.ID)
}

func TestHandleCreateHelper_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", "not json"},
		{"missing required field", `{"name":"Ramesh"}`},
		{"bad mobile pattern", strings.Replace(validHelperBody, "9876543210", "98765", 1)},
		{"age below minimum", strings.Replace(validHelperBody, `"age": 34`, `"age": 0`, 1)},
		{"unknown extra field", strings.Replace(validHelperBody, `"farmingType": "organic"`, `"farmingType": "organic", "admin": true`, 1)},
	}

	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, router, http.MethodPost, "/api/v1/helpers", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		})
	}
}

func TestHandleCreateHelper_UnknownCatalogValueIs422(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	body := strings.Replace(validHelperBody, `"farmingType": "organic"`, `"farmingType": "vertical"`, 1)
	rec := doRequest(t, router, http.MethodPost, "/api/v1/helpers", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, errors.ErrCodeValidationFailed, appErr.Code)
	assert.NotEmpty(t, appErr.Fields)
}

func TestHandleCreateHelper_UpstreamFailureIsBadGateway(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{
		failCreate: errors.NewSubmissionError("Mobile number already registered", assert.AnError),
	})

	rec := doRequest(t, router, http.MethodPost, "/api/v1/helpers", validHelperBody)
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, "Mobile number already registered", appErr.Message)
}

func TestHandleSearch_FiltersByQueryParams(t *testing.T) {
	dir := &fakeDirectory{helpersByPin: map[string][]models.HelperProfile{
		"500001": {
			{ID: "h1", Pincode: "500001", FarmingType: models.FarmingOrganic},
			{ID: "h2", Pincode: "500001", FarmingType: models.FarmingModern},
			{ID: "h3", Pincode: "500001", FarmingType: models.FarmingOrganic},
		},
	}}
	router := newTestRouter(&fakeLookup{}, dir)

	rec := doRequest(t, router, http.MethodGet, "/api/v1/helpers/search?pincode=500001&farmingType=organic", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result search.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, search.OutcomeResults, result.Outcome)
	require.Len(t, result.Helpers, 2)
	assert.Equal(t, "h1", result.Helpers[0].ID)
	assert.Equal(t, "h3", result.Helpers[1].ID)
}

func TestHandleSearch_EmptyPincodeIsNoResults(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/helpers/search", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result search.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, search.OutcomeNoResults, result.Outcome)
	assert.Empty(t, result.Helpers)
}

func TestHandleSearch_FetchFailureIsBadGateway(t *testing.T) {
	router := newTestRouter(&fakeLookup{}, &fakeDirectory{failFetch: true})

	rec := doRequest(t, router, http.MethodGet, "/api/v1/helpers/search?pincode=500001", "")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var appErr errors.AppError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &appErr))
	assert.Equal(t, errors.ErrCodeSearchFetchFailed, appErr.Code)
}

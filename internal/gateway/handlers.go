// internal/gateway/handlers.go
package gateway

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"helper-directory/internal/common/errors"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/geo"
	"helper-directory/internal/models"
	"helper-directory/internal/screens/registration"
	"helper-directory/internal/screens/search"
	"helper-directory/pkg/catalog"
)

// Handlers is the HTTP surface over the helper directory subsystem: geo
// proxy endpoints for the cascading selects, the option catalog, helper
// registration, and the pincode-scoped search.
type Handlers struct {
	geo          geo.Lookup
	registration *registration.Service
	search       *search.Service
	catalog      *catalog.Catalog
	logger       logger.Logger
}

func NewHandlers(lookup geo.Lookup, reg *registration.Service, srch *search.Service, cat *catalog.Catalog, log logger.Logger) *Handlers {
	return &Handlers{
		geo:          lookup,
		registration: reg,
		search:       srch,
		catalog:      cat,
		logger:       log.WithFields(map[string]interface{}{"component": "gateway"}),
	}
}

// Register mounts all routes on the router.
func (h *Handlers) Register(api *mux.Router) {
	api.HandleFunc("/geo/countries", h.handleCountries).Methods(http.MethodGet)
	api.HandleFunc("/geo/countries/{countryCode}/states", h.handleStates).Methods(http.MethodGet)
	api.HandleFunc("/geo/countries/{countryCode}/states/{stateCode}/cities", h.handleCities).Methods(http.MethodGet)
	api.HandleFunc("/catalog", h.handleCatalog).Methods(http.MethodGet)
	api.HandleFunc("/helpers", h.handleCreateHelper).Methods(http.MethodPost)
	api.HandleFunc("/helpers/search", h.handleSearch).Methods(http.MethodGet)
	api.HandleFunc("/health", h.handleHealth).Methods(http.MethodGet)
}

func (h *Handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handlers) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog)
}

func (h *Handlers) handleCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.geo.ListCountries(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, countries)
}

func (h *Handlers) handleStates(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	states, err := h.geo.ListStates(r.Context(), vars["countryCode"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, states)
}

func (h *Handlers) handleCities(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cities, err := h.geo.ListCities(r.Context(), vars["countryCode"], vars["stateCode"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

func (h *Handlers) handleCreateHelper(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.writeError(w, errors.NewValidationError([]errors.FieldError{
			{Field: "body", Message: "unable to read request body"},
		}))
		return
	}

	if appErr := validateHelperBody(body); appErr != nil {
		h.writeError(w, appErr)
		return
	}

	var profile models.HelperProfile
	if err := json.Unmarshal(body, &profile); err != nil {
		h.writeError(w, errors.NewValidationError([]errors.FieldError{
			{Field: "body", Message: "invalid JSON"},
		}))
		return
	}

	created, err := h.registration.Register(r.Context(), &profile)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := models.SearchCriteria{
		Country:     q.Get("country"),
		State:       q.Get("state"),
		City:        q.Get("city"),
		FarmingType: q.Get("farmingType"),
		Wages:       q.Get("wages"),
		Age:         q.Get("age"),
	}

	result, err := h.search.Search(r.Context(), q.Get("pincode"), criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeError maps the error taxonomy onto HTTP statuses: validation
// failures are the caller's fault (422), upstream failures are bad
// gateway (502). Anything else is an unexpected 500.
func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	appErr, ok := errors.AsAppError(err)
	if !ok {
		h.logger.Error("unclassified error", map[string]interface{}{"error": err.Error()})
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	status := http.StatusBadGateway
	if appErr.Code == errors.ErrCodeValidationFailed {
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, appErr)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

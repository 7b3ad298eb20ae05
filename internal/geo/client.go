// internal/geo/client.go
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"helper-directory/internal/common/errors"
	commonhttp "helper-directory/internal/common/http"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/common/metrics"
	"helper-directory/internal/models"
)

// Lookup is the read-only contract for the external geo-reference service.
// Every failure comes back as an *errors.AppError carrying the attempted
// scope; callers get an empty slice plus the error, never a panic.
type Lookup interface {
	ListCountries(ctx context.Context) ([]models.GeoEntity, error)
	ListStates(ctx context.Context, countryCode string) ([]models.GeoEntity, error)
	ListCities(ctx context.Context, countryCode, stateCode string) ([]models.GeoEntity, error)
}

// Client talks to the countrystatecity-style reference API, authenticated
// by a static key sent as the X-CSCAPI-KEY header.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *commonhttp.Client
	logger     logger.Logger
}

const apiKeyHeader = "X-CSCAPI-KEY"

func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: commonhttp.NewClient(timeout),
		logger:     log.WithFields(map[string]interface{}{"component": "geo-client"}),
	}
}

func (c *Client) ListCountries(ctx context.Context) ([]models.GeoEntity, error) {
	return c.list(ctx, models.GeoScopeCountry, c.baseURL+"/countries", "")
}

func (c *Client) ListStates(ctx context.Context, countryCode string) ([]models.GeoEntity, error) {
	if countryCode == "" {
		return nil, errors.NewLookupError(models.GeoScopeState, fmt.Errorf("countryCode is required"))
	}
	endpoint := fmt.Sprintf("%s/countries/%s/states", c.baseURL, url.PathEscape(countryCode))
	return c.list(ctx, models.GeoScopeState, endpoint, countryCode)
}

func (c *Client) ListCities(ctx context.Context, countryCode, stateCode string) ([]models.GeoEntity, error) {
	if countryCode == "" || stateCode == "" {
		return nil, errors.NewLookupError(models.GeoScopeCity, fmt.Errorf("countryCode and stateCode are required"))
	}
	endpoint := fmt.Sprintf("%s/countries/%s/states/%s/cities",
		c.baseURL, url.PathEscape(countryCode), url.PathEscape(stateCode))
	return c.list(ctx, models.GeoScopeCity, endpoint, stateCode)
}

// list issues one GET and decodes the ordered {iso2,name} records. The
// parent code is stamped onto each entity so downstream invalidation can
// tell which selection a list belongs to.
func (c *Client) list(ctx context.Context, scope models.GeoScope, endpoint, parentCode string) ([]models.GeoEntity, error) {
	start := time.Now()

	entities, err := c.fetch(ctx, endpoint)
	metrics.GeoLookupDuration.WithLabelValues(string(scope)).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.GeoLookups.WithLabelValues(string(scope), "error").Inc()
		c.logger.Warn("geo lookup failed", map[string]interface{}{
			"scope": string(scope),
			"error": err.Error(),
		})
		return nil, errors.NewLookupError(scope, err)
	}

	for i := range entities {
		entities[i].ParentCode = parentCode
	}

	metrics.GeoLookups.WithLabelValues(string(scope), "success").Inc()
	return entities, nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]models.GeoEntity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var entities []models.GeoEntity
	if err := json.NewDecoder(resp.Body).Decode(&entities); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return entities, nil
}

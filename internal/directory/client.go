// internal/directory/client.go
package directory

import (
	"bytes"
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
	"helper-directory/internal/models"
)

// Service is the boundary to the helper-directory backend. The backend is
// a black box here: this subsystem only creates profiles and fetches the
// pincode-scoped candidate set.
type Service interface {
	CreateHelper(ctx context.Context, profile *models.HelperProfile) (*models.HelperProfile, error)
	ListByPincode(ctx context.Context, pincode string) ([]models.HelperProfile, error)
}

// Client is the HTTP implementation of Service.
type Client struct {
	baseURL    string
	httpClient *commonhttp.Client
	logger     logger.Logger
}

// errorBody is the failure payload shape the backend returns.
type errorBody struct {
	Error string `json:"error"`
}

func NewClient(baseURL string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: commonhttp.NewClient(timeout),
		logger:     log.WithFields(map[string]interface{}{"component": "directory-client"}),
	}
}

// CreateHelper posts the profile (without id) and returns the created
// record. A non-2xx response surfaces the server-provided error message
// when one is present.
func (c *Client) CreateHelper(ctx context.Context, profile *models.HelperProfile) (*models.HelperProfile, error) {
	payload := *profile
	payload.ID = ""

	jsonData, err := json.Marshal(&payload)
	if err != nil {
		return nil, errors.NewSubmissionError("", fmt.Errorf("failed to marshal profile: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/helpers", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.NewSubmissionError("", fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewSubmissionError("", fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewSubmissionError("", fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var eb errorBody
		_ = json.Unmarshal(body, &eb)
		c.logger.Warn("helper create rejected", map[string]interface{}{
			"status": resp.StatusCode,
			"error":  eb.Error,
		})
		return nil, errors.NewSubmissionError(eb.Error,
			fmt.Errorf("create helper failed with status %d", resp.StatusCode))
	}

	created := payload
	if len(body) > 0 {
		// Some deployments return the created record, others a bare
		// acknowledgement; tolerate both.
		_ = json.Unmarshal(body, &created)
	}

	return &created, nil
}

// ListByPincode fetches the candidate set scoped to one pincode, in server
// order.
func (c *Client) ListByPincode(ctx context.Context, pincode string) ([]models.HelperProfile, error) {
	endpoint := fmt.Sprintf("%s/helpers/%s", c.baseURL, url.PathEscape(pincode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewSearchError(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewSearchError(fmt.Errorf("failed to execute request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.NewSearchError(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}

	var helpers []models.HelperProfile
	if err := json.NewDecoder(resp.Body).Decode(&helpers); err != nil {
		return nil, errors.NewSearchError(fmt.Errorf("failed to decode response: %w", err))
	}

	return helpers, nil
}

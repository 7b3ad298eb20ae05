// internal/screens/search/service_test.go
package search

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helper-directory/internal/common/errors"
	"helper-directory/internal/common/logger"
	"helper-directory/internal/models"
)

// fakeDirectory implements directory.Service in memory. Individual
// pincodes can be gated so a test can hold one fetch open while a later
// one completes.
type fakeDirectory struct {
	mu           sync.Mutex
	helpersByPin map[string][]models.HelperProfile
	failFetch    bool
	fetchCalls   int
	createCalls  int

	started map[string]chan struct{}
	gates   map[string]chan struct{}
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		helpersByPin: make(map[string][]models.HelperProfile),
		started:      make(map[string]chan struct{}),
		gates:        make(map[string]chan struct{}),
	}
}

func (f *fakeDirectory) CreateHelper(_ context.Context, profile *models.HelperProfile) (*models.HelperProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.createCalls++
	created := *profile
	created.ID = fmt.Sprintf("helper-%d", f.createCalls)
	f.helpersByPin[created.Pincode] = append(f.helpersByPin[created.Pincode], created)
	return &created, nil
}

func (f *fakeDirectory) ListByPincode(_ context.Context, pincode string) ([]models.HelperProfile, error) {
	f.mu.Lock()
	f.fetchCalls++
	started := f.started[pincode]
	gate := f.gates[pincode]
	fail := f.failFetch
	helpers := append([]models.HelperProfile(nil), f.helpersByPin[pincode]...)
	f.mu.Unlock()

	if started != nil {
		close(started)
	}
	if gate != nil {
		<-gate
	}
	if fail {
		return nil, errors.NewSearchError(fmt.Errorf("connection refused"))
	}
	return helpers, nil
}

func TestService_Search_FiltersByFarmingType(t *testing.T) {
	dir := newFakeDirectory()
	p1 := createTestProfile()
	p1.ID = "h1"
	p2 := createTestProfile()
	p2.ID = "h2"
	p2.FarmingType = models.FarmingModern
	p3 := createTestProfile()
	p3.ID = "h3"
	dir.helpersByPin["500001"] = []models.HelperProfile{p1, p2, p3}

	svc := NewService(dir, logger.NewNoOpLogger())

	result, err := svc.Search(context.Background(), "500001",
		models.SearchCriteria{FarmingType: models.FarmingOrganic})

	require.NoError(t, err)
	assert.Equal(t, OutcomeResults, result.Outcome)
	require.Len(t, result.Helpers, 2)
	assert.Equal(t, "h1", result.Helpers[0].ID)
	assert.Equal(t, "h3", result.Helpers[1].ID)
}

func TestService_Search_EmptyFetchIsNoResultsNotError(t *testing.T) {
	dir := newFakeDirectory()
	svc := NewService(dir, logger.NewNoOpLogger())

	result, err := svc.Search(context.Background(), "999999", models.SearchCriteria{})

	require.NoError(t, err)
	assert.Equal(t, OutcomeNoResults, result.Outcome)
	assert.Empty(t, result.Helpers)
}

func TestService_Search_FetchFailureIsSearchError(t *testing.T) {
	dir := newFakeDirectory()
	dir.failFetch = true
	svc := NewService(dir, logger.NewNoOpLogger())

	_, err := svc.Search(context.Background(), "500001", models.SearchCriteria{})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeSearchFetchFailed))
}

func TestService_Search_EmptyPincodeSkipsFetch(t *testing.T) {
	dir := newFakeDirectory()
	svc := NewService(dir, logger.NewNoOpLogger())

	result, err := svc.Search(context.Background(), "", models.SearchCriteria{Country: "IN"})

	require.NoError(t, err)
	assert.Equal(t, OutcomeNoResults, result.Outcome)
	assert.Empty(t, result.Helpers)
	assert.Equal(t, 0, dir.fetchCalls, "empty pincode must not issue a fetch")
}

func TestService_Search_NoCriteriaReturnsFullPincodeSet(t *testing.T) {
	dir := newFakeDirectory()
	p1 := createTestProfile()
	p2 := createTestProfile()
	p2.ID = "h2"
	p2.FarmingType = models.FarmingAquaculture
	dir.helpersByPin["500001"] = []models.HelperProfile{p1, p2}

	svc := NewService(dir, logger.NewNoOpLogger())

	result, err := svc.Search(context.Background(), "500001", models.SearchCriteria{})

	require.NoError(t, err)
	assert.Equal(t, OutcomeResults, result.Outcome)
	assert.Len(t, result.Helpers, 2)
}

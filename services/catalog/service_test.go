package catalog

import (
	"context"
	"encoding/json"
	"testing"

	"dogspot/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryFeedCache is an in-process FeedCache for tests.
type memoryFeedCache struct {
	entries map[string][]byte
	hits    int
	misses  int
}

func newMemoryFeedCache() *memoryFeedCache {
	return &memoryFeedCache{entries: map[string][]byte{}}
}

func (m *memoryFeedCache) Get(ctx context.Context, kind string, dest interface{}) (bool, error) {
	data, ok := m.entries[kind]
	if !ok {
		m.misses++
		return false, nil
	}
	m.hits++
	return true, json.Unmarshal(data, dest)
}

func (m *memoryFeedCache) Set(ctx context.Context, kind string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[kind] = data
	return nil
}

func (m *memoryFeedCache) Invalidate(ctx context.Context, kind string) error {
	delete(m.entries, kind)
	return nil
}

type stubRequestRepo struct {
	requests []models.Request
	calls    int
}

func (s *stubRequestRepo) GetByID(id string) (*models.Request, error)              { return nil, nil }
func (s *stubRequestRepo) GetByClientID(clientID string) ([]models.Request, error) { return nil, nil }
func (s *stubRequestRepo) Create(request *models.Request) error                    { return nil }
func (s *stubRequestRepo) Update(request *models.Request) error                    { return nil }
func (s *stubRequestRepo) Delete(id string) error                                  { return nil }

func (s *stubRequestRepo) GetAll() ([]models.Request, error) {
	s.calls++
	return s.requests, nil
}

func TestFeedServiceCachesSourceSnapshots(t *testing.T) {
	repo := &stubRequestRepo{requests: []models.Request{
		mkRequest("1", "a", 45, day(2)),
		mkRequest("2", "b", 80, day(1)),
	}}
	cache := newMemoryFeedCache()
	svc := &DefaultFeedService{RequestRepo: repo, Cache: cache}

	out, err := svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(out))
	assert.Equal(t, 1, repo.calls)

	out, err = svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, ids(out))
	assert.Equal(t, 1, repo.calls, "second read must come from the cache")
	assert.Equal(t, 1, cache.hits)
}

func TestFeedServiceRereadsAfterInvalidation(t *testing.T) {
	repo := &stubRequestRepo{requests: []models.Request{mkRequest("1", "a", 45, day(1))}}
	cache := newMemoryFeedCache()
	svc := &DefaultFeedService{RequestRepo: repo, Cache: cache}

	_, err := svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(context.Background(), KindRequests))
	repo.requests = append(repo.requests, mkRequest("2", "b", 80, day(2)))

	out, err := svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, 2, repo.calls)
}

func TestFeedServiceWorksWithoutCache(t *testing.T) {
	repo := &stubRequestRepo{requests: []models.Request{mkRequest("1", "a", 45, day(1))}}
	svc := &DefaultFeedService{RequestRepo: repo}

	out, err := svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)
	assert.Len(t, out, 1)

	_, err = svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}

func TestFeedServiceFiltersApplyToCachedSnapshots(t *testing.T) {
	repo := &stubRequestRepo{requests: []models.Request{
		mkRequest("1", "a", 45, day(1)),
		mkRequest("2", "b", 480, day(2)),
	}}
	cache := newMemoryFeedCache()
	svc := &DefaultFeedService{RequestRepo: repo, Cache: cache}

	_, err := svc.Requests(context.Background(), "", models.DefaultFilterOptions(), "")
	require.NoError(t, err)

	f := models.DefaultFilterOptions()
	f.PriceRange = [2]float64{0, 100}
	out, err := svc.Requests(context.Background(), "", f, "")
	require.NoError(t, err)
	// The cache stores the raw snapshot; every call runs the pipeline.
	assert.Equal(t, []string{"1"}, ids(out))
}

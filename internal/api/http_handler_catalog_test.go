package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/cache"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper function to get a pointer (useful for optional fields).
func PtrTo[T any](v T) *T {
	return &v
}

func jsonBody(t *testing.T, payload any) *bytes.Buffer {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func postJSON(t *testing.T, url string, payload any) *http.Response {
	t.Helper()

	res, err := http.Post(url, "application/json", jsonBody(t, payload))
	require.NoError(t, err)
	return res
}

func TestHTTPHandler_GetCatalog_Success(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	expected := &domain.APIResponse[domain.Catalog]{
		Value: []domain.Catalog{
			{ID: "c-1", Name: "Shirt", Price: 19.99},
			{ID: "c-2", Name: "Hat", Price: 9.5},
		},
		Count: PtrTo(int64(25)),
	}
	mockCatalog.On("List", mock.Anything, env.browser.Query()).Return(expected, nil).Once()

	res, err := http.Get(env.server.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var page catalogPageResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&page))
	require.Len(t, page.Value, 2)
	assert.Equal(t, "c-1", page.Value[0].ID)
	require.NotNil(t, page.Pagination)
	assert.Equal(t, int64(25), page.Pagination.TotalItems)
	assert.Equal(t, 3, page.Pagination.TotalPages)
	assert.Equal(t, 1, page.Pagination.Page)

	mockCatalog.AssertExpectations(t)
}

func TestHTTPHandler_GetCatalog_ServedFromCache(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	expected := &domain.APIResponse[domain.Catalog]{
		Value: []domain.Catalog{{ID: "c-1", Name: "Shirt"}},
	}
	mockCatalog.On("List", mock.Anything, mock.Anything).Return(expected, nil).Once()

	for i := 0; i < 2; i++ {
		res, err := http.Get(env.server.URL + "/api/v1/catalog")
		require.NoError(t, err)
		res.Body.Close()
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	// Once(): a second List call would fail the expectation.
	mockCatalog.AssertExpectations(t)
}

func TestHTTPHandler_GetCatalog_NotConfigured(t *testing.T) {
	env := setupTestChiServer(t, nil, nil, nil, nil)

	res, err := http.Get(env.server.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer res.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestHTTPHandler_GetCatalog_UpstreamMessageSurfaced(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	upstreamErr := &remote.APIError{StatusCode: http.StatusInternalServerError, Message: "catalog is on fire"}
	mockCatalog.On("List", mock.Anything, mock.Anything).Return(nil, upstreamErr).Once()

	res, err := http.Get(env.server.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusBadGateway, res.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "catalog is on fire", body.Error)
}

func TestHTTPHandler_SetCatalogFilters_CommitsImmediately(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	res := postJSON(t, env.server.URL+"/api/v1/catalog/filters", FilterInput{Name: "Shirt"})
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	q := env.browser.Query()
	assert.Equal(t, "name contains 'Shirt'", q.Filter)
	assert.Equal(t, 0, q.Skip, "filter change should reset to the first page")
}

func TestHTTPHandler_SetCatalogSearch_Debounced(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	res := postJSON(t, env.server.URL+"/api/v1/catalog/search", SearchInput{Term: "shoes"})
	res.Body.Close()
	require.Equal(t, http.StatusAccepted, res.StatusCode)

	// Not committed yet.
	assert.Empty(t, env.browser.Query().Search)

	require.Eventually(t, func() bool {
		return env.browser.Query().Search == "shoes"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHTTPHandler_SetCatalogPage_MovesSkip(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	res := postJSON(t, env.server.URL+"/api/v1/catalog/page", PageInput{Page: 3})
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, 20, env.browser.Query().Skip)
}

func TestHTTPHandler_SetCatalogPage_RejectsInvalidPage(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	res := postJSON(t, env.server.URL+"/api/v1/catalog/page", map[string]int{"page": 0})
	defer res.Body.Close()

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestHTTPHandler_GetCatalogItem_NotFound(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	mockCatalog.On("Get", mock.Anything, "missing").Return(nil, remote.ErrNotFound).Once()

	res, err := http.Get(env.server.URL + "/api/v1/catalog/missing")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusNotFound, res.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Equal(t, "Could not retrieve the catalog item", body.Error)
}

func TestHTTPHandler_LikeCatalogItem_PatchesCache(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	env.cache.Set(cache.Key{Path: catalogPath, Ref: "c-1"}, &domain.Catalog{ID: "c-1", Name: "Shirt", Liked: false})
	env.cache.Set(cache.Key{Path: catalogPath, Ref: env.browser.Query().Encode()}, &domain.APIResponse[domain.Catalog]{
		Value: []domain.Catalog{
			{ID: "c-1", Name: "Shirt", Liked: false},
			{ID: "c-2", Name: "Hat", Liked: false},
		},
	})

	mockCatalog.On("Like", mock.Anything, "c-1").Return(nil).Once()

	res := postJSON(t, env.server.URL+"/api/v1/catalog/c-1/like", nil)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	v, ok := env.cache.Get(cache.Key{Path: catalogPath, Ref: "c-1"})
	require.True(t, ok)
	assert.True(t, v.(*domain.Catalog).Liked)

	v, ok = env.cache.Get(cache.Key{Path: catalogPath, Ref: env.browser.Query().Encode()})
	require.True(t, ok)
	list := v.(*domain.APIResponse[domain.Catalog])
	assert.True(t, list.Value[0].Liked, "liked item should be patched in the cached page")
	assert.False(t, list.Value[1].Liked, "other items must be untouched")

	mockCatalog.AssertExpectations(t)
}

func TestHTTPHandler_UnlikeCatalogItem_DoesNotPatchOnFailure(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	env.cache.Set(cache.Key{Path: catalogPath, Ref: "c-1"}, &domain.Catalog{ID: "c-1", Liked: true})

	mockCatalog.On("Unlike", mock.Anything, "c-1").Return(remote.ErrUnauthorized).Once()

	req, err := http.NewRequest(http.MethodDelete, env.server.URL+"/api/v1/catalog/c-1/like", nil)
	require.NoError(t, err)

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	v, ok := env.cache.Get(cache.Key{Path: catalogPath, Ref: "c-1"})
	require.True(t, ok)
	assert.True(t, v.(*domain.Catalog).Liked, "cached state must not change when the call fails")
}

// Two list fetches for the same key racing: the later fetch wins even if the
// earlier response arrives after it.
func TestHTTPHandler_GetCatalog_StaleFetchDiscarded(t *testing.T) {
	env := setupTestChiServer(t, nil, new(MockCatalogService), nil, nil)

	key := cache.Key{Path: catalogPath, Ref: env.browser.Query().Encode()}

	first := env.cache.Begin(key)
	second := env.cache.Begin(key)

	fresh := &domain.APIResponse[domain.Catalog]{Value: []domain.Catalog{{ID: "fresh"}}}
	require.True(t, env.cache.Commit(key, second, fresh))

	stale := &domain.APIResponse[domain.Catalog]{Value: []domain.Catalog{{ID: "stale"}}}
	require.False(t, env.cache.Commit(key, first, stale))

	v, ok := env.cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, "fresh", v.(*domain.APIResponse[domain.Catalog]).Value[0].ID)
}

func TestHTTPHandler_GetCatalog_EmptyResultIsEmptyArray(t *testing.T) {
	mockCatalog := new(MockCatalogService)
	env := setupTestChiServer(t, nil, mockCatalog, nil, nil)

	mockCatalog.On("List", mock.Anything, mock.Anything).
		Return(&domain.APIResponse[domain.Catalog]{Value: nil}, nil).Once()

	res, err := http.Get(env.server.URL + "/api/v1/catalog")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var raw struct {
		Value []json.RawMessage `json:"value"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&raw))
	assert.NotNil(t, raw.Value)
	assert.Empty(t, raw.Value)
}

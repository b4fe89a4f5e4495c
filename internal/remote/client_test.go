package remote

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/domain"
	"github.com/Jamess-Lucass/ecommerce-shop-ui/internal/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogClient_List_SendsCanonicalQuery(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		assert.Equal(t, "/api/v1/catalog", r.URL.Path)
		json.NewEncoder(w).Encode(domain.APIResponse[domain.Catalog]{
			Value: []domain.Catalog{{ID: "c-1", Name: "shirt", Price: 19.99}},
			Count: ptrTo(int64(25)),
		})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL, server.Client(), nil)

	q := query.Query{Top: 12, Skip: 12, Search: "shirt", Count: true}
	res, err := c.List(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, q.Encode(), gotQuery, "request query matches the cache key encoding")
	require.Len(t, res.Value, 1)
	assert.Equal(t, "c-1", res.Value[0].ID)
	require.NotNil(t, res.Count)
	assert.Equal(t, int64(25), *res.Count)
}

func TestClient_AttachesCredentialsAndRequestID(t *testing.T) {
	var gotCookie, gotAuth, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(domain.User{ID: "u-1"})
	}))
	defer server.Close()

	c := NewIdentityClient(server.URL, server.Client(), nil)

	ctx := WithCredentials(context.Background(), Credentials{
		Cookie:        "session=abc",
		Authorization: "Bearer token",
	})
	_, err := c.Me(ctx)
	require.NoError(t, err)

	assert.Equal(t, "session=abc", gotCookie)
	assert.Equal(t, "Bearer token", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_MapsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "basket not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	c := NewBasketClient(server.URL, server.Client(), nil)

	_, err := c.Get(context.Background(), "b-404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_MapsUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	c := NewIdentityClient(server.URL, server.Client(), nil)

	_, err := c.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_CarriesServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "catalog is on fire"})
	}))
	defer server.Close()

	c := NewCatalogClient(server.URL, server.Client(), nil)

	_, err := c.Get(context.Background(), "c-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "catalog is on fire", apiErr.Message)
}

func TestClient_RequestCancellation(t *testing.T) {
	started := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer server.Close()

	c := NewOrderClient(server.URL, server.Client(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.List(ctx)
		errCh <- err
	}()

	<-started
	cancel()

	err := <-errCh
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled), "cancellation should surface as context.Canceled, got: %v", err)
}

func TestBasketClient_UpdateSendsBodyAndDecodesServerState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/baskets/b-1", r.URL.Path)

		var sent domain.Basket
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		require.Len(t, sent.Items, 1)

		// Server assigns line ids and price snapshots.
		sent.Items[0].ID = "i-1"
		sent.Items[0].Price = 19.99
		json.NewEncoder(w).Encode(sent)
	}))
	defer server.Close()

	c := NewBasketClient(server.URL, server.Client(), nil)

	updated, err := c.Update(context.Background(), domain.Basket{
		ID:    "b-1",
		Items: []domain.BasketItem{{CatalogID: "c-1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "i-1", updated.Items[0].ID)
	assert.Equal(t, 19.99, updated.Items[0].Price)
}

func ptrTo[T any](v T) *T {
	return &v
}

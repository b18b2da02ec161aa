package httpapi_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maatini/radixmap/authmw"
	"github.com/maatini/radixmap/httpapi"
	"github.com/maatini/radixmap/radix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMap(t *testing.T, pairs ...string) httpapi.StringMap {
	t.Helper()
	entries := make([]radix.Entry[radix.StringKey, string], 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		entries = append(entries, radix.Entry[radix.StringKey, string]{
			Key: radix.StringKey(pairs[i]), Value: pairs[i+1],
		})
	}
	m, err := radix.New(entries)
	require.NoError(t, err)
	return httpapi.StringMap{M: m}
}

func TestServer_Lookup(t *testing.T) {
	m := buildMap(t, "alpha", "1", "beta", "2")
	srv := httpapi.New(nil, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/lookup/alpha", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"value":"1"`)
}

func TestServer_LookupMissing(t *testing.T) {
	m := buildMap(t, "alpha", "1")
	srv := httpapi.New(nil, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/lookup/nope", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Stats(t *testing.T) {
	m := buildMap(t, "alpha", "1", "beta", "2", "gamma", "3")
	srv := httpapi.New(nil, m, nil)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Contains(t, rec.Body.String(), `"entries":3`)
}

func TestServer_ReloadRequiresAuth(t *testing.T) {
	secret := []byte("test-secret")
	m := buildMap(t, "alpha", "1")
	srv := httpapi.New(secret, m, func() (httpapi.Lookuper, error) {
		return buildMap(t, "alpha", "1", "beta", "2"), nil
	})

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, err := authmw.IssueToken(secret, "ops", time.Minute)
	require.NoError(t, err)

	req2 := httptest.NewRequest(http.MethodPost, "/reload", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	rec2 := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec2, req2)
	assert.Equal(t, http.StatusNoContent, rec2.Code)
}

func TestServer_ReloadInvalidDatasetReturnsBadRequest(t *testing.T) {
	secret := []byte("test-secret")
	m := buildMap(t, "alpha", "1")
	srv := httpapi.New(secret, m, func() (httpapi.Lookuper, error) {
		return nil, radix.ErrInvalidInput
	})

	token, err := authmw.IssueToken(secret, "ops", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ReloadStoreFailureReturnsInternalError(t *testing.T) {
	secret := []byte("test-secret")
	m := buildMap(t, "alpha", "1")
	srv := httpapi.New(secret, m, func() (httpapi.Lookuper, error) {
		return nil, errors.New("open store: disk unavailable")
	})

	token, err := authmw.IssueToken(secret, "ops", time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/reload", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/primus/internal/output"
	"github.com/dshills/primus/internal/prime"
)

func testServer(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	cache, err := prime.New(prime.Size(4096))
	require.NoError(t, err)
	ts := httptest.NewServer(NewServer(cache, apiKey).Routes())
	t.Cleanup(ts.Close)
	return ts
}

func getResult(t *testing.T, ts *httptest.Server, path string) (*output.Result, int) {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var res output.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return &res, resp.StatusCode
}

func TestServer_Check(t *testing.T) {
	ts := testServer(t, "")

	tests := []struct {
		name  string
		path  string
		found bool
		value uint64
	}{
		{"prime", "/v1/primes/97", true, 97},
		{"composite", "/v1/primes/100", false, 0},
		{"one", "/v1/primes/1", false, 0},
		{"two", "/v1/primes/2", true, 2},
		{"beyond cache", "/v1/primes/1000003", true, 1000003},
		{"negative", "/v1/primes/-7", false, 0},
		{"not a number", "/v1/primes/seven", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, status := getResult(t, ts, tt.path)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, tt.found, res.Found)
			if tt.found {
				assert.Equal(t, tt.value, res.Value)
			}
		})
	}
}

func TestServer_NextPrevious(t *testing.T) {
	ts := testServer(t, "")

	res, _ := getResult(t, ts, "/v1/primes/10/next")
	assert.True(t, res.Found)
	assert.Equal(t, uint64(11), res.Value)

	res, _ = getResult(t, ts, "/v1/primes/11/next")
	assert.Equal(t, uint64(13), res.Value)

	res, _ = getResult(t, ts, "/v1/primes/11/next?inclusive=true")
	assert.Equal(t, uint64(11), res.Value)

	res, _ = getResult(t, ts, "/v1/primes/10/previous")
	assert.True(t, res.Found)
	assert.Equal(t, uint64(7), res.Value)

	res, _ = getResult(t, ts, "/v1/primes/2/previous")
	assert.False(t, res.Found)

	res, _ = getResult(t, ts, "/v1/primes/7/previous?inclusive=true")
	assert.Equal(t, uint64(7), res.Value)
}

func TestServer_Between(t *testing.T) {
	ts := testServer(t, "")

	res, status := getResult(t, ts, "/v1/primes?from=10&to=30")
	assert.Equal(t, http.StatusOK, status)
	assert.True(t, res.Found)
	assert.Equal(t, []uint64{11, 13, 17, 19, 23, 29}, res.Values)

	// Inverted bounds are a found-but-empty result.
	res, _ = getResult(t, ts, "/v1/primes?from=30&to=10")
	assert.True(t, res.Found)
	assert.Empty(t, res.Values)

	// Missing bounds are absent.
	res, _ = getResult(t, ts, "/v1/primes?from=10")
	assert.False(t, res.Found)
}

func TestServer_BetweenEmitsEmptyArray(t *testing.T) {
	ts := testServer(t, "")

	resp, err := http.Get(ts.URL + "/v1/primes?from=24&to=28")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	values, ok := raw["values"].([]any)
	require.True(t, ok, "values should be a JSON array, got %T", raw["values"])
	assert.Empty(t, values)
}

func TestServer_Nth(t *testing.T) {
	ts := testServer(t, "")

	res, _ := getResult(t, ts, "/v1/primes/nth/1")
	assert.Equal(t, uint64(2), res.Value)

	res, _ = getResult(t, ts, "/v1/primes/nth/5")
	assert.Equal(t, uint64(11), res.Value)

	res, _ = getResult(t, ts, "/v1/primes/nth/0")
	assert.False(t, res.Found)
}

func TestServer_Factors(t *testing.T) {
	ts := testServer(t, "")

	res, _ := getResult(t, ts, "/v1/factors/360")
	assert.True(t, res.Found)
	assert.Equal(t, []uint64{2, 2, 2, 3, 3, 5}, res.Values)

	res, _ = getResult(t, ts, "/v1/factors/97")
	assert.Equal(t, []uint64{97}, res.Values)

	res, _ = getResult(t, ts, "/v1/factors/1")
	assert.False(t, res.Found)
}

func TestServer_APIKey(t *testing.T) {
	ts := testServer(t, "secret-key")

	// Missing key
	resp, err := http.Get(ts.URL + "/v1/primes/97")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Wrong key
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/v1/primes/97", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "wrong")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// Correct key
	req.Header.Set("X-API-Key", "secret-key")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Health stays open
	resp, err = http.Get(ts.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Health(t *testing.T) {
	ts := testServer(t, "")

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(4096), body["cacheSize"])
}

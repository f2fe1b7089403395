package timecodechandler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/platform/metrics"
)

func get(t *testing.T, path string) (int, map[string]any) {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(metrics.New()).RegisterRoutes(r)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestDecimal(t *testing.T) {
	status, body := get(t, "/time/decimal?value=8:30")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, map[string]any{"value": "8:30", "hours": 8.5}, body["data"])
}

func TestDuration(t *testing.T) {
	status, body := get(t, "/time/duration?value=8h%2015m")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 8.25, body["data"].(map[string]any)["hours"])
}

func TestClock(t *testing.T) {
	status, body := get(t, "/time/clock?value=1.75")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1:45", body["data"].(map[string]any)["clock"])

	status, body = get(t, "/time/clock?value=abc")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "0:00", body["data"].(map[string]any)["clock"])

	status, _ = get(t, "/time/clock")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDecimalRequiresValue(t *testing.T) {
	status, _ := get(t, "/time/decimal")
	assert.Equal(t, http.StatusBadRequest, status)
}

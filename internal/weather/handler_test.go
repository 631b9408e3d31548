package weather

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	snapshot Snapshot
	err      error
	calls    int
}

func (s *stubFetcher) Fetch(_ context.Context, _, _ float64) (Snapshot, error) {
	s.calls++
	if s.err != nil {
		return Snapshot{}, s.err
	}
	return s.snapshot, nil
}

func serveWeather(t *testing.T, h *Handler, path string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/weather/{lat}/{lon}", h.Get)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(rec, req)
	return rec
}

func TestWeatherHandler_InvalidCoordinates(t *testing.T) {
	fetcher := &stubFetcher{}
	h := NewHandler(fetcher, true)

	rec := serveWeather(t, h, "/weather/abc/xyz")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, fetcher.calls, "upstream must not be called for bad coordinates")

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid coordinates", body["error"])
}

func TestWeatherHandler_NotConfigured(t *testing.T) {
	fetcher := &stubFetcher{}
	h := NewHandler(fetcher, false)

	rec := serveWeather(t, h, "/weather/18.34/105.9")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Zero(t, fetcher.calls)
}

func TestWeatherHandler_UpstreamFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection refused")}
	h := NewHandler(fetcher, true)

	rec := serveWeather(t, h, "/weather/18.34/105.9")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Failed to fetch weather data", body["error"])
}

func TestWeatherHandler_Success(t *testing.T) {
	fetcher := &stubFetcher{snapshot: Snapshot{Rain3h: 60, Condition: "Rain"}}
	h := NewHandler(fetcher, true)

	rec := serveWeather(t, h, "/weather/18.34/105.9")

	require.Equal(t, http.StatusOK, rec.Code)

	var report RiskReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 18.34, report.Location.Lat)
	assert.Equal(t, 105.9, report.Location.Lon)
	assert.Equal(t, StatusFlooding, report.Status)
	assert.Equal(t, SeverityHigh, report.Severity)
	assert.Equal(t, 60.0, report.Weather.Rain3h)
}

func TestWeatherHandler_StableReport(t *testing.T) {
	fetcher := &stubFetcher{snapshot: Snapshot{Condition: "Clear"}}
	h := NewHandler(fetcher, true)

	rec := serveWeather(t, h, "/weather/10.8/106.6")

	require.Equal(t, http.StatusOK, rec.Code)

	var report RiskReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, StatusStable, report.Status)
	assert.Equal(t, SeverityLow, report.Severity)
}

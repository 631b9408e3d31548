package weather

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/logging"
)

// Handler serves weather lookups with risk classification.
type Handler struct {
	fetcher    Fetcher
	configured bool
}

// NewHandler creates the weather handler. configured reports whether an
// upstream API key is present; without one every lookup answers 503.
func NewHandler(fetcher Fetcher, configured bool) *Handler {
	return &Handler{
		fetcher:    fetcher,
		configured: configured,
	}
}

// RiskReport is the response for GET /weather/{lat}/{lon}.
type RiskReport struct {
	Location Location `json:"location"`
	Weather  Snapshot `json:"weather"`
	Status   Status   `json:"status"`
	Severity Severity `json:"severity"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Get handles GET /weather/{lat}/{lon}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	// Coordinates must parse before anything touches the upstream.
	lat, latErr := strconv.ParseFloat(chi.URLParam(r, "lat"), 64)
	lon, lonErr := strconv.ParseFloat(chi.URLParam(r, "lon"), 64)
	if latErr != nil || lonErr != nil {
		httputil.RespondError(w, "Invalid coordinates", http.StatusBadRequest)
		return
	}

	if !h.configured {
		httputil.RespondError(w, "Weather service not configured", http.StatusServiceUnavailable)
		return
	}

	snapshot, err := h.fetcher.Fetch(r.Context(), lat, lon)
	if err != nil {
		logger.Error("weather fetch failed", "lat", lat, "lon", lon, "error", err.Error())
		httputil.RespondError(w, "Failed to fetch weather data", http.StatusInternalServerError)
		return
	}

	status := Classify(snapshot)

	httputil.RespondJSON(w, RiskReport{
		Location: Location{Lat: lat, Lon: lon},
		Weather:  snapshot,
		Status:   status,
		Severity: SeverityFor(status),
	}, http.StatusOK)
}

// Package geoanalyst serves disaster-risk analysis for a coordinate pair.
// The AI integration is an external collaborator; until it lands the analysis
// is a fixed assessment, matching upstream behavior.
package geoanalyst

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/vam-insurance/insurance-api/internal/httputil"
	"github.com/vam-insurance/insurance-api/internal/logging"
)

// Handler serves geo analyst endpoints.
type Handler struct {
	clock clockwork.Clock
}

func NewHandler(clock clockwork.Clock) *Handler {
	return &Handler{clock: clock}
}

// AnalyzeRequest is the POST /geo-analyst/analyze body.
type AnalyzeRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// Analysis is the risk assessment for a location.
type Analysis struct {
	Location        AnalyzedLocation `json:"location"`
	RiskLevel       string           `json:"risk_level"`
	DisasterTypes   []string         `json:"disaster_types"`
	Recommendations []string         `json:"recommendations"`
	NearbyDisasters []any            `json:"nearby_disasters"`
	AnalyzedAt      time.Time        `json:"analyzed_at"`
}

type AnalyzedLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address,omitempty"`
}

// Analyze handles POST /geo-analyst/analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	logger := logging.GetLoggerFromContext(r.Context())

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.RespondError(w, "Latitude and longitude are required", http.StatusBadRequest)
		return
	}

	if req.Latitude == nil || req.Longitude == nil {
		httputil.RespondError(w, "Latitude and longitude are required", http.StatusBadRequest)
		return
	}

	logger.Info("geo analysis requested", "lat", *req.Latitude, "lon", *req.Longitude)

	analysis := Analysis{
		Location: AnalyzedLocation{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
			Address:   req.Address,
		},
		RiskLevel:     "Trung bình",
		DisasterTypes: []string{"Lũ lụt", "Bão"},
		Recommendations: []string{
			"Nên mua bảo hiểm thiên tai",
			"Chuẩn bị kế hoạch sơ tán",
			"Kiểm tra hệ thống thoát nước",
		},
		NearbyDisasters: []any{},
		AnalyzedAt:      h.clock.Now().UTC(),
	}

	httputil.RespondJSON(w, analysis, http.StatusOK)
}

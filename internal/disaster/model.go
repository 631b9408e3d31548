package disaster

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vam-insurance/insurance-api/internal/weather"
)

// Location is a monitored disaster-prone location. Status, severity, and
// marker color start at their stable defaults and are updated as weather
// readings come in.
type Location struct {
	ID           uuid.UUID        `json:"id"`
	Province     string           `json:"province"`
	District     *string          `json:"district"`
	Latitude     float64          `json:"latitude"`
	Longitude    float64          `json:"longitude"`
	DisasterType string           `json:"disaster_type"`
	Status       weather.Status   `json:"status"`
	Severity     weather.Severity `json:"severity"`
	MarkerColor  string           `json:"marker_color"`
	WeatherInfo  json.RawMessage  `json:"weather_info,omitempty"`
	LastUpdated  time.Time        `json:"last_updated"`
}

package weather

import "time"

// Snapshot is a point-in-time weather reading for one location. It is
// produced per request from the upstream provider, classified, and discarded;
// nothing here is persisted.
type Snapshot struct {
	Temperature float64   `json:"temperature"`
	FeelsLike   float64   `json:"feels_like"`
	Humidity    float64   `json:"humidity"`
	Pressure    float64   `json:"pressure"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
	WindSpeed   float64   `json:"wind_speed"`
	Clouds      float64   `json:"clouds"`
	Rain1h      float64   `json:"rain_1h"`
	Rain3h      float64   `json:"rain_3h"`
	Visibility  float64   `json:"visibility"`
	FetchedAt   time.Time `json:"fetched_at"`
}

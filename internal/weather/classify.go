package weather

import "strings"

// Status is the discrete risk classification derived from a Snapshot.
type Status string

const (
	StatusStable       Status = "stable"
	StatusFlooding     Status = "flooding"
	StatusStormWarning Status = "storm-warning"
	StatusHeavyRain    Status = "heavy-rain"
)

// Severity is derived purely from Status.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Classify maps a snapshot to a risk status. Rules are checked in strict
// priority order; the first match wins.
func Classify(s Snapshot) Status {
	// Flooding: heavy accumulated rain (>50mm in 3h)
	if s.Rain3h > 50 {
		return StatusFlooding
	}

	// Storm warning: sustained high wind (>20 m/s) or a thunderstorm
	if s.WindSpeed > 20 || strings.EqualFold(s.Condition, "thunderstorm") {
		return StatusStormWarning
	}

	// Heavy rain: moderate rain (>10mm in 1h or >30mm in 3h)
	if s.Rain1h > 10 || s.Rain3h > 30 {
		return StatusHeavyRain
	}

	return StatusStable
}

// SeverityFor derives the severity level for a status.
func SeverityFor(status Status) Severity {
	switch status {
	case StatusFlooding, StatusStormWarning:
		return SeverityHigh
	case StatusHeavyRain:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// MarkerColorFor derives the map marker color for a status.
func MarkerColorFor(status Status) string {
	switch status {
	case StatusFlooding, StatusStormWarning:
		return "red"
	case StatusHeavyRain:
		return "blue"
	default:
		return "green"
	}
}

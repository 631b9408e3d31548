package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		snapshot Snapshot
		want     Status
	}{
		{
			name:     "calm conditions are stable",
			snapshot: Snapshot{Condition: "Clear"},
			want:     StatusStable,
		},
		{
			name:     "heavy 3h rain is flooding",
			snapshot: Snapshot{Rain3h: 51},
			want:     StatusFlooding,
		},
		{
			name:     "flooding outranks wind and condition",
			snapshot: Snapshot{Rain3h: 51, WindSpeed: 30, Condition: "Thunderstorm"},
			want:     StatusFlooding,
		},
		{
			name:     "exactly 50mm in 3h is not flooding",
			snapshot: Snapshot{Rain3h: 50},
			want:     StatusHeavyRain,
		},
		{
			name:     "high wind is a storm warning",
			snapshot: Snapshot{WindSpeed: 25},
			want:     StatusStormWarning,
		},
		{
			name:     "wind outranks heavy-rain thresholds not yet met",
			snapshot: Snapshot{WindSpeed: 25, Rain3h: 10},
			want:     StatusStormWarning,
		},
		{
			name:     "thunderstorm condition is a storm warning",
			snapshot: Snapshot{Condition: "thunderstorm"},
			want:     StatusStormWarning,
		},
		{
			name:     "condition match is case-insensitive",
			snapshot: Snapshot{Condition: "ThunderStorm"},
			want:     StatusStormWarning,
		},
		{
			name:     "condition must match exactly",
			snapshot: Snapshot{Condition: "scattered thunderstorm"},
			want:     StatusStable,
		},
		{
			name:     "moderate 1h rain is heavy rain",
			snapshot: Snapshot{Rain1h: 11, Condition: "clear"},
			want:     StatusHeavyRain,
		},
		{
			name:     "moderate 3h rain is heavy rain",
			snapshot: Snapshot{Rain3h: 31},
			want:     StatusHeavyRain,
		},
		{
			name:     "exactly at heavy-rain thresholds stays stable",
			snapshot: Snapshot{Rain1h: 10, Rain3h: 30, WindSpeed: 20},
			want:     StatusStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.snapshot))
		})
	}
}

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, SeverityHigh, SeverityFor(StatusFlooding))
	assert.Equal(t, SeverityHigh, SeverityFor(StatusStormWarning))
	assert.Equal(t, SeverityMedium, SeverityFor(StatusHeavyRain))
	assert.Equal(t, SeverityLow, SeverityFor(StatusStable))
}

func TestMarkerColorFor(t *testing.T) {
	assert.Equal(t, "red", MarkerColorFor(StatusFlooding))
	assert.Equal(t, "red", MarkerColorFor(StatusStormWarning))
	assert.Equal(t, "blue", MarkerColorFor(StatusHeavyRain))
	assert.Equal(t, "green", MarkerColorFor(StatusStable))
}

package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSignalStrength_Curve(t *testing.T) {
	tests := []struct {
		hits int
		want float64
	}{
		{0, 0.45},
		{1, 0.63},
		{2, 0.81},
		{3, 0.92}, // 0.99 capped
		{4, 0.92},
		{10, 0.92},
	}

	for _, tt := range tests {
		got := signalStrength(tt.hits)
		if !almostEqual(got, tt.want) {
			t.Errorf("signalStrength(%d) = %.4f, want %.4f", tt.hits, got, tt.want)
		}
	}
}

func TestOverallConfidence(t *testing.T) {
	tests := []struct {
		name          string
		positive      int
		tone          int
		ruleTriggered bool
		behaviors     int
		want          float64
	}{
		{"no evidence", 0, 0, false, 0, 0.42},
		{"one positive group", 1, 0, false, 0, 0.50},
		{"positive groups capped at five", 6, 0, false, 0, 0.82},
		{"tone groups capped at four", 0, 5, false, 0, 0.62},
		{"rule penalty", 0, 0, true, 0, 0.24},
		{"behavior penalty at three", 0, 0, false, 3, 0.36},
		{"behavior penalty below three", 0, 0, false, 2, 0.42},
		{"ceiling clamp", 5, 4, false, 0, 0.92}, // 0.42+0.40+0.20 = 1.02
		{"both penalties", 0, 0, true, 3, 0.18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overallConfidence(tt.positive, tt.tone, tt.ruleTriggered, tt.behaviors)
			if !almostEqual(got, tt.want) {
				t.Errorf("got %.4f, want %.4f", got, tt.want)
			}
		})
	}
}

func TestOverallConfidence_Bounds(t *testing.T) {
	for positive := 0; positive <= 6; positive++ {
		for tone := 0; tone <= 5; tone++ {
			for _, rule := range []bool{false, true} {
				for behaviors := 0; behaviors <= 4; behaviors++ {
					conf := overallConfidence(positive, tone, rule, behaviors)
					if conf < confidenceMin || conf > confidenceMax {
						t.Fatalf("confidence %.4f out of [%.2f, %.2f] for (%d,%d,%v,%d)",
							conf, confidenceMin, confidenceMax, positive, tone, rule, behaviors)
					}
				}
			}
		}
	}
}

func TestBucketFor(t *testing.T) {
	tests := []struct {
		conf float64
		want ConfidenceBucket
	}{
		{0.92, BucketHigh},
		{0.70, BucketHigh},
		{0.69, BucketMedium},
		{0.50, BucketMedium},
		{0.49, BucketLow},
		{0.05, BucketLow},
	}

	for _, tt := range tests {
		if got := bucketFor(tt.conf); got != tt.want {
			t.Errorf("bucketFor(%.2f) = %s, want %s", tt.conf, got, tt.want)
		}
	}
}

func TestClampSensitivity(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.50, 0.50},
		{0.20, 0.20},
		{0.90, 0.90},
		{0.10, 0.20},
		{-1, 0.20},
		{0.95, 0.90},
		{2, 0.90},
	}

	for _, tt := range tests {
		if got := clampSensitivity(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("clampSensitivity(%.2f) = %.2f, want %.2f", tt.in, got, tt.want)
		}
	}
}

func TestDisplayFloor(t *testing.T) {
	tests := []struct {
		sensitivity float64
		want        float64
	}{
		{0.20, 0.30},
		{0.50, 0.45},
		{0.90, 0.65},
	}

	for _, tt := range tests {
		if got := displayFloor(tt.sensitivity); !almostEqual(got, tt.want) {
			t.Errorf("displayFloor(%.2f) = %.4f, want %.4f", tt.sensitivity, got, tt.want)
		}
	}
}

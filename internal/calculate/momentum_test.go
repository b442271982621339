package calculate

import (
	"testing"

	"github.com/Alias1177/Verdict/models"
)

func TestMomentum(t *testing.T) {
	tests := []struct {
		name           string
		closes         []float64
		expectedValue  float64
		expectedPct    float64
		expectedSignal models.Signal
		expectedStr    int
	}{
		{
			name:           "Insufficient data",
			closes:         []float64{100, 101},
			expectedValue:  0,
			expectedPct:    0,
			expectedSignal: models.SignalNeutral,
			expectedStr:    50,
		},
		{
			name:           "Positive momentum",
			closes:         []float64{100, 101, 102, 103, 104, 105, 104, 103, 102, 101, 102},
			expectedValue:  2,
			expectedPct:    2,
			expectedSignal: models.SignalUp,
			expectedStr:    70,
		},
		{
			name:           "Negative momentum",
			closes:         []float64{100, 99, 98, 97, 96, 95, 96, 97, 98, 99, 98},
			expectedValue:  -2,
			expectedPct:    -2,
			expectedSignal: models.SignalDown,
			expectedStr:    70,
		},
		{
			name:           "Unchanged price",
			closes:         []float64{100, 101, 102, 103, 104, 105, 104, 103, 102, 101, 100},
			expectedValue:  0,
			expectedPct:    0,
			expectedSignal: models.SignalNeutral,
			expectedStr:    50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Momentum(tt.closes, MomentumPeriod)
			if result.Value != tt.expectedValue {
				t.Errorf("Momentum().Value = %v, want %v", result.Value, tt.expectedValue)
			}
			if result.PctChange != tt.expectedPct {
				t.Errorf("Momentum().PctChange = %v, want %v", result.PctChange, tt.expectedPct)
			}
			if result.Signal != tt.expectedSignal {
				t.Errorf("Momentum().Signal = %v, want %v", result.Signal, tt.expectedSignal)
			}
			if result.Strength != tt.expectedStr {
				t.Errorf("Momentum().Strength = %v, want %v", result.Strength, tt.expectedStr)
			}
		})
	}
}

func TestROC(t *testing.T) {
	up := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110, 111, 110}
	down := []float64{100, 99, 98, 97, 96, 95, 94, 93, 92, 91, 90, 89, 95}

	tests := []struct {
		name           string
		closes         []float64
		expectedValue  float64
		expectedSignal models.Signal
		expectedStr    int
	}{
		{
			name:           "Insufficient data",
			closes:         []float64{100, 101},
			expectedValue:  0,
			expectedSignal: models.SignalNeutral,
			expectedStr:    50,
		},
		{
			name:           "Positive rate of change",
			closes:         up, // (110-100)/100 = +10%
			expectedValue:  10,
			expectedSignal: models.SignalUp,
			expectedStr:    90,
		},
		{
			name:           "Negative rate of change",
			closes:         down, // (95-100)/100 = -5%
			expectedValue:  -5,
			expectedSignal: models.SignalDown,
			expectedStr:    75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ROC(tt.closes, ROCPeriod)
			if result.Value != tt.expectedValue {
				t.Errorf("ROC().Value = %v, want %v", result.Value, tt.expectedValue)
			}
			if result.Signal != tt.expectedSignal {
				t.Errorf("ROC().Signal = %v, want %v", result.Signal, tt.expectedSignal)
			}
			if result.Strength != tt.expectedStr {
				t.Errorf("ROC().Strength = %v, want %v", result.Strength, tt.expectedStr)
			}
		})
	}
}

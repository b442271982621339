package calculate

import (
	"testing"

	"github.com/Alias1177/Verdict/models"
)

func TestMACD(t *testing.T) {
	rising := make([]float64, 60)
	falling := make([]float64, 60)
	for i := range rising {
		rising[i] = 100 + float64(i)
		falling[i] = 200 - float64(i)
	}

	t.Run("Insufficient data", func(t *testing.T) {
		result := MACD([]float64{100, 101, 102}, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod)
		if result.Signal != models.SignalNeutral || result.Strength != 50 {
			t.Errorf("MACD() = %v/%d, want NEUTRAL/50", result.Signal, result.Strength)
		}
	})

	t.Run("Uptrend is bullish", func(t *testing.T) {
		result := MACD(rising, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod)
		if result.Signal != models.SignalUp {
			t.Errorf("MACD().Signal = %v, want UP", result.Signal)
		}
		if result.MACD <= 0 {
			t.Errorf("MACD().MACD = %v, want positive in a steady uptrend", result.MACD)
		}
		if result.Strength > 90 {
			t.Errorf("MACD().Strength = %d, want at most 90", result.Strength)
		}
	})

	t.Run("Downtrend is bearish", func(t *testing.T) {
		result := MACD(falling, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod)
		if result.Signal != models.SignalDown {
			t.Errorf("MACD().Signal = %v, want DOWN", result.Signal)
		}
		if result.MACD >= 0 {
			t.Errorf("MACD().MACD = %v, want negative in a steady downtrend", result.MACD)
		}
	})

	t.Run("Flat series is neutral", func(t *testing.T) {
		flat := make([]float64, 60)
		for i := range flat {
			flat[i] = 100
		}
		result := MACD(flat, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod)
		if result.Signal != models.SignalNeutral || result.Strength != 50 {
			t.Errorf("MACD() = %v/%d, want NEUTRAL/50", result.Signal, result.Strength)
		}
	})

	t.Run("Histogram is line minus signal", func(t *testing.T) {
		result := MACD(rising, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod)
		diff := result.MACD - result.SignalLine
		if got := result.Histogram; got < diff-1e-5 || got > diff+1e-5 {
			t.Errorf("MACD().Histogram = %v, want %v", got, diff)
		}
	})
}

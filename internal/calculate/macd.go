package calculate

import (
	"math"

	"github.com/Alias1177/Verdict/models"
)

// MACD calculates Moving Average Convergence Divergence. Fewer than
// slow+signalPeriod closes yields the neutral default record.
func MACD(closes []float64, fast, slow, signalPeriod int) models.MACDResult {
	neutral := models.MACDResult{
		SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
	}
	if len(closes) < slow+signalPeriod {
		return neutral
	}

	emaFast := EMA(closes, fast)
	emaSlow := EMA(closes, slow)

	// Align the EMAs: trim the longer fast series from the front
	emaFast = emaFast[len(emaFast)-len(emaSlow):]

	macdLine := make([]float64, len(emaSlow))
	for i := range emaSlow {
		macdLine[i] = emaFast[i] - emaSlow[i]
	}
	signalLine := EMA(macdLine, signalPeriod)
	if len(signalLine) == 0 {
		return neutral
	}

	macd := macdLine[len(macdLine)-1]
	signalVal := signalLine[len(signalLine)-1]
	histogram := macd - signalVal

	var signal models.Signal
	var strength int
	switch {
	case macd > signalVal && macd > 0:
		signal = models.SignalUp
		strength = min(90, 60+int(math.Abs(histogram)*1000))
	case macd < signalVal && macd < 0:
		signal = models.SignalDown
		strength = min(90, 60+int(math.Abs(histogram)*1000))
	case macd > signalVal:
		signal = models.SignalUp
		strength = 55
	case macd < signalVal:
		signal = models.SignalDown
		strength = 55
	default:
		signal = models.SignalNeutral
		strength = 50
	}

	description := "MACD neutral"
	switch signal {
	case models.SignalUp:
		description = "MACD bullish"
	case models.SignalDown:
		description = "MACD bearish"
	}

	return models.MACDResult{
		MACD:           Round(macd, 6),
		SignalLine:     Round(signalVal, 6),
		Histogram:      Round(histogram, 6),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: min(strength, 90)},
		Description:    description,
	}
}

package calculate

import (
	"fmt"
	"math"

	"github.com/Alias1177/Verdict/models"
)

// RSI calculates the Relative Strength Index with Wilder smoothing.
// Fewer than period+1 closes yields the neutral default record.
func RSI(closes []float64, period int) models.RSIResult {
	if len(closes) < period+1 {
		return models.RSIResult{
			Value:          50,
			SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
		}
	}

	gains := make([]float64, 0, len(closes)-1)
	losses := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		change := closes[i] - closes[i-1]
		gains = append(gains, math.Max(change, 0))
		losses = append(losses, math.Abs(math.Min(change, 0)))
	}

	var avgGain, avgLoss float64
	for i := 0; i < period; i++ {
		avgGain += gains[i]
		avgLoss += losses[i]
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	// Smoothed update over the remaining changes
	for i := period; i < len(gains); i++ {
		avgGain = (avgGain*float64(period-1) + gains[i]) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + losses[i]) / float64(period)
	}

	rsi := 100.0
	if avgLoss != 0 {
		rs := avgGain / avgLoss
		rsi = 100 - (100 / (1 + rs))
	}

	var signal models.Signal
	var strength int
	switch {
	case rsi >= 70:
		signal = models.SignalOverbought
		strength = min(100, int((rsi-70)*3.33+70))
	case rsi <= 30:
		signal = models.SignalOversold
		strength = min(100, int((30-rsi)*3.33+70))
	case rsi > 50:
		signal = models.SignalUp
		strength = int((rsi-50)*2 + 50)
	case rsi < 50:
		signal = models.SignalDown
		strength = int((50-rsi)*2 + 50)
	default:
		signal = models.SignalNeutral
		strength = 50
	}

	return models.RSIResult{
		Value:          Round(rsi, 1),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: strength},
		Description:    fmt.Sprintf("RSI at %.1f", Round(rsi, 1)),
	}
}

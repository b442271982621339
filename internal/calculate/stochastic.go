package calculate

import (
	"fmt"

	"github.com/Alias1177/Verdict/models"
)

// Stochastic calculates the stochastic oscillator: %K over a kPeriod
// high/low window and %D as the dPeriod SMA of %K. Fewer than
// kPeriod+dPeriod closes yields the neutral default record.
func Stochastic(highs, lows, closes []float64, kPeriod, dPeriod int) models.StochasticResult {
	if len(closes) < kPeriod+dPeriod {
		return models.StochasticResult{
			K:              50,
			D:              50,
			SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
		}
	}

	kValues := make([]float64, 0, len(closes)-kPeriod+1)
	for i := kPeriod - 1; i < len(closes); i++ {
		periodHigh := highs[i-kPeriod+1]
		periodLow := lows[i-kPeriod+1]
		for j := i - kPeriod + 2; j <= i; j++ {
			if highs[j] > periodHigh {
				periodHigh = highs[j]
			}
			if lows[j] < periodLow {
				periodLow = lows[j]
			}
		}

		k := 50.0 // Middle of the range when there is no range
		if periodHigh != periodLow {
			k = (closes[i] - periodLow) / (periodHigh - periodLow) * 100
		}
		kValues = append(kValues, k)
	}

	dValues := SMA(kValues, dPeriod)

	k := kValues[len(kValues)-1]
	d := 50.0
	if len(dValues) > 0 {
		d = dValues[len(dValues)-1]
	}

	var signal models.Signal
	var strength int
	switch {
	case k < 20 && d < 20:
		signal = models.SignalUp // Oversold, potential buy
		strength = min(100, int((20-k)*4.5+70))
	case k > 80 && d > 80:
		signal = models.SignalDown // Overbought, potential sell
		strength = min(100, int((k-80)*4.5+70))
	case k > d:
		signal = models.SignalUp
		strength = 55
	case k < d:
		signal = models.SignalDown
		strength = 55
	default:
		signal = models.SignalNeutral
		strength = 50
	}

	return models.StochasticResult{
		K:              Round(k, 1),
		D:              Round(d, 1),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: strength},
		Description:    fmt.Sprintf("Stochastic K:%.0f/D:%.0f", k, d),
	}
}

package calculate

import (
	"fmt"
	"math"

	"github.com/Alias1177/Verdict/models"
)

// ADX calculates a simplified Average Directional Index: True Range and
// directional movement are Wilder-smoothed, but the final DX value is
// used directly without the second smoothing pass. Fewer than period*2
// closes yields the neutral default record (value 25).
func ADX(highs, lows, closes []float64, period int) models.ADXResult {
	neutral := models.ADXResult{
		Value:          25,
		SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
	}
	if len(closes) < period*2 {
		return neutral
	}

	n := len(closes) - 1
	trList := make([]float64, 0, n)
	plusDM := make([]float64, 0, n)
	minusDM := make([]float64, 0, n)

	for i := 1; i < len(closes); i++ {
		highLow := highs[i] - lows[i]
		highClose := math.Abs(highs[i] - closes[i-1])
		lowClose := math.Abs(lows[i] - closes[i-1])
		trList = append(trList, math.Max(highLow, math.Max(highClose, lowClose)))

		upMove := highs[i] - highs[i-1]
		downMove := lows[i-1] - lows[i]

		if upMove > downMove && upMove > 0 {
			plusDM = append(plusDM, upMove)
		} else {
			plusDM = append(plusDM, 0)
		}
		if downMove > upMove && downMove > 0 {
			minusDM = append(minusDM, downMove)
		} else {
			minusDM = append(minusDM, 0)
		}
	}

	if len(trList) < period {
		return neutral
	}

	// Wilder smoothing: seed with the first-period sum, then a running
	// subtract-divide-add over the remainder
	var atr, plusSmooth, minusSmooth float64
	for i := 0; i < period; i++ {
		atr += trList[i]
		plusSmooth += plusDM[i]
		minusSmooth += minusDM[i]
	}
	for i := period; i < len(trList); i++ {
		atr = atr - atr/float64(period) + trList[i]
		plusSmooth = plusSmooth - plusSmooth/float64(period) + plusDM[i]
		minusSmooth = minusSmooth - minusSmooth/float64(period) + minusDM[i]
	}

	if atr == 0 {
		return neutral
	}

	plusDI := plusSmooth / atr * 100
	minusDI := minusSmooth / atr * 100

	dx := 0.0
	if diSum := plusDI + minusDI; diSum != 0 {
		dx = math.Abs(plusDI-minusDI) / diSum * 100
	}

	// DX is taken as ADX directly, without the canonical second
	// smoothing pass
	adx := dx

	signal := models.SignalNeutral
	strength := 50
	if adx >= 25 {
		if plusDI > minusDI {
			signal = models.SignalUp
		} else {
			signal = models.SignalDown
		}
		strength = min(90, int(adx*2))
	}

	trendStrength := "Weak"
	condition := "Ranging"
	if adx >= 25 {
		trendStrength = "Strong"
		condition = "Trending"
	}

	return models.ADXResult{
		Value:          Round(adx, 1),
		PlusDI:         Round(plusDI, 1),
		MinusDI:        Round(minusDI, 1),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: strength},
		TrendStrength:  trendStrength,
		Description:    fmt.Sprintf("ADX %.1f - %s", Round(adx, 1), condition),
	}
}

// ATR calculates the Average True Range as the arithmetic mean of the
// trailing period true ranges. Fewer than period+1 closes yields 0.
func ATR(highs, lows, closes []float64, period int) float64 {
	if len(closes) < period+1 {
		return 0
	}

	var sum float64
	for i := len(closes) - period; i < len(closes); i++ {
		highLow := highs[i] - lows[i]
		highClose := math.Abs(highs[i] - closes[i-1])
		lowClose := math.Abs(lows[i] - closes[i-1])
		sum += math.Max(highLow, math.Max(highClose, lowClose))
	}
	return sum / float64(period)
}

package calculate

import (
	"fmt"
	"math"

	"github.com/Alias1177/Verdict/models"
)

// BollingerBands calculates Bollinger Bands: an SMA middle band with
// upper/lower bands at stdDev standard deviations. Fewer than period
// closes yields the neutral default record.
func BollingerBands(closes []float64, period int, stdDev float64) models.BollingerResult {
	neutral := models.BollingerResult{
		SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
	}
	if len(closes) < period {
		return neutral
	}

	smaValues := SMA(closes, period)
	middle := smaValues[len(smaValues)-1]

	var variance float64
	for _, c := range closes[len(closes)-period:] {
		variance += (c - middle) * (c - middle)
	}
	std := math.Sqrt(variance / float64(period))

	upper := middle + stdDev*std
	lower := middle - stdDev*std
	price := closes[len(closes)-1]
	widthPct := 0.0
	if middle != 0 {
		widthPct = (upper - lower) / middle * 100
	}

	position := 50.0
	if upper != lower {
		position = (price - lower) / (upper - lower) * 100
	}

	signal := models.SignalNeutral
	strength := 50
	switch {
	case price >= upper:
		signal = models.SignalDown // Near upper band, potential reversal
		overshoot := 0.0
		if upper > middle {
			overshoot = (price - upper) / (upper - middle)
		}
		strength = min(80, 60+int(overshoot*20))
	case price <= lower:
		signal = models.SignalUp // Near lower band, potential reversal
		overshoot := 0.0
		if middle > lower {
			overshoot = (lower - price) / (middle - lower)
		}
		strength = min(80, 60+int(overshoot*20))
	}

	return models.BollingerResult{
		Upper:          Round(upper, 5),
		Middle:         Round(middle, 5),
		Lower:          Round(lower, 5),
		WidthPct:       Round(widthPct, 2),
		Position:       Round(position, 1),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: strength},
		Description:    fmt.Sprintf("BB Width: %.2f%%", Round(widthPct, 2)),
	}
}

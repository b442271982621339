package calculate

import "github.com/Alias1177/Verdict/models"

// SMAAnalysis compares the current price to the SMA 20/50/200 levels.
// Levels the series is too short for stay nil and are excluded from the
// vote; fewer than 20 closes yields the neutral default record.
func SMAAnalysis(closes []float64) models.SMAResult {
	result := models.SMAResult{
		SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
	}
	if len(closes) < 20 {
		return result
	}

	price := closes[len(closes)-1]

	if values := SMA(closes, 20); len(values) > 0 {
		v := Round(values[len(values)-1], 5)
		result.SMA20 = &v
	}
	if len(closes) >= 50 {
		if values := SMA(closes, 50); len(values) > 0 {
			v := Round(values[len(values)-1], 5)
			result.SMA50 = &v
		}
	}
	if len(closes) >= 200 {
		if values := SMA(closes, 200); len(values) > 0 {
			v := Round(values[len(values)-1], 5)
			result.SMA200 = &v
		}
	}

	var above, below, total int
	for _, level := range []*float64{result.SMA20, result.SMA50, result.SMA200} {
		if level == nil {
			continue
		}
		total++
		if price > *level {
			above++
		} else {
			below++
		}
	}

	if total > 0 {
		switch {
		case above == total:
			result.Signal = models.SignalUp
			result.Strength = 70 + total*10
		case below == total:
			result.Signal = models.SignalDown
			result.Strength = 70 + total*10
		case above > below:
			result.Signal = models.SignalUp
			result.Strength = 55 + above*5
		case below > above:
			result.Signal = models.SignalDown
			result.Strength = 55 + below*5
		}
	}

	switch result.Signal {
	case models.SignalUp:
		result.Description = "Price above SMAs"
	case models.SignalDown:
		result.Description = "Price below SMAs"
	default:
		result.Description = "Price mixed relative to SMAs"
	}

	return result
}

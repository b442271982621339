package analyze

import (
	"math"
	"strings"

	"github.com/Alias1177/Verdict/internal/calculate"
	"github.com/Alias1177/Verdict/models"
)

// indicatorWeights assigns a fixed weight to each aggregated indicator.
// The slice order fixes score accumulation so aggregation is fully
// deterministic.
var indicatorWeights = []struct {
	name   string
	weight float64
}{
	{"rsi", 1.2},
	{"stochastic", 1.0},
	{"momentum", 0.8},
	{"roc", 0.8},
	{"macd", 1.5},
	{"adx", 1.3},
	{"sma", 1.4},
	{"bollinger", 0.9},
	{"volume", 0.7},
}

func readings(set *models.IndicatorSet) map[string]models.SignalStrength {
	return map[string]models.SignalStrength{
		"rsi":        set.RSI.Reading(),
		"stochastic": set.Stochastic.Reading(),
		"momentum":   set.Momentum.Reading(),
		"roc":        set.ROC.Reading(),
		"macd":       set.MACD.Reading(),
		"adx":        set.ADX.Reading(),
		"sma":        set.SMA.Reading(),
		"bollinger":  set.Bollinger.Reading(),
		"volume":     set.Volume.Reading(),
	}
}

// AggregateSignals reduces all indicator signals into weighted up/down
// scores, an overall direction, a confidence percentage (capped at 95)
// and a signal-alignment percentage.
func AggregateSignals(set *models.IndicatorSet) *models.AggregationResult {
	all := readings(set)

	var upDetails, downDetails, neutralDetails []models.SignalDetail
	var upScore, downScore float64

	for _, w := range indicatorWeights {
		r := all[w.name]
		detail := models.SignalDetail{
			Indicator:     strings.ToUpper(w.name),
			Signal:        r.Signal,
			Strength:      r.Strength,
			WeightedScore: float64(r.Strength) * w.weight,
		}

		switch {
		case r.Signal.Bullish():
			upDetails = append(upDetails, detail)
			upScore += detail.WeightedScore
		case r.Signal.Bearish():
			downDetails = append(downDetails, detail)
			downScore += detail.WeightedScore
		default:
			neutralDetails = append(neutralDetails, detail)
		}
	}

	total := len(upDetails) + len(downDetails) + len(neutralDetails)

	var direction models.Signal
	var confidence int
	switch {
	case upScore > downScore*1.2:
		direction = models.SignalUp
		confidence = min(95, int(upScore/(upScore+downScore+1)*100))
	case downScore > upScore*1.2:
		direction = models.SignalDown
		confidence = min(95, int(downScore/(upScore+downScore+1)*100))
	default:
		direction = models.SignalNeutral
		confidence = max(40, 100-int(math.Abs(upScore-downScore)/10))
	}

	alignment := 50.0
	if total > 0 {
		switch direction {
		case models.SignalUp:
			alignment = float64(len(upDetails)) / float64(total) * 100
		case models.SignalDown:
			alignment = float64(len(downDetails)) / float64(total) * 100
		default:
			alignment = float64(len(neutralDetails)) / float64(total) * 100
		}
	}

	return &models.AggregationResult{
		Direction:       direction,
		Confidence:      confidence,
		UpSignals:       len(upDetails),
		DownSignals:     len(downDetails),
		NeutralSignals:  len(neutralDetails),
		UpScore:         calculate.Round(upScore, 1),
		DownScore:       calculate.Round(downScore, 1),
		SignalAlignment: calculate.Round(alignment, 1),
		UpDetails:       upDetails,
		DownDetails:     downDetails,
		NeutralDetails:  neutralDetails,
	}
}

package calculate

import (
	"fmt"
	"math"

	"github.com/Alias1177/Verdict/models"
)

// Momentum calculates price momentum as the close change over the
// lookback period. Fewer than period+1 closes yields the neutral
// default record.
func Momentum(closes []float64, period int) models.MomentumResult {
	if len(closes) < period+1 {
		return models.MomentumResult{
			SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
		}
	}

	base := closes[len(closes)-1-period]
	momentum := closes[len(closes)-1] - base
	pctChange := 0.0
	if base != 0 {
		pctChange = momentum / base * 100
	}

	var signal models.Signal
	var strength int
	switch {
	case momentum > 0:
		signal = models.SignalUp
		strength = min(90, 50+int(math.Abs(pctChange)*10))
	case momentum < 0:
		signal = models.SignalDown
		strength = min(90, 50+int(math.Abs(pctChange)*10))
	default:
		signal = models.SignalNeutral
		strength = 50
	}

	sign := ""
	if momentum > 0 {
		sign = "+"
	}

	return models.MomentumResult{
		Value:          Round(momentum, 5),
		PctChange:      Round(pctChange, 2),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: strength},
		Description:    fmt.Sprintf("Momentum: %s%.2f%%", sign, Round(pctChange, 2)),
	}
}

// ROC calculates the Rate of Change over the lookback period as a
// percentage. Fewer than period+1 closes yields the neutral default
// record.
func ROC(closes []float64, period int) models.ROCResult {
	if len(closes) < period+1 {
		return models.ROCResult{
			SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
		}
	}

	base := closes[len(closes)-1-period]
	roc := 0.0
	if base != 0 {
		roc = (closes[len(closes)-1] - base) / base * 100
	}

	var signal models.Signal
	var strength int
	switch {
	case roc > 0:
		signal = models.SignalUp
		strength = min(90, 50+int(math.Abs(roc)*5))
	case roc < 0:
		signal = models.SignalDown
		strength = min(90, 50+int(math.Abs(roc)*5))
	default:
		signal = models.SignalNeutral
		strength = 50
	}

	sign := ""
	if roc > 0 {
		sign = "+"
	}

	return models.ROCResult{
		Value:          Round(roc, 2),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: strength},
		Description:    fmt.Sprintf("ROC: %s%.2f%%", sign, Round(roc, 2)),
	}
}

package analyze

import (
	"math"
	"strconv"

	"github.com/Alias1177/Verdict/internal/calculate"
	"github.com/Alias1177/Verdict/models"
)

// TradeTargetsFor derives entry zone, target zone, stop-loss and
// risk/reward ratio from the verdict direction, the current price and
// ATR. A zero ATR falls back to 2% of price; a NEUTRAL direction yields
// all-nil levels.
func TradeTargetsFor(currentPrice float64, direction models.Signal, atr float64) *models.TradeTargets {
	if atr == 0 {
		atr = currentPrice * 0.02
	}

	if direction != models.SignalUp && direction != models.SignalDown {
		return &models.TradeTargets{Direction: models.SignalNeutral}
	}

	entryLow := currentPrice - atr*0.3
	entryHigh := currentPrice + atr*0.3

	var targetLow, targetHigh, stopLoss float64
	if direction == models.SignalUp {
		// Long trade targets, stop below recent support
		targetLow = currentPrice + atr*2
		targetHigh = currentPrice + atr*3
		stopLoss = currentPrice - atr*1.5
	} else {
		// Short trade targets, stop above recent resistance
		targetLow = currentPrice - atr*3
		targetHigh = currentPrice - atr*2
		stopLoss = currentPrice + atr*1.5
	}

	entryMid := (entryLow + entryHigh) / 2
	targetMid := (targetLow + targetHigh) / 2

	risk := math.Abs(entryMid - stopLoss)
	reward := math.Abs(targetMid - entryMid)
	riskReward := 0.0
	if risk > 0 {
		riskReward = calculate.Round(reward/risk, 2)
	}

	eLow := calculate.Round(entryLow, 5)
	eHigh := calculate.Round(entryHigh, 5)
	tLow := calculate.Round(math.Min(targetLow, targetHigh), 5)
	tHigh := calculate.Round(math.Max(targetLow, targetHigh), 5)
	stop := calculate.Round(stopLoss, 5)
	atrOut := calculate.Round(atr, 5)

	return &models.TradeTargets{
		Direction:     direction,
		EntryLow:      &eLow,
		EntryHigh:     &eHigh,
		EntryDisplay:  formatPrice(eLow) + " - " + formatPrice(eHigh),
		TargetLow:     &tLow,
		TargetHigh:    &tHigh,
		TargetDisplay: formatPrice(tLow) + " - " + formatPrice(tHigh),
		StopLoss:      &stop,
		RiskReward:    &riskReward,
		ATR:           &atrOut,
	}
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

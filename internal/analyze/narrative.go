package analyze

import (
	"fmt"
	"strings"

	"github.com/Alias1177/Verdict/models"
)

// buildNarrative assembles the detailed analysis narrative for the
// presentation layer, including risk warnings for weak setups.
func buildNarrative(symbol, timeframe string, set *models.IndicatorSet, agg *models.AggregationResult, targets *models.TradeTargets) string {
	var b strings.Builder

	fmt.Fprintf(&b, "I've completed my analysis of %s on the %s timeframe.\n\n", symbol, timeframe)

	fmt.Fprintf(&b, "**Data Collection Complete:**\n")
	fmt.Fprintf(&b, "- Current Price: $%.5f\n", set.CurrentPrice)
	fmt.Fprintf(&b, "- Analyzed %d candles\n", set.CandleCount)
	fmt.Fprintf(&b, "- Volume is %+.1f%% compared to average\n\n", set.Volume.ChangePct)

	fmt.Fprintf(&b, "**Technical Indicator Results:**\n\n")
	fmt.Fprintf(&b, "Momentum Indicators:\n")
	fmt.Fprintf(&b, "- RSI is at %.1f, indicating %s conditions\n", set.RSI.Value, strings.ToLower(string(set.RSI.Signal)))
	fmt.Fprintf(&b, "- Stochastic shows %s momentum\n\n", strings.ToLower(string(set.Stochastic.Signal)))

	marketState := "ranging"
	if set.ADX.Value >= 25 {
		marketState = "trending"
	}
	fmt.Fprintf(&b, "Trend Indicators:\n")
	fmt.Fprintf(&b, "- MACD is %s, histogram at %.6f\n", strings.ToLower(string(set.MACD.Signal)), set.MACD.Histogram)
	fmt.Fprintf(&b, "- ADX at %.1f indicates %s market\n", set.ADX.Value, marketState)
	fmt.Fprintf(&b, "- %s\n\n", set.SMA.Description)

	fmt.Fprintf(&b, "**Signal Aggregation:**\n")
	fmt.Fprintf(&b, "- UP Signals: %d (Score: %.1f)\n", agg.UpSignals, agg.UpScore)
	fmt.Fprintf(&b, "- DOWN Signals: %d (Score: %.1f)\n", agg.DownSignals, agg.DownScore)
	fmt.Fprintf(&b, "- Neutral: %d\n", agg.NeutralSignals)
	fmt.Fprintf(&b, "- Signal Alignment: %.1f%%\n\n", agg.SignalAlignment)

	fmt.Fprintf(&b, "**FINAL VERDICT:**\n")
	fmt.Fprintf(&b, "Direction: %s\n", agg.Direction)
	fmt.Fprintf(&b, "Confidence: %d%%\n", agg.Confidence)

	if agg.Direction != models.SignalNeutral && targets.EntryDisplay != "" {
		fmt.Fprintf(&b, "\n**Trade Targets:**\n")
		fmt.Fprintf(&b, "- Entry Zone: %s\n", targets.EntryDisplay)
		fmt.Fprintf(&b, "- Target Zone: %s\n", targets.TargetDisplay)
		fmt.Fprintf(&b, "- Stop Loss: %s\n", formatPrice(*targets.StopLoss))
		fmt.Fprintf(&b, "- Risk/Reward Ratio: %s:1\n", formatPrice(*targets.RiskReward))
	}

	if agg.Confidence < 70 {
		b.WriteString("\nWarning: Confidence is below 70%. Consider waiting for stronger signals.")
	}
	if set.ADX.Value < 20 {
		b.WriteString("\nWarning: ADX indicates weak trend. The market may be ranging.")
	}
	if set.Volume.Ratio < 0.5 {
		b.WriteString("\nWarning: Low volume detected. Watch for potential false breakouts.")
	}

	return b.String()
}

package analyze

import (
	"fmt"
	"strings"

	"github.com/Alias1177/Verdict/models"
)

// FormatSummary renders an analysis result as the compact text block
// shared by the CLI and the Telegram bot.
func FormatSummary(result *models.AnalysisResult) string {
	if !result.Success {
		return fmt.Sprintf("An error occurred while analyzing %s: %s", result.Symbol, result.Error)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Analysis complete for %s on %s timeframe.\n\n", result.Symbol, result.Timeframe)

	fmt.Fprintf(&b, "MARKET DATA:\n")
	fmt.Fprintf(&b, "Current Price: $%.5f\n", result.MarketData.CurrentPrice)
	fmt.Fprintf(&b, "24h Change: %+.2f%%\n\n", result.MarketData.Change24hPct)

	rsi := result.Indicators.Momentum.RSI
	macd := result.Indicators.Trend.MACD
	adx := result.Indicators.Trend.ADX
	fmt.Fprintf(&b, "KEY INDICATORS:\n")
	fmt.Fprintf(&b, "RSI: %.1f (%s)\n", rsi.Value, rsi.Signal)
	fmt.Fprintf(&b, "MACD: %s\n", macd.Signal)
	fmt.Fprintf(&b, "ADX: %.1f (%s trend)\n\n", adx.Value, adx.TrendStrength)

	agg := result.SignalAggregation
	fmt.Fprintf(&b, "SIGNAL SUMMARY:\n")
	fmt.Fprintf(&b, "UP signals: %d (score: %.0f)\n", agg.UpSignals, agg.UpScore)
	fmt.Fprintf(&b, "DOWN signals: %d (score: %.0f)\n\n", agg.DownSignals, agg.DownScore)

	fmt.Fprintf(&b, "FINAL VERDICT: %s\n", result.Verdict.Direction)
	fmt.Fprintf(&b, "Confidence: %d%%\n", result.Verdict.Confidence)
	fmt.Fprintf(&b, "Quality Score: %.0f%%\n\n", result.Verdict.QualityScore)

	targets := result.TradeTargets
	fmt.Fprintf(&b, "TRADE TARGETS:\n")
	if targets != nil && targets.EntryDisplay != "" {
		fmt.Fprintf(&b, "Entry: %s\n", targets.EntryDisplay)
		fmt.Fprintf(&b, "Target: %s\n", targets.TargetDisplay)
		fmt.Fprintf(&b, "Stop Loss: %s\n", formatPrice(*targets.StopLoss))
		fmt.Fprintf(&b, "Risk/Reward: %s:1\n", formatPrice(*targets.RiskReward))
	} else {
		fmt.Fprintf(&b, "Entry: N/A\nTarget: N/A\nStop Loss: N/A\nRisk/Reward: N/A\n")
	}

	b.WriteString("\nRemember: this is technical analysis, not financial advice. Always do your own research.")

	return b.String()
}

// FormatScan renders quick-scan results as one line per symbol.
func FormatScan(results []*models.QuickResult) string {
	var b strings.Builder
	b.WriteString("Quick Market Scan Results:\n\n")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(&b, "- %s: unable to analyze - %s\n", r.Symbol, r.Error)
			continue
		}
		fmt.Fprintf(&b, "- %s: %s (%d%% confidence) | Price: $%.5f | RSI: %.1f\n",
			r.Symbol, r.Direction, r.Confidence, r.Price, r.RSI)
	}

	return b.String()
}

// FormatStats renders 24h market statistics for one symbol.
func FormatStats(stats *models.Stats24h) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current price for %s:\n", stats.Symbol)
	fmt.Fprintf(&b, "- Price: $%.5f\n", stats.CurrentPrice)
	fmt.Fprintf(&b, "- 24h Change: %+.2f%%\n", stats.Change24hPct)
	fmt.Fprintf(&b, "- 24h High: $%.5f\n", stats.High24h)
	fmt.Fprintf(&b, "- 24h Low: $%.5f\n", stats.Low24h)
	fmt.Fprintf(&b, "- 24h Volume: $%.2f\n", stats.Volume24hTo)
	return b.String()
}

package analyze

import (
	"strings"
	"testing"

	"github.com/Alias1177/Verdict/models"
)

func TestBuildNarrativeWarnings(t *testing.T) {
	set := neutralSet()
	set.ADX.Value = 15
	set.Volume.Ratio = 0.4

	agg := AggregateSignals(set)
	agg.Confidence = 50
	targets := TradeTargetsFor(set.CurrentPrice, agg.Direction, set.ATR)

	narrative := buildNarrative("BTC/USDT", "1H", set, agg, targets)

	for _, want := range []string{
		"Confidence is below 70%",
		"ADX indicates weak trend",
		"Low volume detected",
	} {
		if !strings.Contains(narrative, want) {
			t.Errorf("narrative missing warning %q", want)
		}
	}
	if strings.Contains(narrative, "Trade Targets") {
		t.Error("neutral verdict must not include trade targets")
	}
}

func TestBuildNarrativeTargets(t *testing.T) {
	set := allDirectional(models.SignalUp, 100)
	agg := AggregateSignals(set)
	targets := TradeTargetsFor(set.CurrentPrice, agg.Direction, set.ATR)

	narrative := buildNarrative("BTC/USDT", "4H", set, agg, targets)

	if !strings.Contains(narrative, "Trade Targets") {
		t.Error("directional verdict must include trade targets")
	}
	if !strings.Contains(narrative, "Direction: UP") {
		t.Error("narrative missing final verdict direction")
	}
	if !strings.Contains(narrative, "BTC/USDT") || !strings.Contains(narrative, "4H") {
		t.Error("narrative missing symbol or timeframe")
	}
}

func TestFormatScan(t *testing.T) {
	results := []*models.QuickResult{
		{Symbol: "BTC/USDT", Price: 50000, Direction: models.SignalUp, Confidence: 80, RSI: 62.5},
		{Symbol: "ETH/USDT", Error: "api down"},
	}

	out := FormatScan(results)

	if !strings.Contains(out, "BTC/USDT: UP (80% confidence)") {
		t.Errorf("scan output missing healthy line: %s", out)
	}
	if !strings.Contains(out, "ETH/USDT: unable to analyze - api down") {
		t.Errorf("scan output missing failure line: %s", out)
	}
}

func TestFormatSummaryFailure(t *testing.T) {
	result := &models.AnalysisResult{Symbol: "BTC/USDT", Error: "no data"}
	out := FormatSummary(result)
	if !strings.Contains(out, "An error occurred while analyzing BTC/USDT") {
		t.Errorf("summary = %q", out)
	}
}

package models

import "time"

// Signal classifies one indicator's directional read.
type Signal string

const (
	SignalUp         Signal = "UP"
	SignalDown       Signal = "DOWN"
	SignalNeutral    Signal = "NEUTRAL"
	SignalOverbought Signal = "OVERBOUGHT"
	SignalOversold   Signal = "OVERSOLD"
	SignalHigh       Signal = "HIGH"
	SignalLow        Signal = "LOW"
)

// Bullish reports whether the signal counts toward the up bucket during
// aggregation. Oversold readings and high volume are treated as bullish.
func (s Signal) Bullish() bool {
	return s == SignalUp || s == SignalOversold || s == SignalHigh
}

// Bearish reports whether the signal counts toward the down bucket.
func (s Signal) Bearish() bool {
	return s == SignalDown || s == SignalOverbought || s == SignalLow
}

// Candle represents a single OHLCV price candle.
type Candle struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
	Volume    float64 `json:"volume"`
}

// SignalStrength is the part shared by every indicator result: the
// classified signal and a 0-100 strength scalar. Strength is a heuristic
// weighting magnitude, not a probability.
type SignalStrength struct {
	Signal   Signal `json:"signal"`
	Strength int    `json:"strength"`
}

// Reading returns the aggregatable portion of an indicator result. Every
// indicator result embeds SignalStrength, so the aggregator can consume
// them uniformly.
func (s SignalStrength) Reading() SignalStrength { return s }

// RSIResult holds the Relative Strength Index reading.
type RSIResult struct {
	Value float64 `json:"value"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// MACDResult holds the MACD line, signal line and histogram.
type MACDResult struct {
	MACD       float64 `json:"macd"`
	SignalLine float64 `json:"signal_line"`
	Histogram  float64 `json:"histogram"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// StochasticResult holds the %K/%D oscillator reading.
type StochasticResult struct {
	K float64 `json:"k"`
	D float64 `json:"d"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// BollingerResult holds the Bollinger Bands reading.
type BollingerResult struct {
	Upper    float64 `json:"upper"`
	Middle   float64 `json:"middle"`
	Lower    float64 `json:"lower"`
	WidthPct float64 `json:"width_pct"`
	Position float64 `json:"position"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// ADXResult holds the trend-strength reading.
type ADXResult struct {
	Value   float64 `json:"value"`
	PlusDI  float64 `json:"plus_di"`
	MinusDI float64 `json:"minus_di"`
	SignalStrength
	TrendStrength string `json:"trend_strength,omitempty"`
	Description   string `json:"description,omitempty"`
}

// MomentumResult holds the price momentum reading.
type MomentumResult struct {
	Value     float64 `json:"value"`
	PctChange float64 `json:"pct_change"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// ROCResult holds the Rate of Change reading.
type ROCResult struct {
	Value float64 `json:"value"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// VolumeResult holds the volume-trend reading.
type VolumeResult struct {
	CurrentVolume float64 `json:"current_volume"`
	AvgVolume     float64 `json:"avg_volume"`
	Ratio         float64 `json:"ratio"`
	ChangePct     float64 `json:"change_pct"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// SMAResult holds the price position relative to the SMA 20/50/200 levels.
// A nil level means the candle series was too short to compute it.
type SMAResult struct {
	SMA20  *float64 `json:"sma20"`
	SMA50  *float64 `json:"sma50"`
	SMA200 *float64 `json:"sma200"`
	SignalStrength
	Description string `json:"description,omitempty"`
}

// IndicatorSet holds every indicator computed over one candle snapshot.
type IndicatorSet struct {
	CurrentPrice float64          `json:"current_price"`
	CandleCount  int              `json:"candle_count"`
	RSI          RSIResult        `json:"rsi"`
	Stochastic   StochasticResult `json:"stochastic"`
	Momentum     MomentumResult   `json:"momentum"`
	ROC          ROCResult        `json:"roc"`
	MACD         MACDResult       `json:"macd"`
	ADX          ADXResult        `json:"adx"`
	SMA          SMAResult        `json:"sma"`
	Bollinger    BollingerResult  `json:"bollinger"`
	ATR          float64          `json:"atr"`
	Volume       VolumeResult     `json:"volume"`
}

// SignalDetail describes one classified indicator inside an aggregation bucket.
type SignalDetail struct {
	Indicator     string  `json:"indicator"`
	Signal        Signal  `json:"signal"`
	Strength      int     `json:"strength"`
	WeightedScore float64 `json:"weighted_score"`
}

// AggregationResult is the weighted reduction of all indicator signals.
// Computed fresh per analysis call, never cached.
type AggregationResult struct {
	Direction       Signal         `json:"direction"`
	Confidence      int            `json:"confidence"`
	UpSignals       int            `json:"up_signals"`
	DownSignals     int            `json:"down_signals"`
	NeutralSignals  int            `json:"neutral_signals"`
	UpScore         float64        `json:"up_score"`
	DownScore       float64        `json:"down_score"`
	SignalAlignment float64        `json:"signal_alignment"`
	UpDetails       []SignalDetail `json:"up_details"`
	DownDetails     []SignalDetail `json:"down_details"`
	NeutralDetails  []SignalDetail `json:"neutral_details"`
}

// TradeTargets holds suggested entry/target/stop-loss levels. All price
// fields are nil for a NEUTRAL direction: no trade is ever proposed
// without a directional verdict.
type TradeTargets struct {
	Direction     Signal   `json:"direction"`
	EntryLow      *float64 `json:"entry_low,omitempty"`
	EntryHigh     *float64 `json:"entry_high,omitempty"`
	EntryDisplay  string   `json:"entry_display,omitempty"`
	TargetLow     *float64 `json:"target_low,omitempty"`
	TargetHigh    *float64 `json:"target_high,omitempty"`
	TargetDisplay string   `json:"target_display,omitempty"`
	StopLoss      *float64 `json:"stop_loss,omitempty"`
	RiskReward    *float64 `json:"risk_reward,omitempty"`
	ATR           *float64 `json:"atr,omitempty"`
}

// Stats24h holds 24-hour market statistics for a trading pair.
type Stats24h struct {
	Symbol       string  `json:"symbol"`
	CurrentPrice float64 `json:"current_price"`
	Change24h    float64 `json:"change_24h"`
	Change24hPct float64 `json:"change_24h_pct"`
	High24h      float64 `json:"high_24h"`
	Low24h       float64 `json:"low_24h"`
	Volume24h    float64 `json:"volume_24h"`
	Volume24hTo  float64 `json:"volume_24h_to"`
	MarketCap    float64 `json:"market_cap"`
}

// MarketData is the market snapshot attached to an analysis result.
type MarketData struct {
	CurrentPrice float64 `json:"current_price"`
	CandleCount  int     `json:"candle_count"`
	Change24hPct float64 `json:"change_24h_pct"`
	Volume24h    float64 `json:"volume_24h"`
	High24h      float64 `json:"high_24h"`
	Low24h       float64 `json:"low_24h"`
}

// MomentumGroup groups the momentum indicators for presentation.
type MomentumGroup struct {
	RSI        RSIResult        `json:"rsi"`
	Stochastic StochasticResult `json:"stochastic"`
	Momentum   MomentumResult   `json:"momentum"`
	ROC        ROCResult        `json:"roc"`
}

// TrendGroup groups the trend indicators for presentation.
type TrendGroup struct {
	MACD MACDResult `json:"macd"`
	ADX  ADXResult  `json:"adx"`
	SMA  SMAResult  `json:"sma"`
}

// VolatilityGroup groups the volatility indicators for presentation.
type VolatilityGroup struct {
	Bollinger BollingerResult `json:"bollinger"`
	ATR       float64         `json:"atr"`
}

// IndicatorGroups is the categorized indicator view inside an analysis result.
type IndicatorGroups struct {
	Momentum   MomentumGroup   `json:"momentum"`
	Trend      TrendGroup      `json:"trend"`
	Volatility VolatilityGroup `json:"volatility"`
	Volume     VolumeResult    `json:"volume"`
}

// Verdict is the final direction, confidence and quality read for a symbol.
type Verdict struct {
	Direction    Signal  `json:"direction"`
	Confidence   int     `json:"confidence"`
	QualityScore float64 `json:"quality_score"`
}

// AnalysisResult is the top-level outcome of a full analysis run. It is
// created per invocation, returned to the caller and discarded. A failed
// run carries Error and leaves the analytical sections nil.
type AnalysisResult struct {
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
	Symbol          string    `json:"symbol"`
	Timeframe       string    `json:"timeframe"`
	Exchange        string    `json:"exchange,omitempty"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
	DurationSeconds float64   `json:"analysis_duration_seconds"`

	MarketData        *MarketData        `json:"market_data,omitempty"`
	Indicators        *IndicatorGroups   `json:"indicators,omitempty"`
	SignalAggregation *AggregationResult `json:"signal_aggregation,omitempty"`
	Verdict           *Verdict           `json:"verdict,omitempty"`
	TradeTargets      *TradeTargets      `json:"trade_targets,omitempty"`
	Narrative         string             `json:"narrative,omitempty"`
}

// QuickResult is the lightweight screening outcome for one symbol.
type QuickResult struct {
	Symbol     string  `json:"symbol"`
	Error      string  `json:"error,omitempty"`
	Price      float64 `json:"price,omitempty"`
	Direction  Signal  `json:"direction,omitempty"`
	Confidence int     `json:"confidence,omitempty"`
	RSI        float64 `json:"rsi,omitempty"`
}

package analyze

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Verdict/internal/calculate"
	"github.com/Alias1177/Verdict/models"
)

const (
	fullAnalysisMinCandles  = 50
	quickAnalysisMinCandles = 20

	// scanSymbolLimit caps one market scan request.
	scanSymbolLimit = 5
)

// MarketDataProvider supplies candles and 24h statistics for a trading pair.
type MarketDataProvider interface {
	GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]models.Candle, error)
	Get24hStats(ctx context.Context, symbol string) (*models.Stats24h, error)
}

// StatusFunc receives progress checkpoints during a pipeline run. It is
// called synchronously from the analysis goroutine and must not block.
type StatusFunc func(stage string)

// Analyzer runs the full indicator pipeline over market data. It holds
// no per-call state and is safe for concurrent use.
type Analyzer struct {
	provider    MarketDataProvider
	logger      zerolog.Logger
	onStatus    StatusFunc
	candleLimit int
	exchange    string
}

// Options configures an Analyzer.
type Options struct {
	Provider    MarketDataProvider
	OnStatus    StatusFunc
	CandleLimit int
	Exchange    string
}

// New creates an Analyzer over the given market-data provider.
func New(opts Options) *Analyzer {
	if opts.CandleLimit <= 0 {
		opts.CandleLimit = 300
	}
	if opts.Exchange == "" {
		opts.Exchange = "Binance"
	}
	return &Analyzer{
		provider:    opts.Provider,
		logger:      log.With().Str("component", "analyzer").Logger(),
		onStatus:    opts.OnStatus,
		candleLimit: opts.CandleLimit,
		exchange:    opts.Exchange,
	}
}

func (a *Analyzer) status(stage string) {
	if a.onStatus != nil {
		a.onStatus(stage)
	}
}

// FullAnalysis runs the complete pipeline for one symbol and timeframe:
// fetch candles and 24h stats, compute all indicators, aggregate signals,
// derive trade targets and assemble the narrative. Every failure,
// including a panic anywhere in the pipeline, is returned as an error
// result rather than propagated.
func (a *Analyzer) FullAnalysis(ctx context.Context, symbol, timeframe string) (result *models.AnalysisResult) {
	started := time.Now()

	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Str("symbol", symbol).Msg("analysis panicked")
			result = a.errorResult(symbol, timeframe, fmt.Sprintf("internal error: %v", r))
		}
	}()

	a.logger.Info().Str("symbol", symbol).Str("timeframe", timeframe).Msg("starting full analysis")

	a.status("fetching candles")
	candles, err := a.provider.GetCandles(ctx, symbol, timeframe, a.candleLimit)
	if err != nil {
		a.logger.Error().Err(err).Str("symbol", symbol).Msg("candle fetch failed")
		return a.errorResult(symbol, timeframe, fmt.Sprintf("failed to fetch data: %v", err))
	}
	if len(candles) < fullAnalysisMinCandles {
		return a.errorResult(symbol, timeframe, "insufficient candle data for analysis")
	}

	a.status("fetching 24h stats")
	stats, err := a.provider.Get24hStats(ctx, symbol)
	if err != nil {
		// Stats are best-effort; the verdict never depends on them.
		a.logger.Warn().Err(err).Str("symbol", symbol).Msg("24h stats unavailable")
		stats = &models.Stats24h{Symbol: symbol}
	}

	a.status("calculating indicators")
	set, err := calculate.AllIndicators(candles)
	if err != nil {
		return a.errorResult(symbol, timeframe, err.Error())
	}

	a.status("aggregating signals")
	agg := AggregateSignals(set)

	a.status("calculating targets")
	targets := TradeTargetsFor(set.CurrentPrice, agg.Direction, set.ATR)

	a.status("assembling narrative")
	narrative := buildNarrative(symbol, timeframe, set, agg, targets)

	result = &models.AnalysisResult{
		Success:         true,
		Symbol:          symbol,
		Timeframe:       timeframe,
		Exchange:        a.exchange,
		AnalyzedAt:      time.Now().UTC(),
		DurationSeconds: calculate.Round(time.Since(started).Seconds(), 2),
		MarketData: &models.MarketData{
			CurrentPrice: set.CurrentPrice,
			CandleCount:  set.CandleCount,
			Change24hPct: stats.Change24hPct,
			Volume24h:    stats.Volume24h,
			High24h:      stats.High24h,
			Low24h:       stats.Low24h,
		},
		Indicators: &models.IndicatorGroups{
			Momentum: models.MomentumGroup{
				RSI:        set.RSI,
				Stochastic: set.Stochastic,
				Momentum:   set.Momentum,
				ROC:        set.ROC,
			},
			Trend: models.TrendGroup{
				MACD: set.MACD,
				ADX:  set.ADX,
				SMA:  set.SMA,
			},
			Volatility: models.VolatilityGroup{
				Bollinger: set.Bollinger,
				ATR:       set.ATR,
			},
			Volume: set.Volume,
		},
		SignalAggregation: agg,
		Verdict: &models.Verdict{
			Direction:    agg.Direction,
			Confidence:   agg.Confidence,
			QualityScore: calculate.Round(qualityScore(set, agg), 1),
		},
		TradeTargets: targets,
		Narrative:    narrative,
	}

	a.logger.Info().
		Str("symbol", symbol).
		Str("direction", string(agg.Direction)).
		Int("confidence", agg.Confidence).
		Float64("duration_sec", result.DurationSeconds).
		Msg("analysis complete")

	return result
}

// QuickAnalysis runs a cheap screening pass: 50 hourly candles, the full
// indicator set, aggregated direction and RSI only.
func (a *Analyzer) QuickAnalysis(ctx context.Context, symbol string) (result *models.QuickResult) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Str("symbol", symbol).Msg("quick analysis panicked")
			result = &models.QuickResult{Symbol: symbol, Error: fmt.Sprintf("internal error: %v", r)}
		}
	}()

	candles, err := a.provider.GetCandles(ctx, symbol, "1H", fullAnalysisMinCandles)
	if err != nil {
		return &models.QuickResult{Symbol: symbol, Error: err.Error()}
	}
	if len(candles) < quickAnalysisMinCandles {
		return &models.QuickResult{Symbol: symbol, Error: "insufficient data"}
	}

	set, err := calculate.AllIndicators(candles)
	if err != nil {
		return &models.QuickResult{Symbol: symbol, Error: err.Error()}
	}
	agg := AggregateSignals(set)

	return &models.QuickResult{
		Symbol:     symbol,
		Price:      set.CurrentPrice,
		Direction:  agg.Direction,
		Confidence: agg.Confidence,
		RSI:        set.RSI.Value,
	}
}

// ScanSymbols runs QuickAnalysis concurrently over at most scanSymbolLimit
// symbols. One failing symbol never affects the others; results keep the
// input order.
func (a *Analyzer) ScanSymbols(ctx context.Context, symbols []string) []*models.QuickResult {
	if len(symbols) > scanSymbolLimit {
		symbols = symbols[:scanSymbolLimit]
	}

	results := make([]*models.QuickResult, len(symbols))
	var wg sync.WaitGroup
	for i, symbol := range symbols {
		wg.Add(1)
		go func(i int, symbol string) {
			defer wg.Done()
			results[i] = a.QuickAnalysis(ctx, symbol)
		}(i, symbol)
	}
	wg.Wait()

	return results
}

func (a *Analyzer) errorResult(symbol, timeframe, msg string) *models.AnalysisResult {
	return &models.AnalysisResult{
		Success:    false,
		Error:      msg,
		Symbol:     symbol,
		Timeframe:  timeframe,
		Exchange:   a.exchange,
		AnalyzedAt: time.Now().UTC(),
	}
}

// qualityScore grades the analysis setup from 0 to 100 as the mean of
// four bounded components: volume participation, trend strength, signal
// alignment and confidence.
func qualityScore(set *models.IndicatorSet, agg *models.AggregationResult) float64 {
	components := []float64{
		math.Min(100, set.Volume.Ratio*50),
		math.Min(100, set.ADX.Value*2),
		agg.SignalAlignment,
		float64(agg.Confidence),
	}
	var sum float64
	for _, c := range components {
		sum += c
	}
	return sum / float64(len(components))
}

package calculate

import (
	"errors"

	"github.com/Alias1177/Verdict/models"
)

// ErrInsufficientData is returned when a candle series is too short for
// indicator calculation.
var ErrInsufficientData = errors.New("insufficient data for analysis")

// Default indicator periods
const (
	RSIPeriod         = 14
	MACDFastPeriod    = 12
	MACDSlowPeriod    = 26
	MACDSignalPeriod  = 9
	StochasticKPeriod = 14
	StochasticDPeriod = 3
	BollingerPeriod   = 20
	BollingerStdDev   = 2.0
	ADXPeriod         = 14
	ATRPeriod         = 14
	MomentumPeriod    = 10
	ROCPeriod         = 12

	// MinCandles is the minimum series length for indicator calculation.
	MinCandles = 20
)

// AllIndicators computes every indicator over one candle snapshot.
// Individual calculators degrade to their neutral defaults when the
// series is too short for them; the snapshot as a whole requires at
// least MinCandles candles.
func AllIndicators(candles []models.Candle) (*models.IndicatorSet, error) {
	if len(candles) < MinCandles {
		return nil, ErrInsufficientData
	}

	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	closes := make([]float64, len(candles))
	for i, c := range candles {
		highs[i] = c.High
		lows[i] = c.Low
		closes[i] = c.Close
	}

	return &models.IndicatorSet{
		CurrentPrice: closes[len(closes)-1],
		CandleCount:  len(candles),

		// Momentum indicators
		RSI:        RSI(closes, RSIPeriod),
		Stochastic: Stochastic(highs, lows, closes, StochasticKPeriod, StochasticDPeriod),
		Momentum:   Momentum(closes, MomentumPeriod),
		ROC:        ROC(closes, ROCPeriod),

		// Trend indicators
		MACD: MACD(closes, MACDFastPeriod, MACDSlowPeriod, MACDSignalPeriod),
		ADX:  ADX(highs, lows, closes, ADXPeriod),
		SMA:  SMAAnalysis(closes),

		// Volatility indicators
		Bollinger: BollingerBands(closes, BollingerPeriod, BollingerStdDev),
		ATR:       Round(ATR(highs, lows, closes, ATRPeriod), 5),

		// Volume indicators
		Volume: VolumeAnalysis(candles),
	}, nil
}

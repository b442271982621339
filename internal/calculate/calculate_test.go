package calculate

import (
	"errors"
	"testing"

	"github.com/Alias1177/Verdict/models"
)

func generateTestCandles(n int, generator func(i int) models.Candle) []models.Candle {
	candles := make([]models.Candle, n)
	for i := 0; i < n; i++ {
		candles[i] = generator(i)
	}
	return candles
}

func trendingCandles(n int) []models.Candle {
	return generateTestCandles(n, func(i int) models.Candle {
		return models.Candle{
			Timestamp: int64(1700000000 + i*3600),
			Open:      100 + float64(i),
			High:      102 + float64(i),
			Low:       99 + float64(i),
			Close:     101 + float64(i),
			Volume:    1000 + float64(i)*10,
		}
	})
}

func TestAllIndicators(t *testing.T) {
	t.Run("Too few candles", func(t *testing.T) {
		_, err := AllIndicators(trendingCandles(19))
		if !errors.Is(err, ErrInsufficientData) {
			t.Errorf("AllIndicators() error = %v, want ErrInsufficientData", err)
		}
	})

	t.Run("Minimum candle count", func(t *testing.T) {
		set, err := AllIndicators(trendingCandles(MinCandles))
		if err != nil {
			t.Fatalf("AllIndicators() error = %v", err)
		}
		if set.CandleCount != MinCandles {
			t.Errorf("AllIndicators().CandleCount = %d, want %d", set.CandleCount, MinCandles)
		}
		if set.SMA.SMA50 != nil || set.SMA.SMA200 != nil {
			t.Error("SMA50/SMA200 should be nil for 20 candles")
		}
	})

	t.Run("Full series", func(t *testing.T) {
		candles := trendingCandles(60)
		set, err := AllIndicators(candles)
		if err != nil {
			t.Fatalf("AllIndicators() error = %v", err)
		}

		if set.CurrentPrice != candles[len(candles)-1].Close {
			t.Errorf("AllIndicators().CurrentPrice = %v, want %v", set.CurrentPrice, candles[len(candles)-1].Close)
		}
		if set.SMA.SMA50 == nil {
			t.Error("SMA50 should be set for 60 candles")
		}
		if set.ATR <= 0 {
			t.Errorf("AllIndicators().ATR = %v, want positive", set.ATR)
		}
		if set.RSI.Signal != models.SignalOverbought {
			t.Errorf("RSI.Signal = %v, want OVERBOUGHT in a one-way uptrend", set.RSI.Signal)
		}
		if set.ADX.Signal != models.SignalUp {
			t.Errorf("ADX.Signal = %v, want UP in a steady uptrend", set.ADX.Signal)
		}
	})
}

package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CRYPTOCOMPARE_API_KEY", "")
	t.Setenv("EXCHANGE", "")
	t.Setenv("CANDLE_LIMIT", "")
	t.Setenv("SCAN_SYMBOLS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Exchange != "Binance" {
		t.Errorf("Exchange = %s, want Binance", cfg.Exchange)
	}
	if cfg.CandleLimit != 300 {
		t.Errorf("CandleLimit = %d, want 300", cfg.CandleLimit)
	}
	if cfg.RequestTimeout != 30 {
		t.Errorf("RequestTimeout = %d, want 30", cfg.RequestTimeout)
	}
	if cfg.RequestsPerSec != 5 {
		t.Errorf("RequestsPerSec = %d, want 5", cfg.RequestsPerSec)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %s, want info", cfg.LogLevel)
	}
	if len(cfg.ScanSymbols) != 3 || cfg.ScanSymbols[0] != "BTC/USDT" {
		t.Errorf("ScanSymbols = %v, want the default list", cfg.ScanSymbols)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("EXCHANGE", "Kraken")
	t.Setenv("CANDLE_LIMIT", "500")
	t.Setenv("SCAN_SYMBOLS", " BTC/USDT , , ETH/USDT ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Exchange != "Kraken" {
		t.Errorf("Exchange = %s, want Kraken", cfg.Exchange)
	}
	if cfg.CandleLimit != 500 {
		t.Errorf("CandleLimit = %d, want 500", cfg.CandleLimit)
	}
	if len(cfg.ScanSymbols) != 2 || cfg.ScanSymbols[1] != "ETH/USDT" {
		t.Errorf("ScanSymbols = %v, want trimmed two-element list", cfg.ScanSymbols)
	}
}

func TestGetEnvIntWithDefault(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	if got := getEnvIntWithDefault("SOME_INT", 42); got != 42 {
		t.Errorf("getEnvIntWithDefault() = %d, want the default on a malformed value", got)
	}

	t.Setenv("SOME_INT", "7")
	if got := getEnvIntWithDefault("SOME_INT", 42); got != 7 {
		t.Errorf("getEnvIntWithDefault() = %d, want 7", got)
	}
}

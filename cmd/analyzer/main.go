package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Verdict/config"
	"github.com/Alias1177/Verdict/internal/analyze"
	"github.com/Alias1177/Verdict/internal/api/cryptocompare"
)

func main() {
	symbol := flag.String("symbol", "BTC/USDT", "trading pair to analyze")
	timeframe := flag.String("timeframe", "1H", "candle timeframe (1M, 5M, 15M, 30M, 1H, 2H, 4H, 1D, 1W)")
	asJSON := flag.Bool("json", false, "print the raw result as JSON instead of text")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandling(cancel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)
	log.Info().Str("symbol", *symbol).Str("timeframe", *timeframe).Msg("Starting analyzer")

	client := cryptocompare.NewClient(cryptocompare.ClientOptions{
		APIKey:         cfg.CryptoCompareAPIKey,
		Exchange:       cfg.Exchange,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	analyzer := analyze.New(analyze.Options{
		Provider:    client,
		CandleLimit: cfg.CandleLimit,
		Exchange:    cfg.Exchange,
		OnStatus: func(stage string) {
			log.Info().Str("stage", stage).Msg("Analysis progress")
		},
	})

	result := analyzer.FullAnalysis(ctx, *symbol, *timeframe)

	if *asJSON {
		printJSON(result)
		return
	}

	fmt.Println(result.Narrative)
	fmt.Println()
	fmt.Println(analyze.FormatSummary(result))

	if !result.Success {
		os.Exit(1)
	}
}

// setupSignalHandling configures signal handling for graceful shutdown
func setupSignalHandling(cancel context.CancelFunc) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		log.Info().Msg("Shutdown signal received, exiting...")
		cancel()
		os.Exit(0)
	}()
}

// setupLogging configures the logger
func setupLogging(logLevel string) {
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(output)

	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Logger.Level(level)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode result")
	}
}

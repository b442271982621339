package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Verdict/config"
	"github.com/Alias1177/Verdict/internal/analyze"
	"github.com/Alias1177/Verdict/internal/api/cryptocompare"
)

func main() {
	symbolsFlag := flag.String("symbols", "", "comma-separated trading pairs (defaults to SCAN_SYMBOLS)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)

	symbols := cfg.ScanSymbols
	if *symbolsFlag != "" {
		symbols = splitList(*symbolsFlag)
	}
	if len(symbols) == 0 {
		log.Fatal().Msg("No symbols to scan")
	}

	log.Info().Strs("symbols", symbols).Msg("Starting market scan")

	client := cryptocompare.NewClient(cryptocompare.ClientOptions{
		APIKey:         cfg.CryptoCompareAPIKey,
		Exchange:       cfg.Exchange,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	analyzer := analyze.New(analyze.Options{
		Provider: client,
		Exchange: cfg.Exchange,
	})

	results := analyzer.ScanSymbols(context.Background(), symbols)
	fmt.Println(analyze.FormatScan(results))
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

func splitList(list string) []string {
	var out []string
	for _, s := range strings.Split(list, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/Verdict/config"
	"github.com/Alias1177/Verdict/internal/analyze"
	"github.com/Alias1177/Verdict/internal/api/cryptocompare"
)

// commandTimeout bounds one bot command end to end.
const commandTimeout = 2 * time.Minute

const helpText = `Available commands:
/analyze SYMBOL [TIMEFRAME] - full technical analysis (e.g. /analyze BTC/USDT 4H)
/price SYMBOL - current price and 24h stats
/scan SYM1,SYM2,... - quick directional scan (up to 5 pairs)
/help - this message

Timeframes: 1M, 5M, 15M, 30M, 1H, 2H, 4H, 1D, 1W`

type botApp struct {
	bot      *tgbotapi.BotAPI
	client   *cryptocompare.Client
	analyzer *analyze.Analyzer
	logger   zerolog.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	setupLogging(cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		log.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	log.Info().Str("username", bot.Self.UserName).Msg("Authorized on Telegram")

	client := cryptocompare.NewClient(cryptocompare.ClientOptions{
		APIKey:         cfg.CryptoCompareAPIKey,
		Exchange:       cfg.Exchange,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
	})

	app := &botApp{
		bot:    bot,
		client: client,
		analyzer: analyze.New(analyze.Options{
			Provider:    client,
			CandleLimit: cfg.CandleLimit,
			Exchange:    cfg.Exchange,
		}),
		logger: log.With().Str("component", "tgbot").Logger(),
	}

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	for update := range updates {
		if update.Message == nil || !update.Message.IsCommand() {
			continue
		}
		// Each command runs in its own goroutine so one slow analysis
		// never blocks the update loop.
		go app.handleCommand(update.Message)
	}
}

func (a *botApp) handleCommand(message *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	chatID := message.Chat.ID
	args := strings.TrimSpace(message.CommandArguments())

	a.logger.Info().
		Int64("chat_id", chatID).
		Str("command", message.Command()).
		Str("args", args).
		Msg("Handling command")

	switch message.Command() {
	case "start":
		a.reply(chatID, "Welcome to the Verdict bot! I run technical analysis on crypto pairs.\n\n"+helpText)
	case "help":
		a.reply(chatID, helpText)
	case "analyze":
		a.handleAnalyze(ctx, chatID, args)
	case "price":
		a.handlePrice(ctx, chatID, args)
	case "scan":
		a.handleScan(ctx, chatID, args)
	default:
		a.reply(chatID, "Unknown command. Use /help to see what I can do.")
	}
}

func (a *botApp) handleAnalyze(ctx context.Context, chatID int64, args string) {
	if args == "" {
		a.reply(chatID, "Usage: /analyze SYMBOL [TIMEFRAME]\nExample: /analyze BTC/USDT 4H")
		return
	}

	parts := strings.Fields(args)
	symbol := parts[0]
	timeframe := "1H"
	if len(parts) > 1 {
		timeframe = parts[1]
	}

	a.reply(chatID, fmt.Sprintf("Analyzing %s on %s timeframe...", symbol, timeframe))

	result := a.analyzer.FullAnalysis(ctx, symbol, timeframe)
	a.reply(chatID, analyze.FormatSummary(result))
}

func (a *botApp) handlePrice(ctx context.Context, chatID int64, args string) {
	if args == "" {
		a.reply(chatID, "Usage: /price SYMBOL\nExample: /price ETH/USDT")
		return
	}

	stats, err := a.client.Get24hStats(ctx, args)
	if err != nil {
		a.reply(chatID, fmt.Sprintf("Could not fetch price for %s: %v", args, err))
		return
	}
	a.reply(chatID, analyze.FormatStats(stats))
}

func (a *botApp) handleScan(ctx context.Context, chatID int64, args string) {
	if args == "" {
		a.reply(chatID, "Usage: /scan SYM1,SYM2,...\nExample: /scan BTC/USDT,ETH/USDT,SOL/USDT")
		return
	}

	var symbols []string
	for _, s := range strings.Split(args, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}

	a.reply(chatID, fmt.Sprintf("Scanning %d pairs...", len(symbols)))

	results := a.analyzer.ScanSymbols(ctx, symbols)
	a.reply(chatID, analyze.FormatScan(results))
}

func (a *botApp) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := a.bot.Send(msg); err != nil {
		a.logger.Error().Err(err).Int64("chat_id", chatID).Msg("Failed to send message")
	}
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

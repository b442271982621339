package cryptocompare

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platformhttp "github.com/Alias1177/Verdict/internal/platform/http"
	"github.com/Alias1177/Verdict/models"
)

const defaultBaseURL = "https://min-api.cryptocompare.com/data"

// Client is the CryptoCompare API client. It supplies OHLCV candle
// series and 24h statistics to the analysis pipeline.
type Client struct {
	apiKey     string
	baseURL    string
	exchange   string
	httpClient *platformhttp.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new CryptoCompare client.
type ClientOptions struct {
	APIKey          string
	BaseURL         string
	Exchange        string
	RequestTimeout  time.Duration
	RequestsPerSec  int
	MaxRetryTimeout time.Duration
}

// NewClient creates a new CryptoCompare API client.
func NewClient(options ClientOptions) *Client {
	if options.BaseURL == "" {
		options.BaseURL = defaultBaseURL
	}
	if options.Exchange == "" {
		options.Exchange = "Binance"
	}

	return &Client{
		apiKey:   options.APIKey,
		baseURL:  options.BaseURL,
		exchange: options.Exchange,
		httpClient: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:         options.RequestTimeout,
			RequestsPerSec:  options.RequestsPerSec,
			MaxRetryTimeout: options.MaxRetryTimeout,
		}),
		logger: log.With().Str("component", "cryptocompare_client").Logger(),
	}
}

// GetCandles fetches OHLCV candle data for a trading pair. Candles are
// returned oldest first; empty candles (zero close) are dropped.
func (c *Client) GetCandles(ctx context.Context, symbol, timeframe string, limit int) ([]models.Candle, error) {
	fsym, tsym := splitPair(symbol)
	endpoint, aggregate := endpointFor(timeframe)

	url := fmt.Sprintf(
		"%s/%s?fsym=%s&tsym=%s&limit=%d&aggregate=%d&e=%s&api_key=%s",
		c.baseURL, endpoint, fsym, tsym, limit, aggregate, c.exchange, c.apiKey,
	)

	c.logger.Debug().Str("symbol", symbol).Str("endpoint", endpoint).Int("aggregate", aggregate).Msg("Fetching candles")

	var data histoResponse
	if err := c.getJSON(ctx, url, &data); err != nil {
		return nil, err
	}

	if data.Response == "Error" {
		c.logger.Error().Str("message", data.Message).Msg("CryptoCompare API error")
		return nil, fmt.Errorf("CryptoCompare API error: %s", data.Message)
	}
	if len(data.Data.Candles) == 0 {
		c.logger.Warn().Str("symbol", symbol).Msg("No candles in response")
		return nil, fmt.Errorf("no candle data returned")
	}

	candles := make([]models.Candle, 0, len(data.Data.Candles))
	for _, v := range data.Data.Candles {
		if v.Close <= 0 { // Filter out empty candles
			continue
		}
		candles = append(candles, models.Candle{
			Timestamp: v.Time,
			Open:      v.Open,
			High:      v.High,
			Low:       v.Low,
			Close:     v.Close,
			Volume:    v.VolumeFrom,
		})
	}
	if len(candles) == 0 {
		return nil, fmt.Errorf("no candle data returned")
	}

	// Sort candles oldest first for proper calculations
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].Timestamp < candles[j].Timestamp
	})

	c.logger.Debug().Int("count", len(candles)).Msg("Fetched candles")
	return candles, nil
}

// Get24hStats fetches 24-hour statistics for a trading pair.
func (c *Client) Get24hStats(ctx context.Context, symbol string) (*models.Stats24h, error) {
	fsym, tsym := splitPair(symbol)

	url := fmt.Sprintf(
		"%s/pricemultifull?fsyms=%s&tsyms=%s&api_key=%s",
		c.baseURL, fsym, tsym, c.apiKey,
	)

	c.logger.Debug().Str("symbol", symbol).Msg("Fetching 24h stats")

	var data priceMultiFullResponse
	if err := c.getJSON(ctx, url, &data); err != nil {
		return nil, err
	}

	quote, ok := data.Raw[fsym][tsym]
	if !ok {
		return nil, fmt.Errorf("no data available for pair %s/%s", fsym, tsym)
	}

	return &models.Stats24h{
		Symbol:       fsym + "/" + tsym,
		CurrentPrice: quote.Price,
		Change24h:    quote.Change24Hour,
		Change24hPct: quote.ChangePct24Hour,
		High24h:      quote.High24Hour,
		Low24h:       quote.Low24Hour,
		Volume24h:    quote.Volume24Hour,
		Volume24hTo:  quote.Volume24HourTo,
		MarketCap:    quote.MarketCap,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing JSON")
		return fmt.Errorf("parsing JSON: %w", err)
	}
	return nil
}

// splitPair splits a trading symbol like "BTC/USDT" or "ETH-USD" into
// base and quote currencies. Bare symbols default to a USDT quote.
func splitPair(symbol string) (string, string) {
	s := strings.ToUpper(symbol)
	s = strings.NewReplacer("/", "", "-", "").Replace(s)

	for _, quote := range []string{"USDT", "USD", "BTC"} {
		if strings.Contains(s, quote) && s != quote {
			return strings.Replace(s, quote, "", 1), quote
		}
	}
	if len(s) > 3 {
		return s[:3], s[3:]
	}
	return s, "USDT"
}

// endpointFor maps a timeframe token to a CryptoCompare history endpoint
// and aggregate multiplier. Tokens are case-insensitive; unrecognized
// tokens fall back to 1-hour candles.
func endpointFor(timeframe string) (string, int) {
	switch strings.ToUpper(timeframe) {
	case "1M":
		return "histominute", 1
	case "5M":
		return "histominute", 5
	case "15M":
		return "histominute", 15
	case "30M":
		return "histominute", 30
	case "1H", "H1":
		return "histohour", 1
	case "2H", "H2":
		return "histohour", 2
	case "4H", "H4":
		return "histohour", 4
	case "1D", "D1":
		return "histoday", 1
	case "1W", "W1":
		return "histoday", 7
	default:
		return "histohour", 1
	}
}

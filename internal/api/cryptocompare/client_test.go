package cryptocompare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEndpointFor(t *testing.T) {
	tests := []struct {
		timeframe         string
		expectedEndpoint  string
		expectedAggregate int
	}{
		{"1M", "histominute", 1},
		{"5M", "histominute", 5},
		{"15M", "histominute", 15},
		{"30M", "histominute", 30},
		{"1H", "histohour", 1},
		{"H1", "histohour", 1},
		{"2H", "histohour", 2},
		{"4H", "histohour", 4},
		{"h4", "histohour", 4}, // case-insensitive
		{"1D", "histoday", 1},
		{"d1", "histoday", 1},
		{"1W", "histoday", 7},
		{"bogus", "histohour", 1}, // unknown falls back to 1h
		{"", "histohour", 1},
	}

	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			endpoint, aggregate := endpointFor(tt.timeframe)
			if endpoint != tt.expectedEndpoint || aggregate != tt.expectedAggregate {
				t.Errorf("endpointFor(%q) = %s/%d, want %s/%d",
					tt.timeframe, endpoint, aggregate, tt.expectedEndpoint, tt.expectedAggregate)
			}
		})
	}
}

func TestSplitPair(t *testing.T) {
	tests := []struct {
		symbol        string
		expectedBase  string
		expectedQuote string
	}{
		{"BTC/USDT", "BTC", "USDT"},
		{"btc/usdt", "BTC", "USDT"},
		{"ETH-USD", "ETH", "USD"},
		{"SOLBTC", "SOL", "BTC"},
		{"ADAEUR", "ADA", "EUR"},
		{"XRP", "XRP", "USDT"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			base, quote := splitPair(tt.symbol)
			if base != tt.expectedBase || quote != tt.expectedQuote {
				t.Errorf("splitPair(%q) = %s/%s, want %s/%s",
					tt.symbol, base, quote, tt.expectedBase, tt.expectedQuote)
			}
		})
	}
}

func TestHistoDataUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected int
	}{
		{
			name:     "Flat array",
			payload:  `[{"time":1700000000,"open":1,"high":2,"low":0.5,"close":1.5,"volumefrom":10}]`,
			expected: 1,
		},
		{
			name:     "Nested object",
			payload:  `{"Data":[{"time":1700000000,"close":1.5},{"time":1700003600,"close":1.6}]}`,
			expected: 2,
		},
		{
			name:     "Empty object",
			payload:  `{}`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d histoData
			if err := json.Unmarshal([]byte(tt.payload), &d); err != nil {
				t.Fatalf("UnmarshalJSON() error = %v", err)
			}
			if len(d.Candles) != tt.expected {
				t.Errorf("len(Candles) = %d, want %d", len(d.Candles), tt.expected)
			}
		})
	}
}

func TestGetCandles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/histohour" {
			t.Errorf("path = %s, want /histohour", got)
		}
		q := r.URL.Query()
		if q.Get("fsym") != "BTC" || q.Get("tsym") != "USDT" {
			t.Errorf("pair = %s/%s, want BTC/USDT", q.Get("fsym"), q.Get("tsym"))
		}

		// Newest first with one empty candle; the client must filter
		// and re-sort
		fmt.Fprint(w, `{"Response":"Success","Data":{"Data":[
			{"time":1700007200,"open":102,"high":103,"low":101,"close":102.5,"volumefrom":12},
			{"time":1700003600,"open":0,"high":0,"low":0,"close":0,"volumefrom":0},
			{"time":1700000000,"open":100,"high":101,"low":99,"close":100.5,"volumefrom":10}
		]}}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{APIKey: "test", BaseURL: server.URL})
	candles, err := client.GetCandles(context.Background(), "BTC/USDT", "1H", 3)
	if err != nil {
		t.Fatalf("GetCandles() error = %v", err)
	}

	if len(candles) != 2 {
		t.Fatalf("len(candles) = %d, want 2 after filtering the empty candle", len(candles))
	}
	if candles[0].Timestamp != 1700000000 || candles[1].Timestamp != 1700007200 {
		t.Errorf("candles not sorted oldest first: %d, %d", candles[0].Timestamp, candles[1].Timestamp)
	}
	if candles[0].Close != 100.5 || candles[0].Volume != 10 {
		t.Errorf("candles[0] = %+v", candles[0])
	}
}

func TestGetCandlesAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"Response":"Error","Message":"limit exceeded"}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})
	if _, err := client.GetCandles(context.Background(), "BTC/USDT", "1H", 10); err == nil {
		t.Fatal("GetCandles() should surface the API error")
	}
}

func TestGet24hStats(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Path; got != "/pricemultifull" {
			t.Errorf("path = %s, want /pricemultifull", got)
		}
		fmt.Fprint(w, `{"RAW":{"ETH":{"USDT":{
			"PRICE":3000.5,
			"CHANGE24HOUR":120,
			"CHANGEPCT24HOUR":4.2,
			"HIGH24HOUR":3100,
			"LOW24HOUR":2900,
			"VOLUME24HOUR":5000,
			"VOLUME24HOURTO":15000000,
			"MKTCAP":360000000000
		}}}}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})
	stats, err := client.Get24hStats(context.Background(), "ETH/USDT")
	if err != nil {
		t.Fatalf("Get24hStats() error = %v", err)
	}

	if stats.Symbol != "ETH/USDT" {
		t.Errorf("Symbol = %s, want ETH/USDT", stats.Symbol)
	}
	if stats.CurrentPrice != 3000.5 || stats.Change24hPct != 4.2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.High24h != 3100 || stats.Low24h != 2900 {
		t.Errorf("stats range = %v/%v", stats.High24h, stats.Low24h)
	}
}

func TestGet24hStatsMissingPair(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"RAW":{}}`)
	}))
	defer server.Close()

	client := NewClient(ClientOptions{BaseURL: server.URL})
	if _, err := client.Get24hStats(context.Background(), "ETH/USDT"); err == nil {
		t.Fatal("Get24hStats() should fail for a missing pair")
	}
}

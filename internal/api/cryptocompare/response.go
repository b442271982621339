package cryptocompare

import "encoding/json"

// histoCandle is one OHLCV row from a history endpoint.
type histoCandle struct {
	Time       int64   `json:"time"`
	Open       float64 `json:"open"`
	High       float64 `json:"high"`
	Low        float64 `json:"low"`
	Close      float64 `json:"close"`
	VolumeFrom float64 `json:"volumefrom"`
}

// histoResponse is the envelope of the histominute/histohour/histoday
// endpoints.
type histoResponse struct {
	Response string    `json:"Response"`
	Message  string    `json:"Message"`
	Data     histoData `json:"Data"`
}

// histoData absorbs both payload shapes the API uses:
// {"Data": [...]} and {"Data": {"Data": [...]}}.
type histoData struct {
	Candles []histoCandle
}

func (d *histoData) UnmarshalJSON(b []byte) error {
	var direct []histoCandle
	if err := json.Unmarshal(b, &direct); err == nil {
		d.Candles = direct
		return nil
	}

	var nested struct {
		Data []histoCandle `json:"Data"`
	}
	if err := json.Unmarshal(b, &nested); err != nil {
		return err
	}
	d.Candles = nested.Data
	return nil
}

// rawQuote is one RAW entry of the pricemultifull endpoint.
type rawQuote struct {
	Price           float64 `json:"PRICE"`
	Change24Hour    float64 `json:"CHANGE24HOUR"`
	ChangePct24Hour float64 `json:"CHANGEPCT24HOUR"`
	High24Hour      float64 `json:"HIGH24HOUR"`
	Low24Hour       float64 `json:"LOW24HOUR"`
	Volume24Hour    float64 `json:"VOLUME24HOUR"`
	Volume24HourTo  float64 `json:"VOLUME24HOURTO"`
	MarketCap       float64 `json:"MKTCAP"`
}

// priceMultiFullResponse is the envelope of the pricemultifull endpoint,
// keyed by base then quote currency.
type priceMultiFullResponse struct {
	Raw map[string]map[string]rawQuote `json:"RAW"`
}

package calculate

import (
	"fmt"
	"math"

	"github.com/Alias1177/Verdict/models"
)

// VolumeAnalysis compares the recent 5-bar average volume against the
// trailing 20-bar average. Candles with zero volume are ignored; fewer
// than 20 usable volumes yields the neutral default record.
func VolumeAnalysis(candles []models.Candle) models.VolumeResult {
	neutral := models.VolumeResult{
		SignalStrength: models.SignalStrength{Signal: models.SignalNeutral, Strength: 50},
	}
	if len(candles) < 20 {
		return neutral
	}

	volumes := make([]float64, 0, len(candles))
	for _, c := range candles {
		if c.Volume > 0 {
			volumes = append(volumes, c.Volume)
		}
	}
	if len(volumes) < 20 {
		return neutral
	}

	recentAvg := average(volumes[len(volumes)-5:])
	historicalAvg := average(volumes[len(volumes)-20:])

	ratio := 1.0
	if historicalAvg != 0 {
		ratio = recentAvg / historicalAvg
	}
	changePct := (ratio - 1) * 100

	var signal models.Signal
	var strength int
	switch {
	case ratio > 1.5:
		signal = models.SignalHigh
		strength = min(90, 60+int((ratio-1)*30))
	case ratio < 0.5:
		signal = models.SignalLow
		strength = min(90, 60+int((1-ratio)*60))
	default:
		signal = models.SignalNeutral
		strength = 50 + int(math.Abs(changePct))
	}

	sign := ""
	if changePct > 0 {
		sign = "+"
	}

	return models.VolumeResult{
		CurrentVolume:  volumes[len(volumes)-1],
		AvgVolume:      Round(historicalAvg, 2),
		Ratio:          Round(ratio, 2),
		ChangePct:      Round(changePct, 1),
		SignalStrength: models.SignalStrength{Signal: signal, Strength: min(strength, 90)},
		Description:    fmt.Sprintf("Volume %s%.1f%% vs avg", sign, Round(changePct, 1)),
	}
}

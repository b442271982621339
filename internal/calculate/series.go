package calculate

import "math"

// SMA calculates the simple moving average of a series. The result is
// period-1 elements shorter than the input; an input shorter than the
// period yields an empty result.
func SMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	sma := make([]float64, 0, len(values)-period+1)
	for i := period - 1; i < len(values); i++ {
		var sum float64
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		sma = append(sma, sum/float64(period))
	}
	return sma
}

// EMA calculates the exponential moving average of a series. The first
// value is seeded with the SMA of the first period elements; the rest
// follow the recursive smoothing with multiplier 2/(period+1).
func EMA(values []float64, period int) []float64 {
	if period <= 0 || len(values) < period {
		return nil
	}

	multiplier := 2.0 / float64(period+1)

	var seed float64
	for _, v := range values[:period] {
		seed += v
	}

	ema := make([]float64, 0, len(values)-period+1)
	ema = append(ema, seed/float64(period))

	for _, v := range values[period:] {
		prev := ema[len(ema)-1]
		ema = append(ema, (v-prev)*multiplier+prev)
	}
	return ema
}

// Round rounds a value to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

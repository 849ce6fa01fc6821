// Package score accumulates weighted answers and converts the raw sums into
// calibrated compass coordinates.
package score

import "math"

// Calibration converts a raw axis sum into a scaled score.
type Calibration struct {
	Divisor float64
	Offset  float64
}

// Axis calibrations for the full 62-statement instrument. Runs over fewer
// statements drift toward the offsets; that bias is left as is.
var (
	EconomicCalibration = Calibration{Divisor: 8.0, Offset: 0.38}
	SocialCalibration   = Calibration{Divisor: 19.5, Offset: 2.41}
)

// Bounds of each axis.
const (
	Min = -10.0
	Max = 10.0
)

// Final is a compass position. Both values lie in [Min, Max].
type Final struct {
	Economic float64
	Social   float64
}

// Apply scales, rounds to two decimals, and clamps sum.
func (c Calibration) Apply(sum float64) float64 {
	return Clamp(Round2(sum/c.Divisor+c.Offset), Min, Max)
}

// Normalize computes the final position from the two raw sums.
func Normalize(sumEconomic, sumSocial float64) Final {
	return Final{
		Economic: EconomicCalibration.Apply(sumEconomic),
		Social:   SocialCalibration.Apply(sumSocial),
	}
}

// Round2 rounds half away from zero to two decimals. A value whose decimal
// form sits on a half (1.005) rounds up even when v*100 lands just below it.
func Round2(v float64) float64 {
	f := math.Round(v * 100)
	if v > 0 {
		if (f+0.5)/100 <= v {
			f++
		}
	} else if (f-0.5)/100 >= v {
		f--
	}
	return f / 100
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

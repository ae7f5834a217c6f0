// Package params is the input boundary in front of the pricing engine.
//
// The engine itself is total over a pre-clamped domain and never
// validates; this package does the clamping. Ranges mirror the slider
// controls of the reference calculator, including their step sizes, so a
// UI snapping to steps and a library caller clamping here agree on the
// reachable parameter set.
package params

import (
	"math"

	"github.com/contactkeval/option-curve/internal/pricing"
)

// Range is a bounded, stepped scalar control.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// Clamp forces v into [Min, Max] and snaps it to the nearest step from
// Min. A zero Step disables snapping.
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		v = r.Min
	}
	if v > r.Max {
		v = r.Max
	}
	if r.Step > 0 {
		v = r.Min + math.Round((v-r.Min)/r.Step)*r.Step
		if v > r.Max {
			v -= r.Step
		}
	}
	return v
}

// Slider ranges of the reference calculator. Rate, volatility and
// dividend yield are expressed in percent at this layer and converted to
// decimals by Parameters.
var (
	StrikeRange   = Range{Min: 10, Max: 200, Step: 5}
	MaturityRange = Range{Min: 0.1, Max: 3.0, Step: 0.1}
	RateRange     = Range{Min: 0.0, Max: 10.0, Step: 0.1}
	VolRange      = Range{Min: 1.0, Max: 100.0, Step: 1.0}
	YieldRange    = Range{Min: 0.0, Max: 10.0, Step: 0.1}
)

// Inputs carries the five user-facing parameters in slider units.
type Inputs struct {
	Strike      float64 `json:"strike"`
	Maturity    float64 `json:"maturity"`
	RatePct     float64 `json:"rate_pct"`
	VolPct      float64 `json:"vol_pct"`
	DividendPct float64 `json:"dividend_pct"`
}

// Defaults returns the reference calculator's initial slider positions.
func Defaults() Inputs {
	return Inputs{Strike: 100, Maturity: 1.0, RatePct: 2.0, VolPct: 20.0, DividendPct: 1.0}
}

// Clamped returns a copy with every field clamped to its range.
func (in Inputs) Clamped() Inputs {
	return Inputs{
		Strike:      StrikeRange.Clamp(in.Strike),
		Maturity:    MaturityRange.Clamp(in.Maturity),
		RatePct:     RateRange.Clamp(in.RatePct),
		VolPct:      VolRange.Clamp(in.VolPct),
		DividendPct: YieldRange.Clamp(in.DividendPct),
	}
}

// Parameters converts slider units to engine units (percent to decimal).
// Spot is left zero: the curve generator supplies it per sample.
func (in Inputs) Parameters() pricing.Parameters {
	return pricing.Parameters{
		Strike:     in.Strike,
		Maturity:   in.Maturity,
		Rate:       in.RatePct / 100,
		Volatility: in.VolPct / 100,
		Dividend:   in.DividendPct / 100,
	}
}

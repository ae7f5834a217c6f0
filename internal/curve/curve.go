// Package curve sweeps the underlying price over a bounded range and
// prices both option sides at every point, producing the aligned
// sequences an external chart renderer plots: valuation curves plus the
// dashed intrinsic-value baselines.
//
// Generation is pure: identical parameters and config reproduce an
// identical curve, so a UI can regenerate on every slider change without
// caching concerns.
package curve

import (
	"fmt"
	"strings"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats"

	"github.com/contactkeval/option-curve/internal/logger"
	"github.com/contactkeval/option-curve/internal/pricing"
)

// DefaultSamples matches the reference sweep granularity.
const DefaultSamples = 200

const (
	defaultMinSpot = "0"
	defaultMaxSpot = "2*K"
)

// Config tunes a sweep. The spot bounds are expressions over the strike
// (variable K), e.g. "0", "150", "2*K", "K+50". Zero values fall back to
// the defaults: 200 samples over [0, 2K].
type Config struct {
	Samples int    `json:"samples,omitempty"`
	MinSpot string `json:"min_spot,omitempty"`
	MaxSpot string `json:"max_spot,omitempty"`
}

// Curve holds five aligned sequences of equal length. Spots is strictly
// increasing with uniform spacing.
type Curve struct {
	Spots          []float64 `json:"spots"`
	Calls          []float64 `json:"calls"`
	Puts           []float64 `json:"puts"`
	CallIntrinsics []float64 `json:"call_intrinsics"`
	PutIntrinsics  []float64 `json:"put_intrinsics"`
}

// Sample is one aligned point of a curve.
type Sample struct {
	Spot          float64
	Call          float64
	Put           float64
	CallIntrinsic float64
	PutIntrinsic  float64
}

// Len returns the number of sample points.
func (c *Curve) Len() int { return len(c.Spots) }

// Sample returns the aligned tuple at index i.
func (c *Curve) Sample(i int) Sample {
	return Sample{
		Spot:          c.Spots[i],
		Call:          c.Calls[i],
		Put:           c.Puts[i],
		CallIntrinsic: c.CallIntrinsics[i],
		PutIntrinsic:  c.PutIntrinsics[i],
	}
}

// Generate prices both sides and the intrinsic baselines at every point
// of the spot sweep. p.Spot is ignored; the sweep supplies it.
func Generate(p pricing.Parameters, cfg Config) (*Curve, error) {
	samples := cfg.Samples
	if samples == 0 {
		samples = DefaultSamples
	}
	if samples < 2 {
		return nil, fmt.Errorf("curve: need at least 2 samples, got %d", samples)
	}

	lo, err := resolveBoundOrDefault(cfg.MinSpot, defaultMinSpot, p.Strike)
	if err != nil {
		return nil, err
	}
	hi, err := resolveBoundOrDefault(cfg.MaxSpot, defaultMaxSpot, p.Strike)
	if err != nil {
		return nil, err
	}
	if hi <= lo {
		return nil, fmt.Errorf("curve: empty spot range [%v, %v]", lo, hi)
	}

	c := &Curve{
		Spots:          make([]float64, samples),
		Calls:          make([]float64, samples),
		Puts:           make([]float64, samples),
		CallIntrinsics: make([]float64, samples),
		PutIntrinsics:  make([]float64, samples),
	}
	floats.Span(c.Spots, lo, hi)

	for i, s := range c.Spots {
		p.Spot = s
		c.Calls[i] = pricing.CallPrice(p)
		c.Puts[i] = pricing.PutPrice(p)
		c.CallIntrinsics[i] = pricing.IntrinsicCall(s, p.Strike)
		c.PutIntrinsics[i] = pricing.IntrinsicPut(s, p.Strike)
	}

	logger.Debugf("event=curve_generated strike=%.2f samples=%d range=[%.2f, %.2f]",
		p.Strike, samples, lo, hi)
	return c, nil
}

func resolveBoundOrDefault(expr, fallback string, strike float64) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		expr = fallback
	}
	return ResolveBound(expr, strike)
}

// ResolveBound evaluates a spot-bound expression with the strike bound to
// the variable K.
func ResolveBound(expr string, strike float64) (float64, error) {
	ev, err := govaluate.NewEvaluableExpression(expr)
	if err != nil {
		return 0, fmt.Errorf("curve: invalid spot bound %q: %w", expr, err)
	}

	res, err := ev.Evaluate(map[string]interface{}{"K": strike})
	if err != nil {
		return 0, fmt.Errorf("curve: evaluating spot bound %q: %w", expr, err)
	}

	f, ok := res.(float64)
	if !ok {
		return 0, fmt.Errorf("curve: spot bound %q is not numeric (got %T)", expr, res)
	}
	return f, nil
}

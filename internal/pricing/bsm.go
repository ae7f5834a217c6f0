// Package pricing implements closed-form European option valuation under
// the Black-Scholes-Merton model with a continuous dividend yield.
//
// Every function in this package is pure: the price is a deterministic
// function of the supplied parameters and nothing else. There are no error
// returns — the functions are total over the pre-clamped input domain
// (K > 0; S, T, sigma, q >= 0). Callers that accept unconstrained input are
// expected to clamp it first (see the params package).
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Side selects which side of the contract to value.
type Side int

const (
	Call Side = iota
	Put
)

func (s Side) String() string {
	if s == Put {
		return "put"
	}
	return "call"
}

// Parameters is an immutable value describing a single valuation.
//
// Rate, Volatility and Dividend are decimals (0.02 for 2%), Maturity is in
// years. Spot is the point on the underlying axis being valued; the curve
// package overwrites it while sweeping.
type Parameters struct {
	Spot       float64 `json:"spot"`       // S, underlying price
	Strike     float64 `json:"strike"`     // K, exercise price
	Maturity   float64 `json:"maturity"`   // T, years to expiry
	Rate       float64 `json:"rate"`       // r, continuously-compounded risk-free rate
	Volatility float64 `json:"volatility"` // sigma, annualized
	Dividend   float64 `json:"dividend"`   // q, continuous dividend yield
}

// stdNormal is the standard normal distribution used for the CDF terms.
// gonum's implementation is erfc-based and stable far into the tails.
var stdNormal = distuv.UnitNormal

// Price returns the Black-Scholes-Merton value of one side of a European
// option.
//
// When volatility or maturity is zero (or negative) the option carries no
// time value and the price collapses to the discounted intrinsic value of
// the forward — not the spot intrinsic value — which is the correct limit
// as sigma or T shrinks to zero:
//
//	call: max(0, S·e^(−qT) − K·e^(−rT))
//	put:  max(0, K·e^(−rT) − S·e^(−qT))
//
// S = 0 is a valid input: d1 and d2 diverge to −∞ and the call value is 0
// while the put value is the discounted strike.
func Price(p Parameters, side Side) float64 {
	if side == Put {
		return PutPrice(p)
	}
	return CallPrice(p)
}

// CallPrice returns the value of the European call. See Price for the
// degenerate-input policy.
func CallPrice(p Parameters) float64 {
	discS := p.Spot * math.Exp(-p.Dividend*p.Maturity)
	discK := p.Strike * math.Exp(-p.Rate*p.Maturity)

	if p.Volatility <= 0 || p.Maturity <= 0 {
		return math.Max(0, discS-discK)
	}

	d1, d2 := dValues(p)
	return discS*stdNormal.CDF(d1) - discK*stdNormal.CDF(d2)
}

// PutPrice returns the value of the European put. See Price for the
// degenerate-input policy.
func PutPrice(p Parameters) float64 {
	discS := p.Spot * math.Exp(-p.Dividend*p.Maturity)
	discK := p.Strike * math.Exp(-p.Rate*p.Maturity)

	if p.Volatility <= 0 || p.Maturity <= 0 {
		return math.Max(0, discK-discS)
	}

	d1, d2 := dValues(p)
	return discK*stdNormal.CDF(-d2) - discS*stdNormal.CDF(-d1)
}

// dValues computes the d1/d2 terms of the dividend-adjusted model:
//
//	d1 = [ln(S/K) + (r − q + 0.5σ²)·T] / (σ·√T)
//	d2 = d1 − σ·√T
//
// Only called on the non-degenerate branch, so σ·√T > 0.
func dValues(p Parameters) (d1, d2 float64) {
	volSqrtT := p.Volatility * math.Sqrt(p.Maturity)
	d1 = (math.Log(p.Spot/p.Strike) +
		(p.Rate-p.Dividend+0.5*p.Volatility*p.Volatility)*p.Maturity) / volSqrtT
	return d1, d1 - volSqrtT
}

// IntrinsicCall is the immediate-exercise payoff of the call, max(S−K, 0).
func IntrinsicCall(spot, strike float64) float64 {
	return math.Max(spot-strike, 0)
}

// IntrinsicPut is the immediate-exercise payoff of the put, max(K−S, 0).
func IntrinsicPut(spot, strike float64) float64 {
	return math.Max(strike-spot, 0)
}

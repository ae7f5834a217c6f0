package params

import (
	"testing"

	tests "github.com/contactkeval/option-curve/internal/testutil"
)

func TestClampBounds(t *testing.T) {
	tests.InDelta(t, "below min", 10, StrikeRange.Clamp(3), 0)
	tests.InDelta(t, "above max", 200, StrikeRange.Clamp(500), 0)
	tests.InDelta(t, "inside", 100, StrikeRange.Clamp(100), 0)
}

func TestClampSnapsToStep(t *testing.T) {
	tests.InDelta(t, "round down", 100, StrikeRange.Clamp(102), 0)
	tests.InDelta(t, "round up", 105, StrikeRange.Clamp(103), 0)
	tests.InDelta(t, "maturity snap", 0.3, MaturityRange.Clamp(0.26), 1e-9)
	tests.InDelta(t, "vol snap", 21, VolRange.Clamp(21.4), 1e-9)
}

func TestClampNoStep(t *testing.T) {
	r := Range{Min: 0, Max: 1}
	tests.InDelta(t, "free value", 0.123, r.Clamp(0.123), 0)
}

func TestDefaultsAreReachable(t *testing.T) {
	d := Defaults()
	c := d.Clamped()

	tests.InDelta(t, "strike", d.Strike, c.Strike, 1e-9)
	tests.InDelta(t, "maturity", d.Maturity, c.Maturity, 1e-9)
	tests.InDelta(t, "rate", d.RatePct, c.RatePct, 1e-9)
	tests.InDelta(t, "vol", d.VolPct, c.VolPct, 1e-9)
	tests.InDelta(t, "dividend", d.DividendPct, c.DividendPct, 1e-9)
}

func TestPercentTransform(t *testing.T) {
	p := Defaults().Parameters()

	tests.InDelta(t, "rate", 0.02, p.Rate, 1e-12)
	tests.InDelta(t, "vol", 0.20, p.Volatility, 1e-12)
	tests.InDelta(t, "dividend", 0.01, p.Dividend, 1e-12)
	tests.InDelta(t, "strike passthrough", 100, p.Strike, 0)
	tests.InDelta(t, "maturity passthrough", 1.0, p.Maturity, 0)
	tests.InDelta(t, "spot unset", 0, p.Spot, 0)
}

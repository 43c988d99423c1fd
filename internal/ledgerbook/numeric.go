package ledgerbook

import (
	"math"

	"github.com/shopspring/decimal"
)

// Num converts a stored numeric field to a decimal, substituting fallback
// when the value is NaN or infinite. Records migrated from older backends
// carry malformed numerics, and decimal.NewFromFloat panics on them; every
// persisted float enters the ledger math through this guard.
func Num(v, fallback float64) decimal.Decimal {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = fallback
	}
	return decimal.NewFromFloat(v)
}

// NumPtr is Num for nullable fields; nil maps to the fallback.
func NumPtr(v *float64, fallback float64) decimal.Decimal {
	if v == nil {
		return Num(fallback, 0)
	}
	return Num(*v, fallback)
}

// finite returns the value as a decimal and whether it was present and
// finite.
func finite(v *float64) (decimal.Decimal, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(*v), true
}

// pickFinite returns the first present-and-finite candidate, or fallback
// when none qualifies.
func pickFinite(fallback decimal.Decimal, candidates ...*float64) decimal.Decimal {
	for _, c := range candidates {
		if d, ok := finite(c); ok {
			return d
		}
	}
	return fallback
}

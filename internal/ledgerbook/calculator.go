package ledgerbook

import "github.com/shopspring/decimal"

// CalcSource records which of fine/amount the operator touched last. The two
// fields derive each other through the rate; without a last-touched tag the
// form would oscillate between the two derivations.
type CalcSource int

const (
	SourceNone CalcSource = iota
	SourceFine
	SourceAmount
)

// EntryCalc keeps metal rate, fine weight and amount mutually consistent
// while a settlement entry is being filled in. Values are immutable; every
// edit returns a recomputed copy.
type EntryCalc struct {
	Rate   decimal.Decimal
	Fine   decimal.Decimal
	Amount decimal.Decimal
	Source CalcSource
}

// WithRate sets the metal rate and re-derives the dependent field.
func (c EntryCalc) WithRate(rate decimal.Decimal) EntryCalc {
	c.Rate = rate
	return c.recalc()
}

// WithFine sets the fine weight, marking fine as the driving field.
func (c EntryCalc) WithFine(fine decimal.Decimal) EntryCalc {
	c.Fine = fine
	c.Source = SourceFine
	return c.recalc()
}

// WithAmount sets the amount, marking amount as the driving field.
func (c EntryCalc) WithAmount(amount decimal.Decimal) EntryCalc {
	c.Amount = amount
	c.Source = SourceAmount
	return c.recalc()
}

func (c EntryCalc) recalc() EntryCalc {
	if c.Source == SourceAmount {
		// Amount drives fine. A zero rate would divide by zero; leave fine
		// as the operator last saw it.
		if c.Rate.IsZero() {
			return c
		}
		c.Fine = c.Amount.Div(c.Rate)
		return c
	}

	// Fine-driven, also the initial state. The amount is only a derived
	// figure while the product is meaningful; otherwise it is cleared.
	product := c.Rate.Mul(c.Fine)
	if product.IsPositive() {
		c.Amount = product
	} else {
		c.Amount = decimal.Zero
	}
	return c
}

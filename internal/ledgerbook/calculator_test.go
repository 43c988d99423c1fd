package ledgerbook_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestEntryCalc_FineDriven(t *testing.T) {
	c := ledgerbook.EntryCalc{}.WithRate(d(5000)).WithFine(d(2))

	assert.Equal(t, "10000", c.Amount.String())
}

func TestEntryCalc_AmountDriven(t *testing.T) {
	c := ledgerbook.EntryCalc{}.WithRate(d(5000)).WithAmount(d(10000))

	assert.Equal(t, "2", c.Fine.String())
}

func TestEntryCalc_RateChangeRedrivesFromLastTouched(t *testing.T) {
	// Amount was entered last, so a rate change re-derives fine, not amount.
	c := ledgerbook.EntryCalc{}.WithRate(d(5000)).WithAmount(d(10000)).WithRate(d(4000))

	assert.Equal(t, "10000", c.Amount.String())
	assert.Equal(t, "2.5", c.Fine.String())
}

func TestEntryCalc_RateChangeAfterFine(t *testing.T) {
	c := ledgerbook.EntryCalc{}.WithFine(d(2)).WithRate(d(6000))

	assert.Equal(t, "2", c.Fine.String())
	assert.Equal(t, "12000", c.Amount.String())
}

func TestEntryCalc_ZeroRateAmountDriven(t *testing.T) {
	// No division by zero: fine keeps its last value.
	c := ledgerbook.EntryCalc{}.WithRate(d(5000)).WithAmount(d(10000)).WithRate(decimal.Zero)

	assert.Equal(t, "2", c.Fine.String())
	assert.Equal(t, "10000", c.Amount.String())
}

func TestEntryCalc_NonPositiveProductClearsAmount(t *testing.T) {
	c := ledgerbook.EntryCalc{}.WithRate(d(5000)).WithFine(decimal.Zero)

	assert.True(t, c.Amount.IsZero())
}

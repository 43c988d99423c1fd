package ledgerbook_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
)

func f(v float64) *float64 { return &v }

func TestAmountBalance_LegacyAmountFallback(t *testing.T) {
	// Old rows carry only the single Amount field.
	ledger := &entity.Ledger{Amount: 500}

	assert.Equal(t, "500", ledgerbook.AmountBalance(ledger).String())
}

func TestAmountBalance_SplitWinsOverStaleAmount(t *testing.T) {
	// Newer rows carry the cash/credit split; a stale Amount must be ignored.
	ledger := &entity.Ledger{
		CashBalance:   f(150),
		CreditBalance: f(-50),
		Amount:        999,
	}

	assert.Equal(t, "100", ledgerbook.AmountBalance(ledger).String())
}

func TestAmountBalance_HalfSplitPresent(t *testing.T) {
	// One half of the split present still makes the split authoritative.
	ledger := &entity.Ledger{CashBalance: f(75), Amount: 999}

	assert.Equal(t, "75", ledgerbook.AmountBalance(ledger).String())
}

func TestTotalsOf_ComputedFallback(t *testing.T) {
	voucher := &entity.Voucher{
		Items: []entity.VoucherItem{
			{ItemName: "Ring", MetalType: enum.MetalGold, Amount: 100},
			{ItemName: "Chain", MetalType: enum.MetalGold, Amount: 50},
		},
		StoneAmount: 10,
	}

	totals := ledgerbook.TotalsOf(voucher)
	assert.Equal(t, "160", totals.VoucherTotal.String())
}

func TestTotalsOf_ExplicitTotalWins(t *testing.T) {
	// An explicit total is authoritative; the computed sum must not be added
	// on top of it.
	voucher := &entity.Voucher{
		Items: []entity.VoucherItem{
			{ItemName: "Ring", MetalType: enum.MetalGold, Amount: 100},
			{ItemName: "Chain", MetalType: enum.MetalGold, Amount: 50},
		},
		StoneAmount: 10,
		Total:       f(200),
	}

	totals := ledgerbook.TotalsOf(voucher)
	assert.Equal(t, "200", totals.VoucherTotal.String())
}

func TestTotalsOf_FineWeightPerMetal(t *testing.T) {
	voucher := &entity.Voucher{
		Items: []entity.VoucherItem{
			{MetalType: enum.MetalGold, FineWeight: 2.5},
			{MetalType: enum.MetalGold, FineWeight: 1.5},
			{MetalType: enum.MetalSilver, FineWeight: 10},
		},
	}

	totals := ledgerbook.TotalsOf(voucher)
	assert.Equal(t, "4", totals.GoldFineWeight.String())
	assert.Equal(t, "10", totals.SilverFineWeight.String())
}

func TestTotalsOf_EmptyItems(t *testing.T) {
	totals := ledgerbook.TotalsOf(&entity.Voucher{})

	assert.True(t, totals.VoucherTotal.IsZero())
	assert.True(t, totals.GoldFineWeight.IsZero())
	assert.True(t, totals.SilverFineWeight.IsZero())
}

func TestNum_MalformedValuesCoerceToFallback(t *testing.T) {
	assert.Equal(t, "0", ledgerbook.Num(math.NaN(), 0).String())
	assert.Equal(t, "0", ledgerbook.Num(math.Inf(1), 0).String())
	assert.Equal(t, "7", ledgerbook.Num(math.Inf(-1), 7).String())
	assert.Equal(t, "3.5", ledgerbook.Num(3.5, 0).String())
}

func TestDerivation_IsIdempotentAndNonMutating(t *testing.T) {
	voucher := &entity.Voucher{
		Items: []entity.VoucherItem{
			{ItemName: "Ring", MetalType: enum.MetalGold, Amount: 100, FineWeight: 2},
		},
		StoneAmount:  10,
		CashReceived: 60,
	}
	ledger := &entity.Ledger{CashBalance: f(500), GoldFineWeight: 2}

	first := ledgerbook.BalanceDetailsOf(voucher, ledger)
	second := ledgerbook.BalanceDetailsOf(voucher, ledger)

	assert.Equal(t, first, second)
	// Inputs untouched.
	assert.Equal(t, 100.0, voucher.Items[0].Amount)
	assert.Equal(t, 500.0, *ledger.CashBalance)
}

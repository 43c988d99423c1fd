package ledgerbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
)

func legacyVoucher(pt enum.PaymentType, cashReceived, goldRate, silverRate float64) ledgerbook.Transaction {
	return ledgerbook.VoucherTxn(&entity.Voucher{
		Date:         time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		PaymentType:  pt,
		CashReceived: cashReceived,
		GoldRate:     goldRate,
		SilverRate:   silverRate,
	})
}

func TestSettlementViewOf_TrueSettlement(t *testing.T) {
	txn := ledgerbook.SettlementTxn(&entity.Settlement{
		MetalType: enum.MetalSilver,
		MetalRate: 80,
		FineGiven: 10,
		Amount:    800,
	})

	view := ledgerbook.SettlementViewOf(txn)

	assert.Equal(t, ledgerbook.LabelSilver, view.MetalLabel)
	assert.Equal(t, "80", view.MetalRate.String())
	assert.Equal(t, "10", view.FineGiven.String())
	assert.Equal(t, "800", view.Amount.String())
}

func TestSettlementViewOf_AddCash(t *testing.T) {
	view := ledgerbook.SettlementViewOf(legacyVoucher(enum.PaymentAddCash, 500, 0, 0))

	assert.Equal(t, ledgerbook.LabelCash, view.MetalLabel)
	assert.Equal(t, "500", view.Amount.String())
	assert.True(t, view.FineGiven.IsZero())
}

func TestSettlementViewOf_AddGold_CashReceivedIsFine(t *testing.T) {
	// In add_gold vouchers CashReceived holds the fine weight, not money.
	view := ledgerbook.SettlementViewOf(legacyVoucher(enum.PaymentAddGold, 2, 5000, 0))

	assert.Equal(t, ledgerbook.LabelGold, view.MetalLabel)
	assert.Equal(t, "2", view.FineGiven.String())
	assert.Equal(t, "10000", view.Amount.String())
}

func TestSettlementViewOf_MoneyToGold_FineIsDerived(t *testing.T) {
	view := ledgerbook.SettlementViewOf(legacyVoucher(enum.PaymentMoneyToGold, 10000, 5000, 0))

	assert.Equal(t, ledgerbook.LabelGold, view.MetalLabel)
	assert.Equal(t, "10000", view.Amount.String())
	assert.Equal(t, "2", view.FineGiven.String())
}

func TestSettlementViewOf_MoneyToGold_ZeroRate(t *testing.T) {
	view := ledgerbook.SettlementViewOf(legacyVoucher(enum.PaymentMoneyToGold, 10000, 0, 0))

	assert.True(t, view.FineGiven.IsZero())
	assert.Equal(t, "10000", view.Amount.String())
}

func TestSettlementViewOf_MoneyToSilver(t *testing.T) {
	view := ledgerbook.SettlementViewOf(legacyVoucher(enum.PaymentMoneyToSilver, 800, 0, 80))

	assert.Equal(t, ledgerbook.LabelSilver, view.MetalLabel)
	assert.Equal(t, "10", view.FineGiven.String())
}

func TestSettlementViewOf_UnknownPaymentTypeDegrades(t *testing.T) {
	// Old data with an unrecognized payment type must render, not crash.
	view := ledgerbook.SettlementViewOf(legacyVoucher(enum.PaymentType("mystery"), 42, 0, 0))

	assert.Equal(t, ledgerbook.LabelUnknown, view.MetalLabel)
	assert.Equal(t, "42", view.Amount.String())
	assert.True(t, view.FineGiven.IsZero())
}

func TestClassify(t *testing.T) {
	sale := ledgerbook.VoucherTxn(&entity.Voucher{VoucherType: enum.VoucherSale})
	purchase := ledgerbook.VoucherTxn(&entity.Voucher{VoucherType: enum.VoucherPurchase})
	legacy := ledgerbook.VoucherTxn(&entity.Voucher{VoucherType: enum.VoucherSale, PaymentType: enum.PaymentAddGold})
	settlement := ledgerbook.SettlementTxn(&entity.Settlement{})

	assert.Equal(t, ledgerbook.KindSale, ledgerbook.Classify(sale))
	assert.Equal(t, ledgerbook.KindPurchase, ledgerbook.Classify(purchase))
	assert.Equal(t, ledgerbook.KindLegacySettlement, ledgerbook.Classify(legacy))
	assert.Equal(t, ledgerbook.KindSettlement, ledgerbook.Classify(settlement))
}

func TestClassify_SettlementPaymentTypeWinsOverVoucherType(t *testing.T) {
	// A purchase-shaped voucher with a settlement payment type is a
	// settlement; the payment type is the stronger signal.
	txn := ledgerbook.VoucherTxn(&entity.Voucher{
		VoucherType: enum.VoucherPurchase,
		PaymentType: enum.PaymentMoneyToSilver,
	})

	assert.Equal(t, ledgerbook.KindLegacySettlement, ledgerbook.Classify(txn))
}

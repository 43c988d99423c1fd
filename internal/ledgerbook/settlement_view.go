package ledgerbook

import (
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Metal labels used on statements and exports.
const (
	LabelGold    = "Gold"
	LabelSilver  = "Silver"
	LabelCash    = "Cash"
	LabelUnknown = "Unknown"
)

// SettlementView is the uniform display shape of any settlement-like
// transaction, whatever encoding it was stored under. Legacy settlement
// vouchers overload CashReceived to mean different things per payment type;
// normalizing here keeps display, print and export paths free of that
// knowledge.
type SettlementView struct {
	MetalLabel string
	MetalRate  decimal.Decimal
	FineGiven  decimal.Decimal
	Amount     decimal.Decimal
}

// SettlementViewOf maps a transaction to its settlement view.
//
// For legacy vouchers:
//   - add_cash: a plain cash top-up, CashReceived is the amount.
//   - add_gold/add_silver: CashReceived is a fine weight; amount is
//     fine x rate.
//   - money_to_gold/money_to_silver: CashReceived is money; fine is
//     amount / rate, zero when the rate is zero.
//
// An unrecognized payment type degrades to a labeled placeholder instead of
// failing: old data must render, not crash.
func SettlementViewOf(t Transaction) SettlementView {
	if t.Settlement != nil {
		s := t.Settlement
		label := LabelGold
		if s.MetalType == enum.MetalSilver {
			label = LabelSilver
		}
		return SettlementView{
			MetalLabel: label,
			MetalRate:  Num(s.MetalRate, 0),
			FineGiven:  Num(s.FineGiven, 0),
			Amount:     Num(s.Amount, 0),
		}
	}

	v := t.Voucher
	cash := Num(v.CashReceived, 0)

	switch v.PaymentType {
	case enum.PaymentAddCash:
		return SettlementView{MetalLabel: LabelCash, Amount: cash}

	case enum.PaymentAddGold:
		rate := Num(v.GoldRate, 0)
		return SettlementView{MetalLabel: LabelGold, MetalRate: rate, FineGiven: cash, Amount: cash.Mul(rate)}

	case enum.PaymentAddSilver:
		rate := Num(v.SilverRate, 0)
		return SettlementView{MetalLabel: LabelSilver, MetalRate: rate, FineGiven: cash, Amount: cash.Mul(rate)}

	case enum.PaymentMoneyToGold:
		rate := Num(v.GoldRate, 0)
		return SettlementView{MetalLabel: LabelGold, MetalRate: rate, FineGiven: safeDiv(cash, rate), Amount: cash}

	case enum.PaymentMoneyToSilver:
		rate := Num(v.SilverRate, 0)
		return SettlementView{MetalLabel: LabelSilver, MetalRate: rate, FineGiven: safeDiv(cash, rate), Amount: cash}
	}

	return SettlementView{MetalLabel: LabelUnknown, Amount: cash}
}

// safeDiv divides a by b, returning zero when b is zero.
func safeDiv(a, b decimal.Decimal) decimal.Decimal {
	if b.IsZero() {
		return decimal.Zero
	}
	return a.Div(b)
}

package ledgerbook

import (
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// BalanceDetails is the old/new balance pair shown when a voucher is
// previewed or printed.
type BalanceDetails struct {
	OldAmount decimal.Decimal
	OldGold   decimal.Decimal
	OldSilver decimal.Decimal

	CurrentAmount decimal.Decimal
	CurrentGold   decimal.Decimal
	CurrentSilver decimal.Decimal

	VoucherTotal decimal.Decimal
	ReceiptGross decimal.Decimal
}

// BalanceDetailsOf derives the balances around one voucher.
//
// The old (pre-transaction) side prefers the snapshot recorded at creation
// time, then the legacy OldBalance field, and finally synthesizes
// current-minus-contribution when neither survives. The current side is
// always read live from the ledger record, never from the snapshot: the
// displayed current state must reflect the latest ledger even when
// historical vouchers carry stale snapshots. Two vouchers previewed
// back-to-back therefore both show today's balance on the current side; that
// behavior is intentional and must not be "fixed" to point-in-time values.
func BalanceDetailsOf(v *entity.Voucher, l *entity.Ledger) BalanceDetails {
	totals := TotalsOf(v)

	curAmount := AmountBalance(l)
	curGold := Num(l.GoldFineWeight, 0)
	curSilver := Num(l.SilverFineWeight, 0)

	var snapAmount, snapGold, snapSilver *float64
	if v.BalanceSnapshot != nil {
		snapAmount = v.BalanceSnapshot.OldBalance.TotalAmount
		snapGold = v.BalanceSnapshot.OldBalance.GoldFineWeight
		snapSilver = v.BalanceSnapshot.OldBalance.SilverFineWeight
	}

	return BalanceDetails{
		OldAmount: pickFinite(curAmount.Sub(totals.VoucherTotal), snapAmount, v.OldBalance),
		OldGold:   pickFinite(curGold.Sub(totals.GoldFineWeight), snapGold),
		OldSilver: pickFinite(curSilver.Sub(totals.SilverFineWeight), snapSilver),

		CurrentAmount: curAmount,
		CurrentGold:   curGold,
		CurrentSilver: curSilver,

		VoucherTotal: totals.VoucherTotal,
		ReceiptGross: totals.ReceiptGross,
	}
}

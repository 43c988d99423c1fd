package ledgerbook

import (
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// VoucherTotals are the per-voucher aggregates every display and export path
// shares.
type VoucherTotals struct {
	// VoucherTotal is the voucher's explicit Total when one is stored,
	// otherwise items + stone + fine. The two are never combined.
	VoucherTotal decimal.Decimal

	// Fine weight summed per metal across line items.
	GoldFineWeight   decimal.Decimal
	SilverFineWeight decimal.Decimal

	// ReceiptGross is the money actually received against the voucher.
	ReceiptGross decimal.Decimal
}

// TotalsOf computes the voucher's aggregates. A missing or empty items slice
// yields zero totals, not an error.
func TotalsOf(v *entity.Voucher) VoucherTotals {
	itemSum := decimal.Zero
	gold := decimal.Zero
	silver := decimal.Zero

	for i := range v.Items {
		it := &v.Items[i]
		itemSum = itemSum.Add(Num(it.Amount, 0))

		fine := Num(it.FineWeight, 0)
		switch it.MetalType {
		case enum.MetalGold:
			gold = gold.Add(fine)
		case enum.MetalSilver:
			silver = silver.Add(fine)
		}
	}

	total := itemSum.Add(Num(v.StoneAmount, 0)).Add(Num(v.FineAmount, 0))
	if explicit, ok := finite(v.Total); ok {
		total = explicit
	}

	return VoucherTotals{
		VoucherTotal:     total,
		GoldFineWeight:   gold,
		SilverFineWeight: silver,
		ReceiptGross:     Num(v.CashReceived, 0),
	}
}

// AmountBalance returns the ledger's cash-side balance. Newer rows carry the
// split cash/credit pair; when either half is present the split is
// authoritative and any stale Amount is ignored. Legacy rows fall back to
// the single Amount field. There is no migration step, so both shapes must
// keep working indefinitely.
func AmountBalance(l *entity.Ledger) decimal.Decimal {
	cash, cashOK := finite(l.CashBalance)
	credit, creditOK := finite(l.CreditBalance)
	if cashOK || creditOK {
		return cash.Add(credit)
	}
	return Num(l.Amount, 0)
}

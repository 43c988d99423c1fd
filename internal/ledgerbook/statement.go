package ledgerbook

import (
	"sort"
	"strings"
	"time"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// StatementRow is one printed line of a ledger statement, carrying the
// running balance after its transaction was applied.
type StatementRow struct {
	Date        time.Time
	Kind        Kind
	BillNo      string
	Particulars string

	Pieces      int
	GrossWeight decimal.Decimal
	GoldFine    decimal.Decimal
	SilverFine  decimal.Decimal
	Wastage     decimal.Decimal
	Rate        decimal.Decimal

	Amount       decimal.Decimal
	CashReceived decimal.Decimal

	RunCash   decimal.Decimal
	RunGold   decimal.Decimal
	RunSilver decimal.Decimal
}

// Statement is the derived view-model both exporters render. Transactions
// holds the filtered, sorted inputs so the item-level CSV and the row-level
// PDF stay on the same data.
type Statement struct {
	Ledger *entity.Ledger
	From   time.Time
	To     time.Time

	OpeningCash   decimal.Decimal
	OpeningGold   decimal.Decimal
	OpeningSilver decimal.Decimal

	Transactions []Transaction
	Rows         []StatementRow

	ClosingCash   decimal.Decimal
	ClosingGold   decimal.Decimal
	ClosingSilver decimal.Decimal
}

// FilterByDate returns the transactions inside [from, to]. The end bound is
// extended to 23:59:59.999 of its day so a date-only "to" includes that
// whole day. Zero bounds leave that side open.
func FilterByDate(txns []Transaction, from, to time.Time) []Transaction {
	if !to.IsZero() {
		to = endOfDay(to)
	}

	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		d := t.Date()
		if !from.IsZero() && d.Before(from) {
			continue
		}
		if !to.IsZero() && d.After(to) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// BuildStatement replays a ledger's transactions chronologically from the
// opening balance and emits one row per transaction with post-update running
// totals. Same-day entries keep their input order (stable sort).
//
// The fold never mutates its inputs; rebuilding from the same snapshot
// yields an equal statement. When the window covers the full history the
// closing totals equal the ledger's live balances — RecalculateBalance
// persists exactly these values, so the equivalence holds by construction
// and is asserted in tests rather than assumed.
func BuildStatement(l *entity.Ledger, txns []Transaction, from, to time.Time) *Statement {
	filtered := FilterByDate(txns, from, to)
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date().Before(filtered[j].Date())
	})

	st := &Statement{
		Ledger:        l,
		From:          from,
		To:            to,
		OpeningCash:   Num(l.OpeningBalance.Amount, 0),
		OpeningGold:   Num(l.OpeningBalance.GoldFineWeight, 0),
		OpeningSilver: Num(l.OpeningBalance.SilverFineWeight, 0),
		Transactions:  filtered,
		Rows:          make([]StatementRow, 0, len(filtered)),
	}

	runCash := st.OpeningCash
	runGold := st.OpeningGold
	runSilver := st.OpeningSilver

	for _, t := range filtered {
		row := rowFor(t)
		runCash, runGold, runSilver = Apply(t, runCash, runGold, runSilver)

		row.RunCash = runCash
		row.RunGold = runGold
		row.RunSilver = runSilver
		st.Rows = append(st.Rows, row)
	}

	st.ClosingCash = runCash
	st.ClosingGold = runGold
	st.ClosingSilver = runSilver
	return st
}

// Apply folds one transaction into a cash/gold/silver balance triple. It is
// the single authority for how transactions move balances: the statement
// replay, live balance updates on voucher and settlement writes, and
// RecalculateBalance all go through it.
func Apply(t Transaction, cash, gold, silver decimal.Decimal) (c, g, s decimal.Decimal) {
	switch Classify(t) {
	case KindPurchase:
		// Shop pays cash and gains metal.
		totals := TotalsOf(t.Voucher)
		return cash.Sub(totals.ReceiptGross),
			gold.Add(totals.GoldFineWeight),
			silver.Add(totals.SilverFineWeight)

	case KindSettlement, KindLegacySettlement:
		return applySettlement(t, cash, gold, silver)

	default: // sale
		totals := TotalsOf(t.Voucher)
		return cash.Add(totals.VoucherTotal),
			gold.Add(totals.GoldFineWeight),
			silver.Add(totals.SilverFineWeight)
	}
}

// applySettlement folds one settlement-like transaction into the running
// totals. True settlement records and legacy add_gold/add_silver vouchers
// describe the same economic event (fine metal handed over), so both move
// the metal column by the fine given; the money_to_* modes move cash in and
// the bought metal out.
func applySettlement(t Transaction, cash, gold, silver decimal.Decimal) (c, g, s decimal.Decimal) {
	view := SettlementViewOf(t)

	if t.Settlement != nil {
		if t.Settlement.MetalType == enum.MetalSilver {
			return cash, gold, silver.Add(view.FineGiven)
		}
		return cash, gold.Add(view.FineGiven), silver
	}

	switch t.Voucher.PaymentType {
	case enum.PaymentAddCash:
		return cash.Add(view.Amount), gold, silver
	case enum.PaymentAddGold:
		return cash, gold.Add(view.FineGiven), silver
	case enum.PaymentAddSilver:
		return cash, gold, silver.Add(view.FineGiven)
	case enum.PaymentMoneyToGold:
		return cash.Add(view.Amount), gold.Sub(view.FineGiven), silver
	case enum.PaymentMoneyToSilver:
		return cash.Add(view.Amount), gold, silver.Sub(view.FineGiven)
	}

	// Unrecognized settlement encodings render as placeholders and leave the
	// running balance untouched.
	return cash, gold, silver
}

// rowFor builds the display fields of one statement row, without running
// totals.
func rowFor(t Transaction) StatementRow {
	row := StatementRow{
		Date:   t.Date(),
		Kind:   Classify(t),
		BillNo: t.BillNo(),
	}

	if row.Kind == KindSettlement || row.Kind == KindLegacySettlement {
		view := SettlementViewOf(t)
		row.Particulars = "Settlement (" + view.MetalLabel + ")"
		row.Rate = view.MetalRate
		row.Amount = view.Amount
		switch view.MetalLabel {
		case LabelGold:
			row.GoldFine = view.FineGiven
		case LabelSilver:
			row.SilverFine = view.FineGiven
		}
		if t.Settlement != nil && t.Settlement.Narration != nil && *t.Settlement.Narration != "" {
			row.Particulars = *t.Settlement.Narration
		}
		return row
	}

	v := t.Voucher
	totals := TotalsOf(v)
	row.Particulars = itemSummary(v.Items)
	row.GoldFine = totals.GoldFineWeight
	row.SilverFine = totals.SilverFineWeight
	row.Amount = totals.VoucherTotal
	row.CashReceived = totals.ReceiptGross

	for i := range v.Items {
		it := &v.Items[i]
		row.Pieces += it.Pieces
		row.GrossWeight = row.GrossWeight.Add(Num(it.GrossWeight, 0))
		if row.Wastage.IsZero() {
			row.Wastage = Num(it.Wastage, 0)
		}
	}

	// Rate column follows the dominant metal on the bill.
	if totals.SilverFineWeight.GreaterThan(totals.GoldFineWeight) {
		row.Rate = Num(v.SilverRate, 0)
	} else {
		row.Rate = Num(v.GoldRate, 0)
	}
	return row
}

func itemSummary(items []entity.VoucherItem) string {
	if len(items) == 0 {
		return ""
	}
	names := make([]string, 0, len(items))
	for i := range items {
		names = append(names, items[i].ItemName)
	}
	return strings.Join(names, ", ")
}

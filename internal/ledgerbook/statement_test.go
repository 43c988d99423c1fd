package ledgerbook_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func saleTxn(d int, total, goldFine float64) ledgerbook.Transaction {
	return ledgerbook.VoucherTxn(&entity.Voucher{
		Date:        day(d),
		VoucherType: enum.VoucherSale,
		Total:       f(total),
		Items: []entity.VoucherItem{
			{ItemName: "Ring", MetalType: enum.MetalGold, FineWeight: goldFine},
		},
	})
}

func TestFilterByDate_EndBoundIncludesWholeDay(t *testing.T) {
	late := ledgerbook.VoucherTxn(&entity.Voucher{
		Date: time.Date(2025, 3, 10, 18, 30, 0, 0, time.UTC),
	})

	got := ledgerbook.FilterByDate([]ledgerbook.Transaction{late}, day(1), day(10))

	assert.Len(t, got, 1)
}

func TestFilterByDate_ZeroBoundsOpen(t *testing.T) {
	txns := []ledgerbook.Transaction{saleTxn(1, 100, 0), saleTxn(20, 100, 0)}

	assert.Len(t, ledgerbook.FilterByDate(txns, time.Time{}, time.Time{}), 2)
	assert.Len(t, ledgerbook.FilterByDate(txns, day(10), time.Time{}), 1)
	assert.Len(t, ledgerbook.FilterByDate(txns, time.Time{}, day(10)), 1)
}

func TestBuildStatement_FoldFromOpeningBalance(t *testing.T) {
	ledger := &entity.Ledger{
		Name: "Asha",
		OpeningBalance: entity.OpeningBalance{
			Amount:         1000,
			GoldFineWeight: 1,
		},
	}
	txns := []ledgerbook.Transaction{
		saleTxn(2, 500, 2),
		ledgerbook.SettlementTxn(&entity.Settlement{
			Date: day(3), MetalType: enum.MetalGold, MetalRate: 5000, FineGiven: 1, Amount: 5000,
		}),
	}

	st := ledgerbook.BuildStatement(ledger, txns, time.Time{}, time.Time{})
	require.Len(t, st.Rows, 2)

	// After the sale: cash 1000+500, gold 1+2.
	assert.Equal(t, "1500", st.Rows[0].RunCash.String())
	assert.Equal(t, "3", st.Rows[0].RunGold.String())

	// The settlement hands over fine gold.
	assert.Equal(t, "1500", st.Rows[1].RunCash.String())
	assert.Equal(t, "4", st.Rows[1].RunGold.String())

	assert.Equal(t, "1500", st.ClosingCash.String())
	assert.Equal(t, "4", st.ClosingGold.String())
}

func TestBuildStatement_PurchaseMovesCashOutMetalIn(t *testing.T) {
	ledger := &entity.Ledger{OpeningBalance: entity.OpeningBalance{Amount: 1000}}
	purchase := ledgerbook.VoucherTxn(&entity.Voucher{
		Date:         day(5),
		VoucherType:  enum.VoucherPurchase,
		CashReceived: 400,
		Items: []entity.VoucherItem{
			{ItemName: "Old bangle", MetalType: enum.MetalSilver, FineWeight: 50},
		},
	})

	st := ledgerbook.BuildStatement(ledger, []ledgerbook.Transaction{purchase}, time.Time{}, time.Time{})
	require.Len(t, st.Rows, 1)

	assert.Equal(t, "600", st.ClosingCash.String())
	assert.Equal(t, "50", st.ClosingSilver.String())
}

func TestBuildStatement_LegacySettlementModes(t *testing.T) {
	ledger := &entity.Ledger{OpeningBalance: entity.OpeningBalance{Amount: 100, GoldFineWeight: 5}}
	txns := []ledgerbook.Transaction{
		legacyVoucherOn(1, enum.PaymentAddCash, 200, 0, 0),
		legacyVoucherOn(2, enum.PaymentAddGold, 2, 5000, 0),
		legacyVoucherOn(3, enum.PaymentMoneyToGold, 10000, 5000, 0),
	}

	st := ledgerbook.BuildStatement(ledger, txns, time.Time{}, time.Time{})
	require.Len(t, st.Rows, 3)

	// add_cash: cash 100+200.
	assert.Equal(t, "300", st.Rows[0].RunCash.String())
	// add_gold: gold 5+2, cash untouched.
	assert.Equal(t, "7", st.Rows[1].RunGold.String())
	assert.Equal(t, "300", st.Rows[1].RunCash.String())
	// money_to_gold: cash in, bought gold out (10000/5000 = 2 fine).
	assert.Equal(t, "10300", st.Rows[2].RunCash.String())
	assert.Equal(t, "5", st.Rows[2].RunGold.String())
}

func legacyVoucherOn(d int, pt enum.PaymentType, cash, goldRate, silverRate float64) ledgerbook.Transaction {
	txn := legacyVoucher(pt, cash, goldRate, silverRate)
	txn.Voucher.Date = day(d)
	return txn
}

func TestBuildStatement_StableOrderWithinDay(t *testing.T) {
	ledger := &entity.Ledger{}
	first := saleTxn(1, 100, 0)
	second := saleTxn(1, 200, 0)
	first.Voucher.BillNo = "A-1"
	second.Voucher.BillNo = "A-2"

	st := ledgerbook.BuildStatement(ledger, []ledgerbook.Transaction{first, second}, time.Time{}, time.Time{})
	require.Len(t, st.Rows, 2)

	assert.Equal(t, "A-1", st.Rows[0].BillNo)
	assert.Equal(t, "A-2", st.Rows[1].BillNo)
}

func TestBuildStatement_EmptyWindow(t *testing.T) {
	ledger := &entity.Ledger{OpeningBalance: entity.OpeningBalance{Amount: 250}}

	st := ledgerbook.BuildStatement(ledger, []ledgerbook.Transaction{saleTxn(1, 100, 0)}, day(10), day(20))

	assert.Empty(t, st.Rows)
	assert.Equal(t, "250", st.ClosingCash.String())
}

func TestBuildStatement_ClosingMatchesFullReplayOfLiveBalance(t *testing.T) {
	// Replaying the full history lands exactly on what RecalculateBalance
	// would persist as the live balance.
	ledger := &entity.Ledger{OpeningBalance: entity.OpeningBalance{Amount: 1000}}
	txns := []ledgerbook.Transaction{
		saleTxn(1, 500, 2),
		legacyVoucherOn(2, enum.PaymentAddCash, 300, 0, 0),
		ledgerbook.SettlementTxn(&entity.Settlement{Date: day(3), MetalType: enum.MetalGold, FineGiven: 1}),
	}

	st := ledgerbook.BuildStatement(ledger, txns, time.Time{}, time.Time{})

	live := &entity.Ledger{
		CashBalance:    f(1800),
		GoldFineWeight: 3,
	}
	assert.Equal(t, ledgerbook.AmountBalance(live).String(), st.ClosingCash.String())
	assert.Equal(t, "3", st.ClosingGold.String())
}

func TestBuildStatement_ZeroValueSettlementIsNeutral(t *testing.T) {
	ledger := &entity.Ledger{OpeningBalance: entity.OpeningBalance{Amount: 100}}
	txn := legacyVoucherOn(1, enum.PaymentAddCash, 0, 0, 0)

	st := ledgerbook.BuildStatement(ledger, []ledgerbook.Transaction{txn}, time.Time{}, time.Time{})

	assert.Equal(t, "100", st.ClosingCash.String())
}

func TestBalanceOf_Perspectives(t *testing.T) {
	ledger := &entity.Ledger{Amount: -500, GoldFineWeight: 2}

	shopSide := ledgerbook.BalanceOf(ledger)
	customerSide := shopSide.As(ledgerbook.CustomerLiability)

	assert.Equal(t, "-500", shopSide.Cash.String())
	assert.Equal(t, "500", customerSide.Cash.String())
	assert.Equal(t, "-2", customerSide.Gold.String())
}

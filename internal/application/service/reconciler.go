package service

import (
	"context"
	"sort"
	"time"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/repository"
	"github.com/jewelsoft/saraf-api/internal/ledgerbook"
	"github.com/shopspring/decimal"
)

// Reconciler loads a ledger's transaction history and keeps its live balance
// consistent with the replayed one. Voucher, settlement and ledger services
// all share it so every balance write goes through ledgerbook.Apply.
type Reconciler struct {
	ledgerRepo     repository.LedgerRepository
	voucherRepo    repository.VoucherRepository
	settlementRepo repository.SettlementRepository
}

// NewReconciler creates a new reconciler
func NewReconciler(
	ledgerRepo repository.LedgerRepository,
	voucherRepo repository.VoucherRepository,
	settlementRepo repository.SettlementRepository,
) *Reconciler {
	return &Reconciler{
		ledgerRepo:     ledgerRepo,
		voucherRepo:    voucherRepo,
		settlementRepo: settlementRepo,
	}
}

// Transactions returns the ledger's full history, vouchers and settlements
// merged, sorted by date. Vouchers are restricted to the invoice type the
// ledger's kind implies: a regular ledger never shows GST bills and vice
// versa.
func (r *Reconciler) Transactions(ctx context.Context, ledger *entity.Ledger) ([]ledgerbook.Transaction, error) {
	vouchers, err := r.voucherRepo.ListByLedger(ctx, ledger.ID, ledger.LedgerType.InvoiceType())
	if err != nil {
		return nil, err
	}
	settlements, err := r.settlementRepo.ListByLedger(ctx, ledger.ID)
	if err != nil {
		return nil, err
	}

	txns := make([]ledgerbook.Transaction, 0, len(vouchers)+len(settlements))
	for i := range vouchers {
		txns = append(txns, ledgerbook.VoucherTxn(&vouchers[i]))
	}
	for i := range settlements {
		txns = append(txns, ledgerbook.SettlementTxn(&settlements[i]))
	}

	sort.SliceStable(txns, func(i, j int) bool {
		return txns[i].Date().Before(txns[j].Date())
	})
	return txns, nil
}

// Statement builds the ledger's statement for the given window.
func (r *Reconciler) Statement(ctx context.Context, ledger *entity.Ledger, from, to time.Time) (*ledgerbook.Statement, error) {
	txns, err := r.Transactions(ctx, ledger)
	if err != nil {
		return nil, err
	}
	return ledgerbook.BuildStatement(ledger, txns, from, to), nil
}

// Recalculate replays the ledger's full history from its opening balance and
// persists the closing totals as the live balance. This is the repair path
// for drifted or legacy balances; creates and deletes converge on the same
// figures because both use ledgerbook.Apply.
func (r *Reconciler) Recalculate(ctx context.Context, ledger *entity.Ledger) (*entity.Ledger, error) {
	st, err := r.Statement(ctx, ledger, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}

	setLedgerBalance(ledger, st.ClosingCash, st.ClosingGold, st.ClosingSilver)
	if err := r.ledgerRepo.Update(ctx, ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// applyToLedger folds one transaction into the ledger's live balance fields.
func applyToLedger(l *entity.Ledger, t ledgerbook.Transaction) {
	before := ledgerbook.BalanceOf(l)
	cash, gold, silver := ledgerbook.Apply(t, before.Cash, before.Gold, before.Silver)
	setLedgerBalance(l, cash, gold, silver)
}

// setLedgerBalance writes a balance triple back onto the ledger row,
// migrating it to the split shape. CreditBalance is preserved when present;
// the cash delta lands on CashBalance. The legacy Amount column is kept in
// step for rows still read by older tooling.
func setLedgerBalance(l *entity.Ledger, cash, gold, silver decimal.Decimal) {
	total := cash.InexactFloat64()

	if l.CreditBalance != nil {
		c := total - *l.CreditBalance
		l.CashBalance = &c
	} else {
		l.CashBalance = &total
	}
	l.Amount = total
	l.GoldFineWeight = gold.InexactFloat64()
	l.SilverFineWeight = silver.InexactFloat64()
}

// Package ledgerbook derives every balance, statement and export figure a
// ledger view shows from a snapshot of that ledger and its transaction
// history. All functions are pure: they never mutate their inputs and always
// return freshly built values, so re-deriving from the same snapshot yields
// the same result.
package ledgerbook

import (
	"time"

	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/jewelsoft/saraf-api/internal/domain/enum"
)

// Kind is the resolved identity of a transaction. Legacy clients stored
// settlements in voucher shape with an overloaded payment type; resolving
// that dual identity once here replaces the five-way string comparison that
// would otherwise repeat at every display, export and delete site.
type Kind int

const (
	KindSale Kind = iota
	KindPurchase
	KindSettlement
	KindLegacySettlement
)

func (k Kind) String() string {
	switch k {
	case KindPurchase:
		return "Purchase"
	case KindSettlement, KindLegacySettlement:
		return "Settlement"
	default:
		return "Sale"
	}
}

// Transaction is one entry in a ledger's history. Exactly one of Voucher or
// Settlement is set.
type Transaction struct {
	Voucher    *entity.Voucher
	Settlement *entity.Settlement
}

// VoucherTxn wraps a voucher as a transaction.
func VoucherTxn(v *entity.Voucher) Transaction {
	return Transaction{Voucher: v}
}

// SettlementTxn wraps a settlement as a transaction.
func SettlementTxn(s *entity.Settlement) Transaction {
	return Transaction{Settlement: s}
}

// Date returns the transaction's business date.
func (t Transaction) Date() time.Time {
	if t.Settlement != nil {
		return t.Settlement.Date
	}
	if t.Voucher != nil {
		return t.Voucher.Date
	}
	return time.Time{}
}

// BillNo returns the bill number for voucher-backed transactions, empty
// otherwise.
func (t Transaction) BillNo() string {
	if t.Voucher != nil {
		return t.Voucher.BillNo
	}
	return ""
}

// Classify resolves the transaction's kind. This is the single authoritative
// switch for the voucher-as-settlement special case.
func Classify(t Transaction) Kind {
	if t.Settlement != nil {
		return KindSettlement
	}
	if t.Voucher == nil {
		return KindSale
	}
	if t.Voucher.PaymentType.IsSettlement() {
		return KindLegacySettlement
	}
	if t.Voucher.VoucherType == enum.VoucherPurchase {
		return KindPurchase
	}
	return KindSale
}

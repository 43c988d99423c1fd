package ledgerbook

import (
	"github.com/jewelsoft/saraf-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Perspective states whose debt a balance's sign expresses. The ledger row
// stores shop liability (positive = the shop owes the customer); customer
// views show the negation. Carrying the perspective on the value replaces
// the ad hoc sign flips that previously lived at call sites and caused
// off-by-sign bugs.
type Perspective string

const (
	ShopLiability     Perspective = "shop-liability"
	CustomerLiability Perspective = "customer-liability"
)

// SignedBalance is a cash/gold/silver triple tagged with the perspective its
// signs are expressed in.
type SignedBalance struct {
	Cash        decimal.Decimal `json:"cash"`
	Gold        decimal.Decimal `json:"gold"`
	Silver      decimal.Decimal `json:"silver"`
	Perspective Perspective     `json:"perspective"`
}

// BalanceOf reads the ledger's live balances in their stored perspective.
func BalanceOf(l *entity.Ledger) SignedBalance {
	return SignedBalance{
		Cash:        AmountBalance(l),
		Gold:        Num(l.GoldFineWeight, 0),
		Silver:      Num(l.SilverFineWeight, 0),
		Perspective: ShopLiability,
	}
}

// As converts the balance to the requested perspective, negating all three
// components when the perspective flips.
func (b SignedBalance) As(p Perspective) SignedBalance {
	if b.Perspective == p {
		return b
	}
	return SignedBalance{
		Cash:        b.Cash.Neg(),
		Gold:        b.Gold.Neg(),
		Silver:      b.Silver.Neg(),
		Perspective: p,
	}
}

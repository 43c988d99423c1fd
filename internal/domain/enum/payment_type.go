package enum

// PaymentType represents how a voucher was paid. Besides the plain
// cash/credit modes, five legacy values encode settlement collections that
// older clients stored as vouchers. Records carrying one of those values are
// settlements in all but storage shape.
type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCredit PaymentType = "credit"

	// Legacy settlement-as-voucher payment modes. CashReceived is overloaded
	// per mode: a cash amount for add_cash/money_to_*, a fine weight for
	// add_gold/add_silver.
	PaymentAddCash       PaymentType = "add_cash"
	PaymentAddGold       PaymentType = "add_gold"
	PaymentAddSilver     PaymentType = "add_silver"
	PaymentMoneyToGold   PaymentType = "money_to_gold"
	PaymentMoneyToSilver PaymentType = "money_to_silver"
)

// IsSettlement reports whether the payment type marks a legacy
// settlement-as-voucher record.
func (p PaymentType) IsSettlement() bool {
	switch p {
	case PaymentAddCash, PaymentAddGold, PaymentAddSilver, PaymentMoneyToGold, PaymentMoneyToSilver:
		return true
	}
	return false
}

// Valid reports whether p is one of the known payment types.
func (p PaymentType) Valid() bool {
	return p == PaymentCash || p == PaymentCredit || p.IsSettlement()
}

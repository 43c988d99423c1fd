package enum

// LedgerType splits customer accounts into the regular book and the GST book.
// A GST ledger's transaction history contains GST invoices only.
type LedgerType string

const (
	LedgerRegular LedgerType = "regular"
	LedgerGST     LedgerType = "gst"
)

// InvoiceType returns the invoice type whose vouchers belong on this ledger.
func (t LedgerType) InvoiceType() InvoiceType {
	if t == LedgerGST {
		return InvoiceGST
	}
	return InvoiceNormal
}

// Valid reports whether t is one of the known ledger types.
func (t LedgerType) Valid() bool {
	return t == LedgerRegular || t == LedgerGST
}

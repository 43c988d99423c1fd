package enum

// VoucherType distinguishes sales from purchases. Sale is the default for
// records that predate the field.
type VoucherType string

const (
	VoucherSale     VoucherType = "sale"
	VoucherPurchase VoucherType = "purchase"
)

// InvoiceType distinguishes plain invoices from GST invoices. Ledgers only
// ever see transactions of their own invoice type.
type InvoiceType string

const (
	InvoiceNormal InvoiceType = "normal"
	InvoiceGST    InvoiceType = "gst"
)

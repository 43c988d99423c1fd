package request

// PrintReceiptRequest is the request body for printing a voucher receipt.
type PrintReceiptRequest struct {
	VoucherID string `json:"voucher_id" binding:"required,uuid"`
}

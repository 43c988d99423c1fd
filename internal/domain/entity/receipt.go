package entity

// ReceiptHeader is the shop block at the top of a thermal receipt.
type ReceiptHeader struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address,omitempty"`
	Phone    string `json:"phone,omitempty"`
	GSTIN    string `json:"gstin,omitempty"`
}

// ReceiptItem is one printed line item.
type ReceiptItem struct {
	Name        string  `json:"name"`
	Pieces      int     `json:"pieces"`
	GrossWeight float64 `json:"gross_weight"`
	FineWeight  float64 `json:"fine_weight"`
	Amount      float64 `json:"amount"`
}

// Receipt is a voucher rendered for thermal printing. It is also returned
// as JSON when no printer is configured, so the client can render it.
type Receipt struct {
	Header      ReceiptHeader `json:"header"`
	BillNo      string        `json:"bill_no"`
	Date        string        `json:"date"`
	Customer    string        `json:"customer,omitempty"`
	PaymentType string        `json:"payment_type,omitempty"`
	Items       []ReceiptItem `json:"items"`
	StoneAmount float64       `json:"stone_amount"`
	FineAmount  float64       `json:"fine_amount"`
	Total       float64       `json:"total"`
	CashPaid    float64       `json:"cash_paid"`

	// Balance after this voucher, from the customer's side of the ledger.
	BalanceCash       float64 `json:"balance_cash"`
	BalanceGoldFine   float64 `json:"balance_gold_fine"`
	BalanceSilverFine float64 `json:"balance_silver_fine"`
}

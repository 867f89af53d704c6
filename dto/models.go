package dto

// LineItem is a single purchased line on an invoice. SrNo is assigned in
// extraction order starting at 1.
type LineItem struct {
	SrNo        int     `json:"sr_no"`
	Description string  `json:"description"`
	HSNCode     string  `json:"hsn_code"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	TaxRate     float64 `json:"tax_rate"`
	Amount      float64 `json:"amount"`
}

// InvoiceRecord is the complete structured record recovered from one
// document. All fields default to empty/zero; the extraction pipeline
// populates it once and it is read-only afterwards.
type InvoiceRecord struct {
	// Invoice info
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	DueDate       string `json:"due_date"`
	PONumber      string `json:"po_number"`

	// Seller/sender
	SellerName    string `json:"seller_name"`
	SellerAddress string `json:"seller_address"`
	SellerPhone   string `json:"seller_phone"`
	SellerEmail   string `json:"seller_email"`
	SellerGSTIN   string `json:"seller_gstin"`
	SellerPAN     string `json:"seller_pan"`

	// Buyer/receiver
	BuyerName    string `json:"buyer_name"`
	BuyerAddress string `json:"buyer_address"`
	BuyerPhone   string `json:"buyer_phone"`
	BuyerEmail   string `json:"buyer_email"`
	BuyerGSTIN   string `json:"buyer_gstin"`

	// Items, in extraction order
	Items []LineItem `json:"items"`

	// Amounts
	Subtotal   float64 `json:"subtotal"`
	Discount   float64 `json:"discount"`
	CGST       float64 `json:"cgst"`
	SGST       float64 `json:"sgst"`
	IGST       float64 `json:"igst"`
	TaxTotal   float64 `json:"tax_total"`
	Shipping   float64 `json:"shipping"`
	GrandTotal float64 `json:"grand_total"`
	AmountPaid float64 `json:"amount_paid"`
	BalanceDue float64 `json:"balance_due"`

	// Extra
	PaymentTerms  string `json:"payment_terms"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	Notes         string `json:"notes"`
}

// ItemSum returns the sum of all line-item amounts.
func (r *InvoiceRecord) ItemSum() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.Amount
	}
	return sum
}

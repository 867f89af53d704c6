package extractor

// Logical field names understood by the matcher. These double as the keys of
// the keyword table and of InvoiceRecord serialization.
const (
	FieldInvoiceNumber = "invoice_number"
	FieldInvoiceDate   = "invoice_date"
	FieldDueDate       = "due_date"
	FieldPONumber      = "po_number"
	FieldSellerName    = "seller_name"
	FieldSellerGSTIN   = "seller_gstin"
	FieldSellerPAN     = "seller_pan"
	FieldBuyerName     = "buyer_name"
	FieldBuyerGSTIN    = "buyer_gstin"
	FieldDescription   = "description"
	FieldQuantity      = "quantity"
	FieldUnit          = "unit"
	FieldUnitPrice     = "unit_price"
	FieldHSNCode       = "hsn_code"
	FieldItemAmount    = "item_amount"
	FieldSubtotal      = "subtotal"
	FieldDiscount      = "discount"
	FieldCGST          = "cgst"
	FieldSGST          = "sgst"
	FieldIGST          = "igst"
	FieldTaxTotal      = "tax_total"
	FieldShipping      = "shipping"
	FieldGrandTotal    = "grand_total"
	FieldAmountPaid    = "amount_paid"
	FieldBalanceDue    = "balance_due"
	FieldBankName      = "bank_name"
	FieldAccountNumber = "account_number"
	FieldIFSCCode      = "ifsc_code"
	FieldPaymentTerms  = "payment_terms"
)

type fieldKeywords struct {
	field    string
	variants []string
}

// keywordTable maps each logical field to the human label variants seen on
// real invoices. Order matters: FindFieldValue tries variants in declared
// order, and fuzzy matching resolves ties by the first best variant.
var keywordTable = []fieldKeywords{
	{FieldInvoiceNumber, []string{"invoice", "inv", "in", "invoice no", "invoice number", "inv no", "inv#", "invoice#", "bill no", "bill number", "receipt no", "receipt", "voucher no", "ref", "reference", "bill", "memo"}},
	{FieldInvoiceDate, []string{"date", "invoice date", "inv date", "bill date", "dated", "dt", "issue date", "doc date"}},
	{FieldDueDate, []string{"due date", "due", "payment due", "due by", "pay by", "due on", "payable by"}},
	{FieldPONumber, []string{"po", "po no", "purchase order", "p.o", "p.o.", "order no", "order number", "order"}},

	{FieldSellerName, []string{"from", "seller", "vendor", "sold by", "supplier", "company", "bill from", "shipper"}},
	{FieldSellerGSTIN, []string{"gstin", "gst no", "gst", "gst number", "gstn", "gst in", "seller gstin", "vendor gst"}},
	{FieldSellerPAN, []string{"pan", "pan no", "pan number", "pan card"}},

	{FieldBuyerName, []string{"to", "bill to", "billed to", "sold to", "buyer", "customer", "consignee", "ship to", "client", "party"}},
	{FieldBuyerGSTIN, []string{"buyer gstin", "customer gstin", "party gstin"}},

	{FieldDescription, []string{"description", "desc", "particulars", "item", "items", "product", "goods", "service", "details", "name"}},
	{FieldQuantity, []string{"qty", "quantity", "qnty", "qnt", "units", "nos", "no", "pcs", "q", "qy"}},
	{FieldUnit, []string{"unit", "uom", "u/m", "un"}},
	{FieldUnitPrice, []string{"rate", "price", "unit price", "unit rate", "mrp", "cost", "per unit", "rt", "prc"}},
	{FieldHSNCode, []string{"hsn", "hsn code", "hsn/sac", "sac", "sac code"}},
	{FieldItemAmount, []string{"amount", "amt", "total", "value", "line total", "amnt", "amout", "ammount"}},

	{FieldSubtotal, []string{"subtotal", "sub total", "sub-total", "taxable value", "taxable amount", "net amount", "basic amount", "sub", "subtot"}},
	{FieldDiscount, []string{"discount", "disc", "less", "rebate", "deduction", "dis", "dsc"}},
	{FieldCGST, []string{"cgst", "central gst", "central tax", "c gst", "c.gst"}},
	{FieldSGST, []string{"sgst", "state gst", "state tax", "s gst", "s.gst"}},
	{FieldIGST, []string{"igst", "integrated gst", "integrated tax", "i gst", "i.gst"}},
	{FieldTaxTotal, []string{"tax", "tax amount", "total tax", "gst amount", "vat", "tax amt"}},
	{FieldShipping, []string{"shipping", "freight", "delivery", "transport", "courier", "handling", "ship", "frght"}},
	{FieldGrandTotal, []string{"total", "grand total", "total amount", "amount due", "net payable", "invoice total",
		"final amount", "gross total", "payable", "total due", "tot", "ttl", "g total",
		"amount", "amt", "total amt", "net total", "bill amount", "invoice amount"}},
	{FieldAmountPaid, []string{"paid", "amount paid", "received", "payment received", "advance", "pd"}},
	{FieldBalanceDue, []string{"balance", "balance due", "due", "outstanding", "remaining", "bal"}},

	{FieldBankName, []string{"bank", "bank name", "banker", "bank details"}},
	{FieldAccountNumber, []string{"account", "a/c", "ac no", "account no", "account number", "acct", "acc", "a/c no"}},
	{FieldIFSCCode, []string{"ifsc", "ifsc code", "bank code", "ifsc/neft"}},

	{FieldPaymentTerms, []string{"terms", "payment terms", "credit", "credit days", "payment"}},
}

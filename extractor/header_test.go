package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInvoiceNumber(t *testing.T) {
	e := New(0)

	assert.Equal(t, "INV-2024-0042", e.extractInvoiceNumber("Invoice No: INV-2024-0042"))
	assert.Equal(t, "BL-778", e.extractInvoiceNumber("Bill No. BL-778"))
	assert.Equal(t, "78421", e.extractInvoiceNumber("Receipt # 78421"))
}

func TestExtractInvoiceNumberHashFallback(t *testing.T) {
	e := New(0)

	assert.Equal(t, "55872", e.extractInvoiceNumber("№ 55872"))
}

func TestExtractInvoiceNumberRejectsNonNumbers(t *testing.T) {
	e := New(0)

	// A candidate without digits never qualifies.
	assert.Equal(t, "", e.extractInvoiceNumber("Invoice for services rendered"))
	assert.Equal(t, "", e.extractInvoiceNumber(""))
}

func TestExtractPONumber(t *testing.T) {
	e := New(0)

	assert.Equal(t, "4455", e.extractPONumber("PO No: 4455"))
	assert.Equal(t, "8812", e.extractPONumber("Purchase Order: 8812"))
	assert.Equal(t, "", e.extractPONumber("nothing relevant here"))
}

func TestExtractDateAnchored(t *testing.T) {
	e := New(0)

	assert.Equal(t, "12/05/2024", e.extractDate("Date: 12/05/2024", FieldInvoiceDate))
	assert.Equal(t, "15/06/2024", e.extractDate("Due Date: 15/06/2024", FieldDueDate))
	assert.Equal(t, "05-12-2024", e.extractDate("Invoice Date: 05-12-2024", FieldInvoiceDate))
}

func TestExtractDateIgnoresPhoneAfterLabel(t *testing.T) {
	e := New(0)

	// The phone number on the same line has too many digits to be a date.
	text := "Tel: 011-22334455 Date: 12/05/2024"
	assert.Equal(t, "12/05/2024", e.extractDate(text, FieldInvoiceDate))
}

func TestExtractDateUnanchoredFallback(t *testing.T) {
	e := New(0)

	// No date label anywhere, so the whole document is scanned.
	text := "Call 022-4455667\nShipped on 15/03/2024"
	assert.Equal(t, "15/03/2024", e.extractDate(text, FieldInvoiceDate))

	// The fallback never applies to the due date.
	assert.Equal(t, "", e.extractDate(text, FieldDueDate))
}

func TestExtractDateFallbackSkipsPhoneContext(t *testing.T) {
	e := New(0)

	// The first date-shaped token sits next to a fax label and is skipped.
	text := "Fax: 11/22/3344\nPrinted 20/06/2024"
	assert.Equal(t, "20/06/2024", e.extractDate(text, FieldInvoiceDate))
}

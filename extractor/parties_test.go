package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khuswant18/paddle-ocr/dto"
)

func TestPartyTransition(t *testing.T) {
	state, seed, fired := partyTransition(partyNone, "Sold to: Acme Retail")
	assert.True(t, fired)
	assert.Equal(t, partyBuyer, state)
	assert.Equal(t, "Acme Retail", seed)

	state, seed, fired = partyTransition(partyNone, "From: Global Traders Ltd")
	assert.True(t, fired)
	assert.Equal(t, partySeller, state)
	assert.Equal(t, "Global Traders Ltd", seed)

	// A bare marker line fires without seeding.
	state, seed, fired = partyTransition(partySeller, "Bill To:")
	assert.True(t, fired)
	assert.Equal(t, partyBuyer, state)
	assert.Equal(t, "", seed)

	// An unmarked line leaves the state alone.
	state, _, fired = partyTransition(partySeller, "12 Dock Street")
	assert.False(t, fired)
	assert.Equal(t, partySeller, state)
}

func TestExtractPartiesMarked(t *testing.T) {
	e := New(0)
	text := `From: Global Traders Ltd
12 Dock Street
Sold to: Acme Retail
9 High Street
Item Description Qty Rate Amount`

	rec := &dto.InvoiceRecord{}
	e.extractParties(splitLines(text), rec)

	assert.Equal(t, "Global Traders Ltd", rec.SellerName)
	assert.Equal(t, "12 Dock Street", rec.SellerAddress)
	assert.Equal(t, "Acme Retail", rec.BuyerName)
	assert.Equal(t, "9 High Street", rec.BuyerAddress)
}

func TestExtractPartiesHeaderFallback(t *testing.T) {
	e := New(0)
	text := `Acme Industries Pvt Ltd
45 Mill Road
Qty Description Rate Amount`

	rec := &dto.InvoiceRecord{}
	e.extractParties(splitLines(text), rec)

	// No seller marker fired, so the document header stands in.
	assert.Equal(t, "Acme Industries Pvt Ltd", rec.SellerName)
	assert.Equal(t, "45 Mill Road", rec.SellerAddress)
	assert.Equal(t, "", rec.BuyerName)
}

func TestIsValidPartyLine(t *testing.T) {
	assert.True(t, isValidPartyLine("Acme Retail"))
	assert.False(t, isValidPartyLine("12/05/2024"))
	assert.False(t, isValidPartyLine("GSTIN 27AAPFU0939F1ZV"))
	assert.False(t, isValidPartyLine("1,980.00"))
	assert.False(t, isValidPartyLine("ab"))
}

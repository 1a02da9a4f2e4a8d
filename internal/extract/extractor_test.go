package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdukronCodes/mcp-server-box/constants"
)

func TestExtractFirstRuleWins(t *testing.T) {
	e := NewExtractor(nil)

	res := e.Extract("Invoice Number: INV-2024-001", constants.FieldInvoiceNumber)
	require.True(t, res.Found)
	assert.Equal(t, "INV-2024-001", res.Value)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestExtractConfidenceDropsByRank(t *testing.T) {
	e := NewExtractor(nil)

	// no "Invoice" keyword, so only the bare INV rule can fire
	res := e.Extract("ref INV-7788 attached", constants.FieldInvoiceNumber)
	require.True(t, res.Found)
	assert.Equal(t, "7788", res.Value)
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)

	res = e.Extract("Date: 03/04/2024", constants.FieldInvoiceDate)
	require.True(t, res.Found)
	assert.InDelta(t, 0.9, res.Confidence, 1e-9)

	res = e.Extract("shipped on 01/15/2024", constants.FieldInvoiceDate)
	require.True(t, res.Found)
	assert.Equal(t, "01/15/2024", res.Value)
	assert.InDelta(t, 0.8, res.Confidence, 1e-9)
}

func TestExtractNoMatch(t *testing.T) {
	e := NewExtractor(nil)

	res := e.Extract("nothing of interest here", constants.FieldInvoiceNumber)
	assert.False(t, res.Found)
	assert.Empty(t, res.Value)
	assert.Zero(t, res.Confidence)
}

func TestExtractUnknownFieldType(t *testing.T) {
	e := NewExtractor(nil)

	res := e.Extract("Invoice Number: INV-1", constants.FieldType("purchase_order"))
	assert.False(t, res.Found)
	assert.Zero(t, res.Confidence)
}

func TestRuleConfidenceFloor(t *testing.T) {
	assert.Equal(t, 1.0, ruleConfidence(0))
	assert.InDelta(t, 0.7, ruleConfidence(3), 1e-9)
	assert.Equal(t, 0.1, ruleConfidence(42))
}

func TestExtractAmounts(t *testing.T) {
	e := NewExtractor(nil)

	text := "Total: $1,234.56\nTax: $99.00\nSubtotal: $1,135.56"
	amounts, err := e.ExtractAmounts(text)
	require.NoError(t, err)

	total, ok := amounts[constants.AmountTotal]
	require.True(t, ok)
	assert.InDelta(t, 1234.56, total.Value, 1e-9)
	assert.Equal(t, 1.0, total.Confidence)

	tax, ok := amounts[constants.AmountTax]
	require.True(t, ok)
	assert.InDelta(t, 99.0, tax.Value, 1e-9)

	sub, ok := amounts[constants.AmountSubtotal]
	require.True(t, ok)
	assert.InDelta(t, 1135.56, sub.Value, 1e-9)
}

func TestExtractTotalIgnoresSubtotalLabel(t *testing.T) {
	e := NewExtractor(nil)

	res := e.Extract("Subtotal: $100.00\nTotal: $108.00", constants.FieldTotalAmount)
	require.True(t, res.Found)
	assert.Equal(t, "108.00", res.Value)
	assert.Equal(t, 1.0, res.Confidence)
}

func TestExtractAmountsAbsentIsNotZero(t *testing.T) {
	e := NewExtractor(nil)

	amounts, err := e.ExtractAmounts("no monetary fields in this text")
	require.NoError(t, err)
	assert.Empty(t, amounts)

	_, ok := amounts[constants.AmountTotal]
	assert.False(t, ok, "missing total must be absent, not zero")
}

func TestParseAmount(t *testing.T) {
	v, err := parseAmount("12,345.67")
	require.NoError(t, err)
	assert.InDelta(t, 12345.67, v, 1e-9)

	v, err = parseAmount("$99.00")
	require.NoError(t, err)
	assert.InDelta(t, 99.0, v, 1e-9)

	_, err = parseAmount("not-a-number")
	assert.Error(t, err)
}

func TestExtractVendorName(t *testing.T) {
	e := NewExtractor(nil)

	t.Run("first qualifying line", func(t *testing.T) {
		vendor, conf := e.ExtractVendorName("INVOICE #12345\nAcme Corporation\n123 Main Street")
		assert.Equal(t, "Acme Corporation", vendor)
		assert.Equal(t, 0.7, conf)
	})

	t.Run("short lines skipped", func(t *testing.T) {
		vendor, conf := e.ExtractVendorName("Acme\nBeta Industries Ltd")
		assert.Equal(t, "Beta Industries Ltd", vendor)
		assert.Equal(t, 0.7, conf)
	})

	t.Run("stoplist keywords skipped", func(t *testing.T) {
		vendor, conf := e.ExtractVendorName("Tax Invoice 2024\nBill To: someone\nGamma Services")
		assert.Equal(t, "Gamma Services", vendor)
		assert.Equal(t, 0.7, conf)
	})

	t.Run("only the top of the document is scanned", func(t *testing.T) {
		text := strings.Repeat("\n", 25) + "Delta Holdings"
		vendor, conf := e.ExtractVendorName(text)
		assert.Empty(t, vendor)
		assert.Zero(t, conf)
	})

	t.Run("overlong lines skipped", func(t *testing.T) {
		vendor, _ := e.ExtractVendorName(strings.Repeat("x", 120) + "\nEpsilon GmbH")
		assert.Equal(t, "Epsilon GmbH", vendor)
	})
}

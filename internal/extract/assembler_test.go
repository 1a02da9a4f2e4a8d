package extract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdukronCodes/mcp-server-box/constants"
	"github.com/EdukronCodes/mcp-server-box/internal/entity"
)

const sampleInvoiceText = `Acme Corporation
123 Main Street

Invoice Number: INV-2024-001
Invoice Date: 01/15/2024
Due Date: 02/14/2024

Subtotal: $100.00
Tax: $8.00
Total: $108.00
`

func TestAssemble(t *testing.T) {
	a := NewAssembler(nil)

	inv := a.Assemble("sample.pdf", sampleInvoiceText)
	require.NotNil(t, inv)

	assert.Equal(t, "sample.pdf", inv.FileName)
	assert.Equal(t, "INV-2024-001", inv.InvoiceNumber)
	assert.Equal(t, "01/15/2024", inv.InvoiceDate)
	assert.Equal(t, "02/14/2024", inv.DueDate)
	assert.Equal(t, "Acme Corporation", inv.VendorName)
	assert.InDelta(t, 108.00, inv.TotalAmount, 1e-9)
	assert.InDelta(t, 8.00, inv.TaxAmount, 1e-9)
	assert.InDelta(t, 100.00, inv.Subtotal, 1e-9)
	assert.Equal(t, constants.DefaultCurrency, inv.Currency)
	assert.Equal(t, sampleInvoiceText, inv.RawText)

	// number and date matched by rank-0 rules, total found: (1.0+1.0+0.8)/3
	assert.InDelta(t, 2.8/3.0, inv.ConfidenceScore, 1e-9)
}

// The subtotal line precedes the total line on real invoices; the total
// rule must not latch onto the "Total" inside "Subtotal".
func TestAssembleTotalDistinctFromSubtotal(t *testing.T) {
	a := NewAssembler(nil)

	text := "Invoice Number: INV-2024-001\n" +
		"Invoice Date: 01/15/2024\n" +
		"Subtotal: $100.00\n" +
		"Tax: $8.00\n" +
		"Total: $108.00"
	inv := a.Assemble("ordered.pdf", text)

	assert.Equal(t, "INV-2024-001", inv.InvoiceNumber)
	assert.Equal(t, "01/15/2024", inv.InvoiceDate)
	assert.InDelta(t, 100.00, inv.Subtotal, 1e-9)
	assert.InDelta(t, 8.00, inv.TaxAmount, 1e-9)
	assert.InDelta(t, 108.00, inv.TotalAmount, 1e-9)
	assert.Greater(t, inv.ConfidenceScore, 0.8)
	assert.Less(t, inv.ConfidenceScore, 1.0)
}

func TestAssembleConfidenceSkipsMissingFields(t *testing.T) {
	a := NewAssembler(nil)

	inv := a.Assemble("total-only.pdf", "Amount due below\nTOTAL: $50.00")
	assert.Empty(t, inv.InvoiceNumber)
	assert.InDelta(t, 50.0, inv.TotalAmount, 1e-9)
	// only the total contributes, so the mean is over one term
	assert.InDelta(t, 0.8, inv.ConfidenceScore, 1e-9)
}

func TestAssembleEmptyText(t *testing.T) {
	a := NewAssembler(nil)

	inv := a.Assemble("empty.pdf", "")
	require.NotNil(t, inv)
	assert.Empty(t, inv.InvoiceNumber)
	assert.Zero(t, inv.TotalAmount)
	assert.Zero(t, inv.ConfidenceScore)
	assert.Equal(t, constants.DefaultCurrency, inv.Currency)
}

func TestAssembleIdempotent(t *testing.T) {
	a := NewAssembler(nil)

	first := a.Assemble("sample.pdf", sampleInvoiceText)
	second := a.Assemble("sample.pdf", sampleInvoiceText)
	assert.Equal(t, first, second)
}

func TestAssembleManySkipsFailedSources(t *testing.T) {
	a := NewAssembler(nil)

	sources := []Source{
		{ID: "a.pdf", Text: sampleInvoiceText},
		{ID: "broken.pdf", Err: errors.New("decode failed")},
		{ID: "b.pdf", Text: "TOTAL: $50.00"},
	}
	records := a.AssembleMany(sources)
	require.Len(t, records, 2)
	assert.Equal(t, "a.pdf", records[0].FileName)
	assert.Equal(t, "b.pdf", records[1].FileName)
}

func TestSummarize(t *testing.T) {
	records := []*entity.Invoice{
		{TotalAmount: 100, TaxAmount: 8, ConfidenceScore: 0.9},
		{TotalAmount: 50, TaxAmount: 2, ConfidenceScore: 0.5},
	}
	s := Summarize(records)
	assert.InDelta(t, 150.0, s.TotalAmount, 1e-9)
	assert.InDelta(t, 10.0, s.TotalTax, 1e-9)
	assert.InDelta(t, 0.7, s.AverageConfidence, 1e-9)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.TotalAmount)
	assert.Zero(t, s.TotalTax)
	assert.Zero(t, s.AverageConfidence)
}

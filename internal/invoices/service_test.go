package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EdukronCodes/mcp-server-box/internal/common"
)

// fakeDecoder serves canned text keyed by file base name and counts calls.
type fakeDecoder struct {
	texts map[string]string
	errs  map[string]error
	calls int
}

func (d *fakeDecoder) Decode(ctx context.Context, path string) (string, error) {
	d.calls++
	name := filepath.Base(path)
	if err, ok := d.errs[name]; ok {
		return "", err
	}
	return d.texts[name], nil
}

func newTestService(t *testing.T, decoder *fakeDecoder, files ...string) *Service {
	t.Helper()
	dir := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("%PDF-1.4"), 0o644))
	}
	svc, err := NewService(dir, decoder, 16, nil)
	require.NoError(t, err)
	return svc
}

func TestProcessInvoice(t *testing.T) {
	decoder := &fakeDecoder{texts: map[string]string{
		"acme.pdf": "Acme Corporation\nInvoice Number: INV-100\nTotal: $42.00",
	}}
	svc := newTestService(t, decoder, "acme.pdf")

	inv, err := svc.ProcessInvoice(context.Background(), "acme.pdf")
	require.NoError(t, err)
	assert.Equal(t, "acme.pdf", inv.FileName)
	assert.Equal(t, "INV-100", inv.InvoiceNumber)
	assert.InDelta(t, 42.0, inv.TotalAmount, 1e-9)
	assert.Equal(t, "Acme Corporation", inv.VendorName)
}

func TestProcessInvoiceCached(t *testing.T) {
	decoder := &fakeDecoder{texts: map[string]string{"acme.pdf": "Total: $10.00"}}
	svc := newTestService(t, decoder, "acme.pdf")

	_, err := svc.ProcessInvoice(context.Background(), "acme.pdf")
	require.NoError(t, err)
	_, err = svc.ProcessInvoice(context.Background(), "acme.pdf")
	require.NoError(t, err)
	assert.Equal(t, 1, decoder.calls, "second lookup must hit the cache")
}

func TestProcessInvoiceNotFound(t *testing.T) {
	svc := newTestService(t, &fakeDecoder{})

	_, err := svc.ProcessInvoice(context.Background(), "missing.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestProcessInvoiceDecodeError(t *testing.T) {
	decoder := &fakeDecoder{errs: map[string]error{"bad.pdf": errors.New("corrupt stream")}}
	svc := newTestService(t, decoder, "bad.pdf")

	_, err := svc.ProcessInvoice(context.Background(), "bad.pdf")
	assert.Error(t, err)
}

func TestProcessAllSkipsFailedDecodes(t *testing.T) {
	decoder := &fakeDecoder{
		texts: map[string]string{
			"a.pdf": "Invoice Number: INV-1\nTotal: $100.00",
			"c.pdf": "Invoice Number: INV-3\nTotal: $50.00",
		},
		errs: map[string]error{"b.pdf": errors.New("corrupt stream")},
	}
	svc := newTestService(t, decoder, "a.pdf", "b.pdf", "c.pdf")

	result, err := svc.ProcessAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalProcessed)
	require.Len(t, result.Invoices, 2)
	assert.Equal(t, "a.pdf", result.Invoices[0].FileName)
	assert.Equal(t, "c.pdf", result.Invoices[1].FileName)
	assert.InDelta(t, 150.0, result.Summary.TotalAmount, 1e-9)
}

func TestProcessAllEmptyDirectory(t *testing.T) {
	svc := newTestService(t, &fakeDecoder{})

	result, err := svc.ProcessAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.TotalProcessed)
	assert.Empty(t, result.Invoices)
	assert.Zero(t, result.Summary.AverageConfidence)
}

func TestListInvoices(t *testing.T) {
	svc := newTestService(t, &fakeDecoder{}, "b.pdf", "a.pdf")

	listing, err := svc.ListInvoices()
	require.NoError(t, err)
	assert.Equal(t, 2, listing.Count)
	assert.Equal(t, []string{"a.pdf", "b.pdf"}, listing.Files)
}

func TestListInvoicesMissingDirectory(t *testing.T) {
	svc, err := NewService(filepath.Join(t.TempDir(), "nope"), &fakeDecoder{}, 16, nil)
	require.NoError(t, err)

	_, err = svc.ListInvoices()
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSummary(t *testing.T) {
	decoder := &fakeDecoder{texts: map[string]string{
		"a.pdf": "Invoice Number: INV-1\nInvoice Date: 01/15/2024\nTotal: $100.00\nTax: $8.00",
		"b.pdf": "Invoice Number: INV-2\nTotal: $50.00\nTax: $2.00",
	}}
	svc := newTestService(t, decoder, "a.pdf", "b.pdf")

	report, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, report.TotalInvoices)
	assert.InDelta(t, 150.0, report.TotalAmount, 1e-9)
	assert.InDelta(t, 10.0, report.TotalTax, 1e-9)
	require.Len(t, report.Invoices, 2)
	assert.Equal(t, "INV-1", report.Invoices[0].InvoiceNumber)
}

func TestSearch(t *testing.T) {
	decoder := &fakeDecoder{texts: map[string]string{
		"acme.pdf": "Acme Corporation\nInvoice Number: INV-100\nTotal: $10.00",
		"beta.pdf": "Beta Industries Ltd\nInvoice Number: INV-200\nTotal: $20.00",
	}}
	svc := newTestService(t, decoder, "acme.pdf", "beta.pdf")

	t.Run("by invoice number", func(t *testing.T) {
		result, err := svc.Search(context.Background(), "inv-100")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Matches)
		assert.Equal(t, "acme.pdf", result.Invoices[0].FileName)
	})

	t.Run("by vendor", func(t *testing.T) {
		result, err := svc.Search(context.Background(), "beta")
		require.NoError(t, err)
		assert.Equal(t, 1, result.Matches)
	})

	t.Run("no matches", func(t *testing.T) {
		result, err := svc.Search(context.Background(), "zzz")
		require.NoError(t, err)
		assert.Zero(t, result.Matches)
		assert.Empty(t, result.Invoices)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		_, err := svc.Search(context.Background(), "  ")
		assert.ErrorIs(t, err, common.ErrInvalidInput)
	})
}

func TestValidateInvoiceJSON(t *testing.T) {
	decoder := &fakeDecoder{texts: map[string]string{
		"acme.pdf": "Acme Corporation\nInvoice Number: INV-100\nTotal: $42.00",
	}}
	svc := newTestService(t, decoder, "acme.pdf")

	inv, err := svc.ProcessInvoice(context.Background(), "acme.pdf")
	require.NoError(t, err)

	b, err := json.Marshal(inv)
	require.NoError(t, err)
	assert.NoError(t, ValidateInvoiceJSON(b))
}

func TestValidateInvoiceJSONRejectsBadRecords(t *testing.T) {
	cases := map[string]string{
		"confidence out of range": `{"file_name":"a.pdf","total_amount":1,"currency":"USD","confidence_score":1.5,"subtotal":0,"tax_amount":0,"line_items":[],"raw_text":"","invoice_number":"","invoice_date":"","due_date":"","vendor_name":"","vendor_address":"","customer_name":"","customer_address":""}`,
		"negative amount":         `{"file_name":"a.pdf","total_amount":-1,"currency":"USD","confidence_score":0.5,"subtotal":0,"tax_amount":0,"line_items":[],"raw_text":"","invoice_number":"","invoice_date":"","due_date":"","vendor_name":"","vendor_address":"","customer_name":"","customer_address":""}`,
		"missing file name":       `{"total_amount":1,"currency":"USD","confidence_score":0.5}`,
		"unknown field":           `{"file_name":"a.pdf","total_amount":1,"currency":"USD","confidence_score":0.5,"surprise":true}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, ValidateInvoiceJSON([]byte(payload)))
		})
	}
}

package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/EdukronCodes/mcp-server-box/internal/entity"
)

func sampleRecords() []*entity.Invoice {
	return []*entity.Invoice{
		{
			FileName:        "acme.pdf",
			InvoiceNumber:   "INV-100",
			InvoiceDate:     "01/15/2024",
			DueDate:         "02/14/2024",
			VendorName:      "Acme Corporation",
			Subtotal:        100,
			TaxAmount:       8,
			TotalAmount:     108,
			Currency:        "USD",
			ConfidenceScore: 0.9,
		},
		{
			FileName:        "beta.pdf",
			InvoiceNumber:   "INV-200",
			VendorName:      "Beta Industries Ltd",
			TotalAmount:     1234.5,
			Currency:        "USD",
			ConfidenceScore: 0.8,
		},
	}
}

func TestRecordsCSV(t *testing.T) {
	data, err := RecordsCSV(sampleRecords())
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, "acme.pdf", rows[1][0])
	assert.Equal(t, "INV-100", rows[1][1])
	assert.Equal(t, "100.00", rows[1][6])
	assert.Equal(t, "8.00", rows[1][7])
	assert.Equal(t, "108.00", rows[1][8])
	assert.Equal(t, "0.9", rows[1][9])
	assert.Equal(t, "1234.50", rows[2][8])
}

func TestRecordsCSVEmpty(t *testing.T) {
	data, err := RecordsCSV(nil)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1, "header only")
}

func TestRecordsXLSX(t *testing.T) {
	data, err := RecordsXLSX(sampleRecords())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	const sheet = "Invoices"
	v, err := f.GetCellValue(sheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "File", v)

	v, err = f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "acme.pdf", v)

	v, err = f.GetCellValue(sheet, "E2")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corporation", v)

	v, err = f.GetCellValue(sheet, "H2")
	require.NoError(t, err)
	assert.Equal(t, "108", v)

	v, err = f.GetCellValue(sheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "INV-200", v)
}

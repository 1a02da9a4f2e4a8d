package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/EdukronCodes/mcp-server-box/internal/entity"
)

// csvHeader is the stable column order of CSV exports.
var csvHeader = []string{
	"file_name",
	"invoice_number",
	"invoice_date",
	"due_date",
	"vendor_name",
	"customer_name",
	"subtotal",
	"tax_amount",
	"total_amount",
	"confidence_score",
}

// RecordsCSV renders extracted records as CSV bytes in the stable column order.
func RecordsCSV(records []*entity.Invoice) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.FileName,
			r.InvoiceNumber,
			r.InvoiceDate,
			r.DueDate,
			r.VendorName,
			r.CustomerName,
			formatAmount(r.Subtotal),
			formatAmount(r.TaxAmount),
			formatAmount(r.TotalAmount),
			strconv.FormatFloat(r.ConfidenceScore, 'f', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("csv row %s: %w", r.FileName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv flush: %w", err)
	}
	return buf.Bytes(), nil
}

// RecordsXLSX renders extracted records as an XLSX workbook.
func RecordsXLSX(records []*entity.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"File",
		"Invoice Number",
		"Invoice Date",
		"Due Date",
		"Vendor",
		"Subtotal",
		"Tax",
		"Total",
		"Currency",
		"Confidence",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range records {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.FileName)
		write(2, r.InvoiceNumber)
		write(3, r.InvoiceDate)
		write(4, r.DueDate)
		write(5, r.VendorName)
		write(6, r.Subtotal)
		write(7, r.TaxAmount)
		write(8, r.TotalAmount)
		write(9, r.Currency)
		write(10, r.ConfidenceScore)
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // file
	_ = f.SetColWidth(sheet, "B", "B", 18) // number
	_ = f.SetColWidth(sheet, "C", "D", 14) // dates
	_ = f.SetColWidth(sheet, "E", "E", 28) // vendor
	_ = f.SetColWidth(sheet, "F", "H", 12) // amounts

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

package constants

import "strings"

// FieldType identifies an invoice attribute subject to pattern extraction.
type FieldType string

// Recognized field types. Unknown values are tolerated by the extractor
// and simply yield no match.
const (
	FieldInvoiceNumber FieldType = "invoice_number"
	FieldInvoiceDate   FieldType = "invoice_date"
	FieldDueDate       FieldType = "due_date"
	FieldTotalAmount   FieldType = "total_amount"
	FieldTaxAmount     FieldType = "tax_amount"
	FieldSubtotal      FieldType = "subtotal"
)

// AmountKey names an entry in the amount extraction result.
type AmountKey string

const (
	AmountTotal    AmountKey = "total"
	AmountTax      AmountKey = "tax"
	AmountSubtotal AmountKey = "subtotal"
)

// DefaultCurrency is the currency code assumed when none is detected.
const DefaultCurrency = "USD"

// AllowedExtensions holds the default allowed file extensions for invoice ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

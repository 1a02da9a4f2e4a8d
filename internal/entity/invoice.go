package entity

// Invoice is the assembled record for one processed document. Fields are
// populated incrementally by the assembler and the struct is treated as an
// immutable snapshot once assembly returns. Its JSON shape is the de facto
// schema for every transport boundary (HTTP body, tool result, export file).
type Invoice struct {
	FileName        string     `json:"file_name"`
	InvoiceNumber   string     `json:"invoice_number"`
	InvoiceDate     string     `json:"invoice_date"`
	DueDate         string     `json:"due_date"`
	VendorName      string     `json:"vendor_name"`
	VendorAddress   string     `json:"vendor_address"`
	CustomerName    string     `json:"customer_name"`
	CustomerAddress string     `json:"customer_address"`
	Subtotal        float64    `json:"subtotal"`
	TaxAmount       float64    `json:"tax_amount"`
	TotalAmount     float64    `json:"total_amount"`
	Currency        string     `json:"currency"`
	LineItems       []LineItem `json:"line_items"`
	RawText         string     `json:"raw_text"`
	ConfidenceScore float64    `json:"confidence_score"`
}

// LineItem is a single invoice line. The extractor does not populate line
// items yet; the field is reserved so the record shape stays stable.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

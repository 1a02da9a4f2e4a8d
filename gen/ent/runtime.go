// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/EdukronCodes/mcp-server-box/db/ent/schema"
	"github.com/EdukronCodes/mcp-server-box/gen/ent/extractjob"
	"github.com/EdukronCodes/mcp-server-box/gen/ent/invoice"
	"github.com/EdukronCodes/mcp-server-box/gen/ent/invoicefile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[3].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescExtractionConfidence is the schema descriptor for extraction_confidence field.
	extractjobDescExtractionConfidence := extractjobFields[7].Descriptor()
	// extractjob.ExtractionConfidenceValidator is a validator for the "extraction_confidence" field. It is called by the builders before save.
	extractjob.ExtractionConfidenceValidator = func() func(float64) error {
		validators := extractjobDescExtractionConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(extraction_confidence float64) error {
			for _, fn := range fns {
				if err := fn(extraction_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFileName is the schema descriptor for file_name field.
	invoiceDescFileName := invoiceFields[1].Descriptor()
	// invoice.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	invoice.FileNameValidator = invoiceDescFileName.Validators[0].(func(string) error)
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[2].Descriptor()
	// invoice.DefaultInvoiceNumber holds the default value on creation for the invoice_number field.
	invoice.DefaultInvoiceNumber = invoiceDescInvoiceNumber.Default.(string)
	// invoiceDescInvoiceDate is the schema descriptor for invoice_date field.
	invoiceDescInvoiceDate := invoiceFields[3].Descriptor()
	// invoice.DefaultInvoiceDate holds the default value on creation for the invoice_date field.
	invoice.DefaultInvoiceDate = invoiceDescInvoiceDate.Default.(string)
	// invoiceDescDueDate is the schema descriptor for due_date field.
	invoiceDescDueDate := invoiceFields[4].Descriptor()
	// invoice.DefaultDueDate holds the default value on creation for the due_date field.
	invoice.DefaultDueDate = invoiceDescDueDate.Default.(string)
	// invoiceDescVendorName is the schema descriptor for vendor_name field.
	invoiceDescVendorName := invoiceFields[5].Descriptor()
	// invoice.DefaultVendorName holds the default value on creation for the vendor_name field.
	invoice.DefaultVendorName = invoiceDescVendorName.Default.(string)
	// invoiceDescVendorAddress is the schema descriptor for vendor_address field.
	invoiceDescVendorAddress := invoiceFields[6].Descriptor()
	// invoice.DefaultVendorAddress holds the default value on creation for the vendor_address field.
	invoice.DefaultVendorAddress = invoiceDescVendorAddress.Default.(string)
	// invoiceDescCustomerName is the schema descriptor for customer_name field.
	invoiceDescCustomerName := invoiceFields[7].Descriptor()
	// invoice.DefaultCustomerName holds the default value on creation for the customer_name field.
	invoice.DefaultCustomerName = invoiceDescCustomerName.Default.(string)
	// invoiceDescCustomerAddress is the schema descriptor for customer_address field.
	invoiceDescCustomerAddress := invoiceFields[8].Descriptor()
	// invoice.DefaultCustomerAddress holds the default value on creation for the customer_address field.
	invoice.DefaultCustomerAddress = invoiceDescCustomerAddress.Default.(string)
	// invoiceDescSubtotal is the schema descriptor for subtotal field.
	invoiceDescSubtotal := invoiceFields[9].Descriptor()
	// invoice.DefaultSubtotal holds the default value on creation for the subtotal field.
	invoice.DefaultSubtotal = invoiceDescSubtotal.Default.(float64)
	// invoice.SubtotalValidator is a validator for the "subtotal" field. It is called by the builders before save.
	invoice.SubtotalValidator = invoiceDescSubtotal.Validators[0].(func(float64) error)
	// invoiceDescTaxAmount is the schema descriptor for tax_amount field.
	invoiceDescTaxAmount := invoiceFields[10].Descriptor()
	// invoice.DefaultTaxAmount holds the default value on creation for the tax_amount field.
	invoice.DefaultTaxAmount = invoiceDescTaxAmount.Default.(float64)
	// invoice.TaxAmountValidator is a validator for the "tax_amount" field. It is called by the builders before save.
	invoice.TaxAmountValidator = invoiceDescTaxAmount.Validators[0].(func(float64) error)
	// invoiceDescTotalAmount is the schema descriptor for total_amount field.
	invoiceDescTotalAmount := invoiceFields[11].Descriptor()
	// invoice.DefaultTotalAmount holds the default value on creation for the total_amount field.
	invoice.DefaultTotalAmount = invoiceDescTotalAmount.Default.(float64)
	// invoice.TotalAmountValidator is a validator for the "total_amount" field. It is called by the builders before save.
	invoice.TotalAmountValidator = invoiceDescTotalAmount.Validators[0].(func(float64) error)
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[12].Descriptor()
	// invoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	invoice.CurrencyValidator = func() func(string) error {
		validators := invoiceDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescRawText is the schema descriptor for raw_text field.
	invoiceDescRawText := invoiceFields[13].Descriptor()
	// invoice.DefaultRawText holds the default value on creation for the raw_text field.
	invoice.DefaultRawText = invoiceDescRawText.Default.(string)
	// invoiceDescConfidenceScore is the schema descriptor for confidence_score field.
	invoiceDescConfidenceScore := invoiceFields[14].Descriptor()
	// invoice.DefaultConfidenceScore holds the default value on creation for the confidence_score field.
	invoice.DefaultConfidenceScore = invoiceDescConfidenceScore.Default.(float64)
	// invoice.ConfidenceScoreValidator is a validator for the "confidence_score" field. It is called by the builders before save.
	invoice.ConfidenceScoreValidator = func() func(float64) error {
		validators := invoiceDescConfidenceScore.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence_score float64) error {
			for _, fn := range fns {
				if err := fn(confidence_score); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[15].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[16].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicefileFields := schema.InvoiceFile{}.Fields()
	_ = invoicefileFields
	// invoicefileDescSourcePath is the schema descriptor for source_path field.
	invoicefileDescSourcePath := invoicefileFields[1].Descriptor()
	// invoicefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoicefile.SourcePathValidator = invoicefileDescSourcePath.Validators[0].(func(string) error)
	// invoicefileDescContentHash is the schema descriptor for content_hash field.
	invoicefileDescContentHash := invoicefileFields[2].Descriptor()
	// invoicefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoicefile.ContentHashValidator = invoicefileDescContentHash.Validators[0].(func([]byte) error)
	// invoicefileDescFilename is the schema descriptor for filename field.
	invoicefileDescFilename := invoicefileFields[3].Descriptor()
	// invoicefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicefile.FilenameValidator = invoicefileDescFilename.Validators[0].(func(string) error)
	// invoicefileDescFileExt is the schema descriptor for file_ext field.
	invoicefileDescFileExt := invoicefileFields[4].Descriptor()
	// invoicefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoicefile.FileExtValidator = invoicefileDescFileExt.Validators[0].(func(string) error)
	// invoicefileDescFileSize is the schema descriptor for file_size field.
	invoicefileDescFileSize := invoicefileFields[5].Descriptor()
	// invoicefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	invoicefile.FileSizeValidator = invoicefileDescFileSize.Validators[0].(func(int) error)
	// invoicefileDescUploadedAt is the schema descriptor for uploaded_at field.
	invoicefileDescUploadedAt := invoicefileFields[6].Descriptor()
	// invoicefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoicefile.DefaultUploadedAt = invoicefileDescUploadedAt.Default.(func() time.Time)
	// invoicefileDescID is the schema descriptor for id field.
	invoicefileDescID := invoicefileFields[0].Descriptor()
	// invoicefile.DefaultID holds the default value on creation for the id field.
	invoicefile.DefaultID = invoicefileDescID.Default.(func() uuid.UUID)
}

// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobsColumns holds the columns for the "extract_jobs" table.
	ExtractJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobsTable holds the schema information for the "extract_jobs" table.
	ExtractJobsTable = &schema.Table{
		Name:       "extract_jobs",
		Columns:    ExtractJobsColumns,
		PrimaryKey: []*schema.Column{ExtractJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_jobs_invoices_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[8]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_jobs_invoice_files_jobs",
				Columns:    []*schema.Column{ExtractJobsColumns[9]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "invoice_date", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "due_date", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "vendor_address", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "customer_name", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "customer_address", Type: field.TypeString, Nullable: true, Default: ""},
		{Name: "subtotal", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_amount", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
	}
	// InvoiceFilesColumns holds the columns for the "invoice_files" table.
	InvoiceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "invoice_files", Type: field.TypeUUID, Nullable: true},
	}
	// InvoiceFilesTable holds the schema information for the "invoice_files" table.
	InvoiceFilesTable = &schema.Table{
		Name:       "invoice_files",
		Columns:    InvoiceFilesColumns,
		PrimaryKey: []*schema.Column{InvoiceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_files_invoices_files",
				Columns:    []*schema.Column{InvoiceFilesColumns[7]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobsTable,
		InvoicesTable,
		InvoiceFilesTable,
	}
)

func init() {
	ExtractJobsTable.ForeignKeys[0].RefTable = InvoicesTable
	ExtractJobsTable.ForeignKeys[1].RefTable = InvoiceFilesTable
	ExtractJobsTable.Annotation = &entsql.Annotation{
		Table: "extract_jobs",
	}
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceFilesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceFilesTable.Annotation = &entsql.Annotation{
		Table: "invoice_files",
	}
}

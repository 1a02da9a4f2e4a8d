package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("file_name").NotEmpty(),
		// Extracted fields are free text; empty means the field was absent.
		field.String("invoice_number").Optional().Default(""),
		field.String("invoice_date").Optional().Default(""),
		field.String("due_date").Optional().Default(""),
		field.String("vendor_name").Optional().Default(""),
		field.String("vendor_address").Optional().Default(""),
		field.String("customer_name").Optional().Default(""),
		field.String("customer_address").Optional().Default(""),
		field.Float("subtotal").Default(0).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("tax_amount").Default(0).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_amount").Default(0).Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Text("raw_text").Optional().Default(""),
		field.Float("confidence_score").Default(0).Min(0).Max(1),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY files
		edge.To("files", InvoiceFile.Type),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

package extract

import (
	"log/slog"

	"github.com/EdukronCodes/mcp-server-box/constants"
	"github.com/EdukronCodes/mcp-server-box/internal/entity"
)

// Assembler orchestrates extraction of all fields for one document and
// computes the document-level confidence score.
type Assembler struct {
	logger    *slog.Logger
	extractor *Extractor
}

func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{logger: logger, extractor: NewExtractor(logger)}
}

// Extractor exposes the underlying field extractor for callers that need
// single-field access.
func (a *Assembler) Extractor() *Extractor {
	return a.extractor
}

// Source is one batch input: a document identifier plus its decoded text,
// or the decode error if decoding failed.
type Source struct {
	ID   string
	Text string
	Err  error
}

// Summary aggregates a set of assembled records.
type Summary struct {
	TotalAmount       float64 `json:"total_amount"`
	TotalTax          float64 `json:"total_tax"`
	AverageConfidence float64 `json:"average_confidence"`
}

// Assemble builds the structured record for one document. Steps run in a
// fixed order and a failure mid-way degrades to a partially populated
// record. A single bad document must never abort a batch, so Assemble
// never returns an error.
func (a *Assembler) Assemble(documentID, rawText string) *entity.Invoice {
	inv := &entity.Invoice{
		FileName:  documentID,
		Currency:  constants.DefaultCurrency,
		LineItems: []entity.LineItem{},
		RawText:   rawText,
	}

	numRes := a.extractor.Extract(rawText, constants.FieldInvoiceNumber)
	inv.InvoiceNumber = numRes.Value

	dateRes := a.extractor.Extract(rawText, constants.FieldInvoiceDate)
	inv.InvoiceDate = dateRes.Value

	dueRes := a.extractor.Extract(rawText, constants.FieldDueDate)
	inv.DueDate = dueRes.Value

	amounts, err := a.extractor.ExtractAmounts(rawText)
	if err != nil {
		// Malformed match: keep what was extracted so far, skip the rest.
		a.logger.Error("assemble.amounts.failed", "document_id", documentID, "err", err)
		return inv
	}
	if amt, ok := amounts[constants.AmountTotal]; ok {
		inv.TotalAmount = amt.Value
	}
	if amt, ok := amounts[constants.AmountTax]; ok {
		inv.TaxAmount = amt.Value
	}
	if amt, ok := amounts[constants.AmountSubtotal]; ok {
		inv.Subtotal = amt.Value
	}

	vendor, _ := a.extractor.ExtractVendorName(rawText)
	inv.VendorName = vendor

	// Aggregate confidence: mean of the non-zero contributions. A record
	// is rewarded for what was found rather than penalized per field
	// attempted, so this is deliberately not a mean over all field types.
	contributions := []float64{0, 0, 0}
	if inv.InvoiceNumber != "" {
		contributions[0] = numRes.Confidence
	}
	if inv.InvoiceDate != "" {
		contributions[1] = dateRes.Confidence
	}
	if inv.TotalAmount > 0 {
		contributions[2] = 0.8
	}
	var sum float64
	var n int
	for _, c := range contributions {
		if c > 0 {
			sum += c
			n++
		}
	}
	if n > 0 {
		inv.ConfidenceScore = sum / float64(n)
	}

	a.logger.Info("assemble.ok",
		"document_id", documentID,
		"invoice_number", inv.InvoiceNumber,
		"total", inv.TotalAmount,
		"confidence", inv.ConfidenceScore,
	)
	return inv
}

// AssembleMany assembles one record per input, in input order. Sources
// whose decode failed are logged and skipped; the output may therefore be
// shorter than the input, but it is never aborted part-way.
func (a *Assembler) AssembleMany(sources []Source) []*entity.Invoice {
	records := make([]*entity.Invoice, 0, len(sources))
	for _, src := range sources {
		if src.Err != nil {
			a.logger.Error("assemble.skip", "document_id", src.ID, "err", src.Err)
			continue
		}
		records = append(records, a.Assemble(src.ID, src.Text))
	}
	return records
}

// Summarize sums amounts and averages confidence across records. An empty
// input yields a zero summary.
func Summarize(records []*entity.Invoice) Summary {
	var s Summary
	if len(records) == 0 {
		return s
	}
	for _, r := range records {
		s.TotalAmount += r.TotalAmount
		s.TotalTax += r.TaxAmount
		s.AverageConfidence += r.ConfidenceScore
	}
	s.AverageConfidence /= float64(len(records))
	return s
}

package extract

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/EdukronCodes/mcp-server-box/constants"
	"github.com/EdukronCodes/mcp-server-box/internal/common"
)

// Result is the outcome of applying one field type's rules to one text blob.
type Result struct {
	Value      string
	Found      bool
	Confidence float64 // 0 when not found
}

// Amount is a parsed monetary match.
type Amount struct {
	Value      float64
	Confidence float64
}

// vendorStoplist holds header keywords that disqualify a line from being
// treated as the vendor name.
var vendorStoplist = []string{"invoice", "bill", "receipt", "quote", "date:", "invoice #"}

// Extractor applies the rule catalog to free text. Stateless apart from
// the shared read-only catalog; safe for concurrent use.
type Extractor struct {
	logger *slog.Logger
}

func NewExtractor(logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{logger: logger}
}

// Extract scans the field's rules in catalog order and returns the first
// match with a rank-derived confidence. No match, or an unrecognized
// field type, yields an absent result with confidence 0, never an error.
func (e *Extractor) Extract(text string, field constants.FieldType) Result {
	for idx, re := range fieldPatterns[field] {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		return Result{
			Value:      strings.TrimSpace(m[1]),
			Found:      true,
			Confidence: ruleConfidence(idx),
		}
	}
	return Result{}
}

// ExtractVendorName picks the vendor from the top of the document: the
// first of the leading 20 lines whose trimmed length lies strictly
// between 5 and 100 characters and which contains no stoplist keyword.
// Vendor names have no reliable lexical pattern, so proximity to the top
// is the only usable signal; matches carry a fixed 0.7 confidence.
func (e *Extractor) ExtractVendorName(text string) (string, float64) {
	lines := strings.Split(text, "\n")
	if len(lines) > 20 {
		lines = lines[:20]
	}
	for _, line := range lines {
		stripped := strings.TrimSpace(line)
		if len(stripped) <= 5 || len(stripped) >= 100 {
			continue
		}
		lower := strings.ToLower(stripped)
		skip := false
		for _, kw := range vendorStoplist {
			if strings.Contains(lower, kw) {
				skip = true
				break
			}
		}
		if !skip {
			return stripped, 0.7
		}
	}
	return "", 0.0
}

// ExtractAmounts extracts the three monetary fields. A field with no
// textual match is absent from the returned map; callers must treat
// absence and zero as distinct. A matched string that fails numeric
// parsing means a defective rule let something through; that surfaces as
// an error rather than a silent zero.
func (e *Extractor) ExtractAmounts(text string) (map[constants.AmountKey]Amount, error) {
	fields := []struct {
		key   constants.AmountKey
		field constants.FieldType
	}{
		{constants.AmountTotal, constants.FieldTotalAmount},
		{constants.AmountTax, constants.FieldTaxAmount},
		{constants.AmountSubtotal, constants.FieldSubtotal},
	}

	amounts := make(map[constants.AmountKey]Amount, len(fields))
	for _, f := range fields {
		res := e.Extract(text, f.field)
		if !res.Found {
			continue
		}
		v, err := parseAmount(res.Value)
		if err != nil {
			return nil, common.NewAppError("MALFORMED_MATCH",
				fmt.Sprintf("parse %s %q", f.key, res.Value), common.ErrMalformedMatch)
		}
		amounts[f.key] = Amount{Value: v, Confidence: res.Confidence}
	}
	return amounts, nil
}

func parseAmount(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "$", "")
	return strconv.ParseFloat(s, 64)
}

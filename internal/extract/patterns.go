package extract

import (
	"regexp"

	"github.com/EdukronCodes/mcp-server-box/constants"
)

// fieldPatterns is the rule catalog: per field type, an ordered list of
// candidate patterns. Order is load-bearing: rules are tried first to
// last, the first match wins, and a rule's index determines the
// confidence of its matches. Initialized once, read-only afterwards.
var fieldPatterns = map[constants.FieldType][]*regexp.Regexp{
	constants.FieldInvoiceNumber: {
		regexp.MustCompile(`(?im)Invoice\s*(?:Number|No\.?|#)[\s:]*([A-Z0-9\-]+)`),
		regexp.MustCompile(`(?im)Invoice\s*#?[\s:]*([A-Z0-9\-]{4,})`),
		regexp.MustCompile(`(?im)INV[\s\-]?([A-Z0-9\-]+)`),
	},
	constants.FieldInvoiceDate: {
		regexp.MustCompile(`(?im)Invoice\s*Date[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?im)Date[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		// last resort: first bare date-shaped token anywhere in the text
		regexp.MustCompile(`(?im)(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	},
	constants.FieldDueDate: {
		regexp.MustCompile(`(?im)Due\s*Date[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?im)Payment\s*Due[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	},
	constants.FieldTotalAmount: {
		// \b keeps the label from matching inside "Subtotal"
		regexp.MustCompile(`(?im)\bTotal[\s:]*\$?([0-9,]+\.[0-9]{2})`),
		regexp.MustCompile(`(?im)Grand\s*Total[\s:]*\$?([0-9,]+\.[0-9]{2})`),
		regexp.MustCompile(`(?im)\bTOTAL[\s:]*\$?([0-9,]+\.[0-9]{2})`),
	},
	constants.FieldTaxAmount: {
		regexp.MustCompile(`(?im)Tax[\s:]*\$?([0-9,]+\.[0-9]{2})`),
		regexp.MustCompile(`(?im)GST[\s:]*\$?([0-9,]+\.[0-9]{2})`),
		regexp.MustCompile(`(?im)VAT[\s:]*\$?([0-9,]+\.[0-9]{2})`),
	},
	constants.FieldSubtotal: {
		regexp.MustCompile(`(?im)Subtotal[\s:]*\$?([0-9,]+\.[0-9]{2})`),
		regexp.MustCompile(`(?im)Sub[\s-]?Total[\s:]*\$?([0-9,]+\.[0-9]{2})`),
	},
}

// ruleConfidence derives a match confidence from the rule's position in
// its catalog: 1.0 for index 0, decreasing by 0.1 per rank. Clamped at
// 0.1 so a pathologically long rule list can never push confidence out
// of [0,1]; real catalogs stay well under ten rules.
func ruleConfidence(idx int) float64 {
	c := 1.0 - float64(idx)*0.1
	if c < 0.1 {
		c = 0.1
	}
	return c
}

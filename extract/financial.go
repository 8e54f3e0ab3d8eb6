package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const moneyPattern = `(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`

var totalValueRules = []Rule{
	rule("labeled-total", `Total\s*(?:Contract\s*)?(?:Value|Amount)[\s:]*\$?\s*`+moneyPattern, 95),
	rule("contract-value", `Contract\s*Value[\s:]*\$?\s*`+moneyPattern, 92),
	rule("total-dollar", `Total[\s:]*\$\s*`+moneyPattern, 88),
	rule("amount-due", `Amount\s*Due[\s:]*\$?\s*`+moneyPattern, 85),
}

// Currency detection is a symbol/keyword to ISO-code mapping checked in
// fixed precedence order: USD, EUR, GBP.
var currencyRules = []struct {
	Code string
	re   *regexp.Regexp
}{
	{"USD", regexp.MustCompile(`(?i)\$|USD|US Dollar`)},
	{"EUR", regexp.MustCompile(`(?i)€|EUR|Euro`)},
	{"GBP", regexp.MustCompile(`(?i)£|GBP|British Pound`)},
}

const currencyConfidence = 90

// Line items: description, quantity, unit price, total on one line.
var lineItemRules = []Rule{
	rule("four-column", `([A-Z][^$\n]*?)\s+(\d+)\s+\$\s*`+moneyPattern+`\s+\$\s*`+moneyPattern, 82),
}

const maxLineItems = 10

var taxRules = []Rule{
	rule("tax-rate", `Tax\s*Rate[\s:]*(\d+(?:\.\d+)?%)`, 92),
	rule("vat", `VAT[\s:]*(\d+(?:\.\d+)?%)`, 88),
	rule("sales-tax", `Sales\s*Tax[\s:]*(\d+(?:\.\d+)?%)`, 88),
}

// ExtractFinancial pulls total contract value, currency, line items, and tax
// information. Absent fields stay zero-valued with confidence 0.
func ExtractFinancial(text string) (FinancialDetails, Partial) {
	var fin FinancialDetails
	partial := Partial{Section: SectionFinancial}

	if m, ok := FirstMatch(text, totalValueRules); ok {
		fin.TotalValue = m.Value
		fin.TotalValueConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "total_value", Value: m.Value, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	for _, c := range currencyRules {
		if c.re.MatchString(text) {
			fin.Currency = c.Code
			fin.CurrencyConfidence = currencyConfidence
			partial.Fields = append(partial.Fields, FieldMatch{
				Field: "currency", Value: c.Code, Confidence: currencyConfidence,
			})
			break
		}
	}

	fin.LineItems = extractLineItems(text)
	if len(fin.LineItems) > 0 {
		fin.LineItemsConfidence = matchConfidence(lineItemRules[0].Base, len(fin.LineItems))
		partial.Fields = append(partial.Fields, FieldMatch{
			Field:      "line_items",
			Value:      strconv.Itoa(len(fin.LineItems)),
			Confidence: fin.LineItemsConfidence,
		})
	}

	if m, ok := FirstMatch(text, taxRules); ok {
		fin.TaxInformation = &TaxInformation{Rate: m.Value, Confidence: m.Confidence}
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "tax_information", Value: m.Value, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	return fin, partial
}

func extractLineItems(text string) []LineItem {
	var items []LineItem
	for _, m := range AllMatches(text, lineItemRules, maxLineItems) {
		if len(m.Groups) < 4 {
			continue
		}
		qty, err := strconv.Atoi(m.Groups[1])
		if err != nil {
			continue
		}
		items = append(items, LineItem{
			Description: strings.TrimSpace(m.Groups[0]),
			Quantity:    qty,
			UnitPrice:   "$" + m.Groups[2],
			Total:       "$" + m.Groups[3],
		})
	}
	return items
}

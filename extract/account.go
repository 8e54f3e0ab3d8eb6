package extract

import (
	"regexp"
	"strings"
)

var accountNumberRules = []Rule{
	rule("account-number", `Account\s*(?:Number|#)[\s:]*([A-Z0-9-]+)`, 92),
	rule("customer-id", `Customer\s*ID[\s:]*([A-Z0-9-]+)`, 85),
}

// Billing address: the labeled block wins; a bare "Address:" line is the
// generic fallback.
var billingAddressRules = []Rule{
	rule("billing-address", `Billing\s*Address[\s:]*([^\n]+(?:\n[^\n]+){0,3})`, 85),
	rule("address", `Address[\s:]*([^\n]+)`, 65),
}

const billingAddressConfidence = 85

var blankLineRe = regexp.MustCompile(`\n\s*\n`)

// ExtractAccount pulls the account number and the billing-address block
// (the span after the label, cut at the first blank line).
func ExtractAccount(text string) (AccountInformation, Partial) {
	var acct AccountInformation
	partial := Partial{Section: SectionAccount}

	if m, ok := FirstMatch(text, accountNumberRules); ok {
		acct.AccountNumber = m.Value
		acct.AccountConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "account_number", Value: m.Value, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	if m, ok := FirstMatch(text, billingAddressRules); ok {
		addr := trimAtBlankLine(m.Value)
		if addr != "" {
			acct.BillingAddress = addr
			acct.BillingAddressConfidence = m.Confidence
			partial.Fields = append(partial.Fields, FieldMatch{
				Field: "billing_address", Value: addr, Confidence: m.Confidence, Start: m.Start, End: m.End,
			})
		}
	}

	return acct, partial
}

func trimAtBlankLine(block string) string {
	if loc := blankLineRe.FindStringIndex(block); loc != nil {
		block = block[:loc[0]]
	}
	return strings.TrimSpace(block)
}

package extract

import "regexp"

var (
	recurringRe = regexp.MustCompile(`(?i)recurring|subscription|monthly|annual|quarterly`)

	billingCycleRules = []struct {
		Cycle string
		re    *regexp.Regexp
	}{
		{"Monthly", regexp.MustCompile(`(?i)monthly`)},
		{"Quarterly", regexp.MustCompile(`(?i)quarterly`)},
		{"Annual", regexp.MustCompile(`(?i)annually|annual`)},
	}

	renewalRules = []Rule{
		rule("renewal-sentence", `((?:renewal|auto-renew|automatically\s*renew)[^\n.]*)`, 80),
	}
)

const (
	recurringConfidence    = 85
	oneTimeConfidence      = 60
	billingCycleConfidence = 85
)

// ExtractRevenue classifies the contract as recurring or one-time revenue
// and pulls the billing cycle and renewal terms. The type is always set;
// one-time is the default when no recurring keyword appears.
func ExtractRevenue(text string) (RevenueClassification, Partial) {
	var rev RevenueClassification
	partial := Partial{Section: SectionRevenue}

	if trimValue(text) == "" {
		// Sparse input still yields a well-formed section, but the default
		// classification carries no confidence.
		rev.Type = RevenueOneTime
		return rev, partial
	}

	if recurringRe.MatchString(text) {
		rev.Type = RevenueRecurring
		rev.TypeConfidence = recurringConfidence

		for _, c := range billingCycleRules {
			if c.re.MatchString(text) {
				rev.BillingCycle = c.Cycle
				rev.BillingCycleConfidence = billingCycleConfidence
				break
			}
		}
	} else {
		rev.Type = RevenueOneTime
		rev.TypeConfidence = oneTimeConfidence
	}
	partial.Fields = append(partial.Fields, FieldMatch{
		Field: "type", Value: rev.Type, Confidence: rev.TypeConfidence,
	})
	if rev.BillingCycle != "" {
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "billing_cycle", Value: rev.BillingCycle, Confidence: rev.BillingCycleConfidence,
		})
	}

	if m, ok := FirstMatch(text, renewalRules); ok {
		rev.RenewalTerms = trimValue(m.Value)
		rev.RenewalConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "renewal_terms", Value: rev.RenewalTerms, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	return rev, partial
}

package extract

// Net-days terms. The labeled "Terms: Net N" form outranks the bare "Net N
// days" form; the trailing "N days net" form is the generic fallback.
var paymentTermsRules = []Rule{
	rule("labeled-terms", `Terms?\s*:\s*Net\s*(\d+)`, 95),
	rule("net-days", `Net\s*(\d+)\s*days?`, 90),
	rule("due-in-days", `Payment\s*due\s*in\s*(\d+)\s*days?`, 85),
	rule("days-net", `(\d+)\s*days?\s*net`, 78),
}

var scheduleRules = []Rule{
	rule("labeled-schedule", `(?:Payment|Billing)\s*Schedule[\s:]*([^\n.]+)`, 90),
	rule("schedule-keyword", `(Monthly|Quarterly|Annually|Annual|Weekly|One-time)\s*payments?`, 75),
}

var methodRules = []Rule{
	rule("labeled-method", `Payment\s*Method[\s:]*([^\n.]+)`, 90),
	rule("method-keyword", `(Wire\s*Transfer|ACH|Check|Credit\s*Card)`, 80),
}

// ExtractPayment pulls net-days terms, payment schedule, and payment method.
func ExtractPayment(text string) (PaymentStructure, Partial) {
	var pay PaymentStructure
	partial := Partial{Section: SectionPayment}

	if m, ok := FirstMatch(text, paymentTermsRules); ok {
		pay.Terms = "Net " + m.Value
		pay.TermsConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "terms", Value: pay.Terms, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	if m, ok := FirstMatch(text, scheduleRules); ok {
		pay.Schedule = trimValue(m.Value)
		pay.ScheduleConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "schedule", Value: pay.Schedule, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	if m, ok := FirstMatch(text, methodRules); ok {
		pay.Method = trimValue(m.Value)
		pay.MethodConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "method", Value: pay.Method, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	return pay, partial
}

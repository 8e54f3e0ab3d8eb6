package extract

import "strings"

var responseTimeRules = []Rule{
	rule("labeled-response", `Response\s*Time[\s:]*(\d+\s*(?:hours?|minutes?|days?))`, 92),
	rule("response-suffix", `(\d+\s*(?:hour|minute|day))s?\s*response`, 80),
}

var uptimeRules = []Rule{
	rule("labeled-uptime", `(?:Uptime|Availability)[\s:]*(\d+(?:\.\d+)?%)`, 92),
	rule("uptime-suffix", `(\d+(?:\.\d+)?%)\s*(?:uptime|availability)`, 85),
}

// Penalty extraction keeps the nearest sentence containing a penalty or SLA
// violation keyword.
var penaltyRules = []Rule{
	rule("labeled-penalty", `Penalty[\s:]+([^\n.]+)`, 88),
	rule("penalty-sentence", `([^\n.]*(?:penalt(?:y|ies)|SLA\s*violation)[^\n.]*)`, 75),
}

// ExtractSLA pulls response time, uptime guarantee, and penalty clauses.
func ExtractSLA(text string) (SLATerms, Partial) {
	var sla SLATerms
	partial := Partial{Section: SectionSLA}

	if m, ok := FirstMatch(text, responseTimeRules); ok {
		sla.ResponseTime = trimValue(m.Value)
		sla.ResponseTimeConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "response_time", Value: sla.ResponseTime, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	if m, ok := FirstMatch(text, uptimeRules); ok {
		sla.UptimeGuarantee = m.Value
		sla.UptimeConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "uptime_guarantee", Value: m.Value, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	if m, ok := FirstMatch(text, penaltyRules); ok {
		sla.Penalties = trimValue(m.Value)
		sla.PenaltiesConfidence = m.Confidence
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "penalties", Value: sla.Penalties, Confidence: m.Confidence, Start: m.Start, End: m.End,
		})
	}

	return sla, partial
}

func trimValue(s string) string {
	return strings.TrimSpace(s)
}

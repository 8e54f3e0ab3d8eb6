package extract

import "testing"

func TestExtractSLA(t *testing.T) {
	text := "Response Time: 4 hours. Uptime: 99.9%. Penalty: 5% monthly fee reduction per SLA violation"

	sla, partial := ExtractSLA(text)

	if sla.ResponseTime != "4 hours" {
		t.Errorf("Expected response time 4 hours, got %q", sla.ResponseTime)
	}
	if sla.UptimeGuarantee != "99.9%" {
		t.Errorf("Expected uptime 99.9%%, got %q", sla.UptimeGuarantee)
	}
	if sla.Penalties != "5% monthly fee reduction per SLA violation" {
		t.Errorf("Expected penalty clause, got %q", sla.Penalties)
	}
	if partial.Confidence() <= 0 {
		t.Error("Expected positive section confidence")
	}
}

func TestExtractSLAFallbackRules(t *testing.T) {
	text := "We guarantee a 2 hour response and 99.5% availability. Fees subject to penalties for missed targets"

	sla, _ := ExtractSLA(text)

	if sla.ResponseTime != "2 hour" {
		t.Errorf("Expected response time 2 hour, got %q", sla.ResponseTime)
	}
	if sla.UptimeGuarantee != "99.5%" {
		t.Errorf("Expected uptime 99.5%%, got %q", sla.UptimeGuarantee)
	}
	if sla.Penalties == "" {
		t.Error("Expected penalty sentence via fallback rule")
	}
}

func TestExtractSLAEmpty(t *testing.T) {
	sla, partial := ExtractSLA("no service level language at all")

	if sla.ResponseTime != "" || sla.UptimeGuarantee != "" || sla.Penalties != "" {
		t.Errorf("Expected empty SLA terms, got %+v", sla)
	}
	if partial.Confidence() != 0 {
		t.Errorf("Expected zero confidence, got %v", partial.Confidence())
	}
}

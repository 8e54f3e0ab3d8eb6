package pipeline

import (
	"reflect"
	"testing"

	"github.com/shekokarmahesh/contract-intelligence-parser/extract"
	"github.com/shekokarmahesh/contract-intelligence-parser/scoring"
)

const agreementPage = "Service Agreement between TechCorp Inc. and Global Industries Ltd.\n" +
	"Total: $150,000.00 USD. Terms: Net 30. Payment Method: Wire Transfer.\n" +
	"Uptime: 99.9% guaranteed. Response Time: 4 hours.\n" +
	"Contact: billing@techcorp.com, (555) 123-4567.\n" +
	"Account Number: ACC-2024-001. Billed monthly, auto-renews annually."

func newPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := New(nil, nil)
	if err != nil {
		t.Fatalf("Failed to build pipeline: %v", err)
	}
	return p
}

func TestNewRejectsInvalidWeights(t *testing.T) {
	w := scoring.DefaultWeights()
	w[scoring.WeightSLA] = 50

	if _, err := New(w, nil); err == nil {
		t.Error("Expected error for weights not summing to 100")
	}
}

func TestRunAgreement(t *testing.T) {
	res := newPipeline(t).Run([]string{agreementPage})

	if len(res.Record.Parties) < 2 {
		t.Errorf("Expected at least 2 parties, got %d", len(res.Record.Parties))
	}
	if res.Record.FinancialDetails.TotalValue != "150,000.00" {
		t.Errorf("Unexpected total value %q", res.Record.FinancialDetails.TotalValue)
	}
	if res.Record.FinancialDetails.Currency != "USD" {
		t.Errorf("Unexpected currency %q", res.Record.FinancialDetails.Currency)
	}
	if res.Record.PaymentStructure.Terms != "Net 30" {
		t.Errorf("Unexpected payment terms %q", res.Record.PaymentStructure.Terms)
	}
	if res.Score <= 0 || res.Score > 100 {
		t.Errorf("Expected score in (0,100], got %d", res.Score)
	}
	if res.Score != res.Breakdown.Total {
		t.Errorf("Score %d does not match breakdown total %d", res.Score, res.Breakdown.Total)
	}
	if res.Record.Metadata.TotalPages != 1 {
		t.Errorf("Expected 1 page, got %d", res.Record.Metadata.TotalPages)
	}
	if res.Record.Metadata.Method != extract.ExtractionMethod {
		t.Errorf("Unexpected extraction method %q", res.Record.Metadata.Method)
	}
}

func TestRunEmptyInput(t *testing.T) {
	res := newPipeline(t).Run(nil)

	if res.Score != 0 {
		t.Errorf("Expected score 0 for empty input, got %d", res.Score)
	}
	if len(res.ConfidenceScores) != len(extract.Sections) {
		t.Fatalf("Expected %d confidence entries, got %d", len(extract.Sections), len(res.ConfidenceScores))
	}
	for _, section := range extract.Sections {
		conf, ok := res.ConfidenceScores[section]
		if !ok {
			t.Errorf("Missing confidence entry for %q", section)
		}
		if conf != 0 {
			t.Errorf("Section %q: expected confidence 0, got %v", section, conf)
		}
	}
	if len(res.Gaps) != len(scoring.Catalog()) {
		t.Errorf("Expected a gap per catalog field (%d), got %d", len(scoring.Catalog()), len(res.Gaps))
	}
	if res.Record.RevenueClassification.Type != extract.RevenueOneTime {
		t.Errorf("Expected default revenue type %q, got %q",
			extract.RevenueOneTime, res.Record.RevenueClassification.Type)
	}
}

func TestRunIdempotent(t *testing.T) {
	p := newPipeline(t)
	pages := []string{agreementPage}

	first := p.Run(pages)
	second := p.Run(pages)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical results on repeated runs")
	}
}

func TestRunReportsStagesInOrder(t *testing.T) {
	var stages []string
	p, err := New(nil, ReporterFunc(func(state string) {
		stages = append(stages, state)
	}))
	if err != nil {
		t.Fatalf("Failed to build pipeline: %v", err)
	}

	p.Run([]string{agreementPage})

	want := []string{
		StateReceived, StateNormalizing, StateExtracting,
		StateAggregating, StateScoring, StateGapAnalysis, StateDone,
	}
	if !reflect.DeepEqual(stages, want) {
		t.Errorf("Unexpected stage sequence %v, want %v", stages, want)
	}
}

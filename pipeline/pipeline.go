// Package pipeline runs the full contract analysis: normalize page text,
// extract every section, aggregate, score, and analyze gaps.
package pipeline

import (
	"fmt"

	"github.com/shekokarmahesh/contract-intelligence-parser/extract"
	"github.com/shekokarmahesh/contract-intelligence-parser/scoring"
)

// Pipeline stages, reported in order through the Reporter. A run that
// reaches StateDone produced a Result; StateFailed is only reachable from
// infrastructure errors upstream (download, PDF parsing), never from
// sparse or empty text.
const (
	StateReceived    = "received"
	StateNormalizing = "normalizing"
	StateExtracting  = "extracting"
	StateAggregating = "aggregating"
	StateScoring     = "scoring"
	StateGapAnalysis = "gap_analysis"
	StateDone        = "done"
	StateFailed      = "failed"
)

// Reporter receives stage transitions during a run. Implementations must be
// cheap; they are called inline.
type Reporter interface {
	Stage(state string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(state string)

// Stage calls f(state).
func (f ReporterFunc) Stage(state string) { f(state) }

// Result is the complete analysis output for one document.
type Result struct {
	Record           extract.Record     `json:"data" bson:"data"`
	Score            int                `json:"score" bson:"score"`
	Breakdown        scoring.Breakdown  `json:"score_breakdown" bson:"score_breakdown"`
	ConfidenceScores map[string]float64 `json:"confidence_scores" bson:"confidence_scores"`
	Gaps             []scoring.Gap      `json:"gaps" bson:"gaps"`
}

// Pipeline is a reusable analyzer. Safe for concurrent use: runs share only
// the validated weight table.
type Pipeline struct {
	weights  scoring.Weights
	reporter Reporter
}

// New builds a pipeline with the given weight table, validating it up
// front. A nil reporter disables stage reporting.
func New(weights scoring.Weights, reporter Reporter) (*Pipeline, error) {
	if weights == nil {
		weights = scoring.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}
	return &Pipeline{weights: weights, reporter: reporter}, nil
}

// Run analyzes the raw per-page text of one document. It never fails on
// sparse or empty input: an empty document yields a record with every
// section present, score 0, and a gap per expected field.
func (p *Pipeline) Run(pages []string) Result {
	p.stage(StateReceived)

	p.stage(StateNormalizing)
	normalized, text := extract.Normalize(pages)

	p.stage(StateExtracting)
	var parts extract.Partials
	parties, partiesP := extract.ExtractParties(text)
	fin, finP := extract.ExtractFinancial(text)
	pay, payP := extract.ExtractPayment(text)
	sla, slaP := extract.ExtractSLA(text)
	contact, contactP := extract.ExtractContacts(text)
	acct, acctP := extract.ExtractAccount(text)
	rev, revP := extract.ExtractRevenue(text)
	parts = extract.Partials{
		Parties:   partiesP,
		Financial: finP,
		Payment:   payP,
		SLA:       slaP,
		Contact:   contactP,
		Account:   acctP,
		Revenue:   revP,
	}

	p.stage(StateAggregating)
	meta := extract.Metadata{TotalPages: len(normalized), TextLength: len(text)}
	record, confidences := extract.Aggregate(parties, fin, pay, sla, contact, acct, rev, parts, meta)

	p.stage(StateScoring)
	breakdown := scoring.Score(&record, confidences, p.weights)

	p.stage(StateGapAnalysis)
	gaps := scoring.AnalyzeGaps(&record)

	p.stage(StateDone)
	return Result{
		Record:           record,
		Score:            breakdown.Total,
		Breakdown:        breakdown,
		ConfidenceScores: confidences,
		Gaps:             gaps,
	}
}

func (p *Pipeline) stage(state string) {
	if p.reporter != nil {
		p.reporter.Stage(state)
	}
}

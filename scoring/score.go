package scoring

import (
	"math"

	"github.com/shekokarmahesh/contract-intelligence-parser/extract"
)

// SectionScore is the per-section breakdown of the completeness score.
type SectionScore struct {
	Name             string  `json:"name" bson:"name"`
	Weight           int     `json:"weight" bson:"weight"`
	DetectedFields   int     `json:"detected_fields" bson:"detected_fields"`
	ExpectedFields   int     `json:"expected_fields" bson:"expected_fields"`
	Completeness     float64 `json:"completeness" bson:"completeness"`
	ConfidenceFactor float64 `json:"confidence_factor" bson:"confidence_factor"`
	Score            float64 `json:"score" bson:"score"`
}

// Breakdown is the full scoring result: a total clamped to [0,100] plus the
// per-section contributions.
type Breakdown struct {
	Total    int            `json:"total" bson:"total"`
	Sections []SectionScore `json:"sections" bson:"sections"`
}

// scoredRecordSection maps weight-table names to the record section whose
// confidence scales that area's contribution.
var scoredRecordSection = map[string]string{
	WeightFinancial: extract.SectionFinancial,
	WeightParties:   extract.SectionParties,
	WeightPayment:   extract.SectionPayment,
	WeightSLA:       extract.SectionSLA,
	WeightContact:   extract.SectionContact,
}

// Score computes the weighted completeness score for a record. For each
// scored section: completeness = detected/expected catalog fields,
// confidence factor = section confidence / 100 clamped to [0,1], section
// score = completeness * weight * factor. The total is the rounded, clamped
// sum. Pure function: weights and confidences are passed in, no ambient
// state is read.
func Score(rec *extract.Record, confidences map[string]float64, weights Weights) Breakdown {
	detected := make(map[string]int, len(weightNames))
	expected := make(map[string]int, len(weightNames))

	for _, e := range fieldCatalog {
		if e.Scored == "" {
			continue
		}
		expected[e.Scored]++
		if state, _ := e.Probe(rec); state == FieldPresent {
			detected[e.Scored]++
		}
	}

	var total float64
	sections := make([]SectionScore, 0, len(weightNames))
	for _, name := range weightNames {
		s := SectionScore{
			Name:           name,
			Weight:         weights[name],
			DetectedFields: detected[name],
			ExpectedFields: expected[name],
		}
		if s.ExpectedFields > 0 {
			s.Completeness = float64(s.DetectedFields) / float64(s.ExpectedFields)
		}

		conf := confidences[scoredRecordSection[name]]
		s.ConfidenceFactor = clamp01(conf / 100)
		s.Score = s.Completeness * float64(s.Weight) * s.ConfidenceFactor

		total += s.Score
		sections = append(sections, s)
	}

	rounded := int(math.Round(total))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > 100 {
		rounded = 100
	}

	return Breakdown{Total: rounded, Sections: sections}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

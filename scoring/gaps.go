package scoring

import "github.com/shekokarmahesh/contract-intelligence-parser/extract"

// Gap statuses.
const (
	StatusMissing        = "Missing"
	StatusIncomplete     = "Incomplete"
	StatusReviewRequired = "Review Required"
)

// ReviewThreshold is the minimum confidence a present field needs to escape
// review. The inequality is strict: confidence exactly at the threshold
// passes, anything below it is flagged.
const ReviewThreshold = 70.0

// Gap is one missing, incomplete, or low-confidence catalog field.
// ImpactOnScore is informational, for display; it does not feed the total.
type Gap struct {
	Field         string `json:"field" bson:"field"`
	Importance    string `json:"importance" bson:"importance"`
	Status        string `json:"status" bson:"status"`
	Description   string `json:"description" bson:"description"`
	ImpactOnScore int    `json:"impact_on_score" bson:"impact_on_score"`
}

// AnalyzeGaps walks the field catalog against a record and reports every
// field that is absent, partially populated, or present below the review
// threshold. Gaps are ordered High, then Medium, then Low; within a tier,
// catalog order.
func AnalyzeGaps(rec *extract.Record) []Gap {
	var gaps []Gap
	for _, tier := range []string{ImportanceHigh, ImportanceMedium, ImportanceLow} {
		for _, e := range fieldCatalog {
			if e.Importance != tier {
				continue
			}
			if g, ok := gapFor(e, rec); ok {
				gaps = append(gaps, g)
			}
		}
	}
	return gaps
}

func gapFor(e CatalogEntry, rec *extract.Record) (Gap, bool) {
	state, confidence := e.Probe(rec)

	g := Gap{
		Field:         e.Field,
		Importance:    e.Importance,
		ImpactOnScore: tierImpact[e.Importance],
	}

	switch state {
	case FieldAbsent:
		g.Status = StatusMissing
		g.Description = e.Missing
	case FieldPartial:
		g.Status = StatusIncomplete
		g.Description = e.Incomplete
		if g.Description == "" {
			g.Description = e.Field + " partially detected"
		}
	case FieldPresent:
		if confidence >= ReviewThreshold {
			return Gap{}, false
		}
		g.Status = StatusReviewRequired
		g.Description = e.Field + " extracted with low confidence"
	}

	return g, true
}

package scoring

import "fmt"

// Scored section names. These are the five weighted areas of the
// completeness score; account, and revenue fields surface through gap
// analysis only.
const (
	WeightFinancial = "financial_completeness"
	WeightParties   = "party_identification"
	WeightPayment   = "payment_terms"
	WeightSLA       = "sla_definition"
	WeightContact   = "contact_information"
)

var weightNames = []string{
	WeightFinancial,
	WeightParties,
	WeightPayment,
	WeightSLA,
	WeightContact,
}

// Weights maps scored section name to its share of the 100-point total.
type Weights map[string]int

// DefaultWeights returns the standard weight table.
func DefaultWeights() Weights {
	return Weights{
		WeightFinancial: 30,
		WeightParties:   25,
		WeightPayment:   20,
		WeightSLA:       15,
		WeightContact:   10,
	}
}

// Validate enforces the structural invariants: every scored section has a
// non-negative weight, no unknown sections, and the weights sum to exactly
// 100. Violations are fatal at startup, not per document.
func (w Weights) Validate() error {
	sum := 0
	for _, name := range weightNames {
		v, ok := w[name]
		if !ok {
			return fmt.Errorf("scoring weights: missing section %q", name)
		}
		if v < 0 {
			return fmt.Errorf("scoring weights: negative weight %d for %q", v, name)
		}
		sum += v
	}
	if len(w) != len(weightNames) {
		for name := range w {
			if !isWeightName(name) {
				return fmt.Errorf("scoring weights: unknown section %q", name)
			}
		}
	}
	if sum != 100 {
		return fmt.Errorf("scoring weights: sum is %d, must be 100", sum)
	}
	return nil
}

func isWeightName(name string) bool {
	for _, n := range weightNames {
		if n == name {
			return true
		}
	}
	return false
}

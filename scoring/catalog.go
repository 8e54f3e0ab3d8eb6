package scoring

import (
	"fmt"

	"github.com/shekokarmahesh/contract-intelligence-parser/extract"
)

// Importance tiers for catalog fields, ordered High before Medium before Low.
const (
	ImportanceHigh   = "High"
	ImportanceMedium = "Medium"
	ImportanceLow    = "Low"
)

// Informational score impact per tier, surfaced on gaps for display. It does
// not feed back into the total score; scorer and gap analyzer run
// independently over the same record.
var tierImpact = map[string]int{
	ImportanceHigh:   -5,
	ImportanceMedium: -3,
	ImportanceLow:    -1,
}

// FieldState is the probe verdict for one catalog field.
type FieldState int

const (
	FieldAbsent FieldState = iota
	FieldPartial
	FieldPresent
)

// CatalogEntry describes one expected contract field: where it lives, how
// much it matters, and how to probe a record for it. The probe returns the
// field state plus the confidence of whatever was found.
type CatalogEntry struct {
	Field      string
	Section    string // record section the field belongs to
	Scored     string // weight-table section, "" when the field is unscored
	Importance string
	Missing    string // description when the field is absent
	Incomplete string // description when partially populated
	Probe      func(*extract.Record) (FieldState, float64)
}

// fieldCatalog is the static expected-field table shared by the scorer
// (denominators) and the gap analyzer (enumeration). Order within an
// importance tier is the order gaps are reported in.
var fieldCatalog = []CatalogEntry{
	{
		Field: "Contract Parties", Section: extract.SectionParties, Scored: WeightParties,
		Importance: ImportanceHigh,
		Missing:    "No contract parties identified",
		Incomplete: "Less than 2 parties identified",
		Probe: func(r *extract.Record) (FieldState, float64) {
			switch {
			case len(r.Parties) >= 2:
				return FieldPresent, meanPartyConfidence(r.Parties)
			case len(r.Parties) == 1:
				return FieldPartial, r.Parties[0].Confidence
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Contract Value", Section: extract.SectionFinancial, Scored: WeightFinancial,
		Importance: ImportanceHigh,
		Missing:    "Total contract value not specified",
		Incomplete: "Line items present but no total contract value",
		Probe: func(r *extract.Record) (FieldState, float64) {
			if r.FinancialDetails.TotalValue != "" {
				return FieldPresent, r.FinancialDetails.TotalValueConfidence
			}
			if len(r.FinancialDetails.LineItems) > 0 {
				return FieldPartial, r.FinancialDetails.LineItemsConfidence
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Payment Terms", Section: extract.SectionPayment, Scored: WeightPayment,
		Importance: ImportanceHigh,
		Missing:    "Payment terms not specified",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.PaymentStructure.Terms, r.PaymentStructure.TermsConfidence)
		},
	},
	{
		Field: "Currency", Section: extract.SectionFinancial, Scored: WeightFinancial,
		Importance: ImportanceMedium,
		Missing:    "Currency not specified",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.FinancialDetails.Currency, r.FinancialDetails.CurrencyConfidence)
		},
	},
	{
		Field: "Line Items", Section: extract.SectionFinancial, Scored: WeightFinancial,
		Importance: ImportanceMedium,
		Missing:    "No billing line items found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			if len(r.FinancialDetails.LineItems) > 0 {
				return FieldPresent, r.FinancialDetails.LineItemsConfidence
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Payment Schedule", Section: extract.SectionPayment, Scored: WeightPayment,
		Importance: ImportanceMedium,
		Missing:    "Payment schedule not specified",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.PaymentStructure.Schedule, r.PaymentStructure.ScheduleConfidence)
		},
	},
	{
		Field: "Response Time", Section: extract.SectionSLA, Scored: WeightSLA,
		Importance: ImportanceMedium,
		Missing:    "SLA response time not defined",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.SLATerms.ResponseTime, r.SLATerms.ResponseTimeConfidence)
		},
	},
	{
		Field: "Uptime Guarantee", Section: extract.SectionSLA, Scored: WeightSLA,
		Importance: ImportanceMedium,
		Missing:    "Uptime guarantee not defined",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.SLATerms.UptimeGuarantee, r.SLATerms.UptimeConfidence)
		},
	},
	{
		Field: "Email Addresses", Section: extract.SectionContact, Scored: WeightContact,
		Importance: ImportanceMedium,
		Missing:    "No email contacts found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			if len(r.ContactInformation.Emails) > 0 {
				return FieldPresent, r.ContactInformation.EmailConfidence
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Legal Entity", Section: extract.SectionParties, Scored: WeightParties,
		Importance: ImportanceLow,
		Missing:    "No legal entity suffix identified for any party",
		Probe: func(r *extract.Record) (FieldState, float64) {
			for _, p := range r.Parties {
				if p.LegalEntity != "" {
					return FieldPresent, p.Confidence
				}
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Tax Information", Section: extract.SectionFinancial, Scored: WeightFinancial,
		Importance: ImportanceLow,
		Missing:    "Tax information not found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			if r.FinancialDetails.TaxInformation != nil {
				return FieldPresent, r.FinancialDetails.TaxInformation.Confidence
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Payment Method", Section: extract.SectionPayment, Scored: WeightPayment,
		Importance: ImportanceLow,
		Missing:    "Payment method not specified",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.PaymentStructure.Method, r.PaymentStructure.MethodConfidence)
		},
	},
	{
		Field: "Penalty Clauses", Section: extract.SectionSLA, Scored: WeightSLA,
		Importance: ImportanceLow,
		Missing:    "No penalty clause found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.SLATerms.Penalties, r.SLATerms.PenaltiesConfidence)
		},
	},
	{
		Field: "Phone Numbers", Section: extract.SectionContact, Scored: WeightContact,
		Importance: ImportanceLow,
		Missing:    "No phone contacts found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			if len(r.ContactInformation.Phones) > 0 {
				return FieldPresent, r.ContactInformation.PhoneConfidence
			}
			return FieldAbsent, 0
		},
	},
	{
		Field: "Account Number", Section: extract.SectionAccount,
		Importance: ImportanceLow,
		Missing:    "Account number not found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.AccountInformation.AccountNumber, r.AccountInformation.AccountConfidence)
		},
	},
	{
		Field: "Billing Address", Section: extract.SectionAccount,
		Importance: ImportanceLow,
		Missing:    "Billing address not found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.AccountInformation.BillingAddress, r.AccountInformation.BillingAddressConfidence)
		},
	},
	{
		Field: "Billing Cycle", Section: extract.SectionRevenue,
		Importance: ImportanceLow,
		Missing:    "Billing cycle not identified",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.RevenueClassification.BillingCycle, r.RevenueClassification.BillingCycleConfidence)
		},
	},
	{
		Field: "Renewal Terms", Section: extract.SectionRevenue,
		Importance: ImportanceLow,
		Missing:    "Renewal terms not found",
		Probe: func(r *extract.Record) (FieldState, float64) {
			return presence(r.RevenueClassification.RenewalTerms, r.RevenueClassification.RenewalConfidence)
		},
	},
}

// Catalog returns the static expected-field catalog.
func Catalog() []CatalogEntry {
	return fieldCatalog
}

// ValidateCatalog checks catalog integrity at startup: every entry must
// reference a known record section, a known weight name when scored, a known
// importance tier, and carry a probe.
func ValidateCatalog() error {
	sections := make(map[string]bool, len(extract.Sections))
	for _, s := range extract.Sections {
		sections[s] = true
	}

	for _, e := range fieldCatalog {
		if !sections[e.Section] {
			return fmt.Errorf("field catalog: %q references unknown section %q", e.Field, e.Section)
		}
		if e.Scored != "" && !isWeightName(e.Scored) {
			return fmt.Errorf("field catalog: %q references unknown scored section %q", e.Field, e.Scored)
		}
		if _, ok := tierImpact[e.Importance]; !ok {
			return fmt.Errorf("field catalog: %q has unknown importance %q", e.Field, e.Importance)
		}
		if e.Probe == nil {
			return fmt.Errorf("field catalog: %q has no probe", e.Field)
		}
	}
	return nil
}

func presence(value string, confidence float64) (FieldState, float64) {
	if value == "" {
		return FieldAbsent, 0
	}
	return FieldPresent, confidence
}

func meanPartyConfidence(parties []extract.Party) float64 {
	if len(parties) == 0 {
		return 0
	}
	var sum float64
	for _, p := range parties {
		sum += p.Confidence
	}
	return sum / float64(len(parties))
}

package extract

// Section names used as keys in confidence maps, scoring tables, and the
// persisted analysis document. Every Record carries all seven sections,
// populated or not.
const (
	SectionParties   = "parties"
	SectionFinancial = "financial_details"
	SectionPayment   = "payment_structure"
	SectionSLA       = "sla_terms"
	SectionContact   = "contact_information"
	SectionAccount   = "account_information"
	SectionRevenue   = "revenue_classification"
)

// Sections lists all section names in canonical order.
var Sections = []string{
	SectionParties,
	SectionFinancial,
	SectionPayment,
	SectionSLA,
	SectionContact,
	SectionAccount,
	SectionRevenue,
}

// FieldMatch is a single extracted value with the rule confidence that
// produced it. Never mutated after creation.
type FieldMatch struct {
	Field      string  `json:"field"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Start      int     `json:"start,omitempty"`
	End        int     `json:"end,omitempty"`
}

// Partial is the per-extractor output used by the aggregator: the section
// name plus the flat list of field matches it produced. Section confidence
// is the mean of field confidences (0 when empty).
type Partial struct {
	Section string
	Fields  []FieldMatch
}

// Confidence returns the mean confidence across the partial's fields.
func (p Partial) Confidence() float64 {
	if len(p.Fields) == 0 {
		return 0
	}
	var sum float64
	for _, f := range p.Fields {
		sum += f.Confidence
	}
	return round2(sum / float64(len(p.Fields)))
}

// Party is one contract party with its inferred role and optional legal
// entity suffix.
type Party struct {
	Name        string  `json:"name" bson:"name"`
	Role        string  `json:"role" bson:"role"`
	LegalEntity string  `json:"legal_entity,omitempty" bson:"legal_entity,omitempty"`
	Confidence  float64 `json:"confidence" bson:"confidence"`
}

// LineItem is one billing breakdown row.
type LineItem struct {
	Description string `json:"description" bson:"description"`
	Quantity    int    `json:"quantity" bson:"quantity"`
	UnitPrice   string `json:"unit_price" bson:"unit_price"`
	Total       string `json:"total" bson:"total"`
}

// TaxInformation is a detected tax rate with its match confidence.
type TaxInformation struct {
	Rate       string  `json:"rate" bson:"rate"`
	Confidence float64 `json:"confidence" bson:"confidence"`
}

// FinancialDetails holds contract value, currency, line items and tax data.
type FinancialDetails struct {
	TotalValue           string          `json:"total_value,omitempty" bson:"total_value,omitempty"`
	TotalValueConfidence float64         `json:"total_value_confidence,omitempty" bson:"total_value_confidence,omitempty"`
	Currency             string          `json:"currency,omitempty" bson:"currency,omitempty"`
	CurrencyConfidence   float64         `json:"currency_confidence,omitempty" bson:"currency_confidence,omitempty"`
	LineItems            []LineItem      `json:"line_items,omitempty" bson:"line_items,omitempty"`
	LineItemsConfidence  float64         `json:"line_items_confidence,omitempty" bson:"line_items_confidence,omitempty"`
	TaxInformation       *TaxInformation `json:"tax_information,omitempty" bson:"tax_information,omitempty"`
	Confidence           float64         `json:"confidence" bson:"confidence"`
}

// PaymentStructure holds net-days terms, schedule and payment method.
type PaymentStructure struct {
	Terms              string  `json:"terms,omitempty" bson:"terms,omitempty"`
	TermsConfidence    float64 `json:"terms_confidence,omitempty" bson:"terms_confidence,omitempty"`
	Schedule           string  `json:"schedule,omitempty" bson:"schedule,omitempty"`
	ScheduleConfidence float64 `json:"schedule_confidence,omitempty" bson:"schedule_confidence,omitempty"`
	Method             string  `json:"method,omitempty" bson:"method,omitempty"`
	MethodConfidence   float64 `json:"method_confidence,omitempty" bson:"method_confidence,omitempty"`
	Confidence         float64 `json:"confidence" bson:"confidence"`
}

// SLATerms holds service-level response time, uptime guarantee and penalties.
type SLATerms struct {
	ResponseTime           string  `json:"response_time,omitempty" bson:"response_time,omitempty"`
	ResponseTimeConfidence float64 `json:"response_time_confidence,omitempty" bson:"response_time_confidence,omitempty"`
	UptimeGuarantee        string  `json:"uptime_guarantee,omitempty" bson:"uptime_guarantee,omitempty"`
	UptimeConfidence       float64 `json:"uptime_confidence,omitempty" bson:"uptime_confidence,omitempty"`
	Penalties              string  `json:"penalties,omitempty" bson:"penalties,omitempty"`
	PenaltiesConfidence    float64 `json:"penalties_confidence,omitempty" bson:"penalties_confidence,omitempty"`
	Confidence             float64 `json:"confidence" bson:"confidence"`
}

// ContactInformation holds deduplicated email and phone matches.
type ContactInformation struct {
	Emails          []string `json:"emails,omitempty" bson:"emails,omitempty"`
	EmailConfidence float64  `json:"email_confidence,omitempty" bson:"email_confidence,omitempty"`
	Phones          []string `json:"phones,omitempty" bson:"phones,omitempty"`
	PhoneConfidence float64  `json:"phone_confidence,omitempty" bson:"phone_confidence,omitempty"`
	Confidence      float64  `json:"confidence" bson:"confidence"`
}

// AccountInformation holds account number and billing address details.
type AccountInformation struct {
	AccountNumber            string  `json:"account_number,omitempty" bson:"account_number,omitempty"`
	AccountConfidence        float64 `json:"account_confidence,omitempty" bson:"account_confidence,omitempty"`
	BillingAddress           string  `json:"billing_address,omitempty" bson:"billing_address,omitempty"`
	BillingAddressConfidence float64 `json:"billing_address_confidence,omitempty" bson:"billing_address_confidence,omitempty"`
	Confidence               float64 `json:"confidence" bson:"confidence"`
}

// Revenue type values.
const (
	RevenueRecurring = "Recurring"
	RevenueOneTime   = "One-time"
)

// RevenueClassification holds the recurring/one-time classification with
// billing cycle and renewal terms.
type RevenueClassification struct {
	Type                   string  `json:"type" bson:"type"`
	TypeConfidence         float64 `json:"type_confidence,omitempty" bson:"type_confidence,omitempty"`
	BillingCycle           string  `json:"billing_cycle,omitempty" bson:"billing_cycle,omitempty"`
	BillingCycleConfidence float64 `json:"billing_cycle_confidence,omitempty" bson:"billing_cycle_confidence,omitempty"`
	RenewalTerms           string  `json:"renewal_terms,omitempty" bson:"renewal_terms,omitempty"`
	RenewalConfidence      float64 `json:"renewal_confidence,omitempty" bson:"renewal_confidence,omitempty"`
	Confidence             float64 `json:"confidence" bson:"confidence"`
}

// Metadata describes how the extraction ran.
type Metadata struct {
	TotalPages int    `json:"total_pages" bson:"total_pages"`
	TextLength int    `json:"text_length" bson:"text_length"`
	Method     string `json:"extraction_method" bson:"extraction_method"`
}

// Record is the aggregate of all section extractions for one document.
// Every section is a value field, so all seven keys exist for any input;
// downstream scoring never faces a missing section.
type Record struct {
	Parties               []Party               `json:"parties" bson:"parties"`
	FinancialDetails      FinancialDetails      `json:"financial_details" bson:"financial_details"`
	PaymentStructure      PaymentStructure      `json:"payment_structure" bson:"payment_structure"`
	SLATerms              SLATerms              `json:"sla_terms" bson:"sla_terms"`
	ContactInformation    ContactInformation    `json:"contact_information" bson:"contact_information"`
	AccountInformation    AccountInformation    `json:"account_information" bson:"account_information"`
	RevenueClassification RevenueClassification `json:"revenue_classification" bson:"revenue_classification"`
	Metadata              Metadata              `json:"extraction_metadata" bson:"extraction_metadata"`
}

package extract

// ExtractionMethod tags how a record was produced.
const ExtractionMethod = "pdftext + regex"

// Partials carries the seven per-section extractor outputs into the
// aggregator.
type Partials struct {
	Parties   Partial
	Financial Partial
	Payment   Partial
	SLA       Partial
	Contact   Partial
	Account   Partial
	Revenue   Partial
}

// Confidences returns the section-confidence map with every section key
// present, zero for empty sections.
func (p Partials) Confidences() map[string]float64 {
	return map[string]float64{
		SectionParties:   p.Parties.Confidence(),
		SectionFinancial: p.Financial.Confidence(),
		SectionPayment:   p.Payment.Confidence(),
		SectionSLA:       p.SLA.Confidence(),
		SectionContact:   p.Contact.Confidence(),
		SectionAccount:   p.Account.Confidence(),
		SectionRevenue:   p.Revenue.Confidence(),
	}
}

// Aggregate merges the seven section extractions into one Record, stamping
// each section with its confidence (mean of field confidences) and attaching
// extraction metadata. Pure merge: sub-values pass through unchanged.
func Aggregate(
	parties []Party,
	fin FinancialDetails,
	pay PaymentStructure,
	sla SLATerms,
	contact ContactInformation,
	acct AccountInformation,
	rev RevenueClassification,
	parts Partials,
	meta Metadata,
) (Record, map[string]float64) {
	conf := parts.Confidences()

	fin.Confidence = conf[SectionFinancial]
	pay.Confidence = conf[SectionPayment]
	sla.Confidence = conf[SectionSLA]
	contact.Confidence = conf[SectionContact]
	acct.Confidence = conf[SectionAccount]
	rev.Confidence = conf[SectionRevenue]

	meta.Method = ExtractionMethod

	return Record{
		Parties:               parties,
		FinancialDetails:      fin,
		PaymentStructure:      pay,
		SLATerms:              sla,
		ContactInformation:    contact,
		AccountInformation:    acct,
		RevenueClassification: rev,
		Metadata:              meta,
	}, conf
}

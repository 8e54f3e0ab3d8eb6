package extract

import (
	"regexp"
	"strings"
)

// maxParties bounds the party list; beyond four entries the generic rules
// mostly repeat the same companies in different phrasings.
const maxParties = 4

// Party rules accumulate across the list (parties are a repeatable field):
// each rule contributes its distinct hits, deduplicated by name, in order of
// appearance.
var partyRules = []Rule{
	rule("labeled-role", `(?:party|contractor|vendor|client|customer)[\s:]+([A-Z][^,\n.]+(?:Inc\.|LLC|Ltd\.|Corp\.)?)`, 90),
	ruleCS("entity-suffix", `\b([A-Z][A-Za-z&-]*(?:\s+[A-Z][A-Za-z&-]*){0,3}\s+(?:Inc\.|LLC|Ltd\.|Corp\.|Company|Corporation))`, 85),
	rule("between-clause", `between\s+([A-Z][^,\n]+?)(?:\s+and|\s*,)`, 70),
}

var (
	legalEntityRe = regexp.MustCompile(`(?i)\b(Inc\.|LLC|Ltd\.|Corp\.|Company|Corporation)`)

	clientWords   = []string{"client", "customer", "buyer", "purchaser"}
	providerWords = []string{"vendor", "supplier", "contractor", "service provider"}
	partnerWords  = []string{"partner", "joint venture"}
)

// ExtractParties finds contract parties, infers each party's role from the
// surrounding context, and attaches the legal-entity suffix when present.
func ExtractParties(text string) ([]Party, Partial) {
	partial := Partial{Section: SectionParties}

	var parties []Party
	for _, r := range partyRules {
		for _, m := range AllMatches(text, []Rule{r}, 0) {
			name := cleanPartyName(m.Value)
			if len(name) <= 3 || hasParty(parties, name) {
				continue
			}
			p := Party{
				Name:        name,
				Role:        partyRole(text, name),
				LegalEntity: legalEntity(text, name),
				Confidence:  m.Confidence,
			}
			parties = append(parties, p)
			partial.Fields = append(partial.Fields, FieldMatch{
				Field:      "party",
				Value:      name,
				Confidence: m.Confidence,
				Start:      m.Start,
				End:        m.End,
			})
			if len(parties) >= maxParties {
				return parties, partial
			}
		}
	}

	return parties, partial
}

func cleanPartyName(name string) string {
	name = strings.TrimSpace(name)
	return strings.Trim(name, ",;:")
}

func hasParty(parties []Party, name string) bool {
	for _, p := range parties {
		if strings.EqualFold(p.Name, name) {
			return true
		}
	}
	return false
}

// partyRole classifies a party from keywords within a 100-character window
// around its first occurrence.
func partyRole(text, name string) string {
	ctxRe, err := regexp.Compile(`(?is).{0,100}` + regexp.QuoteMeta(name) + `.{0,100}`)
	if err != nil {
		return "Party"
	}
	window := strings.ToLower(ctxRe.FindString(text))
	if window == "" {
		return "Party"
	}

	switch {
	case containsAny(window, clientWords):
		return "Client"
	case containsAny(window, providerWords):
		return "Service Provider"
	case containsAny(window, partnerWords):
		return "Partner"
	}
	return "Party"
}

// legalEntity returns the entity suffix attached to the party name, looking
// first inside the captured name itself and then just after it in the text.
func legalEntity(text, name string) string {
	if suffix := legalEntityRe.FindString(name); suffix != "" {
		return suffix
	}

	after, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(name) + `[^,\n.]*?(Inc\.|LLC|Ltd\.|Corp\.|Company|Corporation)`)
	if err != nil {
		return ""
	}
	if m := after.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return ""
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

package extract

import (
	"fmt"
	"regexp"
)

var emailRules = []Rule{
	rule("email", `([a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,})`, 90),
}

// Tolerant US phone pattern: optional country code, optional parentheses,
// dot/dash/space separators.
var phoneRe = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?([0-9]{3})\)?[-.\s]?([0-9]{3})[-.\s]?([0-9]{4})`)

const phoneConfidence = 75

// ExtractContacts finds all email addresses and phone numbers, deduplicated
// while preserving order of first appearance.
func ExtractContacts(text string) (ContactInformation, Partial) {
	var contact ContactInformation
	partial := Partial{Section: SectionContact}

	for _, m := range AllMatches(text, emailRules, 0) {
		contact.Emails = append(contact.Emails, m.Value)
	}
	if len(contact.Emails) > 0 {
		contact.EmailConfidence = matchConfidence(emailRules[0].Base, len(contact.Emails))
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "emails", Value: contact.Emails[0], Confidence: contact.EmailConfidence,
		})
	}

	contact.Phones = extractPhones(text)
	if len(contact.Phones) > 0 {
		contact.PhoneConfidence = matchConfidence(phoneConfidence, len(contact.Phones))
		partial.Fields = append(partial.Fields, FieldMatch{
			Field: "phones", Value: contact.Phones[0], Confidence: contact.PhoneConfidence,
		})
	}

	return contact, partial
}

func extractPhones(text string) []string {
	seen := make(map[string]bool)
	var phones []string
	for _, g := range phoneRe.FindAllStringSubmatch(text, maxOccurrences) {
		formatted := fmt.Sprintf("(%s) %s-%s", g[1], g[2], g[3])
		if seen[formatted] {
			continue
		}
		seen[formatted] = true
		phones = append(phones, formatted)
	}
	return phones
}

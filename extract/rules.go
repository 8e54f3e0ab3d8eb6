package extract

import "regexp"

// Rule is one pattern in an ordered rule list. Rules earlier in a list are
// more specific and carry a higher base confidence than generic fallbacks.
type Rule struct {
	Name string
	Base float64
	re   *regexp.Regexp
}

// rule compiles a case-insensitive, multiline pattern. Rule tables are
// package-level, so a bad pattern fails at process start, not per document.
func rule(name, pattern string, base float64) Rule {
	return Rule{
		Name: name,
		Base: base,
		re:   regexp.MustCompile(`(?im)` + pattern),
	}
}

// ruleCS compiles a case-sensitive, multiline pattern, for rules that rely
// on capitalization (company names, entity suffixes).
func ruleCS(name, pattern string, base float64) Rule {
	return Rule{
		Name: name,
		Base: base,
		re:   regexp.MustCompile(`(?m)` + pattern),
	}
}

// Match is a single rule hit.
type Match struct {
	Value      string
	Groups     []string
	Confidence float64
	Start      int
	End        int
}

// maxOccurrences bounds how many hits one rule collects per document.
const maxOccurrences = 50

// FirstMatch evaluates rules in order and returns the first rule's first hit.
// Rule order is the priority/tie-break: once a rule yields at least one
// match, later rules are not consulted for the field.
func FirstMatch(text string, rules []Rule) (Match, bool) {
	for _, r := range rules {
		hits := r.re.FindAllStringSubmatchIndex(text, maxOccurrences)
		if len(hits) == 0 {
			continue
		}
		m := newMatch(text, hits[0])
		m.Confidence = matchConfidence(r.Base, len(hits))
		return m, true
	}
	return Match{}, false
}

// AllMatches evaluates rules in order and returns every hit of the first
// rule that matches, in order of appearance, deduplicated by value.
func AllMatches(text string, rules []Rule, limit int) []Match {
	for _, r := range rules {
		hits := r.re.FindAllStringSubmatchIndex(text, maxOccurrences)
		if len(hits) == 0 {
			continue
		}
		seen := make(map[string]bool, len(hits))
		var out []Match
		for _, h := range hits {
			m := newMatch(text, h)
			if seen[m.Value] {
				continue
			}
			seen[m.Value] = true
			m.Confidence = r.Base
			out = append(out, m)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
		return out
	}
	return nil
}

func newMatch(text string, idx []int) Match {
	m := Match{Start: idx[0], End: idx[1]}
	m.Value = text[idx[0]:idx[1]]
	for g := 2; g+1 < len(idx); g += 2 {
		s, e := idx[g], idx[g+1]
		if s < 0 {
			m.Groups = append(m.Groups, "")
			continue
		}
		m.Groups = append(m.Groups, text[s:e])
	}
	if len(m.Groups) > 0 && m.Groups[0] != "" {
		m.Value = m.Groups[0]
	}
	return m
}

// matchConfidence derives a match confidence from the rule's base: repeated
// occurrences add a small boost, capped 10 points above base and clamped to
// [0,100].
func matchConfidence(base float64, occurrences int) float64 {
	c := base + 5*float64(occurrences-1)
	if c > base+10 {
		c = base + 10
	}
	return clamp(c, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}

package extract

import (
	"strings"
	"unicode/utf8"
)

// maxScanBytes caps how much normalized text the pattern rules scan. Text
// beyond the cap is truncated rather than rejected, so oversized documents
// still produce a (possibly sparser) result instead of an error.
const maxScanBytes = 2 << 20 // 2 MiB

// NormalizePage cleans a single page of raw PDF text: normalizes line
// endings, strips form-feed page-break markers, collapses runs of spaces and
// tabs, and trims trailing whitespace from each line. Newlines are preserved
// because several extraction rules are line-anchored.
func NormalizePage(page string) string {
	page = strings.ReplaceAll(page, "\r\n", "\n")
	page = strings.ReplaceAll(page, "\r", "\n")
	page = strings.ReplaceAll(page, "\f", "\n")

	lines := strings.Split(page, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(collapseSpaces(line))
	}
	return strings.Join(lines, "\n")
}

// Normalize cleans every page and returns the per-page texts plus the full
// concatenated text. Empty input yields empty output; there is no error path.
func Normalize(pages []string) ([]string, string) {
	if len(pages) == 0 {
		return nil, ""
	}

	normalized := make([]string, len(pages))
	for i, page := range pages {
		normalized[i] = NormalizePage(page)
	}

	full := strings.Join(normalized, "\n")
	full = strings.TrimSpace(full)
	if len(full) > maxScanBytes {
		// Back off to a rune boundary so the cut never leaves an invalid
		// UTF-8 tail.
		cut := maxScanBytes
		for cut > 0 && !utf8.RuneStart(full[cut]) {
			cut--
		}
		full = full[:cut]
	}
	return normalized, full
}

func collapseSpaces(s string) string {
	if !strings.Contains(s, "  ") && !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	space := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			space = true
			continue
		}
		if space && b.Len() > 0 {
			b.WriteByte(' ')
		}
		space = false
		b.WriteRune(r)
	}
	return b.String()
}

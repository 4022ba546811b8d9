package lookup

import (
	"strings"
	"unicode"
)

// NormalizeQuestName lowercases name and drops everything that is not a
// letter or digit, so "Cook's Assistant" becomes "cooksassistant".
func NormalizeQuestName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// MatchQuestFile returns the first filename whose normalised form contains,
// or is contained in, the normalised query. filenames are scanned in the
// order given.
func MatchQuestFile(filenames []string, query string) (string, bool) {
	q := NormalizeQuestName(query)
	if q == "" {
		return "", false
	}

	for _, f := range filenames {
		n := NormalizeQuestName(f)
		if n == "" {
			continue
		}
		if strings.Contains(n, q) || strings.Contains(q, n) {
			return f, true
		}
	}
	return "", false
}

package lexicon

import (
	"regexp"
	"strings"
)

// standaloneI matches the pronoun in any case.
var standaloneI = regexp.MustCompile(`(?i)\bi\b`)

// ApplyMisspellings replaces every whole-word occurrence of every misspelling
// key, case-insensitively, with its correction.
func (l *Lexicon) ApplyMisspellings(s string) string {
	for i, re := range l.spellRes {
		s = re.ReplaceAllLiteralString(s, l.misspellings[i].Right)
	}
	return s
}

// CapitalizeProperNouns rewrites every known proper noun with an initial
// capital letter.
func (l *Lexicon) CapitalizeProperNouns(s string) string {
	for i, re := range l.properRes {
		s = re.ReplaceAllLiteralString(s, Capitalize(l.properNouns[i]))
	}
	return s
}

// LowercaseProperNouns returns the proper nouns found in s whose first letter
// is not upper-case, in the order the list declares them.
func (l *Lexicon) LowercaseProperNouns(s string) []string {
	var found []string
	for i, re := range l.properRes {
		for _, m := range re.FindAllString(s, -1) {
			if !startsUpper(m) {
				found = append(found, l.properNouns[i])
				break
			}
		}
	}
	return found
}

// MiscasedI returns every standalone occurrence of the pronoun "i" that is
// not written exactly "I".
func MiscasedI(s string) []string {
	var found []string
	for _, m := range standaloneI.FindAllString(s, -1) {
		if m != "I" {
			found = append(found, m)
		}
	}
	return found
}

// CapitalizeI forces every standalone "i" to "I".
func CapitalizeI(s string) string {
	return standaloneI.ReplaceAllLiteralString(s, "I")
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func startsUpper(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}

// Package patterns defines the six copula sentence shapes and the
// missing-article rule shared by detection and correction.
package patterns

import (
	"regexp"
	"strings"
)

// Mood is one of the six canonical copula sentence shapes.
type Mood string

const (
	PresentAffirmative   Mood = "present_affirmative"
	PresentNegative      Mood = "present_negative"
	PresentInterrogative Mood = "present_interrogative"
	PastAffirmative      Mood = "past_affirmative"
	PastNegative         Mood = "past_negative"
	PastInterrogative    Mood = "past_interrogative"
)

// Label returns the mood in plain words, e.g. "present affirmative".
func (m Mood) Label() string {
	return strings.ReplaceAll(string(m), "_", " ")
}

// Subject, verb and complement fragments.
const (
	personalPronouns      = `(?:I|You|He|She|It|We|They)`
	properNouns           = `(?:[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`
	commonNouns           = `(?:(?:The|A|An)\s+[a-z]+(?:s)?)`
	demonstrativePronouns = `(?:(?:This|That|These|Those)\s+[a-z]+(?:s)?)`

	presentVerbs = `(?:am|are|is)`
	pastVerbs    = `(?:was|were)`

	complements = `(?:[a-z]+(?:\s+[a-z]+)*)`
)

const subject = `(?:` + personalPronouns + `|` + properNouns + `|` + commonNouns + `|` + demonstrativePronouns + `)`

func affirmative(verb string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + subject + `\s+` + verb + `\s+` + complements + `\.?$`)
}

func negative(verb string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + subject + `\s+` + verb + `\s+not\s+` + complements + `\.?$`)
}

func interrogative(verb string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + verb + `\s+` + subject + `\s+` + complements + `\??$`)
}

// Matcher tests a trimmed sentence against one mood's shape.
type Matcher struct {
	Mood Mood
	re   *regexp.Regexp
	// unless rejects sentences that also fit a more specific shape; the
	// affirmative complement would otherwise swallow a leading "not".
	unless *regexp.Regexp
}

// Match reports whether the whole sentence has the matcher's shape.
func (m Matcher) Match(sentence string) bool {
	if !m.re.MatchString(sentence) {
		return false
	}
	return m.unless == nil || !m.unless.MatchString(sentence)
}

var (
	presentNegative = negative(presentVerbs)
	pastNegative    = negative(pastVerbs)

	library = []Matcher{
		{Mood: PresentAffirmative, re: affirmative(presentVerbs), unless: presentNegative},
		{Mood: PresentNegative, re: presentNegative},
		{Mood: PresentInterrogative, re: interrogative(presentVerbs)},
		{Mood: PastAffirmative, re: affirmative(pastVerbs), unless: pastNegative},
		{Mood: PastNegative, re: pastNegative},
		{Mood: PastInterrogative, re: interrogative(pastVerbs)},
	}
)

// Matchers returns the library in classification order.
func Matchers() []Matcher {
	return append([]Matcher(nil), library...)
}

// Classify returns the first mood whose shape matches the trimmed sentence.
func Classify(sentence string) (Mood, bool) {
	s := strings.TrimSpace(sentence)
	for _, m := range library {
		if m.Match(s) {
			return m.Mood, true
		}
	}
	return "", false
}

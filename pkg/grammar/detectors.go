package grammar

import (
	"regexp"
	"strings"
)

// Detector is one subject/verb agreement heuristic. It fires when any of its
// patterns occurs in the lower-cased sentence.
type Detector struct {
	Message  string
	patterns []*regexp.Regexp
}

// Fires reports whether the detector matches the sentence.
func (d Detector) Fires(sentence string) bool {
	lower := strings.ToLower(sentence)
	for _, re := range d.patterns {
		if re.MatchString(lower) {
			return true
		}
	}
	return false
}

// Agreement messages.
const (
	MsgUseAm   = "Use 'am' with 'I' in present tense, or 'was' in past tense"
	MsgUseIs   = "Use 'is' with he/she/it in present tense"
	MsgUseAre  = "Use 'are' with you/we/they in present tense"
	MsgUseWas  = "Use 'was' with I/he/she/it in past tense"
	MsgUseWere = "Use 'were' with you/we/they in past tense"

	MsgArticleSubject = "Articles 'a/an' cannot be subjects. Use proper nouns or pronouns"
	MsgDoubleCopula   = "Don't use two forms of 'to be' together"
)

// Each detector checks the declarative order anywhere in the sentence and
// the question order at its start.
var agreementDetectors = []Detector{
	{Message: MsgUseAm, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(^|\s)i\s+(is|are|were)\b`),
		regexp.MustCompile(`^(is|are|were)\s+i\b`),
	}},
	{Message: MsgUseIs, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(^|\s)(he|she|it)\s+(am|are)\b`),
		regexp.MustCompile(`^(am|are)\s+(he|she|it)\b`),
	}},
	{Message: MsgUseAre, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(^|\s)(you|we|they)\s+(am|is)\b`),
		regexp.MustCompile(`^(am|is)\s+(you|we|they)\b`),
	}},
	{Message: MsgUseWas, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(^|\s)(i|he|she|it)\s+were\b`),
		regexp.MustCompile(`^were\s+(i|he|she|it)\b`),
	}},
	{Message: MsgUseWere, patterns: []*regexp.Regexp{
		regexp.MustCompile(`(^|\s)(you|we|they)\s+was\b`),
		regexp.MustCompile(`^was\s+(you|we|they)\b`),
	}},
}

var sanityDetectors = []Detector{
	{Message: MsgArticleSubject, patterns: []*regexp.Regexp{
		regexp.MustCompile(`\b(a|an)\s+(am|are|is|was|were)\b`),
	}},
	{Message: MsgDoubleCopula, patterns: []*regexp.Regexp{
		regexp.MustCompile(`\b(am|are|is|was|were)\s+(am|are|is|was|were)\b`),
	}},
}

// AgreementDetectors returns the five agreement heuristics in run order.
func AgreementDetectors() []Detector {
	return append([]Detector(nil), agreementDetectors...)
}

// DetectAgreementErrors runs every agreement detector and returns the
// messages of those that fire, in definition order.
func DetectAgreementErrors(sentence string) []string {
	return run(agreementDetectors, sentence)
}

// DetectSanityErrors flags an article used as subject and adjacent copulas.
func DetectSanityErrors(sentence string) []string {
	return run(sanityDetectors, sentence)
}

func run(detectors []Detector, sentence string) []string {
	var errs []string
	for _, d := range detectors {
		if d.Fires(sentence) {
			errs = append(errs, d.Message)
		}
	}
	return errs
}

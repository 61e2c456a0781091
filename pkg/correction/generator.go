// Package correction rebuilds a suggested rewrite of a sentence from the
// original input. It does not share state with the formatting pipeline, so
// its output can differ from the pipeline's working copy.
package correction

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/normalize"
	"github.com/Code-Monger/ToBeBot/pkg/patterns"
)

// Suggestion pairs the learner-facing hint with the bare rewrite.
type Suggestion struct {
	Text      string
	Corrected string
}

// Generator produces rewrites using a lexicon.
type Generator struct {
	lex *lexicon.Lexicon
}

// NewGenerator returns a generator backed by lex.
func NewGenerator(lex *lexicon.Lexicon) *Generator {
	return &Generator{lex: lex}
}

var (
	declarativePair = regexp.MustCompile(`(?i)\b(I|you|he|she|it|we|they)\s+(am|are|is|was|were)\b`)
	questionPair    = regexp.MustCompile(`(?i)^(am|are|is|was|were)\s+(I|you|he|she|it|we|they)\b`)
)

// Generate applies, in order: misspelling substitution, proper-noun and "I"
// capitalization, article insertion, pronoun agreement, first-letter
// capitalization, terminal punctuation and whitespace collapse.
func (g *Generator) Generate(sentence string) Suggestion {
	corrected := strings.TrimSpace(sentence)

	corrected = g.lex.ApplyMisspellings(corrected)
	corrected = g.lex.CapitalizeProperNouns(corrected)
	corrected = lexicon.CapitalizeI(corrected)
	corrected = patterns.InsertArticle(corrected, g.lex)
	corrected = RepairAgreement(corrected)
	corrected = normalize.UpperFirst(corrected)
	corrected = normalize.EnsureTerminalPunctuation(corrected)
	corrected = normalize.CollapseWhitespace(corrected)

	return Suggestion{
		Text:      fmt.Sprintf(`Consider writing: "%s"`, corrected),
		Corrected: corrected,
	}
}

// RepairAgreement replaces the copula of every pronoun + verb pair, and of a
// leading verb + pronoun question, with the form the pronoun takes in the
// same tense.
func RepairAgreement(s string) string {
	// Last match first so earlier offsets survive a change in verb length.
	pairs := declarativePair.FindAllStringSubmatchIndex(s, -1)
	for i := len(pairs) - 1; i >= 0; i-- {
		loc := pairs[i]
		s = replaceVerb(s, loc[4], loc[5], s[loc[2]:loc[3]])
	}
	if loc := questionPair.FindStringSubmatchIndex(s); loc != nil {
		s = replaceVerb(s, loc[2], loc[3], s[loc[4]:loc[5]])
	}
	return s
}

func replaceVerb(s string, start, end int, pronoun string) string {
	verb := s[start:end]
	want := AgreeingVerb(pronoun, verb)
	if strings.EqualFold(want, verb) {
		return s
	}
	if verb[0] >= 'A' && verb[0] <= 'Z' {
		want = lexicon.Capitalize(want)
	}
	return s[:start] + want + s[end:]
}

// AgreeingVerb returns the copula form the pronoun takes in the tense of verb.
func AgreeingVerb(pronoun, verb string) string {
	p := strings.ToLower(pronoun)
	past := false
	for _, f := range lexicon.PastForms {
		if strings.EqualFold(f, verb) {
			past = true
		}
	}

	switch {
	case past && (p == "i" || p == "he" || p == "she" || p == "it"):
		return "was"
	case past:
		return "were"
	case p == "i":
		return "am"
	case p == "he" || p == "she" || p == "it":
		return "is"
	default:
		return "are"
	}
}

// Package grammar classifies a well-formed sentence into one of the copula
// moods, or explains why it does not fit any of them.
package grammar

import (
	"strings"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/patterns"
)

// Classification is the classifier's verdict on one sentence.
type Classification struct {
	// Mood is set when the sentence matched a copula shape with agreeing
	// subject and verb.
	Mood    patterns.Mood
	Matched bool
	// Errors lists agreement, article and sanity problems, in that order.
	Errors []string
}

// Classifier matches sentences against the pattern library.
type Classifier struct {
	lex *lexicon.Lexicon
}

// NewClassifier returns a classifier backed by lex.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify tests the trimmed sentence against the moods in their fixed
// order. A shape match only counts when no agreement detector fires.
func (c *Classifier) Classify(sentence string) Classification {
	s := strings.TrimSpace(sentence)
	agreement := DetectAgreementErrors(s)

	if mood, ok := patterns.Classify(s); ok && len(agreement) == 0 {
		return Classification{Mood: mood, Matched: true}
	}

	errs := agreement
	if missing, ok := patterns.FindMissingArticle(s, c.lex); ok {
		errs = append(errs, missing.Message())
	}
	errs = append(errs, DetectSanityErrors(s)...)

	return Classification{Errors: errs}
}

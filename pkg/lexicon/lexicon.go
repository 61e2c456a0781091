// Package lexicon holds the static word data used by the sentence validator:
// the vocabulary, the countable-noun set, the misspelling table and the closed
// lists of pronouns and proper nouns.
//
// A Lexicon is immutable once built and safe for concurrent use.
package lexicon

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/sajari/fuzzy"
)

// Correction maps a misspelled word to its replacement. Wrong is lower-case;
// Right keeps the casing and apostrophes it should be written with.
type Correction struct {
	Wrong string
	Right string
}

// Personal pronouns that can be the subject of a copula.
var Pronouns = []string{"i", "you", "he", "she", "it", "we", "they"}

// Articles recognised in front of a noun.
var Articles = []string{"a", "an", "the"}

// Copula forms of "to be".
var (
	PresentForms = []string{"am", "are", "is"}
	PastForms    = []string{"was", "were"}
)

// DefaultProperNouns are names that must be capitalized and never take an
// article.
var DefaultProperNouns = []string{
	"michael",
	"ann",
	"cartagena",
	"charles",
	"maria",
	"john",
	"mary",
	"colombia",
	"america",
}

// DefaultMisspellings is applied in order. No entry maps a word to itself.
var DefaultMisspellings = []Correction{
	{Wrong: "i", Right: "I"},
	{Wrong: "im", Right: "I'm"},
	{Wrong: "youre", Right: "you're"},
	{Wrong: "hes", Right: "he's"},
	{Wrong: "shes", Right: "she's"},
	{Wrong: "its", Right: "it's"},
	{Wrong: "theyre", Right: "they're"},
	{Wrong: "isnt", Right: "isn't"},
	{Wrong: "arent", Right: "aren't"},
	{Wrong: "wasnt", Right: "wasn't"},
	{Wrong: "werent", Right: "weren't"},
	{Wrong: "studnet", Right: "student"},
	{Wrong: "techer", Right: "teacher"},
	{Wrong: "freind", Right: "friend"},
	{Wrong: "happpy", Right: "happy"},
	{Wrong: "hapy", Right: "happy"},
	{Wrong: "beautifull", Right: "beautiful"},
	{Wrong: "tierd", Right: "tired"},
	{Wrong: "realy", Right: "really"},
	{Wrong: "teh", Right: "the"},
	{Wrong: "thier", Right: "their"},
	{Wrong: "wierd", Right: "weird"},
}

// Lexicon is the immutable set of lexical resources.
type Lexicon struct {
	vocabulary   map[string]bool
	nouns        map[string]bool
	properNouns  []string
	properIndex  map[string]bool
	misspellings []Correction
	spellIndex   map[string]string
	spellRes     []*regexp.Regexp
	properRes    []*regexp.Regexp
	model        *fuzzy.Model
}

type options struct {
	words        []string
	nouns        []string
	properNouns  []string
	misspellings []Correction
}

// Option extends the embedded resources when building a Lexicon.
type Option func(*options)

// WithWords adds words to the vocabulary.
func WithWords(words ...string) Option {
	return func(o *options) { o.words = append(o.words, words...) }
}

// WithNouns adds countable nouns. They also join the vocabulary.
func WithNouns(nouns ...string) Option {
	return func(o *options) { o.nouns = append(o.nouns, nouns...) }
}

// WithProperNouns adds names to the proper-noun list.
func WithProperNouns(names ...string) Option {
	return func(o *options) { o.properNouns = append(o.properNouns, names...) }
}

// WithMisspellings appends entries to the misspelling table.
func WithMisspellings(entries ...Correction) Option {
	return func(o *options) { o.misspellings = append(o.misspellings, entries...) }
}

// New builds a Lexicon from the embedded word lists plus any extensions.
func New(opts ...Option) (*Lexicon, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	words, err := loadEmbeddedList(wordsFile)
	if err != nil {
		return nil, err
	}
	nouns, err := loadEmbeddedList(nounsFile)
	if err != nil {
		return nil, err
	}
	irregular, err := loadEmbeddedList(irregularFile)
	if err != nil {
		return nil, err
	}

	lex := &Lexicon{
		vocabulary:  make(map[string]bool),
		nouns:       make(map[string]bool),
		properIndex: make(map[string]bool),
		spellIndex:  make(map[string]string),
	}

	for _, w := range append(append(words, irregular...), o.words...) {
		lex.addWord(w)
	}
	for _, n := range append(nouns, o.nouns...) {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		lex.nouns[n] = true
		lex.addWord(n)
	}
	for _, group := range [][]string{Pronouns, Articles, PresentForms, PastForms} {
		for _, w := range group {
			lex.addWord(w)
		}
	}

	for _, name := range append(append([]string{}, DefaultProperNouns...), o.properNouns...) {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || lex.properIndex[name] {
			continue
		}
		lex.properIndex[name] = true
		lex.properNouns = append(lex.properNouns, name)
		lex.addWord(name)
		lex.properRes = append(lex.properRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(name)+`\b`))
	}

	for _, c := range append(append([]Correction{}, DefaultMisspellings...), o.misspellings...) {
		wrong := strings.ToLower(strings.TrimSpace(c.Wrong))
		if wrong == "" || c.Right == "" || wrong == c.Right {
			return nil, fmt.Errorf("invalid misspelling entry %q -> %q", c.Wrong, c.Right)
		}
		if _, dup := lex.spellIndex[wrong]; dup {
			continue
		}
		lex.spellIndex[wrong] = c.Right
		lex.misspellings = append(lex.misspellings, Correction{Wrong: wrong, Right: c.Right})
		lex.spellRes = append(lex.spellRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(wrong)+`\b`))
		// Corrected forms are words in their own right.
		lex.addWord(c.Right)
	}

	lex.model = newSuggestionModel(lex.vocabulary)
	return lex, nil
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the process-wide Lexicon built from the embedded data only.
// The embedded lists are compiled into the binary, so a failure here is a
// build defect.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		lex, err := New()
		if err != nil {
			panic(fmt.Sprintf("lexicon: embedded data is unusable: %v", err))
		}
		defaultLex = lex
	})
	return defaultLex
}

func (l *Lexicon) addWord(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w != "" {
		l.vocabulary[w] = true
	}
}

// Size returns the number of vocabulary entries.
func (l *Lexicon) Size() int {
	return len(l.vocabulary)
}

// IsWord reports whether word is a recognised English word. Matching is
// case-insensitive and accepts regular inflections of known stems.
func (l *Lexicon) IsWord(word string) bool {
	w := strings.ToLower(word)
	if w == "" {
		return false
	}
	if l.vocabulary[w] {
		return true
	}
	for _, stem := range inflectionStems(w) {
		if l.vocabulary[stem] {
			return true
		}
	}
	return false
}

// IsCountableNoun reports whether word is a singular countable noun.
func (l *Lexicon) IsCountableNoun(word string) bool {
	return l.nouns[strings.ToLower(word)]
}

// IsProperNoun reports whether word is on the proper-noun list.
func (l *Lexicon) IsProperNoun(word string) bool {
	return l.properIndex[strings.ToLower(word)]
}

// IsPronoun reports whether word is a personal pronoun.
func IsPronoun(word string) bool {
	w := strings.ToLower(word)
	for _, p := range Pronouns {
		if p == w {
			return true
		}
	}
	return false
}

// ProperNouns returns the lower-cased proper-noun list in registration order.
func (l *Lexicon) ProperNouns() []string {
	return append([]string(nil), l.properNouns...)
}

// Misspellings returns the misspelling table in application order.
func (l *Lexicon) Misspellings() []Correction {
	return append([]Correction(nil), l.misspellings...)
}

// Misspelling looks up the replacement for a lower-cased word.
func (l *Lexicon) Misspelling(word string) (string, bool) {
	right, ok := l.spellIndex[strings.ToLower(word)]
	return right, ok
}

// inflectionStems returns candidate base forms for plural, past,
// progressive, comparative and adverb endings.
func inflectionStems(w string) []string {
	var stems []string
	switch {
	case strings.HasSuffix(w, "ies") && len(w) > 4:
		stems = append(stems, w[:len(w)-3]+"y")
	case strings.HasSuffix(w, "es") && len(w) > 3:
		stems = append(stems, w[:len(w)-2], w[:len(w)-1])
	case strings.HasSuffix(w, "s") && len(w) > 2:
		stems = append(stems, w[:len(w)-1])
	}
	for _, suffix := range derivedSuffixes {
		base := strings.TrimSuffix(w, suffix)
		if base == w || len(base) < 3 {
			continue
		}
		stems = append(stems, base, base+"e")
		if n := len(base); n > 2 && base[n-1] == base[n-2] {
			// stopped -> stop, bigger -> big
			stems = append(stems, base[:n-1])
		}
		if strings.HasSuffix(base, "i") {
			// carried -> carry, happily -> happy
			stems = append(stems, base[:len(base)-1]+"y")
		}
	}
	return stems
}

var derivedSuffixes = []string{"ed", "ing", "er", "est", "ly"}

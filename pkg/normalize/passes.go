package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/patterns"
)

// Pass names, in run order.
const (
	PassCapitalization = "capitalization"
	PassWhitespace     = "whitespace"
	PassSpelling       = "spelling"
	PassPronouns       = "pronouns"
	PassPunctuation    = "punctuation"
	PassArticle        = "article"
)

// Error messages that do not depend on the offending word.
const (
	MsgCapitalization = "Sentence must start with a capital letter"
	MsgWhitespace     = "Remove extra spaces between words"
	MsgPronounI       = `The pronoun "I" must always be capitalized`
	MsgPunctuation    = "Sentence should end with proper punctuation (. ! ?)"
)

const suggestionCount = 3

var (
	whitespaceRun = regexp.MustCompile(`\s{2,}`)
	whitespace    = regexp.MustCompile(`\s+`)
	terminalMark  = regexp.MustCompile(`[.!?]$`)
	midPronoun    = regexp.MustCompile(`(?i)\s(you|he|she|it|we|they)\b`)
)

// StandardPasses returns the six passes in their fixed order.
func StandardPasses(lex *lexicon.Lexicon) []Pass {
	return []Pass{
		{Name: PassCapitalization, Apply: capitalizationPass},
		{Name: PassWhitespace, Apply: whitespacePass},
		{Name: PassSpelling, Apply: spellingPass(lex)},
		{Name: PassPronouns, Apply: pronounPass(lex)},
		{Name: PassPunctuation, Apply: punctuationPass},
		{Name: PassArticle, Apply: articlePass(lex)},
	}
}

// capitalizationPass only judges letters; a sentence opening with a digit or
// a quote mark has no case to fix.
func capitalizationPass(s string) (string, []string) {
	if first, _ := utf8.DecodeRuneInString(s); s != "" && (unicode.IsUpper(first) || !unicode.IsLetter(first)) {
		return s, nil
	}
	return UpperFirst(s), []string{MsgCapitalization}
}

func whitespacePass(s string) (string, []string) {
	if !whitespaceRun.MatchString(s) {
		return s, nil
	}
	return CollapseWhitespace(s), []string{MsgWhitespace}
}

func spellingPass(lex *lexicon.Lexicon) func(string) (string, []string) {
	return func(s string) (string, []string) {
		var errs []string
		misspelled := false

		for _, token := range strings.Fields(s) {
			core := TrimToken(token)
			if core == "" {
				continue
			}
			word := strings.ToLower(core)

			// Contractions are already written out; "I'm" must not be read as "im".
			if !strings.ContainsRune(word, '\'') {
				if right, ok := lex.Misspelling(word); ok {
					if !strings.EqualFold(right, word) {
						errs = append(errs, fmt.Sprintf(`"%s" should be spelled as "%s"`, word, right))
						misspelled = true
					}
					continue
				}
			}

			if isNumeric(core) || looksProper(core) || recognized(lex, word) {
				continue
			}
			errs = append(errs, unknownWordMessage(lex, word))
		}

		if misspelled {
			s = lex.ApplyMisspellings(s)
		}
		return s, errs
	}
}

func pronounPass(lex *lexicon.Lexicon) func(string) (string, []string) {
	return func(s string) (string, []string) {
		var errs []string

		miscased := lexicon.MiscasedI(s)
		for range miscased {
			errs = append(errs, MsgPronounI)
		}

		proper := lex.LowercaseProperNouns(s)
		for _, name := range proper {
			errs = append(errs, fmt.Sprintf(`"%s" should be capitalized as it's a proper noun`, name))
		}

		var capitalized [][]int
		for _, loc := range midPronoun.FindAllStringSubmatchIndex(s, -1) {
			word := s[loc[2]:loc[3]]
			if first, _ := utf8.DecodeRuneInString(word); unicode.IsUpper(first) {
				errs = append(errs, fmt.Sprintf(`"%s" should not be capitalized unless it's the first word of the sentence`, word))
				capitalized = append(capitalized, loc[2:4])
			}
		}

		if len(errs) == 0 {
			return s, nil
		}

		if len(capitalized) > 0 {
			b := []byte(s)
			for _, span := range capitalized {
				copy(b[span[0]:span[1]], strings.ToLower(s[span[0]:span[1]]))
			}
			s = string(b)
		}
		if len(miscased) > 0 {
			s = lexicon.CapitalizeI(s)
		}
		if len(proper) > 0 {
			s = lex.CapitalizeProperNouns(s)
		}
		return s, errs
	}
}

func punctuationPass(s string) (string, []string) {
	trimmed := strings.TrimSpace(s)
	if terminalMark.MatchString(trimmed) {
		return s, nil
	}
	return trimmed + ".", []string{MsgPunctuation}
}

// articlePass only reports; the article is inserted when the corrected
// sentence is produced, never in the working copy.
func articlePass(lex *lexicon.Lexicon) func(string) (string, []string) {
	return func(s string) (string, []string) {
		if missing, ok := patterns.FindMissingArticle(s, lex); ok {
			return s, []string{missing.Message()}
		}
		return s, nil
	}
}

// UpperFirst upper-cases the first character of s.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// CollapseWhitespace turns every whitespace run into one space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// EnsureTerminalPunctuation appends a period unless s ends in . ! or ?.
func EnsureTerminalPunctuation(s string) string {
	trimmed := strings.TrimSpace(s)
	if terminalMark.MatchString(trimmed) {
		return s
	}
	return trimmed + "."
}

// TrimToken strips leading and trailing characters that are neither letters,
// digits nor underscores.
func TrimToken(token string) string {
	return strings.TrimFunc(token, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
	})
}

func recognized(lex *lexicon.Lexicon, word string) bool {
	if lex.IsWord(word) {
		return true
	}
	if base, ok := strings.CutSuffix(word, "'s"); ok && lex.IsWord(base) {
		return true
	}
	if strings.Contains(word, "-") {
		for _, part := range strings.Split(word, "-") {
			if part == "" || !lex.IsWord(part) {
				return false
			}
		}
		return true
	}
	return false
}

func unknownWordMessage(lex *lexicon.Lexicon, word string) string {
	msg := fmt.Sprintf(`"%s" is not a recognized English word`, word)
	suggestions := lex.Suggestions(word, suggestionCount)
	if len(suggestions) == 0 {
		return msg
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = `"` + s + `"`
	}
	return msg + " (did you mean " + strings.Join(quoted, ", ") + "?)"
}

// looksProper reports whether the token is capitalized and purely alphabetic.
func looksProper(core string) bool {
	r := []rune(core)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return false
	}
	for _, c := range r {
		if !unicode.IsLetter(c) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return s != ""
}

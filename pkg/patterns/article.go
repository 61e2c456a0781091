package patterns

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
)

// articleSite captures subject, verb, optional article and the following word.
var articleSite = regexp.MustCompile(`(?i)\b(I|You|He|She|It|We|They)\s+(am|are|is|was|were)\s+(?:(a|an|the)\s+)?([a-z]+)\b`)

// MissingArticle describes a pronoun + copula + noun span with no article.
type MissingArticle struct {
	Subject string
	Verb    string
	Noun    string
	Article string
}

// Message is the diagnostic shown to the learner.
func (m MissingArticle) Message() string {
	return fmt.Sprintf(`Add an article before "%s". For example: "%s %s %s %s."`,
		m.Noun, m.Subject, m.Verb, m.Article, m.Noun)
}

// ArticleFor picks "an" before a vowel letter and "a" otherwise.
func ArticleFor(noun string) string {
	if noun != "" && strings.ContainsRune("aeiouAEIOU", rune(noun[0])) {
		return "an"
	}
	return "a"
}

// FindMissingArticle inspects the first pronoun + copula span of the
// sentence. It reports a missing article when none is present and the next
// word is a singular countable noun that is not a proper-noun exception.
func FindMissingArticle(sentence string, lex *lexicon.Lexicon) (MissingArticle, bool) {
	match := articleSite.FindStringSubmatch(sentence)
	if match == nil || match[3] != "" {
		return MissingArticle{}, false
	}

	noun := match[4]
	if strings.HasSuffix(strings.ToLower(noun), "s") {
		return MissingArticle{}, false
	}
	if lex.IsProperNoun(noun) || !lex.IsCountableNoun(noun) {
		return MissingArticle{}, false
	}

	return MissingArticle{
		Subject: match[1],
		Verb:    match[2],
		Noun:    noun,
		Article: ArticleFor(noun),
	}, true
}

// InsertArticle inserts the suggested article before the noun of the first
// subject-verb-noun span that lacks one. Other text is left untouched.
func InsertArticle(sentence string, lex *lexicon.Lexicon) string {
	missing, ok := FindMissingArticle(sentence, lex)
	if !ok {
		return sentence
	}

	span := regexp.MustCompile(`(?i)\b(` + regexp.QuoteMeta(missing.Subject) + `)\s+(` +
		regexp.QuoteMeta(missing.Verb) + `)\s+(` + regexp.QuoteMeta(missing.Noun) + `)\b`)
	loc := span.FindStringIndex(sentence)
	if loc == nil {
		return sentence
	}

	replacement := missing.Subject + " " + missing.Verb + " " + missing.Article + " " + missing.Noun
	return sentence[:loc[0]] + replacement + sentence[loc[1]:]
}

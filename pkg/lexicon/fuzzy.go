package lexicon

import (
	"sort"
	"strings"

	"github.com/sajari/fuzzy"
)

// maxSuggestionCandidates bounds how many candidates are read back from the
// model before ranking.
const maxSuggestionCandidates = 100

// newSuggestionModel trains a fuzzy model on the whole vocabulary.
func newSuggestionModel(vocabulary map[string]bool) *fuzzy.Model {
	model := fuzzy.NewModel()
	model.SetDepth(2)     // Maximum edit distance
	model.SetThreshold(1) // Minimum frequency threshold
	model.SetUseAutocomplete(false)

	words := make([]string, 0, len(vocabulary))
	for w := range vocabulary {
		words = append(words, w)
	}
	sort.Strings(words)
	model.Train(words)

	return model
}

// Suggestions returns up to n vocabulary words close to word, nearest first.
// Ties are broken alphabetically so the result is stable between calls.
func (l *Lexicon) Suggestions(word string, n int) []string {
	if n <= 0 || l.model == nil {
		return nil
	}
	lower := strings.ToLower(word)

	var candidates []string
	for _, c := range l.model.SpellCheckSuggestions(lower, maxSuggestionCandidates) {
		if c != "" && c != lower {
			candidates = append(candidates, c)
		}
	}

	distance := make(map[string]int, len(candidates))
	for _, c := range candidates {
		c := c
		distance[c] = fuzzy.Levenshtein(&lower, &c)
	}
	sort.Slice(candidates, func(i, j int) bool {
		di, dj := distance[candidates[i]], distance[candidates[j]]
		if di != dj {
			return di < dj
		}
		return candidates[i] < candidates[j]
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

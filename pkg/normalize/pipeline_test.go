package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
)

func TestPassOrder(t *testing.T) {
	p := New(lexicon.Default())

	var names []string
	for _, pass := range p.Passes() {
		names = append(names, pass.Name)
	}
	assert.Equal(t, []string{
		PassCapitalization, PassWhitespace, PassSpelling,
		PassPronouns, PassPunctuation, PassArticle,
	}, names)
}

func TestRun(t *testing.T) {
	p := New(lexicon.Default())

	tests := []struct {
		name      string
		sentence  string
		errors    []string
		failed    []string
		working   string
		corrected string
	}{
		{
			name:      "well formed",
			sentence:  "I am happy.",
			working:   "I am happy.",
			corrected: "I am happy.",
		},
		{
			name:      "lower-case start",
			sentence:  "i am happy",
			errors:    []string{MsgCapitalization, MsgPunctuation},
			failed:    []string{PassCapitalization, PassPunctuation},
			working:   "I am happy.",
			corrected: "I am happy.",
		},
		{
			name:      "double space",
			sentence:  "She  is ready",
			errors:    []string{MsgWhitespace, MsgPunctuation},
			failed:    []string{PassWhitespace, PassPunctuation},
			working:   "She is ready.",
			corrected: "She is ready.",
		},
		{
			name:      "misspelled contraction",
			sentence:  "Im happy",
			errors:    []string{`"im" should be spelled as "I'm"`, MsgPunctuation},
			failed:    []string{PassSpelling, PassPunctuation},
			working:   "I'm happy.",
			corrected: "I'm happy.",
		},
		{
			name:      "missing article",
			sentence:  "I am student.",
			errors:    []string{`Add an article before "student". For example: "I am a student."`},
			failed:    []string{PassArticle},
			working:   "I am student.",
			corrected: "I am a student.",
		},
		{
			name:     "proper noun",
			sentence: "maria is from colombia",
			errors: []string{
				MsgCapitalization,
				`"colombia" should be capitalized as it's a proper noun`,
				MsgPunctuation,
			},
			failed:    []string{PassCapitalization, PassPronouns, PassPunctuation},
			working:   "Maria is from Colombia.",
			corrected: "Maria is from Colombia.",
		},
		{
			name:      "lower-case pronoun I",
			sentence:  "i think i am late",
			errors:    []string{MsgCapitalization, MsgPronounI, MsgPunctuation},
			failed:    []string{PassCapitalization, PassPronouns, PassPunctuation},
			working:   "I think I am late.",
			corrected: "I think I am late.",
		},
		{
			name:      "capitalized pronoun mid-sentence",
			sentence:  "I think You are right.",
			errors:    []string{`"You" should not be capitalized unless it's the first word of the sentence`},
			failed:    []string{PassPronouns},
			working:   "I think you are right.",
			corrected: "I think you are right.",
		},
		{
			name:      "surrounding space is trimmed",
			sentence:  "  I am happy.  ",
			working:   "I am happy.",
			corrected: "I am happy.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.Run(tt.sentence)
			assert.Equal(t, len(tt.errors) == 0, out.Passed)
			assert.Equal(t, tt.errors, out.Errors)
			assert.Equal(t, tt.failed, out.FailedPasses)
			assert.Equal(t, tt.working, out.Working)
			assert.Equal(t, tt.corrected, out.Corrected)
		})
	}
}

func TestRunUnknownWord(t *testing.T) {
	out := New(lexicon.Default()).Run("I am hapyy.")

	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], `"hapyy" is not a recognized English word`)
	assert.Equal(t, []string{PassSpelling}, out.FailedPasses)
	assert.Equal(t, "I am hapyy.", out.Working)
}

func TestRunStopAtFirstFailure(t *testing.T) {
	out := New(lexicon.Default(), StopAtFirstFailure()).Run("i  am happy")

	assert.False(t, out.Passed)
	assert.Equal(t, []string{MsgCapitalization}, out.Errors)
	assert.Equal(t, []string{PassCapitalization}, out.FailedPasses)
	assert.Equal(t, "I  am happy", out.Working)
	assert.Equal(t, out.Working, out.Corrected)
}

func TestRunIsIdempotent(t *testing.T) {
	p := New(lexicon.Default())

	for _, sentence := range []string{
		"i am happy",
		"She  is ready",
		"Im happy",
		"I am student.",
		"maria is from colombia",
		"i think i am late",
		"I think You are right.",
		"Was it cold?",
	} {
		first := p.Run(sentence)
		second := p.Run(first.Corrected)
		assert.True(t, second.Passed, "%q -> %q: %v", sentence, first.Corrected, second.Errors)
		assert.Equal(t, first.Corrected, second.Working, sentence)
	}
}

package validator

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/Code-Monger/ToBeBot/pkg/grammar"
	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/normalize"
)

func TestCanonicalSentences(t *testing.T) {
	tests := []struct {
		sentence string
		want     ResultType
	}{
		{"I am happy.", PresentAffirmative},
		{"She is not ready.", PresentNegative},
		{"Are you tired?", PresentInterrogative},
		{"He was late.", PastAffirmative},
		{"They were not here.", PastNegative},
		{"Was it cold?", PastInterrogative},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			result := ValidateSentence(tt.sentence)
			assert.Equal(t, Result{IsValid: true, Type: tt.want}, result)
		})
	}
}

func TestEverydaySentences(t *testing.T) {
	tests := []struct {
		sentence string
		want     ResultType
	}{
		{"The sky is blue.", PresentAffirmative},
		{"The children are asleep.", PresentAffirmative},
		{"It was a mistake.", PastAffirmative},
		{"The store is closed.", PresentAffirmative},
		{"The test was easy.", PastAffirmative},
		{"It was raining.", PastAffirmative},
		{"The men were tired.", PastAffirmative},
		{"My feet are cold.", PresentAffirmative},
		{"The women were not angry.", PastNegative},
		{"Is the kitchen clean?", PresentInterrogative},
		{"Were the dishes dirty?", PastInterrogative},
		{"She is patient.", PresentAffirmative},
		{"The weather was terrible yesterday.", PastAffirmative},
		{"They were running.", PastAffirmative},
		{"The prices are higher.", PresentAffirmative},
		{"He was happily married.", PastAffirmative},
		{"We are the happiest people.", PresentAffirmative},
		{"The bread was baked.", PastAffirmative},
		{"The dog is sleeping.", PresentAffirmative},
		{"It was an hour.", PastAffirmative},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			assert.Equal(t, Result{IsValid: true, Type: tt.want}, ValidateSentence(tt.sentence))
		})
	}
}

func TestSingularOfListedNounNeedsArticle(t *testing.T) {
	result := ValidateSentence("It is hour.")

	assert.Equal(t, FormattingErrors, result.Type)
	assert.Equal(t, []string{`Add an article before "hour". For example: "It is a hour."`}, result.Errors)
	assert.Equal(t, "It is a hour.", result.CorrectedSentence)
}

func TestVerbSlotIsCaseInsensitive(t *testing.T) {
	for _, sentence := range []string{"I am happy.", "I Am happy.", "I AM happy."} {
		result := ValidateSentence(sentence)
		assert.True(t, result.IsValid, sentence)
		assert.Equal(t, PresentAffirmative, result.Type, sentence)
	}
}

func TestFormattingErrors(t *testing.T) {
	t.Run("lower-case start", func(t *testing.T) {
		result := ValidateSentence("i am happy")
		assert.False(t, result.IsValid)
		assert.Equal(t, FormattingErrors, result.Type)
		require.NotEmpty(t, result.Errors)
		assert.Equal(t, normalize.MsgCapitalization, result.Errors[0])
		assert.Equal(t, "I am happy.", result.CorrectedSentence)
		assert.Equal(t, `Try: "I am happy."`, result.Corrections)
	})

	t.Run("double space", func(t *testing.T) {
		result := ValidateSentence("She  is ready")
		assert.Equal(t, FormattingErrors, result.Type)
		assert.Contains(t, result.Errors, normalize.MsgWhitespace)
		assert.Equal(t, "She is ready.", result.CorrectedSentence)
	})

	t.Run("misspelling", func(t *testing.T) {
		result := ValidateSentence("Im happy")
		assert.Equal(t, FormattingErrors, result.Type)
		assert.Contains(t, result.Errors, `"im" should be spelled as "I'm"`)
		assert.Contains(t, result.CorrectedSentence, "I'm")
	})

	t.Run("missing article", func(t *testing.T) {
		result := ValidateSentence("I am student.")
		assert.Equal(t, FormattingErrors, result.Type)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "a student")
		assert.Equal(t, "I am a student.", result.CorrectedSentence)
	})
}

func TestGrammarErrors(t *testing.T) {
	result := ValidateSentence("He am tall.")

	assert.False(t, result.IsValid)
	assert.Equal(t, Invalid, result.Type)
	assert.Contains(t, result.Errors, grammar.MsgUseIs)
	assert.Equal(t, "He is tall.", result.CorrectedSentence)
	assert.Equal(t, `Consider writing: "He is tall."`, result.Corrections)
}

func TestAgreementRepairedInEveryClause(t *testing.T) {
	result := ValidateSentence("I am sure he are late.")

	assert.Equal(t, Invalid, result.Type)
	assert.Equal(t, []string{grammar.MsgUseIs}, result.Errors)
	assert.Equal(t, "I am sure he is late.", result.CorrectedSentence)
}

func TestValidWithoutMood(t *testing.T) {
	assert.Equal(t, Result{IsValid: true, Type: Valid}, ValidateSentence("Hello."))
	assert.Equal(t, Result{IsValid: true, Type: Valid}, ValidateSentence("123 is a number."))
}

func TestBareCopulaHasNoMood(t *testing.T) {
	// "I was" agrees, but a copula with no complement fits none of the moods.
	assert.Equal(t, Result{IsValid: true, Type: Valid}, ValidateSentence("I was."))
	assert.Equal(t, Result{IsValid: true, Type: PastAffirmative}, ValidateSentence("I was late."))
	assert.Empty(t, grammar.DetectAgreementErrors("I was."))
}

func TestCheckFormat(t *testing.T) {
	v := New(lexicon.Default())

	assert.Equal(t, Result{IsValid: true, Type: ValidFormat, CorrectedSentence: "I am happy."}, v.CheckFormat("I am happy."))

	result := v.CheckFormat("i am happy")
	assert.Equal(t, FormattingErrors, result.Type)
	assert.Equal(t, []string{normalize.MsgCapitalization, normalize.MsgPunctuation}, result.Errors)
}

func TestStopAtFirstFailure(t *testing.T) {
	v := New(lexicon.Default(), WithStopAtFirstFailure(), WithLogger(zaptest.NewLogger(t)))

	result := v.Validate("i  am happy")
	assert.Equal(t, FormattingErrors, result.Type)
	assert.Equal(t, []string{normalize.MsgCapitalization}, result.Errors)
}

func TestDeterministic(t *testing.T) {
	for _, sentence := range []string{"I am happy.", "i  am studnet", "He am tall.", "They is are here."} {
		first := ValidateSentence(sentence)
		second := ValidateSentence(sentence)
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("ValidateSentence(%q) mismatch (-first +second):\n%s", sentence, diff)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	v := New(lexicon.Default())
	want := v.Validate("She are student.")

	var wg sync.WaitGroup
	results := make([]Result, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = v.Validate("She are student.")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("concurrent result mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestResultTypeIsMood(t *testing.T) {
	assert.True(t, PastNegative.IsMood())
	assert.False(t, Valid.IsMood())
	assert.False(t, FormattingErrors.IsMood())
}

package correction

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
)

func TestGenerate(t *testing.T) {
	g := NewGenerator(lexicon.Default())

	tests := []struct {
		sentence string
		want     string
	}{
		{"i am student", "I am a student."},
		{"He am tall.", "He is tall."},
		{"they is happy", "They are happy."},
		{"Am she ready?", "Is she ready?"},
		{"We was   here", "We were here."},
		{"maria is my freind", "Maria is my friend."},
		{"Im tierd", "I'm tired."},
		{"I am happy.", "I am happy."},
	}

	for _, tt := range tests {
		t.Run(tt.sentence, func(t *testing.T) {
			s := g.Generate(tt.sentence)
			assert.Equal(t, tt.want, s.Corrected)
			assert.Equal(t, `Consider writing: "`+tt.want+`"`, s.Text)
		})
	}
}

func TestRepairAgreement(t *testing.T) {
	assert.Equal(t, "She is here", RepairAgreement("She are here"))
	assert.Equal(t, "I was late", RepairAgreement("I were late"))
	assert.Equal(t, "Were they here?", RepairAgreement("Was they here?"))
	assert.Equal(t, "You are ok", RepairAgreement("You are ok"))
}

func TestRepairAgreementFixesEveryPair(t *testing.T) {
	assert.Equal(t, "I am sure he is late.", RepairAgreement("I am sure he are late."))
	assert.Equal(t, "I am sure he is late.", RepairAgreement("I is sure he am late."))
	assert.Equal(t, "Are you sure they were here?", RepairAgreement("Is you sure they was here?"))

	g := NewGenerator(lexicon.Default())
	assert.Equal(t, "I am sure he is late.", g.Generate("i is sure he are late").Corrected)
}

func TestAgreeingVerb(t *testing.T) {
	tests := []struct {
		pronoun, verb, want string
	}{
		{"I", "is", "am"},
		{"he", "are", "is"},
		{"They", "is", "are"},
		{"it", "were", "was"},
		{"I", "were", "was"},
		{"we", "WAS", "were"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgreeingVerb(tt.pronoun, tt.verb), "%s %s", tt.pronoun, tt.verb)
	}
}

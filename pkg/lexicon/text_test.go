package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyMisspellings(t *testing.T) {
	lex := Default()

	assert.Equal(t, "the student is happy", lex.ApplyMisspellings("teh studnet is hapy"))
	assert.Equal(t, "I'm happy", lex.ApplyMisspellings("Im happy"))
	assert.Equal(t, "I am here", lex.ApplyMisspellings("i am here"))
	assert.Equal(t, "She is a teacher", lex.ApplyMisspellings("She is a teacher"))
}

func TestProperNounCasing(t *testing.T) {
	lex := Default()

	assert.Equal(t, "Maria lives in Cartagena", lex.CapitalizeProperNouns("maria lives in cartagena"))
	assert.Equal(t, []string{"john"}, lex.LowercaseProperNouns("Maria and john"))
	assert.Empty(t, lex.LowercaseProperNouns("Maria and John"))
}

func TestPronounI(t *testing.T) {
	assert.Equal(t, []string{"i", "i"}, MiscasedI("i think i am"))
	assert.Empty(t, MiscasedI("I think I am"))
	assert.Empty(t, MiscasedI("it is in"))
	assert.Equal(t, "I think I am", CapitalizeI("i think i am"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Maria", Capitalize("maria"))
	assert.Equal(t, "", Capitalize(""))
}

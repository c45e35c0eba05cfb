package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAnalysis_S1 reproduces scenario S1 from the specification:
// A -> a A | EPSILON, synthesised axiom S -> A $.
// FIRST(A) = {a, EPSILON}, FOLLOW(A) = {$}.
func TestAnalysis_S1(t *testing.T) {
	g := buildS1(t)
	a := NewAnalysis(g)

	first := a.First("A")
	assert.True(t, first.Contains(Epsilon))
	assert.True(t, first.Contains(Symbol{Name: "a"}))
	assert.Len(t, first, 2)

	follow := a.Follow("A")
	assert.True(t, follow.Contains(End))
	assert.Len(t, follow, 1)
}

// TestAnalysis_S2 reproduces scenario S2: a small expression grammar.
// E -> T E′; E′ -> + T E′ | EPSILON; T -> ( E ) | n.
func TestAnalysis_S2(t *testing.T) {
	desc := GrammarDescription{
		"E":  {{"T", "E′"}},
		"E′": {{"+", "T", "E′"}, {"EPSILON"}},
		"T":  {{"(", "E", ")"}, {"n"}},
	}
	g, err := NewGrammar(desc, []string{"E", "E′", "T"})
	require.NoError(t, err)
	a := NewAnalysis(g)

	firstE := a.First("E")
	assert.ElementsMatch(t, []Symbol{{Name: "("}, {Name: "n"}}, firstE.Slice())

	firstEPrime := a.First("E′")
	assert.ElementsMatch(t, []Symbol{{Name: "+"}, Epsilon}, firstEPrime.Slice())

	followE := a.Follow("E")
	assert.ElementsMatch(t, []Symbol{{Name: ")"}, End}, followE.Slice())

	followEPrime := a.Follow("E′")
	assert.ElementsMatch(t, []Symbol{{Name: ")"}, End}, followEPrime.Slice())
}

// TestAnalysis_S6 reproduces scenario S6: a FIRST/FOLLOW overlap.
// S -> A B; A -> a | EPSILON; B -> a.
func TestAnalysis_S6(t *testing.T) {
	desc := GrammarDescription{
		"S": {{"A", "B"}},
		"A": {{"a"}, {"EPSILON"}},
		"B": {{"a"}},
	}
	g, err := NewGrammar(desc, []string{"S", "A", "B"})
	require.NoError(t, err)
	a := NewAnalysis(g)

	firstA := a.First("A")
	assert.True(t, firstA.Contains(Symbol{Name: "a"}))
	assert.True(t, firstA.Contains(Epsilon))

	followA := a.Follow("A")
	assert.True(t, followA.Contains(Symbol{Name: "a"}))
}

func TestAnalysis_FirstOfString_EndCollapsesToEpsilon(t *testing.T) {
	g := buildS1(t)
	a := NewAnalysis(g)
	fs := a.FirstOfString([]Symbol{{Name: "A"}, End})
	// FIRST(A) = {a, EPSILON}; since A is nullable, scanning continues to
	// END, which collapses to EPSILON rather than appearing literally.
	assert.True(t, fs.Contains(Symbol{Name: "a"}))
	assert.True(t, fs.Contains(Epsilon))
	assert.False(t, fs.Contains(End))
}

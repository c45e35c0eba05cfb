package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildS1 builds the S1 scenario from the specification: A -> a A | EPSILON.
func buildS1(t *testing.T) *Grammar {
	t.Helper()
	desc := GrammarDescription{
		"A": {{"a", "A"}, {"EPSILON"}},
	}
	g, err := NewGrammar(desc, []string{"A"})
	require.NoError(t, err)
	return g
}

func TestNewGrammar_SynthesisesAxiom(t *testing.T) {
	g := buildS1(t)
	assert.Equal(t, "S", g.Axiom())
	prods := g.ProductionsOf("S")
	require.Len(t, prods, 1)
	assert.Equal(t, "A $", prods[0].String())
}

func TestNewGrammar_SynthesisPicksLexicallySmallestNonTerminal(t *testing.T) {
	desc := GrammarDescription{
		"Z": {{"z"}},
		"A": {{"a"}},
		"M": {{"m"}},
	}
	g, err := NewGrammar(desc, []string{"Z", "A", "M"})
	require.NoError(t, err)
	prods := g.ProductionsOf("S")
	require.Len(t, prods, 1)
	assert.Equal(t, Symbol{Name: "A"}, prods[0].At(0))
}

func TestNewGrammar_RejectsEpsilonMixedWithOtherSymbols(t *testing.T) {
	desc := GrammarDescription{
		"S": {{"A", "EPSILON"}},
		"A": {{"a"}},
	}
	_, err := NewGrammar(desc, []string{"S", "A"})
	require.Error(t, err)
	var cfgErr *ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestNewGrammar_RejectsUndeclaredNonTerminal(t *testing.T) {
	desc := GrammarDescription{
		"S": {{"B"}},
	}
	_, err := NewGrammar(desc, []string{"S"})
	require.Error(t, err)
}

func TestNewGrammar_RejectsAxiomWithoutProductions(t *testing.T) {
	desc := GrammarDescription{
		"S": {},
		"A": {{"a"}},
	}
	_, err := NewGrammar(desc, []string{"S", "A"})
	require.Error(t, err)
}

func TestGrammar_HasEmpty(t *testing.T) {
	g := buildS1(t)
	assert.True(t, g.HasEmpty("A"))
	assert.False(t, g.HasEmpty("S"))
}

func TestGrammar_FilterByRhsOccurrence(t *testing.T) {
	g := buildS1(t)
	entries := g.FilterByRhsOccurrence(Symbol{Name: "A"})
	// A occurs in A -> a A (non-terminal A itself) and in the synthesised S -> A $.
	assert.Len(t, entries, 2)
}

func TestGrammar_Augmented(t *testing.T) {
	g := buildS1(t)
	ag, startSym := g.Augmented()
	assert.Equal(t, "S′", ag.Axiom())
	assert.Equal(t, Symbol{Name: "S′"}, startSym)
	prods := ag.ProductionsOf("S′")
	require.Len(t, prods, 1)
	assert.Equal(t, "S", prods[0].String())
	// original grammar is untouched
	assert.Equal(t, "S", g.Axiom())
}

func TestProduction_Equal(t *testing.T) {
	p1 := NewProduction(Symbol{Name: "a"}, Symbol{Name: "A"})
	p2 := NewProduction(Symbol{Name: "a"}, Symbol{Name: "A"})
	p3 := NewProduction(Symbol{Name: "A"}, Symbol{Name: "a"})
	assert.True(t, p1.Equal(p2))
	assert.False(t, p1.Equal(p3))
}

func TestSymbolTable_PutIdempotent(t *testing.T) {
	st := NewSymbolTable()
	require.NoError(t, st.Put("a", true))
	require.NoError(t, st.Put("a", true))
	err := st.Put("a", false)
	assert.Error(t, err)
}

func TestSymbolTable_ReservedSymbolsAreTerminal(t *testing.T) {
	st := NewSymbolTable()
	isTerm, err := st.IsTerminal(Epsilon.Name)
	require.NoError(t, err)
	assert.True(t, isTerm)
	isTerm, err = st.IsTerminal(End.Name)
	require.NoError(t, err)
	assert.True(t, isTerm)
}

func TestSymbolTable_UnknownIsError(t *testing.T) {
	st := NewSymbolTable()
	_, err := st.IsTerminal("nope")
	assert.Error(t, err)
}

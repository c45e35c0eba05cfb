package ll1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caldera-edu/gradus/grammar"
)

func mustGrammar(t *testing.T, desc grammar.GrammarDescription, order []string) *grammar.Grammar {
	t.Helper()
	g, err := grammar.NewGrammar(desc, order)
	require.NoError(t, err)
	return g
}

// TestBuild_S1: A -> a A | EPSILON is LL(1).
// (A, a) = [A -> a A]; (A, $) = [A -> EPSILON].
func TestBuild_S1(t *testing.T) {
	g := mustGrammar(t, grammar.GrammarDescription{
		"A": {{"a", "A"}, {"EPSILON"}},
	}, []string{"A"})
	an := grammar.NewAnalysis(g)
	b := NewBuilder(g, an)
	ok := b.Build()
	require.True(t, ok)

	cellA := b.Table().Cell("A", grammar.Symbol{Name: "a"})
	require.Len(t, cellA, 1)
	assert.Equal(t, "a A", cellA[0].String())

	cellDollar := b.Table().Cell("A", grammar.End)
	require.Len(t, cellDollar, 1)
	assert.True(t, cellDollar[0].IsEpsilon())
}

// TestBuild_S2: the classic expression grammar is LL(1), conflict-free.
func TestBuild_S2(t *testing.T) {
	g := mustGrammar(t, grammar.GrammarDescription{
		"E":  {{"T", "E′"}},
		"E′": {{"+", "T", "E′"}, {"EPSILON"}},
		"T":  {{"(", "E", ")"}, {"n"}},
	}, []string{"E", "E′", "T"})
	an := grammar.NewAnalysis(g)
	b := NewBuilder(g, an)
	assert.True(t, b.Build())
	assert.Empty(t, b.Conflicts())
}

// TestBuild_S3: after direct-left-recursion elimination, A -> b A′;
// A′ -> a A′ | EPSILON is LL(1).
func TestBuild_S3(t *testing.T) {
	g := mustGrammar(t, grammar.GrammarDescription{
		"A":  {{"b", "A′"}},
		"A′": {{"a", "A′"}, {"EPSILON"}},
	}, []string{"A", "A′"})
	an := grammar.NewAnalysis(g)
	b := NewBuilder(g, an)
	assert.True(t, b.Build())
}

// TestBuild_S4: A -> a A | a has an LL(1) conflict on (A, a).
func TestBuild_S4(t *testing.T) {
	g := mustGrammar(t, grammar.GrammarDescription{
		"A": {{"a", "A"}, {"a"}},
	}, []string{"A"})
	an := grammar.NewAnalysis(g)
	b := NewBuilder(g, an)
	ok := b.Build()
	require.False(t, ok)
	require.NotEmpty(t, b.Conflicts())

	cellA := b.Table().Cell("A", grammar.Symbol{Name: "a"})
	assert.Len(t, cellA, 2)
}

// TestBuild_S6: S -> A B; A -> a | EPSILON; B -> a triggers a FIRST/FOLLOW
// overlap at A — both A-productions predict on "a".
func TestBuild_S6(t *testing.T) {
	g := mustGrammar(t, grammar.GrammarDescription{
		"S": {{"A", "B"}},
		"A": {{"a"}, {"EPSILON"}},
		"B": {{"a"}},
	}, []string{"S", "A", "B"})
	an := grammar.NewAnalysis(g)
	b := NewBuilder(g, an)
	ok := b.Build()
	require.False(t, ok)

	cellA := b.Table().Cell("A", grammar.Symbol{Name: "a"})
	assert.Len(t, cellA, 2)
}

func TestPredictionSet_NoEpsilon(t *testing.T) {
	g := mustGrammar(t, grammar.GrammarDescription{
		"A": {{"a", "A"}, {"EPSILON"}},
	}, []string{"A"})
	an := grammar.NewAnalysis(g)
	p := g.ProductionsOf("A")[0] // a A
	ps := PredictionSet(an, "A", p)
	assert.True(t, ps.Contains(grammar.Symbol{Name: "a"}))
	assert.False(t, ps.Contains(grammar.Epsilon))
}

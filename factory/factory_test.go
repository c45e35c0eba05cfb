package factory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caldera-edu/gradus/grammar"
)

func TestGenerate_Level1IsSingleNonTerminal(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := generate(1, rng)
	assert.Equal(t, []string{"A"}, c.order)
	assert.Contains(t, c.desc, "A")
}

func TestGenerate_Level3IntroducesThreeNonTerminals(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	c := generate(3, rng)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, c.order)
}

func TestGenerate_DeterministicWithFixedSeed(t *testing.T) {
	c1 := generate(4, rand.New(rand.NewSource(42)))
	c2 := generate(4, rand.New(rand.NewSource(42)))
	assert.Equal(t, c1.order, c2.order)
	for nt, rules := range c1.desc {
		assert.Equal(t, rules, c2.desc[nt])
	}
}

func TestIsProductive_DetectsInfiniteNonTerminal(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"a", "B"}},
		"B": {{"b", "B"}}, // no base case: B is not productive
	}
	_, allProductive := isProductive(desc)
	assert.False(t, allProductive)
}

func TestIsProductive_AllProductive(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"a", "B"}},
		"B": {{"b"}},
	}
	_, allProductive := isProductive(desc)
	assert.True(t, allProductive)
}

func TestHasUnreachable_DetectsOrphanNonTerminal(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"a"}},
		"B": {{"b"}}, // never referenced from A
	}
	assert.True(t, hasUnreachable(desc, "A"))
}

func TestHasUnreachable_AllReachable(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"a", "B"}},
		"B": {{"b"}},
	}
	assert.False(t, hasUnreachable(desc, "A"))
}

// TestEliminateDirectLeftRecursion mirrors §4.6's worked transform:
// A -> Aa | b becomes A -> b A′; A′ -> a A′ | EPSILON.
func TestEliminateDirectLeftRecursion(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"A", "a"}, {"b"}},
	}
	out, primed := eliminateDirectLeftRecursion(desc, "A")
	assert.Equal(t, "A′", primed)
	assert.Equal(t, [][]string{{"b", "A′"}}, out["A"])
	assert.ElementsMatch(t, [][]string{{"a", "A′"}, {"EPSILON"}}, out["A′"])
}

// TestEliminateDirectLeftRecursion_DropsOriginalEpsilon: an EPSILON
// alternative already on A is subsumed by A′'s own EPSILON production.
func TestEliminateDirectLeftRecursion_DropsOriginalEpsilon(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"A", "a"}, {"EPSILON"}},
	}
	out, primed := eliminateDirectLeftRecursion(desc, "A")
	assert.Equal(t, [][]string{{primed}}, out["A"])
	assert.ElementsMatch(t, [][]string{{"a", primed}, {"EPSILON"}}, out[primed])
}

func TestFeasible_EliminatesDirectLeftRecursionForLL1(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"A", "a"}, {"b"}},
	}
	out, order, ok := feasible(desc, []string{"A"}, true)
	require.True(t, ok)
	assert.Contains(t, order, "A′")
	assert.False(t, hasDirectLeftRecursion(out["A"], "A"))
}

func TestFeasible_LeavesDirectLeftRecursionForSLR1(t *testing.T) {
	desc := map[string][][]string{
		"A": {{"A", "a"}, {"b"}},
	}
	out, order, ok := feasible(desc, []string{"A"}, false)
	require.True(t, ok)
	assert.Equal(t, []string{"A"}, order)
	assert.True(t, hasDirectLeftRecursion(out["A"], "A"))
}

func TestSession_GenerateLL1_Succeeds(t *testing.T) {
	s := NewSession(500)
	rng := rand.New(rand.NewSource(99))
	g, b, err := s.GenerateLL1(2, rng)
	require.NoError(t, err)
	require.NotNil(t, g)
	require.True(t, b.Built())
	assert.Empty(t, b.Conflicts())
}

func TestSession_GenerateSLR1_Succeeds(t *testing.T) {
	s := NewSession(500)
	rng := rand.New(rand.NewSource(17))
	g, b, err := s.GenerateSLR1(2, rng)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Empty(t, b.Conflicts())
}

func TestSession_GenerateLL1_ExhaustsWithZeroBudget(t *testing.T) {
	s := NewSession(0)
	rng := rand.New(rand.NewSource(1))
	_, _, err := s.GenerateLL1(1, rng)
	require.Error(t, err)
	var exhausted *grammar.GenerationExhausted
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 0, exhausted.Attempts)
}

package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestItem_AdvanceAndComplete(t *testing.T) {
	g := buildS1(t)
	it := StartItem("A", 0) // A -> a A
	assert.False(t, it.Complete(g))
	sym, ok := it.SymbolAfterDot(g)
	assert.True(t, ok)
	assert.Equal(t, Symbol{Name: "a"}, sym)

	it = it.Advance(g)
	sym, ok = it.SymbolAfterDot(g)
	assert.True(t, ok)
	assert.Equal(t, Symbol{Name: "A"}, sym)

	it = it.Advance(g)
	assert.True(t, it.Complete(g))
	_, ok = it.SymbolAfterDot(g)
	assert.False(t, ok)
}

func TestItem_EpsilonProductionIsImmediatelyComplete(t *testing.T) {
	g := buildS1(t)
	it := StartItem("A", 1) // A -> EPSILON
	assert.True(t, it.Complete(g))
}

func TestItemSet_Equal(t *testing.T) {
	s1 := NewItemSet(StartItem("A", 0), StartItem("A", 1))
	s2 := NewItemSet(StartItem("A", 1), StartItem("A", 0))
	assert.True(t, s1.Equal(s2))

	s3 := NewItemSet(StartItem("A", 0))
	assert.False(t, s1.Equal(s3))
}

func TestItemSet_SortedDeterministic(t *testing.T) {
	s := NewItemSet(StartItem("B", 0), StartItem("A", 1), StartItem("A", 0))
	sorted := s.Sorted()
	assert.Equal(t, "A", sorted[0].NonTerminal)
	assert.Equal(t, 0, sorted[0].ProdIndex)
	assert.Equal(t, "A", sorted[1].NonTerminal)
	assert.Equal(t, 1, sorted[1].ProdIndex)
	assert.Equal(t, "B", sorted[2].NonTerminal)
}

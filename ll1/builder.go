package ll1

import (
	"github.com/npillmayer/schuko/tracing"

	"github.com/caldera-edu/gradus/grammar"
)

// tracer traces with key "gradus.ll1", following the teacher's per-package
// tracer() convention.
func tracer() tracing.Trace {
	return tracing.Select("gradus.ll1")
}

// cellKey identifies one (non-terminal, terminal) cell of the table.
type cellKey struct {
	NonTerminal string
	Terminal    grammar.Symbol
}

// Table is the two-level LL(1) predictive table: table[A][t] is the list of
// productions inserted for that cell. A cell with more than one production
// is a conflict.
type Table struct {
	cells map[cellKey][]grammar.Production
}

func newTable() *Table {
	return &Table{cells: make(map[cellKey][]grammar.Production)}
}

// Cell returns the productions predicted for (nonTerminal, terminal).
func (t *Table) Cell(nonTerminal string, terminal grammar.Symbol) []grammar.Production {
	return t.cells[cellKey{nonTerminal, terminal}]
}

func (t *Table) insert(nt string, terminal grammar.Symbol, p grammar.Production) (conflict bool) {
	k := cellKey{nt, terminal}
	existing := t.cells[k]
	conflict = len(existing) > 0
	t.cells[k] = append(existing, p)
	return conflict
}

// Builder consumes a Grammar and a populated Analysis and produces the
// predictive table, or reports a conflict. It never mutates the Grammar.
type Builder struct {
	g         *grammar.Grammar
	an        *grammar.Analysis
	table     *Table
	conflicts []*grammar.BuildConflict
	built     bool
}

// NewBuilder creates an LL(1) table builder for an already-analysed
// grammar.
func NewBuilder(g *grammar.Grammar, an *grammar.Analysis) *Builder {
	return &Builder{g: g, an: an, table: newTable()}
}

// PredictionSet computes the prediction set for production p of
// non-terminal nt: FIRST(p) if EPSILON is not in it, otherwise
// (FIRST(p) \ {EPSILON}) ∪ FOLLOW(nt).
func PredictionSet(an *grammar.Analysis, nt string, p grammar.Production) grammar.SymbolSet {
	first := an.FirstOfString(p.Symbols)
	if !first.Contains(grammar.Epsilon) {
		return first
	}
	result := make(grammar.SymbolSet)
	result.AddAll(first) // excludes Epsilon
	result.AddAll(an.Follow(nt))
	return result
}

// Build computes the prediction set for every production and populates the
// table. It returns true iff no cell received more than one production —
// i.e., the grammar is LL(1). The table is fully populated regardless of
// the outcome, for diagnostic rendering.
func (b *Builder) Build() bool {
	ok := true
	for _, nt := range b.g.NonTerminals() {
		for _, p := range b.g.ProductionsOf(nt) {
			predictSet := PredictionSet(b.an, nt, p)
			for _, t := range predictSet.Slice() {
				if t == grammar.Epsilon {
					continue // EPSILON is never itself a lookahead terminal
				}
				if conflict := b.table.insert(nt, t, p); conflict {
					ok = false
					b.conflicts = append(b.conflicts, &grammar.BuildConflict{
						Kind:        grammar.LL1Conflict,
						NonTerminal: nt,
						Terminal:    t,
						Productions: b.table.Cell(nt, t),
					})
					tracer().Debugf("LL(1) conflict at (%s, %s): %d productions", nt, t, len(b.table.Cell(nt, t)))
				}
			}
		}
	}
	b.built = true
	tracer().Infof("LL(1) table built, conflict-free=%v", ok)
	return ok
}

// Table returns the (possibly conflicted) predictive table. Callers should
// call Build() first.
func (b *Builder) Table() *Table {
	return b.table
}

// Conflicts returns every conflict detected during Build().
func (b *Builder) Conflicts() []*grammar.BuildConflict {
	return b.conflicts
}

// Built reports whether Build() has been called.
func (b *Builder) Built() bool {
	return b.built
}

package gradus

import (
	"math/rand"

	"github.com/caldera-edu/gradus/factory"
	"github.com/caldera-edu/gradus/grammar"
	"github.com/caldera-edu/gradus/ll1"
	"github.com/caldera-edu/gradus/slr1"
)

// LL1Result is the outcome of BuildLL1: the grammar as parsed, its
// predictive table, and whatever conflicts prevented a clean build.
type LL1Result struct {
	Grammar   *grammar.Grammar
	Table     *ll1.Table
	Conflicts []*grammar.BuildConflict
	OK        bool
}

// SLR1Result is the outcome of BuildSLR1: the original and augmented
// grammars, the canonical collection, the ACTION/GOTO tables, and
// whatever conflicts prevented a clean build.
type SLR1Result struct {
	Grammar          *grammar.Grammar
	AugmentedGrammar *grammar.Grammar
	Automaton        *slr1.Automaton
	Tables           *slr1.Tables
	Conflicts        []*grammar.BuildConflict
	OK               bool
}

// BuildLL1 parses a grammar description and runs the LL(1) builder over
// it. A ConfigurationError from a malformed description is returned
// as-is; a BuildConflict is never returned as an error — it is reported
// inside the result, with the table still populated for inspection.
func BuildLL1(desc grammar.GrammarDescription) (*LL1Result, error) {
	g, err := grammar.NewGrammar(desc, nil)
	if err != nil {
		return nil, err
	}
	an := grammar.NewAnalysis(g)
	b := ll1.NewBuilder(g, an)
	ok := b.Build()
	return &LL1Result{Grammar: g, Table: b.Table(), Conflicts: b.Conflicts(), OK: ok}, nil
}

// BuildSLR1 parses a grammar description, augments it, builds its
// canonical LR(0) collection, and derives the SLR(1) ACTION/GOTO tables.
func BuildSLR1(desc grammar.GrammarDescription) (*SLR1Result, error) {
	g, err := grammar.NewGrammar(desc, nil)
	if err != nil {
		return nil, err
	}
	b := slr1.NewBuilder(g)
	ok := b.Build()
	return &SLR1Result{
		Grammar: g, AugmentedGrammar: b.AugmentedGrammar(),
		Automaton: b.Automaton(), Tables: b.Tables(),
		Conflicts: b.Conflicts(), OK: ok,
	}, nil
}

// GenerateLL1 asks the Factory for a Level-`level` grammar that is LL(1),
// retrying up to retryBudget times. A grammar.GenerationExhausted is
// returned if no conformant candidate turns up in time.
func GenerateLL1(level int, rng *rand.Rand, retryBudget int) (*grammar.Grammar, *LL1Result, error) {
	s := factory.NewSession(retryBudget)
	g, b, err := s.GenerateLL1(level, rng)
	if err != nil {
		return nil, nil, err
	}
	return g, &LL1Result{Grammar: g, Table: b.Table(), Conflicts: b.Conflicts(), OK: true}, nil
}

// GenerateSLR1 is GenerateLL1's SLR(1) counterpart.
func GenerateSLR1(level int, rng *rand.Rand, retryBudget int) (*grammar.Grammar, *SLR1Result, error) {
	s := factory.NewSession(retryBudget)
	g, b, err := s.GenerateSLR1(level, rng)
	if err != nil {
		return nil, nil, err
	}
	return g, &SLR1Result{
		Grammar: g, AugmentedGrammar: b.AugmentedGrammar(),
		Automaton: b.Automaton(), Tables: b.Tables(),
		Conflicts: b.Conflicts(), OK: true,
	}, nil
}

package slr1

import "github.com/caldera-edu/gradus/grammar"

// Phase names the stage of Builder.Build()'s lifecycle the builder has
// reached, for callers that want to report progress.
type Phase int

const (
	// Fresh: no work has happened yet.
	Fresh Phase = iota
	// FirstComputed: the augmented grammar and its Analysis are in hand.
	FirstComputed
	// AutomatonBuilt: the CFSM has been constructed.
	AutomatonBuilt
	// TableBuilt: ACTION/GOTO construction finished with no conflicts.
	TableBuilt
	// Failed: ACTION/GOTO construction finished, but with conflicts.
	Failed
)

func (p Phase) String() string {
	switch p {
	case FirstComputed:
		return "first-computed"
	case AutomatonBuilt:
		return "automaton-built"
	case TableBuilt:
		return "table-built"
	case Failed:
		return "failed"
	default:
		return "fresh"
	}
}

// Builder augments a grammar, builds its CFSM, and derives the SLR(1)
// ACTION/GOTO tables — mirroring ll1.Builder's shape so the two front ends
// present the same API to the cmd/gradus CLI and the factory package.
type Builder struct {
	g     *grammar.Grammar // the grammar as given, unaugmented
	ag    *grammar.Grammar // Augmented(); computed on demand
	an    *grammar.Analysis
	auto  *Automaton
	t     *Tables
	phase Phase

	conflicts []*grammar.BuildConflict
}

// NewBuilder creates an SLR(1) table builder for g. Unlike ll1.Builder,
// which takes an Analysis of the caller's own grammar, Builder augments g
// itself (S′ → S) because the CFSM and FOLLOW sets must be computed over
// the augmented grammar, not the original.
func NewBuilder(g *grammar.Grammar) *Builder {
	return &Builder{g: g, phase: Fresh}
}

// Build runs the full pipeline: augment, analyse, construct the CFSM,
// derive ACTION/GOTO. It returns true iff the grammar is SLR(1) (no
// conflicts); the tables are populated regardless, for diagnostics.
func (b *Builder) Build() bool {
	ag, _ := b.g.Augmented()
	b.ag = ag
	b.an = grammar.NewAnalysis(ag)
	b.phase = FirstComputed

	b.auto = Build(ag)
	b.phase = AutomatonBuilt

	tracer().Debugf("deriving ACTION/GOTO over %d states", len(b.auto.States))
	t, conflicts := buildTables(b.auto, b.an)
	b.t = t
	b.conflicts = conflicts
	if len(conflicts) == 0 {
		b.phase = TableBuilt
		tracer().Infof("SLR(1) table built, conflict-free")
		return true
	}
	b.phase = Failed
	tracer().Infof("SLR(1) table built with %d conflict(s)", len(conflicts))
	return false
}

// Phase reports how far Build() has progressed.
func (b *Builder) Phase() Phase {
	return b.phase
}

// Automaton returns the CFSM built by Build(). Nil before AutomatonBuilt.
func (b *Builder) Automaton() *Automaton {
	return b.auto
}

// AugmentedGrammar returns the S′-augmented grammar Build() derived from
// the input grammar.
func (b *Builder) AugmentedGrammar() *grammar.Grammar {
	return b.ag
}

// Analysis returns the FIRST/FOLLOW analysis computed over the augmented
// grammar.
func (b *Builder) Analysis() *grammar.Analysis {
	return b.an
}

// Tables returns the (possibly conflicted) ACTION/GOTO tables.
func (b *Builder) Tables() *Tables {
	return b.t
}

// Conflicts returns every conflict detected while deriving the tables.
func (b *Builder) Conflicts() []*grammar.BuildConflict {
	return b.conflicts
}

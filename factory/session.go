package factory

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/npillmayer/schuko/tracing"

	"github.com/caldera-edu/gradus/grammar"
	"github.com/caldera-edu/gradus/ll1"
	"github.com/caldera-edu/gradus/slr1"
)

// tracer traces with key "gradus.factory", following the teacher's
// per-package tracer() convention (see grammar/analysis.go, ll1/builder.go,
// slr1/automaton.go).
func tracer() tracing.Trace {
	return tracing.Select("gradus.factory")
}

// Session owns one construction request: the Factory's retry budget plus
// whatever Grammar and Builder it ultimately produces. Its lifetime is the
// single generate-or-build call; nothing about it is shared across
// requests, so multiple Sessions may run concurrently without
// synchronisation (§5).
type Session struct {
	ID          uuid.UUID
	RetryBudget int
}

// NewSession creates a Session with the given retry budget.
func NewSession(retryBudget int) *Session {
	return &Session{ID: uuid.New(), RetryBudget: retryBudget}
}

// GenerateLL1 repeatedly picks a Level-`level` candidate, runs it through
// the feasibility filter (with direct-left-recursion elimination), and
// attempts the LL(1) builder, until one succeeds or the retry budget is
// exhausted.
func (s *Session) GenerateLL1(level int, rng *rand.Rand) (*grammar.Grammar, *ll1.Builder, error) {
	tracer().Infof("session %s: generating LL(1) grammar at level %d, budget %d", s.ID, level, s.RetryBudget)
	for attempt := 0; attempt < s.RetryBudget; attempt++ {
		cand := generate(level, rng)
		desc, order, ok := feasible(cand.desc, cand.order, true)
		if !ok {
			tracer().Debugf("session %s: attempt %d rejected by feasibility filter", s.ID, attempt)
			continue
		}
		g, err := grammar.NewGrammar(grammar.GrammarDescription(desc), order)
		if err != nil {
			tracer().Debugf("session %s: attempt %d rejected by NewGrammar: %v", s.ID, attempt, err)
			continue
		}
		an := grammar.NewAnalysis(g)
		b := ll1.NewBuilder(g, an)
		if b.Build() {
			tracer().Infof("session %s: LL(1) succeeded on attempt %d", s.ID, attempt)
			return g, b, nil
		}
		tracer().Debugf("session %s: attempt %d built a grammar with LL(1) conflicts", s.ID, attempt)
	}
	tracer().Errorf("session %s: exhausted %d attempts without an LL(1) grammar at level %d", s.ID, s.RetryBudget, level)
	return nil, nil, &grammar.GenerationExhausted{Level: level, Attempts: s.RetryBudget, Target: "LL(1)"}
}

// GenerateSLR1 is GenerateLL1's SLR(1) counterpart: direct left recursion
// is not eliminated (SLR tolerates it), only productivity and
// reachability gate a candidate.
func (s *Session) GenerateSLR1(level int, rng *rand.Rand) (*grammar.Grammar, *slr1.Builder, error) {
	tracer().Infof("session %s: generating SLR(1) grammar at level %d, budget %d", s.ID, level, s.RetryBudget)
	for attempt := 0; attempt < s.RetryBudget; attempt++ {
		cand := generate(level, rng)
		desc, order, ok := feasible(cand.desc, cand.order, false)
		if !ok {
			tracer().Debugf("session %s: attempt %d rejected by feasibility filter", s.ID, attempt)
			continue
		}
		g, err := grammar.NewGrammar(grammar.GrammarDescription(desc), order)
		if err != nil {
			tracer().Debugf("session %s: attempt %d rejected by NewGrammar: %v", s.ID, attempt, err)
			continue
		}
		b := slr1.NewBuilder(g)
		if b.Build() {
			tracer().Infof("session %s: SLR(1) succeeded on attempt %d", s.ID, attempt)
			return g, b, nil
		}
		tracer().Debugf("session %s: attempt %d built a grammar with SLR(1) conflicts", s.ID, attempt)
	}
	tracer().Errorf("session %s: exhausted %d attempts without an SLR(1) grammar at level %d", s.ID, s.RetryBudget, level)
	return nil, nil, &grammar.GenerationExhausted{Level: level, Attempts: s.RetryBudget, Target: "SLR(1)"}
}

package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key "gradus.grammar", following the teacher's
// per-package tracer() convention (see gorgo/lr/doc.go's T()).
func tracer() tracing.Trace {
	return tracing.Select("gradus.grammar")
}

// Analysis is the SetEngine: it computes FIRST and FOLLOW over a Grammar by
// least fixed point, shared by both the LL(1) and SLR(1) builders. Analysis
// never mutates the Grammar it was built from.
type Analysis struct {
	g      *Grammar
	first  map[string]SymbolSet
	follow map[string]SymbolSet
}

// NewAnalysis creates an Analysis for g and immediately computes FIRST and
// FOLLOW. FOLLOW computation depends on completed FIRST sets (§4.3 of the
// upstream specification), so both are always computed together.
func NewAnalysis(g *Grammar) *Analysis {
	a := &Analysis{g: g}
	a.computeFirst()
	a.computeFollow()
	return a
}

// Grammar returns the analysed grammar.
func (a *Analysis) Grammar() *Grammar {
	return a.g
}

// First returns FIRST(A) for a non-terminal A: the terminals that can begin
// some string derived from A, plus Epsilon if A is nullable.
func (a *Analysis) First(nt string) SymbolSet {
	out := make(SymbolSet, len(a.first[nt]))
	for s := range a.first[nt] {
		out[s] = true
	}
	return out
}

// FirstOfString computes FIRST(α) for an arbitrary string of grammar
// symbols, per §4.3. END occurring inside the string collapses to Epsilon
// (the rest of the string is deemed nullable-to-the-end) rather than being
// reported as a FIRST member — END must never appear in a FIRST set.
func (a *Analysis) FirstOfString(syms []Symbol) SymbolSet {
	return a.firstOfSymbols(syms)
}

// Follow returns FOLLOW(A) for a non-terminal A.
func (a *Analysis) Follow(nt string) SymbolSet {
	out := make(SymbolSet, len(a.follow[nt]))
	for s := range a.follow[nt] {
		out[s] = true
	}
	return out
}

func (a *Analysis) firstOfSymbols(syms []Symbol) SymbolSet {
	if len(syms) == 1 && syms[0] == Epsilon {
		return NewSymbolSet(Epsilon)
	}
	result := make(SymbolSet)
	symtab := a.g.SymbolTable()
	for _, sym := range syms {
		if sym == End {
			// a production A -> α $ is nullable-to-the-end; END is never a
			// FIRST member (see design notes, §9).
			result.Add(Epsilon)
			return result
		}
		isTerm, _ := symtab.IsTerminal(sym.Name)
		if isTerm {
			result.Add(sym)
			return result
		}
		fn := a.first[sym.Name]
		result.AddAll(fn) // excludes Epsilon
		if !fn.Contains(Epsilon) {
			return result
		}
		// sym is nullable: continue scanning the remainder of the string
	}
	result.Add(Epsilon) // every symbol scanned was nullable
	return result
}

func (a *Analysis) computeFirst() {
	a.first = make(map[string]SymbolSet, len(a.g.order))
	for _, nt := range a.g.order {
		a.first[nt] = make(SymbolSet)
	}
	for changed := true; changed; {
		changed = false
		for _, nt := range a.g.order {
			for _, p := range a.g.ProductionsOf(nt) {
				fp := a.firstOfSymbols(p.Symbols)
				if a.first[nt].AddAllIncludingEpsilon(fp) {
					changed = true
				}
			}
		}
	}
	tracer().Debugf("FIRST sets computed for %d non-terminals", len(a.first))
}

func (a *Analysis) computeFollow() {
	a.follow = make(map[string]SymbolSet, len(a.g.order))
	for _, nt := range a.g.order {
		a.follow[nt] = make(SymbolSet)
	}
	a.follow[a.g.Axiom()].Add(End)
	for changed := true; changed; {
		changed = false
		for _, nt := range a.g.order {
			for _, p := range a.g.ProductionsOf(nt) {
				syms := p.Symbols
				for idx, s := range syms {
					if s == Epsilon || s == End {
						continue
					}
					isTerm, _ := a.g.SymbolTable().IsTerminal(s.Name)
					if isTerm {
						continue
					}
					beta := syms[idx+1:]
					firstBeta := a.firstOfSymbols(beta)
					if a.follow[s.Name].AddAll(firstBeta) {
						changed = true
					}
					if len(beta) == 0 || firstBeta.Contains(Epsilon) {
						if a.follow[s.Name].AddAll(a.follow[nt]) {
							changed = true
						}
					}
				}
			}
		}
	}
	tracer().Debugf("FOLLOW sets computed for %d non-terminals", len(a.follow))
}

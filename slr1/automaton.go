package slr1

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"github.com/caldera-edu/gradus/grammar"
)

// tracer traces with key "gradus.slr1", following the teacher's per-package
// tracer() convention (see gorgo/lr/tables.go's tracer()).
func tracer() tracing.Trace {
	return tracing.Select("gradus.slr1")
}

// Automaton is the characteristic finite state machine (CFSM) for an
// augmented grammar: the canonical collection of LR(0) item sets together
// with the GOTO/δ transitions between them. States are numbered in the
// order they are first discovered by the breadth-first search from the
// start state, mirroring gorgo's CFSM/TableGenerator.buildCFSM.
type Automaton struct {
	g           *grammar.Grammar // the augmented grammar this CFSM is for
	StartSymbol grammar.Symbol   // the fresh S′
	States      []*grammar.State
	// Transitions[stateID][symbol] = stateID, absent when there is no edge.
	Transitions map[int]map[grammar.Symbol]int
}

// closure computes the closure of an LR(0) item set: repeatedly add, for
// every item (A, α, i) with α[i] a non-terminal B, every start item
// (B, γ, 0) for each production of B, until no more items are added. A
// non-terminal already expanded within this call is not re-expanded (the
// visited set is scoped to this single closure computation), per §4.5.
func closure(g *grammar.Grammar, items grammar.ItemSet) grammar.ItemSet {
	C := make(grammar.ItemSet, len(items))
	for it := range items {
		C.Add(it)
	}
	visited := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for _, it := range C.Sorted() {
			sym, ok := it.SymbolAfterDot(g)
			if !ok {
				continue
			}
			isTerm, err := g.SymbolTable().IsTerminal(sym.Name)
			if err != nil || isTerm {
				continue
			}
			if visited[sym.Name] {
				continue
			}
			visited[sym.Name] = true
			for idx := range g.ProductionsOf(sym.Name) {
				ni := grammar.StartItem(sym.Name, idx)
				if C.Add(ni) {
					changed = true
				}
			}
		}
	}
	return C
}

// gotoSet computes GOTO(I, X): advance every item of I whose symbol after
// the dot is X, then take the closure of the result. X ranges over all
// grammar symbols except EPSILON and END.
func gotoSet(g *grammar.Grammar, items grammar.ItemSet, x grammar.Symbol) grammar.ItemSet {
	moved := make(grammar.ItemSet)
	for _, it := range items.Sorted() {
		sym, ok := it.SymbolAfterDot(g)
		if ok && sym == x {
			moved.Add(it.Advance(g))
		}
	}
	if len(moved) == 0 {
		return moved
	}
	return closure(g, moved)
}

// nonEpsilonEndSymbols returns every grammar symbol except EPSILON and END,
// in the grammar's deterministic enumeration order.
func nonEpsilonEndSymbols(g *grammar.Grammar) []grammar.Symbol {
	var out []grammar.Symbol
	g.EachSymbol(func(s grammar.Symbol) {
		if s == grammar.Epsilon || s == grammar.End {
			return
		}
		out = append(out, s)
	})
	return out
}

// Build constructs the canonical LR(0) collection for an already-augmented
// grammar ag (see grammar.Grammar.Augmented). The start state is the
// closure of the augmented axiom's single item; states are discovered by
// breadth-first search and numbered in discovery order.
func Build(ag *grammar.Grammar) *Automaton {
	tracer().Debugf("=== building CFSM for %s ===", ag.Axiom())
	start := closure(ag, grammar.NewItemSet(grammar.StartItem(ag.Axiom(), 0)))

	a := &Automaton{
		g:           ag,
		StartSymbol: grammar.Symbol{Name: ag.Axiom()},
		Transitions: make(map[int]map[grammar.Symbol]int),
	}
	keyToID := make(map[string]int)

	addState := func(items grammar.ItemSet) int {
		probe := &grammar.State{ID: -1, Items: items}
		key := probe.Key()
		if id, ok := keyToID[key]; ok {
			return id
		}
		id := len(a.States)
		st := &grammar.State{ID: id, Items: items}
		a.States = append(a.States, st)
		keyToID[key] = id
		return id
	}

	startID := addState(start)
	// worklist is a FIFO of not-yet-expanded state IDs, following the
	// gorgo/lr/tables.go convention of driving CFSM construction off of a
	// gods container rather than a hand-rolled slice queue.
	worklist := arraylist.New()
	worklist.Add(startID)
	symbols := nonEpsilonEndSymbols(ag)
	for !worklist.Empty() {
		head, _ := worklist.Get(0)
		worklist.Remove(0)
		id := head.(int)
		st := a.States[id]
		for _, sym := range symbols {
			next := gotoSet(ag, st.Items, sym)
			if len(next) == 0 {
				continue
			}
			probe := &grammar.State{ID: -1, Items: next}
			key := probe.Key()
			_, seen := keyToID[key]
			nid := addState(next)
			if a.Transitions[id] == nil {
				a.Transitions[id] = make(map[grammar.Symbol]int)
			}
			a.Transitions[id][sym] = nid
			if !seen {
				worklist.Add(nid)
			}
		}
	}
	tracer().Infof("CFSM built: %d states", len(a.States))
	return a
}

// State returns the state with the given id.
func (a *Automaton) State(id int) *grammar.State {
	return a.States[id]
}

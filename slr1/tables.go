package slr1

import "github.com/caldera-edu/gradus/grammar"

// ActionKind classifies one ACTION table entry.
type ActionKind int

const (
	// ActionShift moves the parser forward, consuming the lookahead terminal.
	ActionShift ActionKind = iota
	// ActionReduce replaces a handle on the stack with its left-hand side.
	ActionReduce
	// ActionAccept signals a completed parse of the augmented axiom.
	ActionAccept
)

func (k ActionKind) String() string {
	switch k {
	case ActionShift:
		return "shift"
	case ActionReduce:
		return "reduce"
	case ActionAccept:
		return "accept"
	default:
		return "empty"
	}
}

// ActionEntry is one candidate action for an ACTION cell. A cell holding
// more than one entry after Build() is a conflict.
type ActionEntry struct {
	Kind        ActionKind
	NonTerminal string // set for ActionReduce
	ProdIndex   int    // set for ActionReduce
}

// Tables holds the ACTION and GOTO tables produced for an Automaton.
type Tables struct {
	// Action[stateID][terminal] holds 1 entry (no conflict) or more (conflict).
	Action map[int]map[grammar.Symbol][]ActionEntry
	// Goto[stateID][nonTerminal] = destination state id.
	Goto map[int]map[string]int
}

// ActionCell returns the (possibly conflicted) action entries for
// (stateID, terminal).
func (t *Tables) ActionCell(stateID int, terminal grammar.Symbol) []ActionEntry {
	return t.Action[stateID][terminal]
}

// GotoState returns the destination state for (stateID, nonTerminal), and
// whether a transition exists.
func (t *Tables) GotoState(stateID int, nonTerminal string) (int, bool) {
	row, ok := t.Goto[stateID]
	if !ok {
		return 0, false
	}
	id, ok := row[nonTerminal]
	return id, ok
}

func newTables() *Tables {
	return &Tables{
		Action: make(map[int]map[grammar.Symbol][]ActionEntry),
		Goto:   make(map[int]map[string]int),
	}
}

// buildTables walks every state of the automaton and emits ACTION/GOTO
// entries per §4.5's steps 1-4, applying the SLR-style conflict policy: a
// second Shift over a Shift is a no-op; a second Reduce by the same
// production is a no-op; anything else occupying an already-filled cell is
// a conflict, recorded but not fatal — the table keeps the first entry plus
// every competing one, for diagnostic rendering.
func buildTables(a *Automaton, an *grammar.Analysis) (*Tables, []*grammar.BuildConflict) {
	g := a.g
	axiom := g.Axiom() // the augmented S′
	tables := newTables()
	var conflicts []*grammar.BuildConflict

	for _, st := range a.States {
		id := st.ID
		for _, it := range st.Items.Sorted() {
			sym, hasNext := it.SymbolAfterDot(g)
			if hasNext {
				isTerm, _ := g.SymbolTable().IsTerminal(sym.Name)
				if isTerm && sym != grammar.End {
					insertAction(tables, &conflicts, g, id, sym, ActionEntry{Kind: ActionShift})
				}
				continue
			}
			// complete item
			if it.NonTerminal == axiom {
				insertAction(tables, &conflicts, g, id, grammar.End, ActionEntry{Kind: ActionAccept})
				continue
			}
			for _, t := range an.Follow(it.NonTerminal).Slice() {
				if t == grammar.Epsilon {
					continue
				}
				insertAction(tables, &conflicts, g, id, t, ActionEntry{
					Kind: ActionReduce, NonTerminal: it.NonTerminal, ProdIndex: it.ProdIndex,
				})
			}
		}
		for sym, nid := range a.Transitions[id] {
			isTerm, _ := g.SymbolTable().IsTerminal(sym.Name)
			if !isTerm {
				if tables.Goto[id] == nil {
					tables.Goto[id] = make(map[string]int)
				}
				tables.Goto[id][sym.Name] = nid
			}
		}
	}
	return tables, conflicts
}

func insertAction(t *Tables, conflicts *[]*grammar.BuildConflict, g *grammar.Grammar,
	stateID int, sym grammar.Symbol, entry ActionEntry) {
	if t.Action[stateID] == nil {
		t.Action[stateID] = make(map[grammar.Symbol][]ActionEntry)
	}
	existing := t.Action[stateID][sym]
	for _, e := range existing {
		if e == entry {
			return // exact duplicate: double-shift or reduce-by-same-production, a no-op
		}
	}
	t.Action[stateID][sym] = append(existing, entry)
	if len(existing) == 0 {
		return
	}
	kind := grammar.ReduceReduceConflict
	for _, e := range append(existing, entry) {
		if e.Kind == ActionShift {
			kind = grammar.ShiftReduceConflict
			break
		}
	}
	var prods []grammar.Production
	for _, e := range append(existing, entry) {
		if e.Kind == ActionReduce {
			if p, ok := g.Rule(e.NonTerminal, e.ProdIndex); ok {
				prods = append(prods, p)
			}
		}
	}
	*conflicts = append(*conflicts, &grammar.BuildConflict{
		Kind: kind, Terminal: sym, StateID: stateID, Productions: prods,
	})
}

package grammar

// Item is an LR(0) item: a production together with a dot position,
// denoting parsing progress. Per the design notes (§9 of the upstream
// specification) it is represented as an index-pair into the Grammar's
// production storage rather than holding a direct reference, so that items
// stay cheap, comparable, and stable even if the grammar's internal maps are
// rehashed. This makes Item directly usable as a Go map key.
type Item struct {
	NonTerminal string
	ProdIndex   int
	Dot         int
}

// StartItem builds the initial item (A, α, 0) for the production at index
// prodIndex of non-terminal nt.
func StartItem(nt string, prodIndex int) Item {
	return Item{NonTerminal: nt, ProdIndex: prodIndex, Dot: 0}
}

// Production resolves the item's underlying production in g.
func (i Item) Production(g *Grammar) Production {
	p, _ := g.Rule(i.NonTerminal, i.ProdIndex)
	return p
}

// Complete reports whether the dot has reached the end of the production.
func (i Item) Complete(g *Grammar) bool {
	p := i.Production(g)
	if p.IsEpsilon() {
		return true
	}
	return i.Dot >= p.Len()
}

// SymbolAfterDot returns the symbol immediately to the right of the dot, and
// true. If the item is complete, it returns the zero Symbol and false — a
// sentinel distinct from Epsilon, as the design notes require (Epsilon is
// never reused here to mean "no symbol").
func (i Item) SymbolAfterDot(g *Grammar) (Symbol, bool) {
	p := i.Production(g)
	if p.IsEpsilon() || i.Dot >= p.Len() {
		return Symbol{}, false
	}
	return p.At(i.Dot), true
}

// Advance returns the item with the dot moved one position to the right.
// Advancing a complete item is a precondition violation and panics.
func (i Item) Advance(g *Grammar) Item {
	if i.Complete(g) {
		panic("grammar: cannot advance a complete item")
	}
	return Item{NonTerminal: i.NonTerminal, ProdIndex: i.ProdIndex, Dot: i.Dot + 1}
}

// String renders an item as "A -> α·β".
func (i Item) String(g *Grammar) string {
	p := i.Production(g)
	out := i.NonTerminal + " -> "
	if p.IsEpsilon() {
		return out + "·"
	}
	for pos, s := range p.Symbols {
		if pos == i.Dot {
			out += "·"
		}
		out += s.Name + " "
	}
	if i.Dot == len(p.Symbols) {
		out += "·"
	}
	return out
}

// ItemSet is a set of LR(0) items, used both as a closure result and as the
// content key of a CFSM State.
type ItemSet map[Item]bool

// NewItemSet builds a set from the given items.
func NewItemSet(items ...Item) ItemSet {
	s := make(ItemSet, len(items))
	for _, it := range items {
		s[it] = true
	}
	return s
}

// Add inserts an item, reporting whether the set grew.
func (s ItemSet) Add(i Item) bool {
	if s[i] {
		return false
	}
	s[i] = true
	return true
}

// Equal reports whether two item sets contain exactly the same items. Two
// CFSM states are equal iff their item sets are equal.
func (s ItemSet) Equal(other ItemSet) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if !other[i] {
			return false
		}
	}
	return true
}

// Sorted returns the set's items in a deterministic order: by non-terminal
// name, then production index, then dot position. This is the tie-break
// order §4.5 requires for reproducible table construction.
func (s ItemSet) Sorted() []Item {
	out := make([]Item, 0, len(s))
	for i := range s {
		out = append(out, i)
	}
	sortItems(out)
	return out
}

func sortItems(items []Item) {
	// simple insertion sort: item sets are small (bounded by grammar size)
	for i := 1; i < len(items); i++ {
		j := i
		for j > 0 && itemLess(items[j], items[j-1]) {
			items[j], items[j-1] = items[j-1], items[j]
			j--
		}
	}
}

func itemLess(a, b Item) bool {
	if a.NonTerminal != b.NonTerminal {
		return a.NonTerminal < b.NonTerminal
	}
	if a.ProdIndex != b.ProdIndex {
		return a.ProdIndex < b.ProdIndex
	}
	return a.Dot < b.Dot
}

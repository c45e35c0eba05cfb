package grammar

import (
	"fmt"
	"sort"
	"strings"
)

// Production is a finite ordered sequence of symbols forming the
// right-hand side of a rule. A production of length 1 containing only
// Epsilon denotes the empty right-hand side; Epsilon never appears
// alongside other symbols in the same production.
type Production struct {
	Symbols []Symbol
}

// NewProduction builds a production from the given symbols.
func NewProduction(syms ...Symbol) Production {
	return Production{Symbols: append([]Symbol(nil), syms...)}
}

// IsEpsilon reports whether this production is the sole-epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p.Symbols) == 1 && p.Symbols[0] == Epsilon
}

// Len returns the number of symbols in the production (1 for an epsilon
// production, by convention).
func (p Production) Len() int {
	return len(p.Symbols)
}

// At returns the symbol at position i.
func (p Production) At(i int) Symbol {
	return p.Symbols[i]
}

// Equal reports content equality between two productions.
func (p Production) Equal(other Production) bool {
	if len(p.Symbols) != len(other.Symbols) {
		return false
	}
	for i, s := range p.Symbols {
		if other.Symbols[i] != s {
			return false
		}
	}
	return true
}

func (p Production) String() string {
	names := make([]string, len(p.Symbols))
	for i, s := range p.Symbols {
		names[i] = s.Name
	}
	return strings.Join(names, " ")
}

// ruleEntry is one (non-terminal, production) pair, returned by operations
// that scan across the whole grammar.
type ruleEntry struct {
	NonTerminal string
	Index       int
	Production  Production
}

// Grammar is a mapping from each non-terminal to an ordered list of
// productions, plus a designated axiom. It is created in one shot via
// NewGrammar and is immutable thereafter: package factory applies
// direct-left-recursion elimination to the raw description before
// NewGrammar, and Augmented returns a new Grammar.
type Grammar struct {
	symtab *SymbolTable
	// order records non-terminals in first-declared order, for deterministic
	// enumeration (NonTerminals, EachSymbol, String).
	order []string
	rules map[string][]Production
	axiom string
}

// GrammarDescription is the wire format accepted by NewGrammar: a mapping
// from non-terminal name to an ordered list of productions, each production
// an ordered list of symbol names. Lower-case-initial names are terminals,
// upper-case-initial (or trailing "′") names are non-terminals; "EPSILON"
// and "$" are the reserved symbols.
type GrammarDescription map[string][][]string

// NewGrammar builds a Grammar from a description in one shot. If no
// non-terminal named "S" is present, a default axiom "S" is synthesised
// with a single production S -> A $, where A is the lexicographically
// smallest pre-existing non-terminal (a deterministic resolution of the
// upstream "arbitrary" choice — see DESIGN.md).
func NewGrammar(desc GrammarDescription, order []string) (*Grammar, error) {
	if len(desc) == 0 {
		return nil, &ConfigurationError{Msg: "grammar description is empty"}
	}
	g := &Grammar{
		symtab: NewSymbolTable(),
		rules:  make(map[string][]Production),
	}
	// Register non-terminals first so that forward references resolve.
	declOrder := order
	if len(declOrder) == 0 {
		declOrder = sortedKeys(desc)
	}
	for _, nt := range declOrder {
		if _, ok := desc[nt]; !ok {
			return nil, &ConfigurationError{Msg: fmt.Sprintf("order lists unknown non-terminal %q", nt)}
		}
		if err := g.symtab.Put(nt, false); err != nil {
			return nil, err
		}
		g.order = append(g.order, nt)
	}
	for _, nt := range g.order {
		for _, rhs := range desc[nt] {
			prod, err := g.toProduction(rhs)
			if err != nil {
				return nil, err
			}
			if err := validateProduction(prod); err != nil {
				return nil, err
			}
			g.rules[nt] = append(g.rules[nt], prod)
		}
	}
	if err := g.resolveAxiom(); err != nil {
		return nil, err
	}
	return g, nil
}

func sortedKeys(desc GrammarDescription) []string {
	out := make([]string, 0, len(desc))
	for k := range desc {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// toProduction converts symbol names to Symbols, classifying and
// registering terminals on first sight.
func (g *Grammar) toProduction(rhs []string) (Production, error) {
	syms := make([]Symbol, 0, len(rhs))
	for _, name := range rhs {
		sym := Symbol{Name: name}
		switch {
		case sym == Epsilon || sym == End:
			// reserved, already registered as terminal
		case isNonTerminalName(name):
			if !g.symtab.Has(name) {
				return Production{}, &ConfigurationError{Msg: fmt.Sprintf(
					"production references undeclared non-terminal %q", name)}
			}
		default:
			if err := g.symtab.Put(name, true); err != nil {
				return Production{}, err
			}
		}
		syms = append(syms, sym)
	}
	return Production{Symbols: syms}, nil
}

// IsNonTerminalName applies the wire convention (upper-case initial, or a
// trailing prime, marks a non-terminal) to a raw symbol name, ahead of
// Grammar construction. Used by package factory while composing candidate
// descriptions.
func IsNonTerminalName(name string) bool {
	return isNonTerminalName(name)
}

// isNonTerminalName applies the wire convention: upper-case initial, or a
// trailing prime, marks a non-terminal.
func isNonTerminalName(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasSuffix(name, "′") || strings.HasSuffix(name, "'") {
		return true
	}
	r := name[0]
	return r >= 'A' && r <= 'Z'
}

func validateProduction(p Production) error {
	if len(p.Symbols) > 1 {
		for _, s := range p.Symbols {
			if s == Epsilon {
				return &ConfigurationError{Msg: "EPSILON cannot appear alongside other symbols in a production"}
			}
		}
	}
	return nil
}

// resolveAxiom finds a declared "S", or synthesises one, per §4.2's
// convention.
func (g *Grammar) resolveAxiom() error {
	if g.symtab.Has("S") {
		if prods := g.rules["S"]; len(prods) == 0 {
			return &ConfigurationError{Msg: "axiom S is declared but has no productions"}
		}
		g.axiom = "S"
		return nil
	}
	if len(g.order) == 0 {
		return &ConfigurationError{Msg: "grammar has no non-terminals to anchor a synthesised axiom"}
	}
	candidates := append([]string(nil), g.order...)
	sort.Strings(candidates)
	base := candidates[0]
	if err := g.symtab.Put("S", false); err != nil {
		return err
	}
	g.order = append([]string{"S"}, g.order...)
	g.rules["S"] = []Production{NewProduction(Symbol{Name: base}, End)}
	g.axiom = "S"
	return nil
}

// Axiom returns the grammar's start non-terminal.
func (g *Grammar) Axiom() string {
	return g.axiom
}

// SymbolTable returns the grammar's symbol classifier.
func (g *Grammar) SymbolTable() *SymbolTable {
	return g.symtab
}

// NonTerminals returns declared non-terminals in declaration order.
func (g *Grammar) NonTerminals() []string {
	return append([]string(nil), g.order...)
}

// ProductionsOf returns the ordered list of productions for a non-terminal.
func (g *Grammar) ProductionsOf(nt string) []Production {
	return g.rules[nt]
}

// Rule returns the production at index i for non-terminal nt, along with
// whether it exists.
func (g *Grammar) Rule(nt string, i int) (Production, bool) {
	prods := g.rules[nt]
	if i < 0 || i >= len(prods) {
		return Production{}, false
	}
	return prods[i], true
}

// HasEmpty reports whether nt has a production whose sole symbol is Epsilon.
func (g *Grammar) HasEmpty(nt string) bool {
	for _, p := range g.rules[nt] {
		if p.IsEpsilon() {
			return true
		}
	}
	return false
}

// FilterByRhsOccurrence returns every (non-terminal, production-index) pair
// such that sym occurs somewhere in that production's right-hand side.
// Analysis computes FOLLOW by scanning productions directly and does not
// call it.
func (g *Grammar) FilterByRhsOccurrence(sym Symbol) []ruleEntry {
	var out []ruleEntry
	for _, nt := range g.order {
		for idx, p := range g.rules[nt] {
			for _, s := range p.Symbols {
				if s == sym {
					out = append(out, ruleEntry{NonTerminal: nt, Index: idx, Production: p})
					break
				}
			}
		}
	}
	return out
}

// EachSymbol invokes fn once for every distinct symbol registered in the
// grammar's SymbolTable, terminals first in sorted order, then
// non-terminals in declaration order. Mirrors gorgo's Grammar.EachSymbol
// used for deterministic table column iteration.
func (g *Grammar) EachSymbol(fn func(Symbol)) {
	terms := g.symtab.Terminals()
	sort.Strings(terms)
	for _, t := range terms {
		fn(Symbol{Name: t})
	}
	for _, nt := range g.order {
		fn(Symbol{Name: nt})
	}
}

// Augmented returns a new Grammar with a fresh start symbol S′ and a single
// production S′ -> <axiom>, without mutating the receiver. The new
// non-terminal's name is "<axiom>′". Builders call this internally so that
// the SLR(1) construction never mutates the Grammar handed to it.
func (g *Grammar) Augmented() (*Grammar, Symbol) {
	primed := g.axiom + "′"
	for g.symtab.Has(primed) {
		primed += "′"
	}
	ng := &Grammar{
		symtab: g.symtab.clone(),
		order:  append([]string{primed}, g.order...),
		rules:  make(map[string][]Production, len(g.rules)+1),
		axiom:  primed,
	}
	_ = ng.symtab.Put(primed, false)
	for nt, prods := range g.rules {
		ng.rules[nt] = append([]Production(nil), prods...)
	}
	ng.rules[primed] = []Production{NewProduction(Symbol{Name: g.axiom})}
	return ng, Symbol{Name: primed}
}

// String renders a debug dump of the grammar, one non-terminal per line,
// productions separated by "|" — the same shape as the teacher's
// lr.Grammar.Dump() and the original implementation's Grammar::Debug().
func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "axiom: %s\n", g.axiom)
	for _, nt := range g.order {
		fmt.Fprintf(&b, "%s ->", nt)
		for i, p := range g.rules[nt] {
			if i > 0 {
				b.WriteString(" |")
			}
			fmt.Fprintf(&b, " %s", p.String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

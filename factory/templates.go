package factory

import "github.com/caldera-edu/gradus/grammar"

// template is one Level-1 item: a single non-terminal, here always named
// "A", with a fixed set of productions over the terminal alphabet
// {a, b, c}. Ported verbatim (shape-for-shape) from GrammarFactory::Init()
// in original_source/grammar_factory.cpp.
type template struct {
	name  string
	rules [][]string
}

// templates is the fixed Level-1 corpus: nine single-non-terminal grammars,
// each a distinct recursion shape (right/left recursion, bracketing,
// nullable, non-nullable).
var templates = []template{
	{name: "A->abA|a", rules: [][]string{{"a", "b", "A"}, {"a"}}},
	{name: "A->abA|ab", rules: [][]string{{"a", "b", "A"}, {"a", "b"}}},
	{name: "A->aAb|EPSILON", rules: [][]string{{"a", "A", "b"}, {"EPSILON"}}},
	{name: "A->Aa|EPSILON", rules: [][]string{{"A", "a"}, {"EPSILON"}}},
	{name: "A->aA|EPSILON", rules: [][]string{{"a", "A"}, {"EPSILON"}}},
	{name: "A->aAc|b", rules: [][]string{{"a", "A", "c"}, {"b"}}},
	{name: "A->aAa|b", rules: [][]string{{"a", "A", "a"}, {"b"}}},
	{name: "A->Aa|b", rules: [][]string{{"A", "a"}, {"b"}}},
	{name: "A->bA|a", rules: [][]string{{"b", "A"}, {"a"}}},
}

// terminalPool is the reservoir composition draws fresh terminals from when
// a base terminal must be relabelled to avoid clashing with an incoming
// combinator's alphabet. Eight letters comfortably covers levels 1..7 (each
// level introduces at most one new terminal and retires at most one).
var terminalPool = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

// terminalsOf collects the distinct terminal symbol names occurring in a
// template's rules (every lower-case token except the reserved EPSILON).
func terminalsOf(rules [][]string) map[string]bool {
	out := make(map[string]bool)
	for _, rhs := range rules {
		for _, sym := range rhs {
			if sym == "EPSILON" || grammar.IsNonTerminalName(sym) {
				continue
			}
			out[sym] = true
		}
	}
	return out
}

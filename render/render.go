package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/caldera-edu/gradus/grammar"
	"github.com/caldera-edu/gradus/ll1"
	"github.com/caldera-edu/gradus/slr1"
)

// orderedTerminals returns every non-EPSILON terminal of g in sorted order,
// followed by END — the column order every table in this package uses.
func orderedTerminals(g *grammar.Grammar) []grammar.Symbol {
	var names []string
	for _, name := range g.SymbolTable().Terminals() {
		if name == grammar.Epsilon.Name || name == grammar.End.Name {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]grammar.Symbol, 0, len(names)+1)
	for _, n := range names {
		out = append(out, grammar.Symbol{Name: n})
	}
	return append(out, grammar.End)
}

// Grammar boxes a debug dump of g, titled with its axiom.
func Grammar(g *grammar.Grammar) string {
	return pterm.DefaultBox.WithTitle(fmt.Sprintf("grammar (axiom %s)", g.Axiom())).
		Sprint(strings.TrimRight(g.String(), "\n"))
}

// FirstFollow renders a three-column table (non-terminal, FIRST, FOLLOW),
// one row per non-terminal.
func FirstFollow(g *grammar.Grammar, an *grammar.Analysis) string {
	data := pterm.TableData{{"non-terminal", "FIRST", "FOLLOW"}}
	for _, nt := range g.NonTerminals() {
		data = append(data, []string{nt, symbolSetString(an.First(nt)), symbolSetString(an.Follow(nt))})
	}
	out, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	return out
}

func symbolSetString(set grammar.SymbolSet) string {
	syms := set.Slice()
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// LL1Table renders the predictive table: one row per non-terminal, one
// column per terminal (plus END). A cell with more than one production is
// rendered with every competing alternative, semicolon-separated, so a
// conflict is visually obvious.
func LL1Table(g *grammar.Grammar, t *ll1.Table) string {
	terms := orderedTerminals(g)
	header := []string{"non-terminal"}
	for _, term := range terms {
		header = append(header, term.Name)
	}
	data := pterm.TableData{header}
	for _, nt := range g.NonTerminals() {
		row := []string{nt}
		for _, term := range terms {
			prods := t.Cell(nt, term)
			row = append(row, productionsString(prods))
		}
		data = append(data, row)
	}
	out, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	return out
}

func productionsString(prods []grammar.Production) string {
	if len(prods) == 0 {
		return ""
	}
	parts := make([]string, len(prods))
	for i, p := range prods {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ")
}

// SLR1Tables renders both the ACTION and GOTO tables for an augmented
// grammar's canonical collection, one row per automaton state.
func SLR1Tables(ag *grammar.Grammar, auto *slr1.Automaton, tables *slr1.Tables) string {
	terms := orderedTerminals(ag)
	nts := ag.NonTerminals()

	var sb strings.Builder
	sb.WriteString(actionTableString(auto, tables, terms))
	sb.WriteString("\n")
	sb.WriteString(gotoTableString(tables, auto.States, nts))
	return sb.String()
}

func actionTableString(auto *slr1.Automaton, tables *slr1.Tables, terms []grammar.Symbol) string {
	header := []string{"state"}
	for _, t := range terms {
		header = append(header, t.Name)
	}
	data := pterm.TableData{header}
	for _, st := range auto.States {
		row := []string{fmt.Sprintf("%d", st.ID)}
		for _, t := range terms {
			row = append(row, actionEntriesString(tables.ActionCell(st.ID, t)))
		}
		data = append(data, row)
	}
	out, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	return out
}

func actionEntriesString(entries []slr1.ActionEntry) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		switch e.Kind {
		case slr1.ActionShift:
			parts[i] = "shift"
		case slr1.ActionAccept:
			parts[i] = "accept"
		default:
			parts[i] = fmt.Sprintf("reduce %s#%d", e.NonTerminal, e.ProdIndex)
		}
	}
	return strings.Join(parts, "; ")
}

func gotoTableString(tables *slr1.Tables, states []*grammar.State, nts []string) string {
	header := []string{"state"}
	header = append(header, nts...)
	data := pterm.TableData{header}
	for _, st := range states {
		row := []string{fmt.Sprintf("%d", st.ID)}
		for _, nt := range nts {
			if id, ok := tables.GotoState(st.ID, nt); ok {
				row = append(row, fmt.Sprintf("%d", id))
			} else {
				row = append(row, "")
			}
		}
		data = append(data, row)
	}
	out, _ := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	return out
}

// Verdict prints a single colored pass/fail line for a named table, per
// §6's "single-line boolean verdict per table" contract.
func Verdict(label string, ok bool) string {
	if ok {
		return pterm.Success.Sprintf("%s: OK", label)
	}
	return pterm.Error.Sprintf("%s: CONFLICT", label)
}

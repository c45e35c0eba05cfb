package factory

import (
	"math/rand"
	"sort"
)

// candidate is the in-progress grammar description being assembled across
// levels, before being handed to grammar.NewGrammar for validation.
type candidate struct {
	desc  map[string][][]string // non-terminal -> productions, raw symbol names
	order []string              // non-terminals in introduction order: A, B, C, ...
}

func pickTemplate(rng *rand.Rand) template {
	return templates[rng.Intn(len(templates))]
}

// freshLetter returns the non-terminal letter a Level-`level` composition
// introduces: B at level 2, C at level 3, and so on.
func freshLetter(level int) string {
	return string(rune('A' + level - 1))
}

func renameSelf(rules [][]string, newName string) [][]string {
	return substitute(rules, "A", newName)
}

// substitute returns a copy of rules with every occurrence of from replaced
// by to.
func substitute(rules [][]string, from, to string) [][]string {
	out := make([][]string, len(rules))
	for i, rhs := range rules {
		nrhs := make([]string, len(rhs))
		for j, sym := range rhs {
			if sym == from {
				nrhs[j] = to
			} else {
				nrhs[j] = sym
			}
		}
		out[i] = nrhs
	}
	return out
}

// baseTerminals returns, in sorted order, every terminal symbol occurring
// anywhere in desc.
func baseTerminals(desc map[string][][]string) []string {
	seen := make(map[string]bool)
	for _, rules := range desc {
		for term := range terminalsOf(rules) {
			seen[term] = true
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// generate builds a Level-`level` candidate grammar description per §4.6.
// Level 1 is a bare template renamed to "A". Level k (k>1) picks a
// Level-(k-1) base and a fresh Level-1 combinator, renames the
// combinator's non-terminal to the next letter, retires one base terminal
// in favour of one unused by the combinator, then rewires a second base
// terminal to reference the new non-terminal — wiring the combinator into
// the running grammar. The combined production map is the per-non-terminal
// union of the two renamed grammars.
func generate(level int, rng *rand.Rand) candidate {
	if level <= 1 {
		t := pickTemplate(rng)
		return candidate{
			desc:  map[string][][]string{"A": renameSelf(t.rules, "A")},
			order: []string{"A"},
		}
	}
	base := generate(level-1, rng)
	comb := pickTemplate(rng)
	letter := freshLetter(level)
	combRules := renameSelf(comb.rules, letter)
	combTerms := terminalsOf(combRules)

	baseTerms := baseTerminals(base.desc)
	if len(baseTerms) > 0 {
		var pool []string
		baseTermSet := make(map[string]bool, len(baseTerms))
		for _, t := range baseTerms {
			baseTermSet[t] = true
		}
		for _, t := range terminalPool {
			if !combTerms[t] && !baseTermSet[t] {
				pool = append(pool, t)
			}
		}
		if len(pool) > 0 {
			retire := baseTerms[rng.Intn(len(baseTerms))]
			fresh := pool[rng.Intn(len(pool))]
			for nt, rules := range base.desc {
				base.desc[nt] = substitute(rules, retire, fresh)
			}
			baseTerms = baseTerminals(base.desc)
		}
	}

	if len(baseTerms) > 0 {
		link := baseTerms[rng.Intn(len(baseTerms))]
		for nt, rules := range base.desc {
			base.desc[nt] = substitute(rules, link, letter)
		}
	}

	combined := make(map[string][][]string, len(base.desc)+1)
	for nt, rules := range base.desc {
		combined[nt] = rules
	}
	combined[letter] = combRules

	return candidate{
		desc:  combined,
		order: append(append([]string{}, base.order...), letter),
	}
}

package factory

import "github.com/caldera-edu/gradus/grammar"

// isProductive computes the productive-set closure: a non-terminal is
// productive iff some production's every symbol is either a terminal,
// EPSILON, or an already-known-productive non-terminal. Returns the
// productive set and whether every declared non-terminal is productive
// (false means the grammar is "infinite", per §4.6).
func isProductive(desc map[string][][]string) (map[string]bool, bool) {
	productive := make(map[string]bool)
	for changed := true; changed; {
		changed = false
		for nt, rules := range desc {
			if productive[nt] {
				continue
			}
			for _, rhs := range rules {
				ok := true
				for _, sym := range rhs {
					if sym == "EPSILON" {
						continue
					}
					if grammar.IsNonTerminalName(sym) && !productive[sym] {
						ok = false
						break
					}
				}
				if ok {
					productive[nt] = true
					changed = true
					break
				}
			}
		}
	}
	allProductive := true
	for nt := range desc {
		if !productive[nt] {
			allProductive = false
			break
		}
	}
	return productive, allProductive
}

// reachable computes the reachable-set closure via BFS from root through
// every production's right-hand side.
func reachable(desc map[string][][]string, root string) map[string]bool {
	visited := map[string]bool{root: true}
	queue := []string{root}
	for len(queue) > 0 {
		nt := queue[0]
		queue = queue[1:]
		for _, rhs := range desc[nt] {
			for _, sym := range rhs {
				if grammar.IsNonTerminalName(sym) && !visited[sym] {
					visited[sym] = true
					queue = append(queue, sym)
				}
			}
		}
	}
	return visited
}

func hasUnreachable(desc map[string][][]string, root string) bool {
	return len(reachable(desc, root)) != len(desc)
}

func hasDirectLeftRecursion(rules [][]string, nt string) bool {
	for _, rhs := range rules {
		if len(rhs) > 0 && rhs[0] == nt {
			return true
		}
	}
	return false
}

// eliminateDirectLeftRecursion rewrites a non-terminal A with productions
// A -> Aα1 | ... | Aαm | β1 | ... | βn into A -> β1 A′ | ... | βn A′ (or
// A -> A′ if n = 0), A′ -> α1 A′ | ... | αm A′ | EPSILON, per §4.6. Any
// EPSILON production already present on A is dropped: it is subsumed by
// the freshly introduced A′ -> EPSILON alternative.
func eliminateDirectLeftRecursion(desc map[string][][]string, nt string) (map[string][][]string, string) {
	var alphas, betas [][]string
	for _, rhs := range desc[nt] {
		switch {
		case len(rhs) > 0 && rhs[0] == nt:
			alphas = append(alphas, append([]string(nil), rhs[1:]...))
		case len(rhs) == 1 && rhs[0] == "EPSILON":
			continue
		default:
			betas = append(betas, rhs)
		}
	}
	primed := nt + "′"
	for {
		if _, exists := desc[primed]; !exists {
			break
		}
		primed += "′"
	}

	var ntRules [][]string
	if len(betas) == 0 {
		ntRules = append(ntRules, []string{primed})
	} else {
		for _, b := range betas {
			ntRules = append(ntRules, append(append([]string(nil), b...), primed))
		}
	}

	var primedRules [][]string
	for _, a := range alphas {
		primedRules = append(primedRules, append(append([]string(nil), a...), primed))
	}
	primedRules = append(primedRules, []string{"EPSILON"})

	out := make(map[string][][]string, len(desc)+1)
	for k, v := range desc {
		out[k] = v
	}
	out[nt] = ntRules
	out[primed] = primedRules
	return out, primed
}

// feasible runs the §4.6 feasibility filter over a candidate description
// rooted at root. For LL(1) candidates (forLL1), a non-terminal exhibiting
// direct left recursion is rewritten once via eliminateDirectLeftRecursion
// rather than rejected outright; for SLR(1) candidates direct recursion is
// left untouched (SLR tolerates it). Returns the (possibly rewritten)
// description, its updated non-terminal order, and whether the candidate
// survived.
func feasible(desc map[string][][]string, order []string, forLL1 bool) (map[string][][]string, []string, bool) {
	if _, allProductive := isProductive(desc); !allProductive {
		return nil, nil, false
	}
	root := order[0]
	if hasUnreachable(desc, root) {
		return nil, nil, false
	}
	if !forLL1 {
		return desc, order, true
	}

	out := desc
	outOrder := append([]string(nil), order...)
	for _, nt := range order {
		if hasDirectLeftRecursion(out[nt], nt) {
			var primed string
			out, primed = eliminateDirectLeftRecursion(out, nt)
			outOrder = append(outOrder, primed)
		}
	}
	if _, allProductive := isProductive(out); !allProductive {
		return nil, nil, false
	}
	if hasUnreachable(out, root) {
		return nil, nil, false
	}
	return out, outOrder, true
}

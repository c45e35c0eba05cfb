package grammar

import "fmt"

// Symbol is an opaque grammar identifier: a short token string, classified
// by a SymbolTable as either a terminal or a non-terminal.
type Symbol struct {
	Name string
}

// Epsilon is the reserved symbol denoting the empty word.
var Epsilon = Symbol{Name: "EPSILON"}

// End is the reserved end-of-input marker, "$".
var End = Symbol{Name: "$"}

// String renders the symbol's name.
func (s Symbol) String() string {
	return s.Name
}

// IsEpsilon reports whether s is the reserved empty-word symbol.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// IsEnd reports whether s is the reserved end-of-input marker.
func (s Symbol) IsEnd() bool {
	return s == End
}

// SymbolTable classifies names as terminal or non-terminal. EPSILON and END
// are always present and always terminal.
type SymbolTable struct {
	kinds map[string]bool // name -> isTerminal
}

// NewSymbolTable creates a symbol table seeded with the two reserved symbols.
func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{kinds: make(map[string]bool)}
	st.kinds[Epsilon.Name] = true
	st.kinds[End.Name] = true
	return st
}

// Put registers name with the given classification. Idempotent: registering
// the same name with the same classification twice is a no-op. Changing the
// classification of an already-registered name is a ConfigurationError.
func (st *SymbolTable) Put(name string, isTerminal bool) error {
	if existing, ok := st.kinds[name]; ok {
		if existing != isTerminal {
			return &ConfigurationError{Msg: fmt.Sprintf(
				"symbol %q already registered as terminal=%v, cannot re-register as terminal=%v",
				name, existing, isTerminal)}
		}
		return nil
	}
	st.kinds[name] = isTerminal
	return nil
}

// IsTerminal reports whether name is classified as a terminal. Unknown names
// are a precondition violation and are reported as an error.
func (st *SymbolTable) IsTerminal(name string) (bool, error) {
	isTerminal, ok := st.kinds[name]
	if !ok {
		return false, &ConfigurationError{Msg: fmt.Sprintf("unknown symbol %q", name)}
	}
	return isTerminal, nil
}

// Terminals enumerates all registered terminal names, including EPSILON and
// END.
func (st *SymbolTable) Terminals() []string {
	var out []string
	for name, isTerminal := range st.kinds {
		if isTerminal {
			out = append(out, name)
		}
	}
	return out
}

// NonTerminals enumerates all registered non-terminal names.
func (st *SymbolTable) NonTerminals() []string {
	var out []string
	for name, isTerminal := range st.kinds {
		if !isTerminal {
			out = append(out, name)
		}
	}
	return out
}

// Has reports whether name has been registered at all.
func (st *SymbolTable) Has(name string) bool {
	_, ok := st.kinds[name]
	return ok
}

// clone makes an independent copy, used by Grammar.Augmented so that the
// augmented grammar does not mutate the original's table.
func (st *SymbolTable) clone() *SymbolTable {
	c := &SymbolTable{kinds: make(map[string]bool, len(st.kinds))}
	for k, v := range st.kinds {
		c.kinds[k] = v
	}
	return c
}

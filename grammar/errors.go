package grammar

import "fmt"

// ConfigurationError reports a malformed grammar description: an unknown
// symbol class, EPSILON mixed with other symbols in a production, or an
// axiom that is missing or has no productions. It is a programming error in
// the grammar description and is surfaced immediately to the caller.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

// BuildConflict reports an LL(1) cell with more than one production, or an
// SLR(1) shift/reduce or reduce/reduce clash. It is returned as a value,
// never used as exceptional control flow: the builder's table is still
// populated for inspection even when conflicts are present.
type BuildConflict struct {
	Kind        ConflictKind
	NonTerminal string   // set for LL(1) conflicts
	Terminal    Symbol   // set for LL(1) conflicts, and SLR(1) conflicts
	StateID     int      // set for SLR(1) conflicts
	Productions []Production
}

// ConflictKind distinguishes the builder and nature of a BuildConflict.
type ConflictKind int

const (
	// LL1Conflict marks a prediction-table cell with more than one production.
	LL1Conflict ConflictKind = iota
	// ShiftReduceConflict marks an SLR(1) ACTION cell torn between shift and reduce.
	ShiftReduceConflict
	// ReduceReduceConflict marks an SLR(1) ACTION cell with two distinct reduce targets.
	ReduceReduceConflict
)

func (k ConflictKind) String() string {
	switch k {
	case LL1Conflict:
		return "LL(1) conflict"
	case ShiftReduceConflict:
		return "shift/reduce conflict"
	case ReduceReduceConflict:
		return "reduce/reduce conflict"
	default:
		return "unknown conflict"
	}
}

func (e *BuildConflict) Error() string {
	switch e.Kind {
	case LL1Conflict:
		return fmt.Sprintf("%s at (%s, %s): %d competing productions",
			e.Kind, e.NonTerminal, e.Terminal, len(e.Productions))
	default:
		return fmt.Sprintf("%s in state %d on %s: %d competing productions",
			e.Kind, e.StateID, e.Terminal, len(e.Productions))
	}
}

// GenerationExhausted reports that the factory's retry budget was exceeded
// without finding a conformant grammar.
type GenerationExhausted struct {
	Level    int
	Attempts int
	Target   string // "LL(1)" or "SLR(1)"
}

func (e *GenerationExhausted) Error() string {
	return fmt.Sprintf("generation exhausted: no %s grammar found at level %d after %d attempts",
		e.Target, e.Level, e.Attempts)
}

package grammar

import "github.com/cnf/structhash"

// State is a set of LR(0) items plus a dense integer id, assigned in
// insertion order into the canonical collection. Two states are equal iff
// their item sets are equal.
type State struct {
	ID    int
	Items ItemSet
}

// Key returns a stable content hash of the state's item set, suitable for
// use as a map/set key when building the canonical collection. Grounded on
// the teacher's use of structhash for content-keying Earley items
// (lr/earley/earley.go's hash helper).
func (s *State) Key() string {
	sorted := s.Items.Sorted()
	h, err := structhash.Hash(sorted, 1)
	if err != nil {
		// structhash only fails on unhashable types; ItemSet's members are
		// plain comparable structs, so this cannot happen.
		panic(err)
	}
	return h
}

// Equal reports whether two states carry the same item set (ignoring ID).
func (s *State) Equal(other *State) bool {
	return s.Items.Equal(other.Items)
}

/*
Package slr1 builds the canonical LR(0) collection (the characteristic
finite state machine, or CFSM) for an already-augmented grammar, and from it
the ACTION/GOTO table for a Simple LR(1) parser.

Construction follows "Crafting a Compiler" §6.2.1, the same reference the
teacher package cites (see gorgo/lr/tables.go): closure, goto, the canonical
collection built by breadth-first search from the start state, and an
ACTION table whose reduce entries are filtered by FOLLOW (the "SLR" in
SLR(1)). Conflicts are reported as values, never thrown; the builder
finishes populating its tables regardless, for diagnostic rendering.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package slr1

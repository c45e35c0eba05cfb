/*
Package ll1 builds the LL(1) predictive parsing table for a grammar that
has already been analysed (FIRST/FOLLOW computed via grammar.Analysis).

For each production A -> π, the builder computes the prediction set — the
lookahead terminals that select that production — and inserts the
production into every cell (A, t) for t in the prediction set. A cell
receiving a second production is a conflict; the builder still finishes
populating the table so that callers can render it for diagnostics.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package ll1

/*
Package gradus builds LL(1) and SLR(1) parser tables from a grammar
description, and can generate random grammars of increasing structural
complexity for exercising those builders.

Package structure:

■ grammar: the shared data model — SymbolTable, Grammar, and the
SetEngine (FIRST/FOLLOW analysis).

■ ll1: the LL(1) predictive-table builder.

■ slr1: the canonical LR(0) collection and the SLR(1) ACTION/GOTO table
builder.

■ factory: the grammar generator — a template corpus combined level by
level, gated by a feasibility filter, driving repeated build attempts
under a retry budget.

■ render: pterm-based text rendering of grammars, tables, and verdicts.

■ config: ambient settings — trace level, retry budget, terminal pool
size.

■ cmd/gradus: the command-line front end.

The root package is a thin facade over grammar/ll1/slr1/factory,
implementing the four operations a caller needs: BuildLL1, BuildSLR1,
GenerateLL1, GenerateSLR1.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package gradus

/*
Package factory generates candidate grammars for the builders in ll1 and
slr1 to consume.

A fixed corpus of nine Level-1 templates (single non-terminal "A" over the
terminal alphabet {a, b, c}, each exhibiting a distinct recursion shape) is
combined, level by level, by renaming a freshly-picked Level-1 combinator's
non-terminal to the next letter and wiring it into the running grammar via
two terminal substitutions. This mirrors the upstream GrammarFactory's
Init()/Lv1()/Lv2()/Lv3() (see original_source/grammar_factory.cpp),
generalised here from the three hard-coded levels to any level 1..7.

Before a candidate is handed to a builder, it passes a feasibility filter
(productive-set closure, reachable-set closure, and — for LL(1) candidates
only — direct-left-recursion elimination or rejection). A Session retries
generation, bounded by a retry budget, until a builder succeeds or the
budget is exhausted (grammar.GenerationExhausted).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package factory

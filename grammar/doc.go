/*
Package grammar implements the data model shared by Gradus' two parser
builders: symbol classification, production storage, grammar construction
and the FIRST/FOLLOW fixed-point analysis that both ll1 and slr1 build on.

A Grammar is created in one shot from a description and is immutable
thereafter. Package factory eliminates direct left recursion on the raw
description before a Grammar is built, and augmentation with a fresh start
symbol (Grammar.Augmented) returns a new Grammar. Builders never mutate a
Grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package grammar

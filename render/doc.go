/*
Package render turns grammars, FIRST/FOLLOW sets, and the LL(1)/SLR(1)
tables into the text the cmd/gradus CLI writes to standard output, using
github.com/pterm/pterm for boxed headings, colored verdict lines, and
tabular layout — the same library the teacher reaches for in
terex/terexlang/trepl/repl.go.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package render

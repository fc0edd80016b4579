// Package cfgnorm reads, transforms and enumerates context-free grammars
// over single-letter terminals.
//
// Grammars arrive in a line-oriented text format where each line defines one
// non-terminal:
//
//	A1 : aB1b | E
//	B1 : cA1
//
// Non-terminals are an uppercase letter other than E followed by a digit,
// terminals are single lowercase letters and E denotes the empty word. The
// first line's left-hand side is the start symbol.
//
// ToCNF and ToGNF rebuild a grammar in Chomsky or Greibach normal form while
// deriving exactly the same language. Generate enumerates every word of the
// language up to a length bound. All three leave their input untouched and
// return errors rather than partial results.
package cfgnorm

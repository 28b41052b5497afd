/*
Package pattern implements the matcha pattern engine: a lexer, a parser, and
a backtracking matcher for a human-readable alternative to regular
expressions.

# Overview

A matcha pattern is plain text with bracketed tokens embedded in it. Every
character outside a bracket matches itself; a backslash escapes the next
character so '[' and '\' can be matched literally. A bracket token has three
colon-separated fields:

	[type:range:length]

and describes a run of characters. The pattern compiles into a flat AST
(ordered concatenation, no grouping), and the matcher drives that AST over
input text with recursive backtracking.

# Types

The type field names a character class and is case-insensitive:

  - str:  letters a-z and A-Z
  - anum: letters and digits
  - hex:  hexadecimal digits
  - oct:  digits 0-7
  - dec:  digits 0-9
  - bin:  0 and 1
  - x:    wildcard, any character (the range field is ignored)

# Ranges

An empty range uses the type's default set shown above. Otherwise the range
field replaces it:

  - A-Z expands to the inclusive code-point range
  - single characters join the set on their own; '|' separates alternatives
  - a leading '!' negates membership: [anum:!a-z:] matches runs free of
    lowercase letters
  - backtick-delimited strings switch the token to literal alternation:
    [str:`black`|`WHITE`:] matches either word exactly, trying alternatives
    in declared order

# Lengths

An empty length field means one or more characters. A bare integer is an
exact length. Otherwise the field combines the operators >=N, <=N, >N and <N,
so >1<5 bounds the run to two, three or four characters. The minimum defaults
to 1; a zero-length run must be allowed explicitly with >=0.

# Matching

The three entry points mirror the package-level API of the matcha module:

	ast, err := pattern.Compile("[dec::3]-[dec::4]")
	if err != nil { ... }
	m := pattern.NewMatcher(ast)

	m.MatchFull("555-0199")           // whole-text match
	m.FindFirst("call 555-0199 now")  // leftmost match
	m.FindAll(text)                   // non-overlapping matches, left to right

Variable-length tokens match greedily and back off one character at a time
until the rest of the pattern succeeds. The search is a naive depth-first
backtrack with no memoization; adjacent variable-length tokens can therefore
take exponential time on adversarial inputs. Compilation is the only phase
that can fail (see LexError); matching reports "no match" and nothing else.

A compiled AST is immutable. It may back any number of concurrent match calls
without synchronization, because all matching state lives on the call stack
of a single invocation.
*/
package pattern

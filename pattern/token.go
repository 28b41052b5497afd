package pattern

import (
	"fmt"
	"math"
	"slices"
)

// TokenType defines the two kinds of tokens the lexer produces.
type TokenType int

const (
	TokenLiteral TokenType = iota // a single character matched verbatim
	TokenPattern                  // a bracketed [type:range:length] token
)

// CharType names the built-in character classes a pattern token can use.
type CharType int

const (
	CharStr  CharType = iota // letters a-zA-Z
	CharAnum                 // letters and digits
	CharHex                  // hexadecimal digits
	CharOct                  // octal digits
	CharDec                  // decimal digits
	CharBin                  // 0 and 1
	CharAny                  // wildcard, matches any character
)

func (c CharType) String() string {
	switch c {
	case CharStr:
		return "str"
	case CharAnum:
		return "anum"
	case CharHex:
		return "hex"
	case CharOct:
		return "oct"
	case CharDec:
		return "dec"
	case CharBin:
		return "bin"
	case CharAny:
		return "x"
	default:
		return "unknown"
	}
}

// charTypeNames maps the spelling used inside a bracket token to its CharType.
var charTypeNames = map[string]CharType{
	"str":  CharStr,
	"anum": CharAnum,
	"hex":  CharHex,
	"oct":  CharOct,
	"dec":  CharDec,
	"bin":  CharBin,
	"x":    CharAny,
}

// defaultSets holds the default membership set for every character type except
// the wildcard. Built once at package init and never mutated afterwards.
var defaultSets = map[CharType][]rune{
	CharStr:  runeSet(span('A', 'Z'), span('a', 'z')),
	CharAnum: runeSet(span('0', '9'), span('A', 'Z'), span('a', 'z')),
	CharHex:  runeSet(span('0', '9'), span('A', 'F'), span('a', 'f')),
	CharOct:  runeSet(span('0', '7')),
	CharDec:  runeSet(span('0', '9')),
	CharBin:  runeSet(span('0', '1')),
}

func span(lo, hi rune) []rune {
	rs := make([]rune, 0, hi-lo+1)
	for r := lo; r <= hi; r++ {
		rs = append(rs, r)
	}
	return rs
}

func runeSet(spans ...[]rune) []rune {
	var set []rune
	for _, s := range spans {
		set = append(set, s...)
	}
	slices.Sort(set)
	return slices.Compact(set)
}

// Unbounded is the Max of a length constraint with no upper limit.
const Unbounded = math.MaxInt

// LengthConstraint bounds how many characters a pattern token may consume.
// Bounds are inclusive; an exact length is encoded as Min == Max.
type LengthConstraint struct {
	Min int
	Max int
}

// Contains reports whether a run of n characters satisfies the constraint.
func (lc LengthConstraint) Contains(n int) bool {
	return n >= lc.Min && n <= lc.Max
}

func (lc LengthConstraint) String() string {
	if lc.Max == Unbounded {
		return fmt.Sprintf("%d-inf", lc.Min)
	}
	return fmt.Sprintf("%d-%d", lc.Min, lc.Max)
}

// Token represents a single lexical unit of a pattern string.
//
// For TokenPattern tokens exactly one of three matching modes applies:
// literal alternatives when Literals is non-empty, wildcard when CharType is
// CharAny, and character-set membership otherwise.
type Token struct {
	Type     TokenType
	Value    string // the literal character, or the raw [type:range:length] text
	Position int    // offset of the token in the pattern, in runes

	// Pattern-token fields; zero-valued on literal tokens.
	CharType CharType
	Set      []rune // resolved membership set, sorted; nil for wildcard and literals
	Negated  bool   // match characters NOT in Set
	Literals []string
	Length   LengthConstraint
}

func (t Token) String() string {
	if t.Type == TokenLiteral {
		return fmt.Sprintf("LITERAL(%q)", t.Value)
	}
	if len(t.Literals) > 0 {
		return fmt.Sprintf("PATTERN(type=%s, literals=%q, len=%s)", t.CharType, t.Literals, t.Length)
	}
	neg := ""
	if t.Negated {
		neg = "!"
	}
	return fmt.Sprintf("PATTERN(type=%s, chars=%s%q, len=%s)", t.CharType, neg, string(t.Set), t.Length)
}

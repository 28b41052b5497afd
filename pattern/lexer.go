package pattern

import (
	"slices"
	"strconv"
	"strings"
)

// Lexer scans a pattern string and produces the ordered token stream.
type Lexer struct {
	input    []rune
	position int
}

// NewLexer returns a new Lexer over the given pattern.
func NewLexer(pattern string) *Lexer {
	return &Lexer{input: []rune(pattern)}
}

// Tokenize processes the entire pattern and returns its tokens. Every
// character of the pattern belongs to exactly one token: '[' opens a bracket
// token, '\' escapes the next character, anything else is a literal.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for l.position < len(l.input) {
		var (
			tok Token
			err error
		)
		switch l.input[l.position] {
		case '[':
			tok, err = l.lexPattern()
		case '\\':
			tok, err = l.lexEscape()
		default:
			tok = Token{
				Type:     TokenLiteral,
				Value:    string(l.input[l.position]),
				Position: l.position,
			}
			l.position++
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// lexEscape consumes a backslash and yields the following character as a
// literal. The escape carries no special meaning beyond that, so \[ is a
// plain '[' literal.
func (l *Lexer) lexEscape() (Token, error) {
	if l.position+1 >= len(l.input) {
		return Token{}, lexErrorf(UnterminatedEscape, l.position, "escape at end of pattern")
	}
	start := l.position
	l.position += 2
	return Token{Type: TokenLiteral, Value: string(l.input[start+1]), Position: start}, nil
}

// lexPattern consumes a bracketed [type:range:length] token. Brackets do not
// nest; the token ends at the first ']'.
func (l *Lexer) lexPattern() (Token, error) {
	start := l.position
	end := -1
	for i := l.position + 1; i < len(l.input); i++ {
		if l.input[i] == ']' {
			end = i
			break
		}
	}
	if end < 0 {
		return Token{}, lexErrorf(UnclosedBracket, start, "missing closing bracket")
	}

	content := string(l.input[l.position+1 : end])
	l.position = end + 1

	parts := strings.Split(content, ":")
	if len(parts) != 3 {
		return Token{}, lexErrorf(BadFormat, start, "want [type:range:length], got [%s]", content)
	}

	charType, err := parseCharType(parts[0], start)
	if err != nil {
		return Token{}, err
	}
	set, negated, literals := parseRange(parts[1], charType)
	length, err := parseLength(parts[2], start)
	if err != nil {
		return Token{}, err
	}

	return Token{
		Type:     TokenPattern,
		Value:    "[" + content + "]",
		Position: start,
		CharType: charType,
		Set:      set,
		Negated:  negated,
		Literals: literals,
		Length:   length,
	}, nil
}

func parseCharType(field string, pos int) (CharType, error) {
	name := strings.ToLower(strings.TrimSpace(field))
	ct, ok := charTypeNames[name]
	if !ok {
		return 0, lexErrorf(InvalidType, pos, "unknown character type %q", name)
	}
	return ct, nil
}

// parseRange resolves the range field of a bracket token. An empty range
// falls back to the type's default set, a leading '!' negates membership, and
// a backtick anywhere switches to literal-alternation mode. The wildcard type
// ignores the field entirely.
func parseRange(field string, ct CharType) (set []rune, negated bool, literals []string) {
	field = strings.TrimSpace(field)
	if ct == CharAny {
		return nil, false, nil
	}
	if field == "" {
		return defaultSets[ct], false, nil
	}
	if strings.HasPrefix(field, "!") {
		negated = true
		field = field[1:]
	}
	if strings.ContainsRune(field, '`') {
		return nil, negated, parseLiterals(field)
	}
	return parseSet(field), negated, nil
}

// parseSet expands a character-set specification. A three-character run X-Y
// adds the inclusive code-point range, '|' separates alternatives, and any
// other character joins the set on its own. Duplicates collapse and the
// result is sorted so equal specs compile to equal sets.
func parseSet(field string) []rune {
	runes := []rune(field)
	seen := make(map[rune]bool)
	for i := 0; i < len(runes); {
		switch c := runes[i]; {
		case c == '|':
			i++
		case i+2 < len(runes) && runes[i+1] == '-':
			for r := c; r <= runes[i+2]; r++ {
				seen[r] = true
			}
			i += 3
		default:
			seen[c] = true
			i++
		}
	}
	set := make([]rune, 0, len(seen))
	for r := range seen {
		set = append(set, r)
	}
	slices.Sort(set)
	return set
}

// parseLiterals collects backtick-delimited alternatives, in declared order.
// An unterminated trailing backtick takes the rest of the field as the final
// alternative.
func parseLiterals(field string) []string {
	var literals []string
	runes := []rune(field)
	for i := 0; i < len(runes); {
		if runes[i] != '`' {
			i++
			continue
		}
		end := -1
		for j := i + 1; j < len(runes); j++ {
			if runes[j] == '`' {
				end = j
				break
			}
		}
		if end < 0 {
			literals = append(literals, string(runes[i+1:]))
			break
		}
		literals = append(literals, string(runes[i+1:end]))
		i = end + 1
	}
	return literals
}

// parseLength resolves the length field. An empty field means "one or more",
// a bare integer an exact length, and otherwise the field is a sequence of
// >=N, <=N, >N, <N operators. The minimum defaults to 1 unless an operator
// sets it, so zero-length runs need an explicit >=0.
func parseLength(field string, pos int) (LengthConstraint, error) {
	field = strings.TrimSpace(field)
	if field == "" {
		return LengthConstraint{Min: 1, Max: Unbounded}, nil
	}
	if isDigits(field) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return LengthConstraint{}, lexErrorf(BadLengthConstraint, pos, "length %q out of range", field)
		}
		return LengthConstraint{Min: n, Max: n}, nil
	}

	min, max := -1, Unbounded
	for i := 0; i < len(field); {
		var (
			n   int
			err error
		)
		switch {
		case strings.HasPrefix(field[i:], ">="):
			n, i, err = scanInt(field, i+2, pos)
			min = n
		case strings.HasPrefix(field[i:], "<="):
			n, i, err = scanInt(field, i+2, pos)
			max = n
		case field[i] == '>':
			n, i, err = scanInt(field, i+1, pos)
			min = n + 1 // exclusive lower bound
		case field[i] == '<':
			n, i, err = scanInt(field, i+1, pos)
			max = n - 1 // exclusive upper bound
		default:
			err = lexErrorf(BadLengthConstraint, pos, "invalid length constraint %q", field)
		}
		if err != nil {
			return LengthConstraint{}, err
		}
	}
	if min < 0 {
		min = 1
	}
	return LengthConstraint{Min: min, Max: max}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// scanInt reads the integer starting at position start of the length field
// and returns it along with the position just past its last digit.
func scanInt(field string, start, pos int) (int, int, error) {
	end := start
	for end < len(field) && field[end] >= '0' && field[end] <= '9' {
		end++
	}
	if end == start {
		return 0, 0, lexErrorf(BadLengthConstraint, pos, "expected number in length constraint %q", field)
	}
	n, err := strconv.Atoi(field[start:end])
	if err != nil {
		return 0, 0, lexErrorf(BadLengthConstraint, pos, "length %q out of range", field[start:end])
	}
	return n, end, nil
}

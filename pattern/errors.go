package pattern

import "fmt"

// ErrorKind classifies the ways pattern compilation can fail. Matching never
// produces errors; a failed search is an ordinary empty result.
type ErrorKind int

const (
	UnterminatedEscape  ErrorKind = iota // '\' as the final pattern character
	UnclosedBracket                      // '[' without a matching ']'
	BadFormat                            // bracket content is not type:range:length
	InvalidType                          // unknown character type name
	BadLengthConstraint                  // bad operator or missing integer
)

func (k ErrorKind) String() string {
	switch k {
	case UnterminatedEscape:
		return "unterminated escape"
	case UnclosedBracket:
		return "unclosed bracket"
	case BadFormat:
		return "bad format"
	case InvalidType:
		return "invalid type"
	case BadLengthConstraint:
		return "bad length constraint"
	default:
		return "unknown error"
	}
}

// LexError reports invalid pattern syntax found during compilation.
type LexError struct {
	Kind     ErrorKind
	Position int // rune offset of the offending token in the pattern
	Message  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Position, e.Message)
}

func lexErrorf(kind ErrorKind, pos int, format string, args ...any) *LexError {
	return &LexError{Kind: kind, Position: pos, Message: fmt.Sprintf(format, args...)}
}

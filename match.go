// Package matcha is a human-readable alternative to regular expressions.
// Patterns mix literal characters with bracketed [type:range:length] tokens;
// see the pattern subpackage for the full syntax reference.
package matcha

import (
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/libmatcha/matcha/pattern"
)

// Pattern is a compiled matcha expression. A Pattern is immutable and safe
// for concurrent use by multiple goroutines.
type Pattern struct {
	expr    string
	matcher *pattern.Matcher
}

// Compile parses expr into a Pattern. The returned error is a
// *pattern.LexError describing the first syntax problem found.
func Compile(expr string) (*Pattern, error) {
	ast, err := pattern.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &Pattern{expr: expr, matcher: pattern.NewMatcher(ast)}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
// It simplifies safe initialization of package-level pattern variables.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic("matcha: Compile(" + strconv.Quote(expr) + "): " + err.Error())
	}
	return p
}

// String returns the source expression the pattern was compiled from.
func (p *Pattern) String() string { return p.expr }

// MatchString reports whether text, in its entirety, matches the pattern.
func (p *Pattern) MatchString(text string) bool {
	_, ok := p.matcher.MatchFull(text)
	return ok
}

// FindMatch returns the leftmost match in text with its span.
func (p *Pattern) FindMatch(text string) (pattern.Match, bool) {
	return p.matcher.FindFirst(text)
}

// FindString returns the text of the leftmost match. The boolean result
// distinguishes "no match" from an empty match.
func (p *Pattern) FindString(text string) (string, bool) {
	m, ok := p.matcher.FindFirst(text)
	return m.Value, ok
}

// FindAllMatches returns every non-overlapping match in text, left to right.
func (p *Pattern) FindAllMatches(text string) []pattern.Match {
	return p.matcher.FindAll(text)
}

// FindAllStrings returns the text of every non-overlapping match.
func (p *Pattern) FindAllStrings(text string) []string {
	matches := p.matcher.FindAll(text)
	if matches == nil {
		return nil
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out
}

// cacheSize bounds the number of compiled patterns the package-level
// functions memoize.
const cacheSize = 128

var cache *lru.Cache[string, *Pattern]

func init() {
	cache, _ = lru.New[string, *Pattern](cacheSize)
}

// compileCached returns a memoized Pattern for expr, compiling it on the
// first use. Sharing the cached Pattern between callers is safe because
// compiled patterns are immutable.
func compileCached(expr string) (*Pattern, error) {
	if p, ok := cache.Get(expr); ok {
		return p, nil
	}
	p, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	cache.Add(expr, p)
	return p, nil
}

// Match reports whether text, in its entirety, matches expr.
func Match(expr, text string) (bool, error) {
	p, err := compileCached(expr)
	if err != nil {
		return false, err
	}
	return p.MatchString(text), nil
}

// Find returns the first match of expr anywhere in text. The boolean result
// is false when there is no match.
func Find(expr, text string) (string, bool, error) {
	p, err := compileCached(expr)
	if err != nil {
		return "", false, err
	}
	value, ok := p.FindString(text)
	return value, ok, nil
}

// FindAll returns every non-overlapping match of expr in text, left to
// right.
func FindAll(expr, text string) ([]string, error) {
	p, err := compileCached(expr)
	if err != nil {
		return nil, err
	}
	return p.FindAllStrings(text), nil
}

package pattern

// Match represents a single successful match. Start and End are rune offsets
// into the matched text; Value is the matched substring.
type Match struct {
	Start int
	End   int
	Value string
}

// Matcher runs a compiled AST against input text. It holds no state between
// calls; one Matcher may be shared by any number of goroutines.
type Matcher struct {
	ast AST
}

// NewMatcher returns a Matcher over the given AST.
func NewMatcher(ast AST) *Matcher {
	return &Matcher{ast: ast}
}

// MatchFull reports whether text, in its entirety, matches the pattern. An
// empty pattern matches only the empty text.
func (m *Matcher) MatchFull(text string) (Match, bool) {
	runes := []rune(text)
	end, ok := m.matchAt(runes, 0, 0)
	if ok && end == len(runes) {
		return Match{Start: 0, End: end, Value: text}, true
	}
	return Match{}, false
}

// FindFirst returns the leftmost match in text. The pattern need not consume
// the rest of the text; matching ends as soon as every node is satisfied.
func (m *Matcher) FindFirst(text string) (Match, bool) {
	runes := []rune(text)
	for start := 0; start < len(runes); start++ {
		if end, ok := m.matchAt(runes, start, 0); ok {
			return Match{Start: start, End: end, Value: string(runes[start:end])}, true
		}
	}
	return Match{}, false
}

// FindAll returns every non-overlapping match in text, left to right. The
// cursor jumps to the end of each match, so no two spans share an offset.
func (m *Matcher) FindAll(text string) []Match {
	runes := []rune(text)
	var matches []Match
	pos := 0
	for pos < len(runes) {
		end, ok := m.matchAt(runes, pos, 0)
		if !ok {
			pos++
			continue
		}
		matches = append(matches, Match{Start: pos, End: end, Value: string(runes[pos:end])})
		if end > pos {
			pos = end
		} else {
			// zero-width match; step forward so the scan terminates
			pos++
		}
	}
	return matches
}

// matchAt drives the AST from node index idx over text starting at pos,
// backtracking through variable-length nodes. On success it returns the end
// position of the first parse found.
func (m *Matcher) matchAt(text []rune, pos, idx int) (int, bool) {
	if idx >= len(m.ast) {
		return pos, true
	}
	switch node := m.ast[idx].(type) {
	case *LiteralNode:
		if pos < len(text) && text[pos] == node.Value {
			return m.matchAt(text, pos+1, idx+1)
		}
		return 0, false
	case *PatternNode:
		if len(node.Literals) > 0 {
			return m.matchLiterals(text, pos, idx, node)
		}
		return m.matchRun(text, pos, idx, node)
	}
	return 0, false
}

// matchLiterals tries each alternative in declared order. An alternative
// wins only if the remaining text starts with it and the rest of the pattern
// matches after it, so the search is depth-first per alternative rather than
// a flat prefix scan.
func (m *Matcher) matchLiterals(text []rune, pos, idx int, node *PatternNode) (int, bool) {
	for _, lit := range node.Literals {
		alt := []rune(lit)
		if !hasRunePrefix(text[pos:], alt) {
			continue
		}
		if end, ok := m.matchAt(text, pos+len(alt), idx+1); ok {
			return end, true
		}
	}
	return 0, false
}

// matchRun handles set and wildcard nodes: greedily measure the longest
// satisfying run, capped at the node's maximum, then retry shorter candidate
// lengths down to the minimum until the rest of the pattern matches. A
// minimum of 0 puts the zero-length candidate in the descent.
func (m *Matcher) matchRun(text []rune, pos, idx int, node *PatternNode) (int, bool) {
	run := 0
	for pos+run < len(text) && node.matchesRune(text[pos+run]) {
		run++
		if run >= node.Max {
			break
		}
	}
	for l := run; l >= node.Min && l >= 0; l-- {
		if l > node.Max {
			continue
		}
		if end, ok := m.matchAt(text, pos+l, idx+1); ok {
			return end, true
		}
	}
	return 0, false
}

func hasRunePrefix(text, prefix []rune) bool {
	if len(text) < len(prefix) {
		return false
	}
	for i := range prefix {
		if text[i] != prefix[i] {
			return false
		}
	}
	return true
}

package pattern

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatcher(t *testing.T, expr string) *Matcher {
	t.Helper()
	ast, err := Compile(expr)
	require.NoError(t, err)
	return NewMatcher(ast)
}

func TestMatchFull(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    bool
	}{
		{"literal match", "hello", "hello", true},
		{"literal mismatch", "hello", "world", false},
		{"literal with trailing text", "hello", "hello!", false},
		{"escaped brackets", `\[test\]`, "[test]", true},
		{"empty pattern empty text", "", "", true},
		{"empty pattern nonempty text", "", "x", false},

		{"str default", "[str::]", "hello", true},
		{"str uppercase", "[str::]", "WORLD", true},
		{"str rejects digits", "[str::]", "hello123", false},
		{"anum", "[anum::]", "hello123", true},
		{"anum rejects symbols", "[anum::]", "hello@world", false},
		{"dec", "[dec::]", "12345", true},
		{"dec rejects letters", "[dec::]", "123abc", false},
		{"hex lowercase", "[hex::]", "1a2b3c", true},
		{"hex uppercase", "[hex::]", "DEADBEEF", true},
		{"hex rejects g", "[hex::]", "1g2h", false},
		{"oct", "[oct::]", "01234567", true},
		{"oct rejects 8 and 9", "[oct::]", "0189", false},
		{"bin", "[bin::]", "10101010", true},
		{"bin rejects 2", "[bin::]", "102", false},
		{"wildcard", "[x::]", "a@# 9", true},
		{"wildcard exact length", "[x::3]", "?!?", true},
		{"wildcard wrong length", "[x::3]", "?!", false},

		{"exact length ok", "[dec::3]", "123", true},
		{"exact length short", "[dec::3]", "12", false},
		{"exact length long", "[dec::3]", "1234", false},
		{"min length", "[str::>=3]", "abc", true},
		{"min length short", "[str::>=3]", "ab", false},
		{"max length", "[str::<=3]", "abc", true},
		{"max length long", "[str::<=3]", "abcd", false},
		{"exclusive bounds low", "[str::>1<5]", "a", false},
		{"exclusive bounds min", "[str::>1<5]", "ab", true},
		{"exclusive bounds max", "[str::>1<5]", "abcd", true},
		{"exclusive bounds high", "[str::>1<5]", "abcde", false},

		{"custom range", "[str:A-Z:]", "HELLO", true},
		{"custom range rejects lowercase", "[str:A-Z:]", "Hello", false},
		{"pipe alternatives first", "[str:S|s:1][str::]", "Sajjad", true},
		{"pipe alternatives second", "[str:S|s:1][str::]", "sadiq", true},
		{"pipe alternatives miss", "[str:S|s:1][str::]", "Mark", false},
		{"negated set", "[anum:!a-z:]", "ABC123", true},
		{"negated set rejects member", "[anum:!a-z:]", "ABCx", false},

		{"literal alternative first", "[str:`black`|`WHITE`:]", "black", true},
		{"literal alternative second", "[str:`black`|`WHITE`:]", "WHITE", true},
		{"literal alternative miss", "[str:`black`|`WHITE`:]", "gray", false},
		{"literal alternative backtracks", "[str:`ab`|`a`:]b", "ab", true},

		{"optional run absent", "a[str:b:>=0]c", "ac", true},
		{"optional run present", "a[str:b:>=0]c", "abbc", true},
		{"optional bounded", "http[str:s:>=0<=1]://", "https://", true},
		{"optional bounded absent", "http[str:s:>=0<=1]://", "http://", true},

		{"email", "[anum::]@[anum::].[str::>=2<=4]", "example@mail.com", true},
		{"email short tld", "[anum::]@[anum::].[str::>=2<=4]", "user1@domain.co", true},
		{"email tld too short", "[anum::]@[anum::].[str::>=2<=4]", "bad@domain.x", false},
		{"email tld too long", "[anum::]@[anum::].[str::>=2<=4]", "bad@domain.travel", false},
		{"email exclusive tld", "[anum::]@[anum::].[str::>1<3]", "example@mail.co", true},
		{"email exclusive tld miss", "[anum::]@[anum::].[str::>1<3]", "example@mail.com", false},

		{"backtracking splits runs", "[anum::][dec::2]", "abc12", true},
		{"adjacent variable runs", "[str::][str::]", "ab", true},
		{"adjacent variable runs short", "[str::][str::]", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatcher(t, tt.pattern)
			_, got := m.MatchFull(tt.text)
			assert.Equal(t, tt.want, got, "pattern %q text %q", tt.pattern, tt.text)
		})
	}
}

func TestMatchFullValue(t *testing.T) {
	m := mustMatcher(t, "[dec::3]")
	match, ok := m.MatchFull("123")
	require.True(t, ok)
	assert.Equal(t, Match{Start: 0, End: 3, Value: "123"}, match)
}

func TestFindFirst(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    string
		start   int
		found   bool
	}{
		{"digits in middle", "[dec::]", "abc123def456", "123", 3, true},
		{"match at start", "[str:A-Z:>=3]", "WORLD today", "WORLD", 0, true},
		{"no match", "[dec::]", "no digits here", "", 0, false},
		{"prefix only", "[dec::2]", "abc1234", "12", 3, true},
		{"empty text", "[dec::]", "", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMatcher(t, tt.pattern)
			match, found := m.FindFirst(tt.text)
			require.Equal(t, tt.found, found)
			if found {
				assert.Equal(t, tt.want, match.Value)
				assert.Equal(t, tt.start, match.Start)
			}
		})
	}
}

func TestFindAll(t *testing.T) {
	m := mustMatcher(t, "[dec::]")
	matches := m.FindAll("abc123def456ghi789")

	values := make([]string, len(matches))
	for i, match := range matches {
		values[i] = match.Value
	}
	assert.Equal(t, []string{"123", "456", "789"}, values)
}

func TestFindAllEmpty(t *testing.T) {
	m := mustMatcher(t, "[dec::]")
	assert.Empty(t, m.FindAll("no digits"))
	assert.Empty(t, m.FindAll(""))
}

func TestFindAllSpansReconstructText(t *testing.T) {
	const text = "x1y22z333w"
	m := mustMatcher(t, "[dec::]")
	matches := m.FindAll(text)
	require.Len(t, matches, 3)

	// spans are non-overlapping and strictly increasing; stitching matches
	// and gaps back together yields the original text
	var b strings.Builder
	last := 0
	for _, match := range matches {
		require.GreaterOrEqual(t, match.Start, last)
		require.Greater(t, match.End, match.Start)
		b.WriteString(text[last:match.Start])
		b.WriteString(match.Value)
		last = match.End
	}
	b.WriteString(text[last:])
	assert.Equal(t, text, b.String())
}

func TestFindAllZeroWidthTerminates(t *testing.T) {
	// a node that may match zero characters produces empty matches but must
	// still advance through the text
	m := mustMatcher(t, "[str:z:>=0]")
	matches := m.FindAll("abc")
	require.Len(t, matches, 3)
	for i, match := range matches {
		assert.Equal(t, "", match.Value)
		assert.Equal(t, i, match.Start)
	}
}

func TestLiteralAlternativeOrder(t *testing.T) {
	// both alternatives fit; the first declared one wins
	m := mustMatcher(t, "[str:`aa`|`a`:]")
	match, found := m.FindFirst("aaa")
	require.True(t, found)
	assert.Equal(t, "aa", match.Value)

	// declared order is preserved even when the shorter one comes first
	m = mustMatcher(t, "[str:`a`|`aa`:]")
	match, found = m.FindFirst("aaa")
	require.True(t, found)
	assert.Equal(t, "a", match.Value)
}

func TestNegatedRunStopsAtMember(t *testing.T) {
	m := mustMatcher(t, "[anum:!a-z:]")
	match, found := m.FindFirst("ABxCD")
	require.True(t, found)
	assert.Equal(t, "AB", match.Value)
}

func TestMatcherIsPure(t *testing.T) {
	// one compiled AST shared by many goroutines
	ast, err := Compile("[anum::]@[anum::].[str::>=2<=4]")
	require.NoError(t, err)
	m := NewMatcher(ast)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := m.MatchFull("example@mail.com"); !ok {
					t.Error("expected match")
				}
				if _, ok := m.MatchFull("nope"); ok {
					t.Error("unexpected match")
				}
			}
		}()
	}
	wg.Wait()
}

func TestMatcherUnicode(t *testing.T) {
	m := mustMatcher(t, "[str:а-я:>=2]")
	_, ok := m.MatchFull("привет")
	assert.True(t, ok)

	match, found := m.FindFirst("say привет now")
	require.True(t, found)
	assert.Equal(t, "привет", match.Value)
	assert.Equal(t, 4, match.Start, "offsets are rune-based")
}

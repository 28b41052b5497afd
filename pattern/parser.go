package pattern

import (
	"fmt"
	"slices"
	"strconv"
)

// NodeType defines the node kinds an AST can hold.
type NodeType int

const (
	NodeLiteral NodeType = iota
	NodePattern
)

// Node is a single element of a compiled pattern.
type Node interface {
	Type() NodeType // returns the node type
	String() string // debugging or printing purpose
	Position() int  // where the node starts in the pattern
}

var (
	_ Node = (*LiteralNode)(nil)
	_ Node = (*PatternNode)(nil)
)

// LiteralNode matches exactly one character.
type LiteralNode struct {
	Value rune
	pos   int
}

func (n *LiteralNode) Type() NodeType { return NodeLiteral }
func (n *LiteralNode) String() string { return fmt.Sprintf("Literal(%q)", n.Value) }
func (n *LiteralNode) Position() int  { return n.pos }

// PatternNode matches a run of characters against a character set, a
// wildcard, or a list of literal alternatives, bounded by [Min, Max].
type PatternNode struct {
	Set      []rune   // sorted membership set; nil in wildcard and literal modes
	Negated  bool     // match characters NOT in Set
	Literals []string // literal alternatives, tried in declared order
	Wildcard bool     // any character satisfies the node
	Min      int
	Max      int // Unbounded when the pattern gives no upper limit
	pos      int
}

func (n *PatternNode) Type() NodeType { return NodePattern }

func (n *PatternNode) String() string {
	max := "inf"
	if n.Max != Unbounded {
		max = strconv.Itoa(n.Max)
	}
	if len(n.Literals) > 0 {
		return fmt.Sprintf("Pattern(literals=%q, len=%d-%s)", n.Literals, n.Min, max)
	}
	if n.Wildcard {
		return fmt.Sprintf("Pattern(any, len=%d-%s)", n.Min, max)
	}
	neg := ""
	if n.Negated {
		neg = "!"
	}
	return fmt.Sprintf("Pattern(chars=%s%q, len=%d-%s)", neg, string(n.Set), n.Min, max)
}

func (n *PatternNode) Position() int { return n.pos }

// matchesRune reports whether a single character satisfies the node's
// membership rule. Only meaningful for set and wildcard nodes.
func (n *PatternNode) matchesRune(r rune) bool {
	if n.Wildcard {
		return true
	}
	_, found := slices.BinarySearch(n.Set, r)
	if n.Negated {
		return !found
	}
	return found
}

// AST is the ordered concatenation of nodes compiled from a pattern string.
// It is immutable once built; matching never modifies it, so a single AST can
// back any number of concurrent match calls.
type AST []Node

// Parser maps the lexer's token stream onto AST nodes, one node per token.
// No grammar beyond concatenation is applied.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new Parser over a token stream.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse builds the AST.
func (p *Parser) Parse() AST {
	ast := make(AST, 0, len(p.tokens))
	for ; p.current < len(p.tokens); p.current++ {
		ast = append(ast, nodeFromToken(p.tokens[p.current]))
	}
	return ast
}

func nodeFromToken(tok Token) Node {
	if tok.Type == TokenLiteral {
		return &LiteralNode{Value: []rune(tok.Value)[0], pos: tok.Position}
	}
	return &PatternNode{
		Set:      tok.Set,
		Negated:  tok.Negated,
		Literals: tok.Literals,
		Wildcard: tok.CharType == CharAny,
		Min:      tok.Length.Min,
		Max:      tok.Length.Max,
		pos:      tok.Position,
	}
}

// Compile lexes and parses expr in one step. Lexer errors propagate
// unchanged; the parser itself cannot fail.
func Compile(expr string) (AST, error) {
	tokens, err := NewLexer(expr).Tokenize()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).Parse(), nil
}

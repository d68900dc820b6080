package parser

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// Identifier is a database, table, column, index or charset name with any
	// enclosing back-ticks (or quotes, where MySQL accepts a string) removed.
	Identifier string

	// Text is a single-quoted string literal with its quotes removed. Escape
	// sequences are not interpreted.
	Text string

	// Number is a numeric literal kept in its source form. Integer-valued
	// positions are checked by the validator, so Int is safe to call on any
	// Number reachable from a successfully parsed AST.
	Number struct {
		Pos   lexer.Position
		Value string `parser:"@Number"`
	}
)

func (i *Identifier) Capture(values []string) error {
	*i = Identifier(unquote(strings.Join(values, "")))
	return nil
}

func (i Identifier) String() string { return string(i) }

func (t *Text) Capture(values []string) error {
	*t = Text(unquote(strings.Join(values, "")))
	return nil
}

func (t Text) String() string { return string(t) }

// Int64 parses the literal as a base 10 integer.
func (n *Number) Int64() (int64, error) {
	return strconv.ParseInt(n.Value, 10, 64)
}

// Int returns the integer value of the literal.
func (n *Number) Int() int {
	v, _ := n.Int64()
	return int(v)
}

func (n *Number) String() string {
	if n == nil {
		return ""
	}

	return n.Value
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}

	switch q := s[0]; {
	case q == '`' && s[len(s)-1] == '`':
		return strings.ReplaceAll(s[1:len(s)-1], "``", "`")
	case q == '\'' && s[len(s)-1] == '\'':
		return s[1 : len(s)-1]
	case q == '"' && s[len(s)-1] == '"':
		return s[1 : len(s)-1]
	default:
		return s
	}
}

// keyword normalizes captured keyword values: quotes are dropped, words are
// upper-cased and joined with single spaces ("set", "null" -> "SET NULL").
func keyword(values []string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strings.ToUpper(unquote(v)))
	}

	return strings.Join(parts, " ")
}

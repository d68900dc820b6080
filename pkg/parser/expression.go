package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

type (
	// Expression is an opaque, parenthesis-balanced token sequence such as the
	// body of a CHECK constraint or a DEFAULT (expr). It is kept as raw text;
	// no operator grammar is applied.
	Expression struct {
		Parts []*ExpressionPart `parser:"@@*"`
	}

	// ExpressionPart is a single token or a parenthesised sub-expression.
	ExpressionPart struct {
		Pos    lexer.Position
		EndPos lexer.Position

		Group *Expression `parser:"  '(' @@? ')'"`
		Token *string     `parser:"| @(~('(' | ')'))"`
	}
)

// String rebuilds the expression text. Tokens adjacent in the source stay
// adjacent (NOW(), t.col); everything else is separated by a single space.
func (e *Expression) String() string {
	if e == nil {
		return ""
	}

	var b strings.Builder
	for i, p := range e.Parts {
		if i > 0 && e.Parts[i-1].EndPos.Offset != p.Pos.Offset {
			b.WriteByte(' ')
		}

		b.WriteString(p.String())
	}

	return b.String()
}

func (p *ExpressionPart) String() string {
	if p.Token != nil {
		return *p.Token
	}

	return "(" + p.Group.String() + ")"
}

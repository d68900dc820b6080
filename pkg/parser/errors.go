package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	// KindSyntax is a grammar mismatch.
	KindSyntax ErrorKind = iota + 1
	// KindValue is a value outside its documented range or enumeration. It is
	// only reported for input that matched the grammar.
	KindValue
	// KindTrailing is input left over after the last complete statement.
	KindTrailing
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindValue:
		return "invalid value"
	case KindTrailing:
		return "unexpected input"
	default:
		return "error"
	}
}

// statementUsage is reported with syntax and trailing errors.
const statementUsage = "CREATE {DATABASE | SCHEMA} ... ; | CREATE [TEMPORARY] TABLE ... ; | " +
	"DROP {DATABASE | SCHEMA} ... ; | DROP [TEMPORARY] TABLE ... ; | USE db_name ;"

var statementUsages = map[string]string{
	"CREATE DATABASE":  "CREATE {DATABASE | SCHEMA} [IF NOT EXISTS] db_name [create_option] ... ;",
	"CREATE SCHEMA":    "CREATE {DATABASE | SCHEMA} [IF NOT EXISTS] db_name [create_option] ... ;",
	"CREATE TABLE":     "CREATE [TEMPORARY] TABLE [IF NOT EXISTS] tbl_name (create_definition, ...) [table_options] ;",
	"CREATE TEMPORARY": "CREATE [TEMPORARY] TABLE [IF NOT EXISTS] tbl_name (create_definition, ...) [table_options] ;",
	"DROP DATABASE":    "DROP {DATABASE | SCHEMA} [IF EXISTS] db_name ;",
	"DROP SCHEMA":      "DROP {DATABASE | SCHEMA} [IF EXISTS] db_name ;",
	"DROP TABLE":       "DROP [TEMPORARY] TABLE [IF EXISTS] tbl_name ;",
	"DROP TEMPORARY":   "DROP [TEMPORARY] TABLE [IF EXISTS] tbl_name ;",
	"USE":              "USE db_name ;",
}

// Error is returned by every parse entry point. Callers can use errors.As to
// retrieve it.
type Error struct {
	Kind    ErrorKind
	Message string
	// Usage is the canonical syntax of the construct that failed, when known.
	Usage string
	Pos   lexer.Position
	// Line is the source line containing Pos.
	Line string
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Pos.Filename != "" {
		b.WriteString(e.Pos.Filename)
		b.WriteByte(':')
	}

	fmt.Fprintf(&b, "%d:%d: %s: %s", e.Pos.Line, e.Pos.Column, e.Kind, e.Message)
	if e.Usage != "" {
		fmt.Fprintf(&b, " (usage: %s)", e.Usage)
	}

	return b.String()
}

// Snippet renders the offending line with a caret under the error column.
func (e *Error) Snippet() string {
	if e.Line == "" {
		return ""
	}

	col := max(e.Pos.Column-1, 0)
	return e.Line + "\n" + strings.Repeat(" ", col) + "^"
}

func (e *Error) withLine(input string) *Error {
	e.Line = lineAt(input, e.Pos.Offset)
	return e
}

func syntaxErr(pos lexer.Position, usage, format string, args ...any) *Error {
	return &Error{Kind: KindSyntax, Message: fmt.Sprintf(format, args...), Usage: usage, Pos: pos}
}

func valueErr(pos lexer.Position, usage, format string, args ...any) *Error {
	return &Error{Kind: KindValue, Message: fmt.Sprintf(format, args...), Usage: usage, Pos: pos}
}

// newParseError converts a participle failure into an *Error. A failure at
// the first token after a completed statement means no statement alternative
// applies there, which is reported as trailing input. The same failure at the
// start of the buffer is a syntax error: nothing was consumed.
func newParseError(filename, input string, err error) *Error {
	out := &Error{Kind: KindSyntax, Message: err.Error()}

	var perr participle.Error
	if pe, ok := err.(participle.Error); ok {
		perr = pe
		out.Message = perr.Message()
		out.Pos = perr.Position()
	}

	if out.Pos.Filename == "" {
		out.Pos.Filename = filename
	}

	tokens, lexErr := lex(filename, input)
	if perr == nil || lexErr != nil {
		return out.withLine(input)
	}

	start, at := statementStart(tokens, out.Pos.Offset)
	if at >= 0 && at == start {
		if start > 0 {
			out.Kind = KindTrailing
		}
		out.Message = fmt.Sprintf("unexpected %q; expected a statement", tokens[at].Value)
		out.Usage = statementUsage
		return out.withLine(input)
	}

	if start < len(tokens) {
		out.Usage = usageFor(tokens[start:])
	}

	return out.withLine(input)
}

// statementStart returns the index of the first token of the statement
// containing offset along with the index of the token at offset (-1 at end of
// input).
func statementStart(tokens []lexer.Token, offset int) (int, int) {
	start := 0
	for i, t := range tokens {
		if t.Pos.Offset >= offset {
			return start, i
		}

		if t.Value == ";" {
			start = i + 1
		}
	}

	return start, -1
}

func usageFor(tokens []lexer.Token) string {
	if len(tokens) == 0 {
		return ""
	}

	first := strings.ToUpper(tokens[0].Value)
	if usage, ok := statementUsages[first]; ok {
		return usage
	}

	if len(tokens) > 1 {
		return statementUsages[first+" "+strings.ToUpper(tokens[1].Value)]
	}

	return ""
}

func lineAt(input string, offset int) string {
	if offset < 0 || offset > len(input) {
		return ""
	}

	start := strings.LastIndexByte(input[:offset], '\n') + 1
	end := strings.IndexByte(input[offset:], '\n')
	if end < 0 {
		return strings.TrimRight(input[start:], "\r")
	}

	return strings.TrimRight(input[start:offset+end], "\r")
}

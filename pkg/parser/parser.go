package parser

import (
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
)

// lookahead bounds how far a failed alternative may have progressed before
// the parser commits to it. Keys and columns share leading keywords (a column
// may be named `key` or `primary`), so branches must be allowed to fail
// several tokens in.
const lookahead = 32

var (
	// mysqlLexer defines the lexer for MySQL DDL
	mysqlLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `(--|#)[^\r\n]*`},
		{Name: "MultilineComment", Pattern: `/\*[^*]*\*+([^/*][^*]*\*+)*/`},
		{Name: "String", Pattern: `'[^']*'`},
		{Name: "QuotedIdent", Pattern: "`([^`]|``)*`"},
		{Name: "BitLiteral", Pattern: `[bB]'[01]*'`},
		{Name: "HexLiteral", Pattern: `[xX]'[0-9a-fA-F]*'|0x[0-9a-fA-F]+`},
		{Name: "Number", Pattern: `[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?`},
		{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*`},
		{Name: "Punct", Pattern: `<=>|<=|>=|<>|!=|\|\||&&|:=|[(),.;=<>!+\-*/%&|^~@:?\[\]{}]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	// parser is the participle parser instance for MySQL DDL
	parser = participle.MustBuild[SQL](
		participle.Lexer(mysqlLexer),
		participle.Elide("Comment", "MultilineComment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(lookahead),
	)
)

type (
	// SQL is the root of a parsed buffer: every statement in source order.
	SQL struct {
		Statements []*Statement `parser:"@@*"`
	}

	// Statement is a tagged union of the supported top-level statements.
	// Exactly one field is set. Empty is set for a bare ';' which is what
	// mysqldump's conditional comments (/*!40101 ... */;) reduce to once
	// comments are elided.
	Statement struct {
		Pos lexer.Position

		CreateDatabase *CreateDatabaseStmt `parser:"  @@"`
		DropDatabase   *DropDatabaseStmt   `parser:"| @@"`
		CreateTable    *CreateTableStmt    `parser:"| @@"`
		DropTable      *DropTableStmt      `parser:"| @@"`
		Use            *UseStmt            `parser:"| @@"`
		Empty          bool                `parser:"| @';'"`
	}
)

// Parse parses MySQL DDL statements from the reader and returns the validated
// statement list. The returned error is a *Error.
func Parse(reader io.Reader) (*SQL, error) {
	return parseNamed("", reader)
}

// ParseString is a convenience wrapper around Parse for in-memory SQL.
func ParseString(sql string) (*SQL, error) {
	return parseSQL("", sql)
}

// ParseFile parses the file at path. Error positions carry the path as their
// filename.
func ParseFile(path string) (*SQL, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()

	return parseNamed(path, f)
}

func parseNamed(filename string, reader io.Reader) (*SQL, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SQL")
	}

	return parseSQL(filename, string(data))
}

func parseSQL(filename, input string) (*SQL, error) {
	sql, err := parser.ParseString(filename, input)
	if err != nil {
		return nil, newParseError(filename, input, err)
	}

	if err := sql.validate(); err != nil {
		return nil, err.withLine(input)
	}

	return sql, nil
}

// lex tokenizes input with the DDL lexer, dropping comments and whitespace.
func lex(filename, input string) ([]lexer.Token, error) {
	l, err := mysqlLexer.Lex(filename, strings.NewReader(input))
	if err != nil {
		return nil, err
	}

	tokens, err := lexer.ConsumeAll(l)
	if err != nil {
		return nil, err
	}

	symbols := mysqlLexer.Symbols()
	trivia := map[lexer.TokenType]bool{
		symbols["Comment"]:          true,
		symbols["MultilineComment"]: true,
		symbols["Whitespace"]:       true,
	}

	out := tokens[:0]
	for _, t := range tokens {
		if !trivia[t.Type] && !t.EOF() {
			out = append(out, t)
		}
	}

	return out, nil
}

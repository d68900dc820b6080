package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/pseudomuto/myddl/pkg/utils"
)

// FormatterOptions controls formatting behavior
type FormatterOptions struct {
	// IndentSize specifies the number of spaces for each indent level
	IndentSize int
	// UppercaseKeywords whether to uppercase SQL keywords
	UppercaseKeywords bool
	// AlignColumns whether to align column types in table definitions
	AlignColumns bool
}

// Defaults are the formatting options used by the CLI when no configuration
// overrides them. They match mysqldump's layout.
var Defaults = FormatterOptions{
	IndentSize:        4,
	UppercaseKeywords: true,
	AlignColumns:      false,
}

// Formatter handles SQL statement formatting with configurable options
type Formatter struct {
	options FormatterOptions
}

// New creates a new Formatter with the specified options. A non-positive
// IndentSize falls back to the default.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = Defaults.IndentSize
	}

	return &Formatter{options: options}
}

// Format writes the statements to w separated by blank lines. Nil and empty
// statements are skipped.
func Format(w io.Writer, options FormatterOptions, stmts ...*parser.Statement) error {
	return New(options).Format(w, stmts...)
}

// Format writes the statements to w separated by blank lines. Nil and empty
// statements are skipped.
func (f *Formatter) Format(w io.Writer, stmts ...*parser.Statement) error {
	formatted := make([]string, 0, len(stmts))
	for _, stmt := range stmts {
		if s := f.Statement(stmt); s != "" {
			formatted = append(formatted, s)
		}
	}

	if len(formatted) == 0 {
		return nil
	}

	_, err := io.WriteString(w, strings.Join(formatted, "\n\n"))
	return errors.Wrap(err, "failed to write formatted SQL")
}

// Statement formats a complete parser statement
func (f *Formatter) Statement(stmt *parser.Statement) string {
	if stmt == nil {
		return ""
	}

	switch {
	case stmt.CreateDatabase != nil:
		return f.CreateDatabase(stmt.CreateDatabase)
	case stmt.DropDatabase != nil:
		return f.DropDatabase(stmt.DropDatabase)
	case stmt.CreateTable != nil:
		return f.CreateTable(stmt.CreateTable)
	case stmt.DropTable != nil:
		return f.DropTable(stmt.DropTable)
	case stmt.Use != nil:
		return f.Use(stmt.Use)
	default:
		return ""
	}
}

// Statement formats a single statement with the default options.
func Statement(stmt *parser.Statement) string {
	return New(Defaults).Statement(stmt)
}

// keyword formats a keyword according to the formatter options
func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

// indent returns the specified number of indent levels as spaces
func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.options.IndentSize)
}

func (f *Formatter) identifier(name parser.Identifier) string {
	return utils.BacktickIdentifier(name.String())
}

func (f *Formatter) tableName(name *parser.TableName) string {
	var database *string
	if name.Database != nil {
		database = utils.Ptr(name.Database.String())
	}

	return utils.BacktickQualifiedName(database, name.Name.String())
}

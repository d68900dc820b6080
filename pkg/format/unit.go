package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/parser"
)

// Unit writes the entries of a parsed unit in source order. Table names
// without a qualifier are qualified with the database the entry was read in,
// so the output keeps its meaning whether or not USE is tracked when it is
// parsed again.
func Unit(w io.Writer, options FormatterOptions, unit *parser.Unit) error {
	return New(options).Unit(w, unit)
}

// Unit writes the entries of a parsed unit in source order. See Unit.
func (f *Formatter) Unit(w io.Writer, unit *parser.Unit) error {
	stmts := f.UnitStatements(unit)
	if len(stmts) == 0 {
		return nil
	}

	_, err := io.WriteString(w, strings.Join(stmts, "\n\n"))
	return errors.Wrap(err, "failed to write formatted SQL")
}

// UnitStatements formats each entry of the unit as a standalone statement,
// qualifying table names the same way Unit does.
func (f *Formatter) UnitStatements(unit *parser.Unit) []string {
	if unit == nil {
		return nil
	}

	out := make([]string, 0, len(unit.Entries))
	for _, e := range unit.Entries {
		if e.CreateDatabase != nil {
			out = append(out, f.CreateDatabase(e.CreateDatabase))
			continue
		}

		out = append(out, f.CreateTable(qualify(e.CreateTable, e.Database)))
	}

	return out
}

// qualify returns a shallow copy of the table with database as its qualifier.
// The parsed statement is never modified.
func qualify(table *parser.CreateTableStmt, database string) *parser.CreateTableStmt {
	if database == "" || table.Name.Database != nil {
		return table
	}

	db := parser.Identifier(database)
	name := *table.Name
	name.Database = &db

	out := *table
	out.Name = &name
	return &out
}

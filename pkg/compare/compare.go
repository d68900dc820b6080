package compare

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pseudomuto/myddl/pkg/parser"
)

// Difference describes one way an actual schema departs from the expected
// one. Column is empty for table level differences and Table is empty for
// database level ones.
type Difference struct {
	Database string
	Table    string
	Column   string
	Message  string
}

func (d Difference) String() string {
	parts := []string{d.Database}
	if d.Table != "" {
		parts = append(parts, d.Table)
	}
	if d.Column != "" {
		parts = append(parts, d.Column)
	}

	return strings.Join(parts, ".") + ": " + d.Message
}

type table struct {
	database string
	stmt     *parser.CreateTableStmt
}

// Units compares the tables of actual against those of expected. Tables are
// matched by database and name; columns by name. Type families are compared
// rather than exact types since servers normalize types (INTEGER becomes
// int, BOOL becomes tinyint(1)). Differences are reported in the order of
// expected, followed by tables only present in actual.
//
// Example:
//
//	for _, d := range compare.Units(fromFiles, fromServer) {
//		fmt.Println(d)
//	}
func Units(expected, actual *parser.Unit) []Difference {
	want := tables(expected)
	got := tables(actual)

	var diffs []Difference
	for _, key := range want.keys {
		w := want.index[key]
		g, ok := got.index[key]
		if !ok {
			diffs = append(diffs, Difference{Database: w.database, Table: w.name(), Message: "table is missing"})
			continue
		}

		diffs = append(diffs, Tables(w.database, w.stmt, g.stmt)...)
	}

	for _, key := range got.keys {
		if _, ok := want.index[key]; !ok {
			g := got.index[key]
			diffs = append(diffs, Difference{Database: g.database, Table: g.name(), Message: "unexpected table"})
		}
	}

	return diffs
}

// Tables compares the columns and primary key of two definitions of the same
// table.
func Tables(database string, expected, actual *parser.CreateTableStmt) []Difference {
	name := expected.Name.Name.String()
	diff := func(column, format string, args ...any) Difference {
		return Difference{Database: database, Table: name, Column: column, Message: fmt.Sprintf(format, args...)}
	}

	var diffs []Difference
	for _, col := range expected.Columns() {
		other := actual.Column(col.Name.String())
		if other == nil {
			diffs = append(diffs, diff(col.Name.String(), "column is missing"))
			continue
		}

		if !equivalent(col.Type.Kind(), other.Type.Kind()) {
			diffs = append(diffs, diff(col.Name.String(), "type is %s, want %s", other.Type.Kind(), col.Type.Kind()))
		}
	}

	for _, col := range actual.Columns() {
		if expected.Column(col.Name.String()) == nil {
			diffs = append(diffs, diff(col.Name.String(), "unexpected column"))
		}
	}

	if len(diffs) == 0 && !slices.Equal(columnNames(expected), columnNames(actual)) {
		diffs = append(diffs, diff("", "column order is (%s), want (%s)",
			strings.Join(columnNames(actual), ","),
			strings.Join(columnNames(expected), ","),
		))
	}

	if w, g := primaryKey(expected), primaryKey(actual); !slices.Equal(w, g) {
		diffs = append(diffs, diff("", "primary key is (%s), want (%s)", strings.Join(g, ","), strings.Join(w, ",")))
	}

	return diffs
}

type tableIndex struct {
	keys  []string
	index map[string]table
}

func tables(unit *parser.Unit) tableIndex {
	idx := tableIndex{index: map[string]table{}}
	if unit == nil {
		return idx
	}

	for _, e := range unit.Tables() {
		t := table{database: e.Database, stmt: e.CreateTable}
		key := t.database + "." + t.name()
		if _, ok := idx.index[key]; !ok {
			idx.keys = append(idx.keys, key)
		}
		idx.index[key] = t
	}

	return idx
}

func (t table) name() string {
	return t.stmt.Name.Name.String()
}

func columnNames(stmt *parser.CreateTableStmt) []string {
	cols := stmt.Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = c.Name.String()
	}

	return out
}

// primaryKey returns the primary key columns, whether declared on the table
// or inline on a column.
func primaryKey(stmt *parser.CreateTableStmt) []string {
	for _, k := range stmt.Keys() {
		if k.Primary != nil {
			return k.Primary.Columns()
		}
	}

	for _, col := range stmt.Columns() {
		if col.Attributes().HasKey(parser.PrimaryKeyKey) {
			return []string{col.Name.String()}
		}
	}

	return nil
}

func equivalent(a, b parser.TypeKind) bool {
	normalize := func(k parser.TypeKind) parser.TypeKind {
		if k == parser.BooleanKind {
			return parser.IntegerKind
		}
		return k
	}

	return normalize(a) == normalize(b)
}

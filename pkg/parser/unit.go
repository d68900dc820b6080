package parser

import (
	"io"

	"github.com/pkg/errors"
)

type (
	// Unit is the result of parsing one buffer: the CREATE statements it
	// contains, each paired with the database that was current when the
	// statement was read.
	Unit struct {
		Entries []Entry
	}

	// Entry pairs a CREATE statement with its database. Exactly one of
	// CreateDatabase and CreateTable is set.
	Entry struct {
		Database       string
		CreateDatabase *CreateDatabaseStmt
		CreateTable    *CreateTableStmt
	}

	// Database groups the tables of one database in declaration order.
	Database struct {
		Name   string
		Create *CreateDatabaseStmt
		Tables []*CreateTableStmt
	}

	// UnitOption configures how statements are folded into a Unit.
	UnitOption func(*unitOptions)

	unitOptions struct {
		trackUse bool
	}
)

// WithUseTracking makes USE statements change the current database. By
// default only CREATE DATABASE does.
func WithUseTracking(enabled bool) UnitOption {
	return func(o *unitOptions) { o.trackUse = enabled }
}

// ParseUnit parses and validates the DDL read from r and folds it into a
// Unit. filename is only used in error positions. Parse failures are
// returned as *Error.
func ParseUnit(filename string, r io.Reader, opts ...UnitOption) (*Unit, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", filename)
	}

	sql, err := parseSQL(filename, string(data))
	if err != nil {
		return nil, err
	}

	return NewUnit(sql, opts...), nil
}

// NewUnit folds already parsed statements into a Unit. The current database
// starts empty, is set by every CREATE DATABASE (and USE, when tracking is
// enabled) and is attached to every following CREATE TABLE. A qualified
// table name (db.tbl) takes precedence over the current database. DROP and
// USE statements produce no entries.
func NewUnit(sql *SQL, opts ...UnitOption) *Unit {
	var o unitOptions
	for _, opt := range opts {
		opt(&o)
	}

	unit := &Unit{}
	current := ""
	for _, stmt := range sql.Statements {
		switch {
		case stmt.CreateDatabase != nil:
			current = stmt.CreateDatabase.Name.String()
			unit.Entries = append(unit.Entries, Entry{Database: current, CreateDatabase: stmt.CreateDatabase})
		case stmt.CreateTable != nil:
			db := current
			if stmt.CreateTable.Name.Database != nil {
				db = stmt.CreateTable.Name.Database.String()
			}

			unit.Entries = append(unit.Entries, Entry{Database: db, CreateTable: stmt.CreateTable})
		case stmt.Use != nil && o.trackUse:
			current = stmt.Use.Name.String()
		}
	}

	return unit
}

// Tables returns every CREATE TABLE entry in source order.
func (u *Unit) Tables() []Entry {
	var out []Entry
	for _, e := range u.Entries {
		if e.CreateTable != nil {
			out = append(out, e)
		}
	}

	return out
}

// Databases groups the entries by database in order of first appearance.
// Tables created before any database was selected are grouped under "".
func (u *Unit) Databases() []*Database {
	var out []*Database
	index := map[string]*Database{}

	lookup := func(name string) *Database {
		if db, ok := index[name]; ok {
			return db
		}

		db := &Database{Name: name}
		index[name] = db
		out = append(out, db)
		return db
	}

	for _, e := range u.Entries {
		db := lookup(e.Database)
		if e.CreateDatabase != nil {
			db.Create = e.CreateDatabase
			continue
		}

		db.Tables = append(db.Tables, e.CreateTable)
	}

	return out
}

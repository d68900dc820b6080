package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// CreateTableStmt represents CREATE TABLE statements
	// Syntax: CREATE [TEMPORARY] TABLE [IF NOT EXISTS] [db.]tbl_name
	//         (create_definition, ...) [table_option [[,] table_option] ...];
	CreateTableStmt struct {
		Pos         lexer.Position
		Temporary   bool            `parser:"'CREATE' @'TEMPORARY'?"`
		IfNotExists bool            `parser:"'TABLE' @('IF' 'NOT' 'EXISTS')?"`
		Name        *TableName      `parser:"@@"`
		Elements    []*TableElement `parser:"'(' @@ (',' @@)* ')'"`
		Options     []*TableOption  `parser:"(@@ ','?)*"`
		Semicolon   bool            `parser:"';'"`
	}

	// DropTableStmt represents DROP TABLE statements
	// Syntax: DROP [TEMPORARY] TABLE [IF EXISTS] [db.]tbl_name;
	DropTableStmt struct {
		Pos       lexer.Position
		Temporary bool       `parser:"'DROP' @'TEMPORARY'?"`
		IfExists  bool       `parser:"'TABLE' @('IF' 'EXISTS')?"`
		Name      *TableName `parser:"@@"`
		Semicolon bool       `parser:"';'"`
	}

	// TableName is a table name with an optional database qualifier.
	TableName struct {
		Pos      lexer.Position
		Database *Identifier `parser:"(@(Ident | QuotedIdent) '.')?"`
		Name     Identifier  `parser:"@(Ident | QuotedIdent)"`
	}

	// TableElement is a single entry of the CREATE TABLE definition list.
	// Keys are tried first, so a column may still be named after a key
	// keyword (`key`, `index`, `primary`) as long as it is not followed by a
	// key shape.
	TableElement struct {
		Pos    lexer.Position
		Key    *KeyDefinition    `parser:"  @@"`
		Column *ColumnDefinition `parser:"| @@"`
	}
)

// Columns returns the column definitions in declaration order.
func (c *CreateTableStmt) Columns() []*ColumnDefinition {
	var out []*ColumnDefinition
	for _, e := range c.Elements {
		if e.Column != nil {
			out = append(out, e.Column)
		}
	}

	return out
}

// Keys returns the index and constraint definitions in declaration order.
func (c *CreateTableStmt) Keys() []*KeyDefinition {
	var out []*KeyDefinition
	for _, e := range c.Elements {
		if e.Key != nil {
			out = append(out, e.Key)
		}
	}

	return out
}

// Column returns the column with the given name, or nil.
func (c *CreateTableStmt) Column(name string) *ColumnDefinition {
	for _, col := range c.Columns() {
		if col.Name.String() == name {
			return col
		}
	}

	return nil
}

func (t *TableName) String() string {
	if t.Database != nil {
		return t.Database.String() + "." + t.Name.String()
	}

	return t.Name.String()
}

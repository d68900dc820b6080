package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// CreateDatabaseStmt represents CREATE DATABASE statements
	// Syntax: CREATE {DATABASE | SCHEMA} [IF NOT EXISTS] db_name [create_option] ...;
	CreateDatabaseStmt struct {
		Pos         lexer.Position
		IfNotExists bool              `parser:"'CREATE' ('DATABASE' | 'SCHEMA') @('IF' 'NOT' 'EXISTS')?"`
		Name        Identifier        `parser:"@(Ident | QuotedIdent)"`
		Options     []*DatabaseOption `parser:"@@*"`
		Semicolon   bool              `parser:"';'"`
	}

	// DatabaseOption is a single create_option of CREATE DATABASE.
	DatabaseOption struct {
		Pos        lexer.Position
		Charset    *Identifier `parser:"  'DEFAULT'? ('CHARACTER' 'SET' | 'CHARSET') '='? @(Ident | QuotedIdent | String)"`
		Collate    *Identifier `parser:"| 'DEFAULT'? 'COLLATE' '='? @(Ident | QuotedIdent | String)"`
		Encryption *Encryption `parser:"| 'DEFAULT'? 'ENCRYPTION' '='? @(String | Ident)"`
	}

	// DropDatabaseStmt represents DROP DATABASE statements
	// Syntax: DROP {DATABASE | SCHEMA} [IF EXISTS] db_name;
	DropDatabaseStmt struct {
		Pos       lexer.Position
		IfExists  bool       `parser:"'DROP' ('DATABASE' | 'SCHEMA') @('IF' 'EXISTS')?"`
		Name      Identifier `parser:"@(Ident | QuotedIdent)"`
		Semicolon bool       `parser:"';'"`
	}

	// UseStmt represents USE db_name;
	UseStmt struct {
		Pos       lexer.Position
		Name      Identifier `parser:"'USE' @(Ident | QuotedIdent)"`
		Semicolon bool       `parser:"';'"`
	}
)

// Charset returns the last CHARACTER SET option, or nil.
func (c *CreateDatabaseStmt) Charset() *string {
	var out *string
	for _, o := range c.Options {
		if o.Charset != nil {
			out = stringPtr(o.Charset.String())
		}
	}

	return out
}

// Collate returns the last COLLATE option, or nil.
func (c *CreateDatabaseStmt) Collate() *string {
	var out *string
	for _, o := range c.Options {
		if o.Collate != nil {
			out = stringPtr(o.Collate.String())
		}
	}

	return out
}

// Encryption returns the last ENCRYPTION option, or nil.
func (c *CreateDatabaseStmt) Encryption() *Encryption {
	var out *Encryption
	for _, o := range c.Options {
		if o.Encryption != nil {
			out = o.Encryption
		}
	}

	return out
}

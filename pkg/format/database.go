package format

import "github.com/pseudomuto/myddl/pkg/parser"

// CreateDatabase formats a CREATE DATABASE statement
func (f *Formatter) CreateDatabase(stmt *parser.CreateDatabaseStmt) string {
	b := f.ddl().
		keyword("CREATE DATABASE").
		keywordIf(stmt.IfNotExists, "IF NOT EXISTS").
		name(stmt.Name.String())

	for _, opt := range stmt.Options {
		switch {
		case opt.Charset != nil:
			b.keyword("CHARACTER SET").raw(opt.Charset.String())
		case opt.Collate != nil:
			b.keyword("COLLATE").raw(opt.Collate.String())
		case opt.Encryption != nil:
			b.keyword("ENCRYPTION").quoted(string(*opt.Encryption))
		}
	}

	return b.statement()
}

// DropDatabase formats a DROP DATABASE statement
func (f *Formatter) DropDatabase(stmt *parser.DropDatabaseStmt) string {
	return f.ddl().
		keyword("DROP DATABASE").
		keywordIf(stmt.IfExists, "IF EXISTS").
		name(stmt.Name.String()).
		statement()
}

// Use formats a USE statement
func (f *Formatter) Use(stmt *parser.UseStmt) string {
	return f.ddl().keyword("USE").name(stmt.Name.String()).statement()
}

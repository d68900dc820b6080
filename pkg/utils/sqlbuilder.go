package utils

import "strings"

// SQLBuilder provides a fluent interface for building single-line MySQL
// statements and clauses. Parts are joined with a single space.
//
// Example usage:
//
//	sql := NewSQLBuilder().
//		Create("DATABASE").
//		IfNotExists().
//		Name("shop").
//		Raw("CHARACTER SET utf8mb4").
//		String()
//	// Output: CREATE DATABASE IF NOT EXISTS `shop` CHARACTER SET utf8mb4;
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 10),
	}
}

// Create adds a CREATE clause with the specified object type.
//
// Example:
//
//	builder.Create("DATABASE")  // CREATE DATABASE
//	builder.Create("TABLE")     // CREATE TABLE
func (b *SQLBuilder) Create(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "CREATE", objectType)
	return b
}

// Drop adds a DROP clause with the specified object type.
func (b *SQLBuilder) Drop(objectType string) *SQLBuilder {
	b.parts = append(b.parts, "DROP", objectType)
	return b
}

// Show adds a SHOW clause, e.g. Show("CREATE TABLE").
func (b *SQLBuilder) Show(what string) *SQLBuilder {
	b.parts = append(b.parts, "SHOW", what)
	return b
}

// IfExists adds an IF EXISTS clause. This should be called after DROP operations.
func (b *SQLBuilder) IfExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "EXISTS")
	return b
}

// IfNotExists adds an IF NOT EXISTS clause. This should be called after CREATE operations.
func (b *SQLBuilder) IfNotExists() *SQLBuilder {
	b.parts = append(b.parts, "IF", "NOT", "EXISTS")
	return b
}

// Name adds a backticked object name.
//
// Example:
//
//	builder.Name("shop")           // `shop`
func (b *SQLBuilder) Name(name string) *SQLBuilder {
	if name != "" {
		b.parts = append(b.parts, BacktickIdentifier(name))
	}
	return b
}

// QualifiedName adds a qualified name with optional database prefix.
//
// Example:
//
//	builder.QualifiedName(nil, "users")              // `users`
//	builder.QualifiedName(&"shop", "users")          // `shop`.`users`
func (b *SQLBuilder) QualifiedName(database *string, name string) *SQLBuilder {
	qualifiedName := BacktickQualifiedName(database, name)
	if qualifiedName != "" {
		b.parts = append(b.parts, qualifiedName)
	}
	return b
}

// Option adds a key=value option. Empty values are skipped.
//
// Example:
//
//	builder.Option("ENGINE", "InnoDB")  // ENGINE=InnoDB
func (b *SQLBuilder) Option(key, value string) *SQLBuilder {
	if value != "" {
		b.parts = append(b.parts, key+"="+value)
	}
	return b
}

// Quoted adds a single-quoted string value.
func (b *SQLBuilder) Quoted(value string) *SQLBuilder {
	b.parts = append(b.parts, QuoteString(value))
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for complex constructs
// that don't fit the fluent pattern.
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// Len returns the number of parts added so far.
func (b *SQLBuilder) Len() int {
	return len(b.parts)
}

// String builds and returns the final SQL statement with a semicolon.
//
// Example:
//
//	sql := builder.Create("DATABASE").Name("test").String()
//	// Returns: "CREATE DATABASE `test`;"
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}

// StringWithoutSemicolon builds and returns the final SQL statement without a semicolon.
// Useful for building parts of larger statements.
func (b *SQLBuilder) StringWithoutSemicolon() string {
	return strings.Join(b.parts, " ")
}

package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// ColumnKey is a key marker written inline on a column definition.
type ColumnKey string

const (
	AutoIncrementKey ColumnKey = "AUTO_INCREMENT"
	PrimaryKeyKey    ColumnKey = "PRIMARY KEY"
	UniqueKeyKey     ColumnKey = "UNIQUE KEY"
)

type (
	// ColumnDefinition represents a single column in CREATE TABLE
	// Syntax: col_name data_type [NOT NULL | NULL] [DEFAULT ...] [VISIBLE | INVISIBLE]
	//         [AUTO_INCREMENT] [UNIQUE [KEY]] [[PRIMARY] KEY] [COMMENT 'string']
	//         [COLLATE collation_name] [COLUMN_FORMAT {FIXED | DYNAMIC | DEFAULT}]
	//         [ENGINE_ATTRIBUTE [=] 'string'] [SECONDARY_ENGINE_ATTRIBUTE [=] 'string']
	//         [STORAGE {DISK | MEMORY}]
	//
	// The attributes may appear in any order; Fragments keeps them as written
	// and Attributes folds them.
	ColumnDefinition struct {
		Pos       lexer.Position
		Name      Identifier         `parser:"@(Ident | QuotedIdent)"`
		Type      *DataType          `parser:"@@"`
		Fragments []*ColumnAttribute `parser:"@@*"`
	}

	// ColumnAttribute is one attribute fragment of a column definition.
	ColumnAttribute struct {
		Pos lexer.Position

		Null                     *NullConstraint `parser:"  @@"`
		Default                  *DefaultValue   `parser:"| @@"`
		OnUpdate                 *OnUpdate       `parser:"| @@"`
		Visibility               *Visibility     `parser:"| @('VISIBLE' | 'INVISIBLE')"`
		AutoIncrement            bool            `parser:"| @'AUTO_INCREMENT'"`
		Unique                   bool            `parser:"| @('UNIQUE' 'KEY'?)"`
		Primary                  bool            `parser:"| @('PRIMARY'? 'KEY')"`
		Comment                  *Text           `parser:"| 'COMMENT' @String"`
		Collate                  *Identifier     `parser:"| 'COLLATE' @(Ident | QuotedIdent | String)"`
		ColumnFormat             *ColumnFormat   `parser:"| 'COLUMN_FORMAT' @Ident"`
		EngineAttribute          *Text           `parser:"| 'ENGINE_ATTRIBUTE' '='? @String"`
		SecondaryEngineAttribute *Text           `parser:"| 'SECONDARY_ENGINE_ATTRIBUTE' '='? @String"`
		Storage                  *Storage        `parser:"| 'STORAGE' @Ident"`
	}

	// NullConstraint represents NULL or NOT NULL.
	NullConstraint struct {
		Not bool `parser:"@'NOT'? 'NULL'"`
	}

	// DefaultValue represents a DEFAULT clause. Alternatives are tried in
	// order: literal, current timestamp, NULL.
	DefaultValue struct {
		Pos              lexer.Position
		Literal          *Literal          `parser:"'DEFAULT' ( @@"`
		CurrentTimestamp *CurrentTimestamp `parser:"          | @@"`
		Null             bool              `parser:"          | @'NULL' )"`
	}

	// Literal is a constant default value.
	Literal struct {
		Pos        lexer.Position
		String     *Text       `parser:"  @String"`
		Number     *string     `parser:"| @Number"`
		Bit        *string     `parser:"| @BitLiteral"`
		Hex        *string     `parser:"| @HexLiteral"`
		Boolean    *string     `parser:"| @('TRUE' | 'FALSE')"`
		Expression *Expression `parser:"| '(' @@ ')'"`
	}

	// CurrentTimestamp represents CURRENT_TIMESTAMP[(p)] and its synonyms
	// NOW(), LOCALTIME and LOCALTIMESTAMP, optionally followed by an ON UPDATE
	// clause.
	CurrentTimestamp struct {
		Pos       lexer.Position
		Name      string    `parser:"@('CURRENT_TIMESTAMP' | 'NOW' | 'LOCALTIMESTAMP' | 'LOCALTIME')"`
		Precision *Number   `parser:"('(' @@? ')')?"`
		OnUpdate  *OnUpdate `parser:"@@?"`
	}

	// OnUpdate represents ON UPDATE CURRENT_TIMESTAMP[(p)]
	OnUpdate struct {
		Pos       lexer.Position
		Name      string  `parser:"'ON' 'UPDATE' @('CURRENT_TIMESTAMP' | 'NOW' | 'LOCALTIMESTAMP' | 'LOCALTIME')"`
		Precision *Number `parser:"('(' @@? ')')?"`
	}

	// Attributes is the fold of a column's attribute fragments. Later
	// fragments of the same kind replace earlier ones; inline key markers
	// accumulate in source order.
	Attributes struct {
		// NotNull is true when the last null constraint was NOT NULL.
		NotNull                  bool
		Default                  *DefaultValue
		OnUpdate                 *OnUpdate
		Visible                  *bool
		Keys                     []ColumnKey
		Comment                  *string
		Collation                *string
		ColumnFormat             *ColumnFormat
		EngineAttribute          *string
		SecondaryEngineAttribute *string
		Storage                  *Storage
	}
)

// Attributes folds the attribute fragments of the column. It returns nil when
// the column has none.
func (c *ColumnDefinition) Attributes() *Attributes {
	if len(c.Fragments) == 0 {
		return nil
	}

	attrs := &Attributes{}
	for _, f := range c.Fragments {
		switch {
		case f.Null != nil:
			attrs.NotNull = f.Null.Not
		case f.Default != nil:
			attrs.Default = f.Default
			if f.Default.CurrentTimestamp != nil && f.Default.CurrentTimestamp.OnUpdate != nil {
				attrs.OnUpdate = f.Default.CurrentTimestamp.OnUpdate
			}
		case f.OnUpdate != nil:
			attrs.OnUpdate = f.OnUpdate
		case f.Visibility != nil:
			visible := *f.Visibility == Visible
			attrs.Visible = &visible
		case f.AutoIncrement:
			attrs.Keys = append(attrs.Keys, AutoIncrementKey)
		case f.Unique:
			attrs.Keys = append(attrs.Keys, UniqueKeyKey)
		case f.Primary:
			attrs.Keys = append(attrs.Keys, PrimaryKeyKey)
		case f.Comment != nil:
			attrs.Comment = stringPtr(f.Comment.String())
		case f.Collate != nil:
			attrs.Collation = stringPtr(f.Collate.String())
		case f.ColumnFormat != nil:
			attrs.ColumnFormat = f.ColumnFormat
		case f.EngineAttribute != nil:
			attrs.EngineAttribute = stringPtr(f.EngineAttribute.String())
		case f.SecondaryEngineAttribute != nil:
			attrs.SecondaryEngineAttribute = stringPtr(f.SecondaryEngineAttribute.String())
		case f.Storage != nil:
			attrs.Storage = f.Storage
		}
	}

	return attrs
}

// HasKey reports whether the given inline key marker was written.
func (a *Attributes) HasKey(key ColumnKey) bool {
	if a == nil {
		return false
	}

	for _, k := range a.Keys {
		if k == key {
			return true
		}
	}

	return false
}

// Text returns the raw SQL text of a literal default (strings are re-quoted).
func (l *Literal) Text() string {
	switch {
	case l.String != nil:
		return "'" + l.String.String() + "'"
	case l.Number != nil:
		return *l.Number
	case l.Bit != nil:
		return *l.Bit
	case l.Hex != nil:
		return *l.Hex
	case l.Boolean != nil:
		return strings.ToUpper(*l.Boolean)
	case l.Expression != nil:
		return "(" + l.Expression.String() + ")"
	default:
		return ""
	}
}

func stringPtr(s string) *string { return &s }

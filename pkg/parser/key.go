package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// KeyDefinition represents an index or constraint in CREATE TABLE. Exactly
	// one alternative is set.
	KeyDefinition struct {
		Pos lexer.Position

		Index    *IndexKey        `parser:"  @@"`
		Fulltext *SpecialIndex    `parser:"| 'FULLTEXT' @@"`
		Spatial  *SpecialIndex    `parser:"| 'SPATIAL' @@"`
		Primary  *PrimaryKey      `parser:"| @@"`
		Unique   *UniqueKey       `parser:"| @@"`
		Foreign  *ForeignKey      `parser:"| @@"`
		Check    *CheckConstraint `parser:"| @@"`
	}

	// ConstraintName is the optional CONSTRAINT [symbol] prefix.
	ConstraintName struct {
		Symbol *Identifier `parser:"'CONSTRAINT' ((?! 'PRIMARY' | 'UNIQUE' | 'FOREIGN' | 'CHECK') @(Ident | QuotedIdent))?"`
	}

	// IndexKey represents a plain index
	// Syntax: {INDEX | KEY} [index_name] [USING {BTREE | HASH}] (key_part, ...) [index_option] ...
	IndexKey struct {
		Pos     lexer.Position
		Keyword string                 `parser:"@('INDEX' | 'KEY')"`
		Name    *Identifier            `parser:"((?! 'USING') @(Ident | QuotedIdent))?"`
		Using   *IndexType             `parser:"@@?"`
		Parts   []*KeyPart             `parser:"'(' @@ (',' @@)* ')'"`
		Options []*IndexOptionFragment `parser:"@@*"`
	}

	// SpecialIndex represents a FULLTEXT or SPATIAL index
	// Syntax: {FULLTEXT | SPATIAL} [INDEX | KEY] [index_name] (key_part, ...) [index_option] ...
	SpecialIndex struct {
		Pos     lexer.Position
		Keyword *string                `parser:"@('INDEX' | 'KEY')?"`
		Name    *Identifier            `parser:"((?! 'USING') @(Ident | QuotedIdent))?"`
		Parts   []*KeyPart             `parser:"'(' @@ (',' @@)* ')'"`
		Options []*IndexOptionFragment `parser:"@@*"`
	}

	// PrimaryKey represents a primary key constraint
	// Syntax: [CONSTRAINT [symbol]] PRIMARY KEY [USING {BTREE | HASH}] (key_part, ...) [index_option] ...
	PrimaryKey struct {
		Pos        lexer.Position
		Constraint *ConstraintName        `parser:"@@? 'PRIMARY' 'KEY'"`
		Using      *IndexType             `parser:"@@?"`
		Parts      []*KeyPart             `parser:"'(' @@ (',' @@)* ')'"`
		Options    []*IndexOptionFragment `parser:"@@*"`
	}

	// UniqueKey represents a unique constraint
	// Syntax: [CONSTRAINT [symbol]] UNIQUE [INDEX | KEY] [index_name] [USING {BTREE | HASH}] (key_part, ...) [index_option] ...
	UniqueKey struct {
		Pos        lexer.Position
		Constraint *ConstraintName        `parser:"@@? 'UNIQUE'"`
		Keyword    *string                `parser:"@('INDEX' | 'KEY')?"`
		Name       *Identifier            `parser:"((?! 'USING') @(Ident | QuotedIdent))?"`
		Using      *IndexType             `parser:"@@?"`
		Parts      []*KeyPart             `parser:"'(' @@ (',' @@)* ')'"`
		Options    []*IndexOptionFragment `parser:"@@*"`
	}

	// ForeignKey represents a foreign key constraint
	// Syntax: [CONSTRAINT [symbol]] FOREIGN KEY [index_name] (col_name, ...) reference_definition
	ForeignKey struct {
		Pos        lexer.Position
		Constraint *ConstraintName `parser:"@@? 'FOREIGN' 'KEY'"`
		Name       *Identifier     `parser:"@(Ident | QuotedIdent)?"`
		Parts      []*KeyPart      `parser:"'(' @@ (',' @@)* ')'"`
		Reference  *Reference      `parser:"@@"`
	}

	// CheckConstraint represents a check constraint
	// Syntax: [CONSTRAINT [symbol]] CHECK (expr) [[NOT] ENFORCED]
	CheckConstraint struct {
		Pos         lexer.Position
		Constraint  *ConstraintName `parser:"@@? 'CHECK'"`
		Expression  *Expression     `parser:"'(' @@ ')'"`
		Enforcement *Enforcement    `parser:"@('NOT'? 'ENFORCED')?"`
	}

	// KeyPart is a column reference in an index: col_name [(length)] [ASC | DESC]
	KeyPart struct {
		Pos    lexer.Position
		Column Identifier `parser:"@(Ident | QuotedIdent)"`
		Length *Number    `parser:"('(' @@ ')')?"`
		Order  *string    `parser:"@('ASC' | 'DESC')?"`
	}

	// IndexType is a USING {BTREE | HASH} clause.
	IndexType struct {
		Pos       lexer.Position
		Algorithm IndexAlgorithm `parser:"'USING' @Ident"`
	}

	// Reference represents a foreign key reference definition
	// Syntax: REFERENCES tbl_name (key_part, ...) [MATCH FULL | MATCH PARTIAL | MATCH SIMPLE]
	//         [ON DELETE reference_option] [ON UPDATE reference_option]
	Reference struct {
		Pos     lexer.Position
		Table   *TableName         `parser:"'REFERENCES' @@"`
		Parts   []*KeyPart         `parser:"'(' @@ (',' @@)* ')'"`
		Match   *MatchType         `parser:"('MATCH' @('FULL' | 'PARTIAL' | 'SIMPLE'))?"`
		Actions []*ReferenceAction `parser:"@@*"`
	}

	// ReferenceAction is an ON DELETE or ON UPDATE clause.
	ReferenceAction struct {
		Pos    lexer.Position
		Event  ReferenceEvent  `parser:"'ON' @('DELETE' | 'UPDATE')"`
		Option ReferenceOption `parser:"@('RESTRICT' | 'CASCADE' | 'SET' 'NULL' | 'SET' 'DEFAULT' | 'NO' 'ACTION')"`
	}

	// IndexOptionFragment is one index option as written.
	IndexOptionFragment struct {
		Pos lexer.Position

		KeyBlockSize             *Number     `parser:"  'KEY_BLOCK_SIZE' '='? @@"`
		Using                    *IndexType  `parser:"| @@"`
		WithParser               *Identifier `parser:"| 'WITH' 'PARSER' @(Ident | QuotedIdent)"`
		Comment                  *Text       `parser:"| 'COMMENT' @String"`
		Visibility               *Visibility `parser:"| @('VISIBLE' | 'INVISIBLE')"`
		EngineAttribute          *Text       `parser:"| 'ENGINE_ATTRIBUTE' '='? @String"`
		SecondaryEngineAttribute *Text       `parser:"| 'SECONDARY_ENGINE_ATTRIBUTE' '='? @String"`
	}

	// IndexOption is the fold of an index's option fragments, last one wins.
	IndexOption struct {
		KeyBlockSize             *int
		IndexType                *IndexAlgorithm
		WithParser               *string
		Comment                  *string
		Visible                  *bool
		EngineAttribute          *string
		SecondaryEngineAttribute *string
	}
)

// Option folds the index options. Nil when none were given.
func (k *IndexKey) Option() *IndexOption { return foldIndexOptions(k.Options) }

// Option folds the index options. Nil when none were given.
func (k *SpecialIndex) Option() *IndexOption { return foldIndexOptions(k.Options) }

// Option folds the index options. Nil when none were given.
func (k *PrimaryKey) Option() *IndexOption { return foldIndexOptions(k.Options) }

// Option folds the index options. Nil when none were given.
func (k *UniqueKey) Option() *IndexOption { return foldIndexOptions(k.Options) }

// Columns returns the column names of the key parts.
func (k *IndexKey) Columns() []string { return keyColumns(k.Parts) }

// Columns returns the column names of the key parts.
func (k *SpecialIndex) Columns() []string { return keyColumns(k.Parts) }

// Columns returns the column names of the key parts.
func (k *PrimaryKey) Columns() []string { return keyColumns(k.Parts) }

// Columns returns the column names of the key parts.
func (k *UniqueKey) Columns() []string { return keyColumns(k.Parts) }

// Columns returns the referencing column names.
func (k *ForeignKey) Columns() []string { return keyColumns(k.Parts) }

// Columns returns the referenced column names.
func (r *Reference) Columns() []string { return keyColumns(r.Parts) }

// OnDelete returns the last ON DELETE action, or nil.
func (r *Reference) OnDelete() *ReferenceOption { return r.action(OnDeleteEvent) }

// OnUpdate returns the last ON UPDATE action, or nil.
func (r *Reference) OnUpdate() *ReferenceOption { return r.action(OnUpdateEvent) }

func (r *Reference) action(event ReferenceEvent) *ReferenceOption {
	var out *ReferenceOption
	for _, a := range r.Actions {
		if a.Event == event {
			opt := a.Option
			out = &opt
		}
	}

	return out
}

// Text returns the raw CHECK expression.
func (c *CheckConstraint) Text() string { return c.Expression.String() }

// Enforced reports whether the constraint is enforced (the MySQL default).
func (c *CheckConstraint) Enforced() bool {
	return c.Enforcement == nil || *c.Enforcement == Enforced
}

// symbol returns the CONSTRAINT symbol, or nil.
func (c *ConstraintName) symbol() *string {
	if c == nil || c.Symbol == nil {
		return nil
	}

	return stringPtr(c.Symbol.String())
}

// Symbol returns the constraint name, if one was given.
func (k *KeyDefinition) Symbol() *string {
	switch {
	case k.Primary != nil:
		return k.Primary.Constraint.symbol()
	case k.Unique != nil:
		return k.Unique.Constraint.symbol()
	case k.Foreign != nil:
		return k.Foreign.Constraint.symbol()
	case k.Check != nil:
		return k.Check.Constraint.symbol()
	default:
		return nil
	}
}

func keyColumns(parts []*KeyPart) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.Column.String()
	}

	return out
}

func foldIndexOptions(frags []*IndexOptionFragment) *IndexOption {
	if len(frags) == 0 {
		return nil
	}

	opt := &IndexOption{}
	for _, f := range frags {
		switch {
		case f.KeyBlockSize != nil:
			size := f.KeyBlockSize.Int()
			opt.KeyBlockSize = &size
		case f.Using != nil:
			algo := f.Using.Algorithm
			opt.IndexType = &algo
		case f.WithParser != nil:
			opt.WithParser = stringPtr(f.WithParser.String())
		case f.Comment != nil:
			opt.Comment = stringPtr(f.Comment.String())
		case f.Visibility != nil:
			visible := *f.Visibility == Visible
			opt.Visible = &visible
		case f.EngineAttribute != nil:
			opt.EngineAttribute = stringPtr(f.EngineAttribute.String())
		case f.SecondaryEngineAttribute != nil:
			opt.SecondaryEngineAttribute = stringPtr(f.SecondaryEngineAttribute.String())
		}
	}

	return opt
}

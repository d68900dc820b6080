package parser

import "github.com/alecthomas/participle/v2/lexer"

type (
	// TableOption is a single table option. Exactly one field is set.
	//
	// Options with a closed value set capture any identifier, number or
	// string; the validator rejects values outside the set.
	TableOption struct {
		Pos lexer.Position

		AutoextendSize           *SizeValue        `parser:"  'AUTOEXTEND_SIZE' '='? @@"`
		AutoIncrement            *Number           `parser:"| 'AUTO_INCREMENT' '='? @@"`
		AvgRowLength             *Number           `parser:"| 'AVG_ROW_LENGTH' '='? @@"`
		Charset                  *Identifier       `parser:"| 'DEFAULT'? ('CHARACTER' 'SET' | 'CHARSET') '='? @(Ident | QuotedIdent | String)"`
		Checksum                 *Toggle           `parser:"| 'CHECKSUM' '='? @(Number | Ident | String)"`
		Collate                  *Identifier       `parser:"| 'DEFAULT'? 'COLLATE' '='? @(Ident | QuotedIdent | String)"`
		Comment                  *Text             `parser:"| 'COMMENT' '='? @String"`
		Compression              *Compression      `parser:"| 'COMPRESSION' '='? @(String | Ident)"`
		Connection               *Text             `parser:"| 'CONNECTION' '='? @String"`
		Directory                *DirectoryOption  `parser:"| @@"`
		DelayKeyWrite            *Toggle           `parser:"| 'DELAY_KEY_WRITE' '='? @(Number | Ident | String)"`
		Encryption               *Encryption       `parser:"| 'ENCRYPTION' '='? @(String | Ident)"`
		Engine                   *Identifier       `parser:"| 'ENGINE' '='? @(Ident | QuotedIdent | String)"`
		EngineAttribute          *Text             `parser:"| 'ENGINE_ATTRIBUTE' '='? @String"`
		InsertMethod             *InsertMethod     `parser:"| 'INSERT_METHOD' '='? @(Ident | String)"`
		KeyBlockSize             *Number           `parser:"| 'KEY_BLOCK_SIZE' '='? @@"`
		MaxRows                  *Number           `parser:"| 'MAX_ROWS' '='? @@"`
		MinRows                  *Number           `parser:"| 'MIN_ROWS' '='? @@"`
		PackKeys                 *TriState         `parser:"| 'PACK_KEYS' '='? @(Number | Ident | String)"`
		Password                 *Text             `parser:"| 'PASSWORD' '='? @String"`
		RowFormat                *RowFormat        `parser:"| 'ROW_FORMAT' '='? @(Ident | String)"`
		SecondaryEngineAttribute *Text             `parser:"| 'SECONDARY_ENGINE_ATTRIBUTE' '='? @String"`
		StatsAutoRecalc          *TriState         `parser:"| 'STATS_AUTO_RECALC' '='? @(Number | Ident | String)"`
		StatsPersistent          *TriState         `parser:"| 'STATS_PERSISTENT' '='? @(Number | Ident | String)"`
		StatsSamplePages         *Number           `parser:"| 'STATS_SAMPLE_PAGES' '='? @@"`
		Tablespace               *TablespaceOption `parser:"| @@"`
		Union                    []*TableName      `parser:"| 'UNION' '='? '(' @@ (',' @@)* ')'"`
	}

	// SizeValue is a byte size with an optional K, M or G suffix (4M).
	SizeValue struct {
		Pos    lexer.Position
		Number *Number `parser:"@@"`
		Unit   *string `parser:"@('K' | 'M' | 'G')?"`
	}

	// DirectoryOption represents {DATA | INDEX} DIRECTORY [=] 'path'
	DirectoryOption struct {
		Kind DirectoryKind `parser:"@('DATA' | 'INDEX') 'DIRECTORY' '='?"`
		Path Text          `parser:"@String"`
	}

	// TablespaceOption represents TABLESPACE name [STORAGE {DISK | MEMORY}]
	TablespaceOption struct {
		Name    Identifier `parser:"'TABLESPACE' '='? @(Ident | QuotedIdent)"`
		Storage *Storage   `parser:"('STORAGE' @Ident)?"`
	}
)

// Bytes returns the size in bytes.
func (s *SizeValue) Bytes() int64 {
	n, _ := s.Number.Int64()
	if s.Unit == nil {
		return n
	}

	switch *s.Unit {
	case "K", "k":
		return n << 10
	case "M", "m":
		return n << 20
	default:
		return n << 30
	}
}

// TableOptions is the fold of a table's option list, last one wins.
type TableOptions struct {
	Engine        *string
	Charset       *string
	Collate       *string
	Comment       *string
	RowFormat     *RowFormat
	AutoIncrement *int64
}

// Fold summarises the most commonly consumed options of the table.
func (c *CreateTableStmt) Fold() *TableOptions {
	out := &TableOptions{}
	for _, o := range c.Options {
		switch {
		case o.Engine != nil:
			out.Engine = stringPtr(o.Engine.String())
		case o.Charset != nil:
			out.Charset = stringPtr(o.Charset.String())
		case o.Collate != nil:
			out.Collate = stringPtr(o.Collate.String())
		case o.Comment != nil:
			out.Comment = stringPtr(o.Comment.String())
		case o.RowFormat != nil:
			out.RowFormat = o.RowFormat
		case o.AutoIncrement != nil:
			n, _ := o.AutoIncrement.Int64()
			out.AutoIncrement = &n
		}
	}

	return out
}

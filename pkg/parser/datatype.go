package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TypeKind identifies the family a DataType belongs to.
type TypeKind int

const (
	UnknownKind TypeKind = iota
	BitKind
	IntegerKind
	BooleanKind
	DecimalKind
	FloatKind
	DoubleKind
	CharKind
	VarcharKind
	BinaryKind
	VarbinaryKind
	BlobKind
	TextKind
	EnumKind
	TemporalKind
	JSONKind
	GenericKind
)

var typeKindNames = [...]string{
	UnknownKind:   "unknown",
	BitKind:       "bit",
	IntegerKind:   "integer",
	BooleanKind:   "boolean",
	DecimalKind:   "decimal",
	FloatKind:     "float",
	DoubleKind:    "double",
	CharKind:      "char",
	VarcharKind:   "varchar",
	BinaryKind:    "binary",
	VarbinaryKind: "varbinary",
	BlobKind:      "blob",
	TextKind:      "text",
	EnumKind:      "enum",
	TemporalKind:  "temporal",
	JSONKind:      "json",
	GenericKind:   "generic",
}

func (k TypeKind) String() string {
	if int(k) < len(typeKindNames) {
		return typeKindNames[k]
	}

	return typeKindNames[UnknownKind]
}

type (
	// DataType represents a column data type. Exactly one alternative is set.
	// Generic catches any other name(args) shape so that a malformed or
	// unsupported type gets a type-specific diagnostic from the validator.
	DataType struct {
		Pos lexer.Position

		Bit       *BitType       `parser:"  @@"`
		Integer   *IntegerType   `parser:"| @@"`
		Boolean   *BooleanType   `parser:"| @@"`
		Decimal   *DecimalType   `parser:"| @@"`
		Float     *FloatType     `parser:"| @@"`
		Double    *DoubleType    `parser:"| @@"`
		Char      *CharType      `parser:"| @@"`
		Varchar   *VarcharType   `parser:"| @@"`
		Binary    *BinaryType    `parser:"| @@"`
		Varbinary *VarbinaryType `parser:"| @@"`
		Blob      *BlobType      `parser:"| @@"`
		Text      *TextType      `parser:"| @@"`
		Enum      *EnumType      `parser:"| @@"`
		Temporal  *TemporalType  `parser:"| @@"`
		JSON      *JSONType      `parser:"| @@"`
		Generic   *GenericType   `parser:"| @@"`
	}

	// BitType represents BIT[(M)]
	BitType struct {
		Pos    lexer.Position
		Name   string  `parser:"@'BIT'"`
		Length *Number `parser:"('(' @@ ')')?"`
	}

	// IntegerType represents TINYINT, SMALLINT, MEDIUMINT, INT, INTEGER and BIGINT
	// Syntax: INT[(M)] [UNSIGNED | SIGNED] [ZEROFILL]
	IntegerType struct {
		Pos      lexer.Position
		Name     string  `parser:"@('TINYINT' | 'SMALLINT' | 'MEDIUMINT' | 'INTEGER' | 'INT' | 'BIGINT')"`
		Width    *Number `parser:"('(' @@ ')')?"`
		Unsigned bool    `parser:"(@'UNSIGNED' | 'SIGNED')?"`
		Zerofill bool    `parser:"@'ZEROFILL'?"`
	}

	// BooleanType represents BOOL and BOOLEAN, synonyms for TINYINT(1).
	BooleanType struct {
		Name string `parser:"@('BOOLEAN' | 'BOOL')"`
	}

	// DecimalType represents DECIMAL and its synonyms DEC, NUMERIC and FIXED
	// Syntax: DECIMAL[(M[,D])] [UNSIGNED] [ZEROFILL]
	DecimalType struct {
		Pos       lexer.Position
		Name      string  `parser:"@('DECIMAL' | 'DEC' | 'NUMERIC' | 'FIXED')"`
		Precision *Number `parser:"('(' @@"`
		Scale     *Number `parser:"  (',' @@)? ')')?"`
		Unsigned  bool    `parser:"(@'UNSIGNED' | 'SIGNED')?"`
		Zerofill  bool    `parser:"@'ZEROFILL'?"`
	}

	// FloatType represents FLOAT(p) and the deprecated FLOAT(M,D) form.
	FloatType struct {
		Pos       lexer.Position
		Name      string  `parser:"@'FLOAT'"`
		Precision *Number `parser:"('(' @@"`
		Scale     *Number `parser:"  (',' @@)? ')')?"`
		Unsigned  bool    `parser:"(@'UNSIGNED' | 'SIGNED')?"`
		Zerofill  bool    `parser:"@'ZEROFILL'?"`
	}

	// DoubleType represents DOUBLE, DOUBLE PRECISION and REAL
	// Syntax: DOUBLE[(M,D)] [UNSIGNED] [ZEROFILL]
	DoubleType struct {
		Pos       lexer.Position
		Name      string  `parser:"@('DOUBLE' | 'REAL')"`
		Precision bool    `parser:"@'PRECISION'?"`
		Length    *Number `parser:"('(' @@"`
		Scale     *Number `parser:"  ',' @@ ')')?"`
		Unsigned  bool    `parser:"(@'UNSIGNED' | 'SIGNED')?"`
		Zerofill  bool    `parser:"@'ZEROFILL'?"`
	}

	// Charset holds the CHARACTER SET and COLLATE modifiers of string types.
	Charset struct {
		CharacterSet *Identifier `parser:"(('CHARACTER' 'SET' | 'CHARSET') @(Ident | QuotedIdent | String))?"`
		Collate      *Identifier `parser:"('COLLATE' @(Ident | QuotedIdent | String))?"`
	}

	// CharType represents CHAR[(M)]
	CharType struct {
		Pos    lexer.Position
		Name   string  `parser:"@'CHAR'"`
		Length *Number `parser:"('(' @@ ')')?"`
		Charset
	}

	// VarcharType represents VARCHAR(M)
	VarcharType struct {
		Pos    lexer.Position
		Name   string  `parser:"@'VARCHAR'"`
		Length *Number `parser:"'(' @@ ')'"`
		Charset
	}

	// BinaryType represents BINARY[(M)]
	BinaryType struct {
		Pos    lexer.Position
		Name   string  `parser:"@'BINARY'"`
		Length *Number `parser:"('(' @@ ')')?"`
	}

	// VarbinaryType represents VARBINARY(M)
	VarbinaryType struct {
		Pos    lexer.Position
		Name   string  `parser:"@'VARBINARY'"`
		Length *Number `parser:"'(' @@ ')'"`
	}

	// BlobType represents TINYBLOB, BLOB[(M)], MEDIUMBLOB and LONGBLOB
	BlobType struct {
		Pos    lexer.Position
		Name   string  `parser:"@('TINYBLOB' | 'BLOB' | 'MEDIUMBLOB' | 'LONGBLOB')"`
		Length *Number `parser:"('(' @@ ')')?"`
	}

	// TextType represents TINYTEXT, TEXT[(M)], MEDIUMTEXT and LONGTEXT
	TextType struct {
		Pos    lexer.Position
		Name   string  `parser:"@('TINYTEXT' | 'TEXT' | 'MEDIUMTEXT' | 'LONGTEXT')"`
		Length *Number `parser:"('(' @@ ')')?"`
		Charset
	}

	// EnumType represents ENUM('a', ...) and SET('a', ...)
	EnumType struct {
		Pos    lexer.Position
		Name   string       `parser:"@('ENUM' | 'SET')"`
		Values []*EnumValue `parser:"'(' @@ (',' @@)* ')'"`
		Charset
	}

	// EnumValue is a single member of an ENUM or SET.
	EnumValue struct {
		Pos   lexer.Position
		Value Text `parser:"@String"`
	}

	// TemporalType represents DATE, DATETIME[(fsp)], TIMESTAMP[(fsp)],
	// TIME[(fsp)] and YEAR[(4)]
	TemporalType struct {
		Pos  lexer.Position
		Name string  `parser:"@('DATETIME' | 'DATE' | 'TIMESTAMP' | 'TIME' | 'YEAR')"`
		Fsp  *Number `parser:"('(' @@ ')')?"`
	}

	// JSONType represents JSON
	JSONType struct {
		Name string `parser:"@'JSON'"`
	}

	// GenericType is any name(args) shape that none of the typed alternatives
	// accepted.
	GenericType struct {
		Pos       lexer.Position
		Name      string   `parser:"@(Ident | QuotedIdent)"`
		Args      []string `parser:"('(' @(~')')* ')')?"`
		Modifiers []string `parser:"@('UNSIGNED' | 'SIGNED' | 'ZEROFILL')*"`
	}
)

// Kind returns the family of the type.
func (d *DataType) Kind() TypeKind {
	switch {
	case d == nil:
		return UnknownKind
	case d.Bit != nil:
		return BitKind
	case d.Integer != nil:
		return IntegerKind
	case d.Boolean != nil:
		return BooleanKind
	case d.Decimal != nil:
		return DecimalKind
	case d.Float != nil:
		return FloatKind
	case d.Double != nil:
		return DoubleKind
	case d.Char != nil:
		return CharKind
	case d.Varchar != nil:
		return VarcharKind
	case d.Binary != nil:
		return BinaryKind
	case d.Varbinary != nil:
		return VarbinaryKind
	case d.Blob != nil:
		return BlobKind
	case d.Text != nil:
		return TextKind
	case d.Enum != nil:
		return EnumKind
	case d.Temporal != nil:
		return TemporalKind
	case d.JSON != nil:
		return JSONKind
	case d.Generic != nil:
		return GenericKind
	default:
		return UnknownKind
	}
}

// Name returns the upper-cased type keyword as written (INT, INTEGER, REAL, ...).
func (d *DataType) Name() string {
	var name string
	switch d.Kind() {
	case BitKind:
		name = d.Bit.Name
	case IntegerKind:
		name = d.Integer.Name
	case BooleanKind:
		name = d.Boolean.Name
	case DecimalKind:
		name = d.Decimal.Name
	case FloatKind:
		name = d.Float.Name
	case DoubleKind:
		name = d.Double.Name
	case CharKind:
		name = d.Char.Name
	case VarcharKind:
		name = d.Varchar.Name
	case BinaryKind:
		name = d.Binary.Name
	case VarbinaryKind:
		name = d.Varbinary.Name
	case BlobKind:
		name = d.Blob.Name
	case TextKind:
		name = d.Text.Name
	case EnumKind:
		name = d.Enum.Name
	case TemporalKind:
		name = d.Temporal.Name
	case JSONKind:
		name = d.JSON.Name
	case GenericKind:
		name = d.Generic.Name
	}

	return strings.ToUpper(name)
}

// Charset returns the character set and collation modifiers of string
// types, or nil for every other family.
func (d *DataType) Charset() *Charset {
	switch d.Kind() {
	case CharKind:
		return &d.Char.Charset
	case VarcharKind:
		return &d.Varchar.Charset
	case TextKind:
		return &d.Text.Charset
	case EnumKind:
		return &d.Enum.Charset
	default:
		return nil
	}
}

// Strings returns the members of an ENUM or SET.
func (e *EnumType) Strings() []string {
	out := make([]string, len(e.Values))
	for i, v := range e.Values {
		out[i] = string(v.Value)
	}

	return out
}

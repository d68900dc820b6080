package parser

import (
	"math"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// typeUsages holds the canonical syntax of each data type keyword, reported
// with range errors and with Generic types that reuse a known keyword.
var typeUsages = map[string]string{
	"BIT":        "BIT[(M)]",
	"TINYINT":    "TINYINT[(M)] [UNSIGNED] [ZEROFILL]",
	"SMALLINT":   "SMALLINT[(M)] [UNSIGNED] [ZEROFILL]",
	"MEDIUMINT":  "MEDIUMINT[(M)] [UNSIGNED] [ZEROFILL]",
	"INT":        "INT[(M)] [UNSIGNED] [ZEROFILL]",
	"INTEGER":    "INTEGER[(M)] [UNSIGNED] [ZEROFILL]",
	"BIGINT":     "BIGINT[(M)] [UNSIGNED] [ZEROFILL]",
	"BOOL":       "BOOL",
	"BOOLEAN":    "BOOLEAN",
	"DECIMAL":    "DECIMAL[(M[,D])] [UNSIGNED] [ZEROFILL]",
	"DEC":        "DEC[(M[,D])] [UNSIGNED] [ZEROFILL]",
	"NUMERIC":    "NUMERIC[(M[,D])] [UNSIGNED] [ZEROFILL]",
	"FIXED":      "FIXED[(M[,D])] [UNSIGNED] [ZEROFILL]",
	"FLOAT":      "FLOAT[(M,D)] [UNSIGNED] [ZEROFILL] | FLOAT(p) [UNSIGNED] [ZEROFILL]",
	"DOUBLE":     "DOUBLE [PRECISION][(M,D)] [UNSIGNED] [ZEROFILL]",
	"REAL":       "REAL[(M,D)] [UNSIGNED] [ZEROFILL]",
	"CHAR":       "CHAR[(M)] [CHARACTER SET charset_name] [COLLATE collation_name]",
	"VARCHAR":    "VARCHAR(M) [CHARACTER SET charset_name] [COLLATE collation_name]",
	"BINARY":     "BINARY[(M)]",
	"VARBINARY":  "VARBINARY(M)",
	"TINYBLOB":   "TINYBLOB",
	"BLOB":       "BLOB[(M)]",
	"MEDIUMBLOB": "MEDIUMBLOB",
	"LONGBLOB":   "LONGBLOB",
	"TINYTEXT":   "TINYTEXT [CHARACTER SET charset_name] [COLLATE collation_name]",
	"TEXT":       "TEXT[(M)] [CHARACTER SET charset_name] [COLLATE collation_name]",
	"MEDIUMTEXT": "MEDIUMTEXT [CHARACTER SET charset_name] [COLLATE collation_name]",
	"LONGTEXT":   "LONGTEXT [CHARACTER SET charset_name] [COLLATE collation_name]",
	"ENUM":       "ENUM('value1','value2',...) [CHARACTER SET charset_name] [COLLATE collation_name]",
	"SET":        "SET('value1','value2',...) [CHARACTER SET charset_name] [COLLATE collation_name]",
	"DATE":       "DATE",
	"DATETIME":   "DATETIME[(fsp)]",
	"TIMESTAMP":  "TIMESTAMP[(fsp)]",
	"TIME":       "TIME[(fsp)]",
	"YEAR":       "YEAR[(4)]",
	"JSON":       "JSON",
}

const (
	maxUint32       = math.MaxUint32
	autoextendUnit  = 4 << 20
	autoextendLimit = 64 << 30
)

func (s *SQL) validate() *Error {
	for _, stmt := range s.Statements {
		var err *Error
		switch {
		case stmt.CreateDatabase != nil:
			err = stmt.CreateDatabase.validate()
		case stmt.DropDatabase != nil:
			err = checkName(stmt.DropDatabase.Pos, stmt.DropDatabase.Name, "database", statementUsages["DROP DATABASE"])
		case stmt.Use != nil:
			err = checkName(stmt.Use.Pos, stmt.Use.Name, "database", statementUsages["USE"])
		case stmt.CreateTable != nil:
			err = stmt.CreateTable.validate()
		case stmt.DropTable != nil:
			err = stmt.DropTable.Name.validate(statementUsages["DROP TABLE"])
		}

		if err != nil {
			return err
		}
	}

	return nil
}

func (c *CreateDatabaseStmt) validate() *Error {
	if err := checkName(c.Pos, c.Name, "database", statementUsages["CREATE DATABASE"]); err != nil {
		return err
	}

	for _, o := range c.Options {
		if o.Encryption != nil && !o.Encryption.Valid() {
			return valueErr(o.Pos, "ENCRYPTION [=] {'Y' | 'N'}", "invalid ENCRYPTION value %q", string(*o.Encryption))
		}
	}

	return nil
}

func (c *CreateTableStmt) validate() *Error {
	if err := c.Name.validate(statementUsages["CREATE TABLE"]); err != nil {
		return err
	}

	for _, e := range c.Elements {
		var err *Error
		if e.Column != nil {
			err = e.Column.validate()
		} else {
			err = e.Key.validate()
		}

		if err != nil {
			return err
		}
	}

	for _, o := range c.Options {
		if err := o.validate(); err != nil {
			return err
		}
	}

	return nil
}

func (t *TableName) validate(usage string) *Error {
	if t.Database != nil {
		if err := checkName(t.Pos, *t.Database, "database", usage); err != nil {
			return err
		}
	}

	return checkName(t.Pos, t.Name, "table", usage)
}

func (c *ColumnDefinition) validate() *Error {
	if err := checkName(c.Pos, c.Name, "column", "col_name data_type [column_attribute] ..."); err != nil {
		return err
	}

	if err := c.Type.validate(); err != nil {
		return err
	}

	for _, f := range c.Fragments {
		switch {
		case f.Default != nil && f.Default.CurrentTimestamp != nil:
			ts := f.Default.CurrentTimestamp
			if err := checkRange(ts.Precision, 0, 6, "fractional seconds precision", "CURRENT_TIMESTAMP[(fsp)]"); err != nil {
				return err
			}

			if ts.OnUpdate != nil {
				if err := checkRange(ts.OnUpdate.Precision, 0, 6, "fractional seconds precision", "ON UPDATE CURRENT_TIMESTAMP[(fsp)]"); err != nil {
					return err
				}
			}
		case f.OnUpdate != nil:
			if err := checkRange(f.OnUpdate.Precision, 0, 6, "fractional seconds precision", "ON UPDATE CURRENT_TIMESTAMP[(fsp)]"); err != nil {
				return err
			}
		case f.ColumnFormat != nil && !f.ColumnFormat.Valid():
			return valueErr(f.Pos, "COLUMN_FORMAT {FIXED | DYNAMIC | DEFAULT}", "invalid COLUMN_FORMAT %q", string(*f.ColumnFormat))
		case f.Storage != nil && !f.Storage.Valid():
			return valueErr(f.Pos, "STORAGE {DISK | MEMORY}", "invalid STORAGE %q", string(*f.Storage))
		}
	}

	return nil
}

func (d *DataType) validate() *Error {
	name := d.Name()
	usage := typeUsages[name]

	switch d.Kind() {
	case BitKind:
		return checkRange(d.Bit.Length, 1, 64, "BIT length", usage)
	case IntegerKind:
		return checkRange(d.Integer.Width, 0, 255, name+" display width", usage)
	case DecimalKind:
		if err := checkRange(d.Decimal.Precision, 0, 65, name+" precision", usage); err != nil {
			return err
		}

		return checkRange(d.Decimal.Scale, 0, 30, name+" scale", usage)
	case FloatKind:
		if d.Float.Scale == nil {
			return checkRange(d.Float.Precision, 0, 53, "FLOAT precision", usage)
		}

		if err := checkRange(d.Float.Precision, 0, 255, "FLOAT length", usage); err != nil {
			return err
		}

		return checkRange(d.Float.Scale, 0, 30, "FLOAT scale", usage)
	case DoubleKind:
		if err := checkRange(d.Double.Length, 0, 255, name+" length", usage); err != nil {
			return err
		}

		return checkRange(d.Double.Scale, 0, 30, name+" scale", usage)
	case CharKind:
		return checkRange(d.Char.Length, 0, 255, "CHAR length", usage)
	case VarcharKind:
		return checkRange(d.Varchar.Length, 0, 65535, "VARCHAR length", usage)
	case BinaryKind:
		return checkRange(d.Binary.Length, 0, 255, "BINARY length", usage)
	case VarbinaryKind:
		return checkRange(d.Varbinary.Length, 0, 65535, "VARBINARY length", usage)
	case BlobKind:
		if d.Blob.Length != nil && name != "BLOB" {
			return syntaxErr(d.Blob.Length.Pos, usage, "%s does not take a length", name)
		}

		return checkRange(d.Blob.Length, 0, 65535, "BLOB length", usage)
	case TextKind:
		if d.Text.Length != nil && name != "TEXT" {
			return syntaxErr(d.Text.Length.Pos, usage, "%s does not take a length", name)
		}

		return checkRange(d.Text.Length, 0, 65535, "TEXT length", usage)
	case EnumKind:
		seen := make(map[string]bool, len(d.Enum.Values))
		for _, v := range d.Enum.Values {
			key := strings.ToLower(string(v.Value))
			if seen[key] {
				return valueErr(v.Pos, usage, "duplicate %s value %q", name, string(v.Value))
			}

			seen[key] = true
		}
	case TemporalKind:
		switch name {
		case "DATE":
			if d.Temporal.Fsp != nil {
				return syntaxErr(d.Temporal.Fsp.Pos, usage, "DATE does not take a precision")
			}
		case "YEAR":
			return checkRange(d.Temporal.Fsp, 4, 4, "YEAR display width", usage)
		default:
			return checkRange(d.Temporal.Fsp, 0, 6, name+" fractional seconds precision", usage)
		}
	case GenericKind:
		if usage != "" {
			return syntaxErr(d.Generic.Pos, usage, "invalid %s type definition", name)
		}

		return syntaxErr(d.Generic.Pos, "", "unsupported data type %q", d.Generic.Name)
	}

	return nil
}

func (k *KeyDefinition) validate() *Error {
	var (
		using []*IndexType
		parts []*KeyPart
		opts  []*IndexOptionFragment
	)

	switch {
	case k.Index != nil:
		using, parts, opts = []*IndexType{k.Index.Using}, k.Index.Parts, k.Index.Options
	case k.Fulltext != nil:
		parts, opts = k.Fulltext.Parts, k.Fulltext.Options
	case k.Spatial != nil:
		parts, opts = k.Spatial.Parts, k.Spatial.Options
	case k.Primary != nil:
		using, parts, opts = []*IndexType{k.Primary.Using}, k.Primary.Parts, k.Primary.Options
	case k.Unique != nil:
		using, parts, opts = []*IndexType{k.Unique.Using}, k.Unique.Parts, k.Unique.Options
	case k.Foreign != nil:
		parts = append(append(parts, k.Foreign.Parts...), k.Foreign.Reference.Parts...)
	}

	for _, o := range opts {
		if o.Using != nil {
			using = append(using, o.Using)
		}

		if err := checkRange(o.KeyBlockSize, 0, maxUint32, "KEY_BLOCK_SIZE", "KEY_BLOCK_SIZE [=] value"); err != nil {
			return err
		}
	}

	for _, u := range using {
		if u != nil && !u.Algorithm.Valid() {
			return valueErr(u.Pos, "USING {BTREE | HASH}", "invalid index type %q", string(u.Algorithm))
		}
	}

	for _, p := range parts {
		if err := checkRange(p.Length, 1, 65535, "key part length", "col_name [(length)] [ASC | DESC]"); err != nil {
			return err
		}
	}

	return nil
}

func (o *TableOption) validate() *Error {
	switch {
	case o.AutoextendSize != nil:
		if err := checkRange(o.AutoextendSize.Number, 0, math.MaxInt32, "AUTOEXTEND_SIZE", "AUTOEXTEND_SIZE [=] value"); err != nil {
			return err
		}

		if size := o.AutoextendSize.Bytes(); size%autoextendUnit != 0 || size > autoextendLimit {
			return valueErr(o.Pos, "AUTOEXTEND_SIZE [=] value", "AUTOEXTEND_SIZE must be a multiple of 4M up to 64G")
		}
	case o.AutoIncrement != nil:
		return checkRange(o.AutoIncrement, 0, math.MaxInt64, "AUTO_INCREMENT", "AUTO_INCREMENT [=] value")
	case o.AvgRowLength != nil:
		return checkRange(o.AvgRowLength, 0, maxUint32, "AVG_ROW_LENGTH", "AVG_ROW_LENGTH [=] value")
	case o.Checksum != nil && !o.Checksum.Valid():
		return valueErr(o.Pos, "CHECKSUM [=] {0 | 1}", "invalid CHECKSUM value %q", string(*o.Checksum))
	case o.Compression != nil && !o.Compression.Valid():
		return valueErr(o.Pos, "COMPRESSION [=] {'ZLIB' | 'LZ4' | 'NONE'}", "invalid COMPRESSION value %q", string(*o.Compression))
	case o.DelayKeyWrite != nil && !o.DelayKeyWrite.Valid():
		return valueErr(o.Pos, "DELAY_KEY_WRITE [=] {0 | 1}", "invalid DELAY_KEY_WRITE value %q", string(*o.DelayKeyWrite))
	case o.Encryption != nil && !o.Encryption.Valid():
		return valueErr(o.Pos, "ENCRYPTION [=] {'Y' | 'N'}", "invalid ENCRYPTION value %q", string(*o.Encryption))
	case o.InsertMethod != nil && !o.InsertMethod.Valid():
		return valueErr(o.Pos, "INSERT_METHOD [=] {NO | FIRST | LAST}", "invalid INSERT_METHOD value %q", string(*o.InsertMethod))
	case o.KeyBlockSize != nil:
		return checkRange(o.KeyBlockSize, 0, maxUint32, "KEY_BLOCK_SIZE", "KEY_BLOCK_SIZE [=] value")
	case o.MaxRows != nil:
		return checkRange(o.MaxRows, 0, maxUint32, "MAX_ROWS", "MAX_ROWS [=] value")
	case o.MinRows != nil:
		return checkRange(o.MinRows, 0, maxUint32, "MIN_ROWS", "MIN_ROWS [=] value")
	case o.PackKeys != nil && !o.PackKeys.Valid():
		return valueErr(o.Pos, "PACK_KEYS [=] {0 | 1 | DEFAULT}", "invalid PACK_KEYS value %q", string(*o.PackKeys))
	case o.RowFormat != nil && !o.RowFormat.Valid():
		return valueErr(o.Pos, "ROW_FORMAT [=] {DEFAULT | DYNAMIC | FIXED | COMPRESSED | REDUNDANT | COMPACT}",
			"invalid ROW_FORMAT value %q", string(*o.RowFormat))
	case o.StatsAutoRecalc != nil && !o.StatsAutoRecalc.Valid():
		return valueErr(o.Pos, "STATS_AUTO_RECALC [=] {DEFAULT | 0 | 1}", "invalid STATS_AUTO_RECALC value %q", string(*o.StatsAutoRecalc))
	case o.StatsPersistent != nil && !o.StatsPersistent.Valid():
		return valueErr(o.Pos, "STATS_PERSISTENT [=] {DEFAULT | 0 | 1}", "invalid STATS_PERSISTENT value %q", string(*o.StatsPersistent))
	case o.StatsSamplePages != nil:
		return checkRange(o.StatsSamplePages, 1, 65535, "STATS_SAMPLE_PAGES", "STATS_SAMPLE_PAGES [=] value")
	case o.Tablespace != nil && o.Tablespace.Storage != nil && !o.Tablespace.Storage.Valid():
		return valueErr(o.Pos, "TABLESPACE tablespace_name [STORAGE {DISK | MEMORY}]", "invalid STORAGE %q", string(*o.Tablespace.Storage))
	}

	return nil
}

// checkRange verifies that an optional integer literal lies within [lo, hi].
// checkName rejects `` which the lexer accepts as a quoted identifier but
// MySQL does not.
func checkName(pos lexer.Position, name Identifier, what, usage string) *Error {
	if name == "" {
		return valueErr(pos, usage, "%s name must not be empty", what)
	}

	return nil
}

func checkRange(n *Number, lo, hi int64, what, usage string) *Error {
	if n == nil {
		return nil
	}

	v, err := n.Int64()
	if err != nil {
		return valueErr(n.Pos, usage, "%s must be an integer in [%d, %d], got %s", what, lo, hi, n.Value)
	}

	if v < lo || v > hi {
		return valueErr(n.Pos, usage, "%s %d out of range [%d, %d]", what, v, lo, hi)
	}

	return nil
}

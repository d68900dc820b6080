package format

import (
	"strings"

	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/pseudomuto/myddl/pkg/utils"
)

// Column formats a single column definition: name, type and its attribute
// fragments in source order.
func (f *Formatter) Column(col *parser.ColumnDefinition) string {
	return f.column(col, 0)
}

// column pads the column name to width when alignment is enabled.
func (f *Formatter) column(col *parser.ColumnDefinition, width int) string {
	name := f.identifier(col.Name)
	if pad := width - len(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}

	b := f.ddl().raw(name).raw(f.DataType(col.Type))
	for _, frag := range col.Fragments {
		f.columnAttribute(b, frag)
	}

	return b.clause()
}

func (f *Formatter) columnAttribute(b *ddlBuilder, frag *parser.ColumnAttribute) {
	switch {
	case frag.Null != nil:
		b.keywordIf(frag.Null.Not, "NOT").keyword("NULL")
	case frag.Default != nil:
		b.keyword("DEFAULT").raw(f.DefaultValue(frag.Default))
	case frag.OnUpdate != nil:
		b.raw(f.onUpdate(frag.OnUpdate))
	case frag.Visibility != nil:
		b.keyword(string(*frag.Visibility))
	case frag.AutoIncrement:
		b.keyword("AUTO_INCREMENT")
	case frag.Unique:
		b.keyword("UNIQUE KEY")
	case frag.Primary:
		b.keyword("PRIMARY KEY")
	case frag.Comment != nil:
		b.keyword("COMMENT").quoted(frag.Comment.String())
	case frag.Collate != nil:
		b.keyword("COLLATE").raw(frag.Collate.String())
	case frag.ColumnFormat != nil:
		b.keyword("COLUMN_FORMAT").keyword(string(*frag.ColumnFormat))
	case frag.EngineAttribute != nil:
		b.option("ENGINE_ATTRIBUTE", utils.QuoteString(frag.EngineAttribute.String()))
	case frag.SecondaryEngineAttribute != nil:
		b.option("SECONDARY_ENGINE_ATTRIBUTE", utils.QuoteString(frag.SecondaryEngineAttribute.String()))
	case frag.Storage != nil:
		b.keyword("STORAGE").keyword(string(*frag.Storage))
	}
}

// DefaultValue formats the value of a DEFAULT clause without the keyword.
func (f *Formatter) DefaultValue(def *parser.DefaultValue) string {
	switch {
	case def.Literal != nil:
		return def.Literal.Text()
	case def.CurrentTimestamp != nil:
		ts := def.CurrentTimestamp
		out := f.timestamp(ts.Name, ts.Precision)
		if ts.OnUpdate != nil {
			out += " " + f.onUpdate(ts.OnUpdate)
		}
		return out
	default:
		return f.keyword("NULL")
	}
}

func (f *Formatter) onUpdate(u *parser.OnUpdate) string {
	return f.keyword("ON UPDATE") + " " + f.timestamp(u.Name, u.Precision)
}

// timestamp renders CURRENT_TIMESTAMP and its synonyms. NOW is a function and
// always takes parentheses.
func (f *Formatter) timestamp(name string, precision *parser.Number) string {
	out := f.keyword(name)
	switch {
	case precision != nil:
		out += "(" + precision.String() + ")"
	case strings.EqualFold(name, "NOW"):
		out += "()"
	}

	return out
}

// DataType formats a column data type with its length, modifiers and
// character set clauses.
func (f *Formatter) DataType(dt *parser.DataType) string {
	if dt == nil {
		return ""
	}

	name := f.keyword(dt.Name())
	switch dt.Kind() {
	case parser.BitKind:
		return name + length(dt.Bit.Length)
	case parser.IntegerKind:
		return f.numeric(name+length(dt.Integer.Width), dt.Integer.Unsigned, dt.Integer.Zerofill)
	case parser.DecimalKind:
		t := dt.Decimal
		return f.numeric(name+precision(t.Precision, t.Scale), t.Unsigned, t.Zerofill)
	case parser.FloatKind:
		t := dt.Float
		return f.numeric(name+precision(t.Precision, t.Scale), t.Unsigned, t.Zerofill)
	case parser.DoubleKind:
		t := dt.Double
		if t.Precision {
			name += " " + f.keyword("PRECISION")
		}
		return f.numeric(name+precision(t.Length, t.Scale), t.Unsigned, t.Zerofill)
	case parser.CharKind:
		return f.charset(name+length(dt.Char.Length), dt.Charset())
	case parser.VarcharKind:
		return f.charset(name+length(dt.Varchar.Length), dt.Charset())
	case parser.BinaryKind:
		return name + length(dt.Binary.Length)
	case parser.VarbinaryKind:
		return name + length(dt.Varbinary.Length)
	case parser.BlobKind:
		return name + length(dt.Blob.Length)
	case parser.TextKind:
		return f.charset(name+length(dt.Text.Length), dt.Charset())
	case parser.EnumKind:
		values := make([]string, len(dt.Enum.Values))
		for i, v := range dt.Enum.Strings() {
			values[i] = utils.QuoteString(v)
		}
		return f.charset(name+"("+strings.Join(values, ",")+")", dt.Charset())
	case parser.TemporalKind:
		return name + length(dt.Temporal.Fsp)
	case parser.GenericKind:
		t := dt.Generic
		if t.Args != nil {
			name += "(" + strings.Join(t.Args, "") + ")"
		}
		for _, m := range t.Modifiers {
			name += " " + f.keyword(m)
		}
		return name
	default:
		return name
	}
}

func (f *Formatter) numeric(base string, unsigned, zerofill bool) string {
	return f.ddl().raw(base).keywordIf(unsigned, "UNSIGNED").keywordIf(zerofill, "ZEROFILL").clause()
}

func (f *Formatter) charset(base string, cs *parser.Charset) string {
	b := f.ddl().raw(base)
	if cs.CharacterSet != nil {
		b.keyword("CHARACTER SET").raw(cs.CharacterSet.String())
	}
	if cs.Collate != nil {
		b.keyword("COLLATE").raw(cs.Collate.String())
	}

	return b.clause()
}

func length(n *parser.Number) string {
	if n == nil {
		return ""
	}

	return "(" + n.String() + ")"
}

func precision(p, s *parser.Number) string {
	switch {
	case p == nil:
		return ""
	case s == nil:
		return "(" + p.String() + ")"
	default:
		return "(" + p.String() + "," + s.String() + ")"
	}
}

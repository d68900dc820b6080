package format

import (
	"strings"

	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/pseudomuto/myddl/pkg/utils"
)

// CreateTable formats a CREATE TABLE statement with one table element per line
func (f *Formatter) CreateTable(stmt *parser.CreateTableStmt) string {
	lines := make([]string, 0, len(stmt.Elements)+2)

	header := f.ddl().
		keyword("CREATE").
		keywordIf(stmt.Temporary, "TEMPORARY").
		keyword("TABLE").
		keywordIf(stmt.IfNotExists, "IF NOT EXISTS").
		raw(f.tableName(stmt.Name)).
		raw("(")
	lines = append(lines, header.clause())

	width := 0
	if f.options.AlignColumns {
		for _, col := range stmt.Columns() {
			width = max(width, len(f.identifier(col.Name)))
		}
	}

	for i, elem := range stmt.Elements {
		var line string
		if elem.Column != nil {
			line = f.column(elem.Column, width)
		} else {
			line = f.Key(elem.Key)
		}

		if i < len(stmt.Elements)-1 {
			line += ","
		}
		lines = append(lines, f.indent(1)+line)
	}

	footer := ")"
	if opts := f.tableOptions(stmt.Options); opts != "" {
		footer += " " + opts
	}
	lines = append(lines, footer)

	return strings.Join(lines, "\n") + ";"
}

// DropTable formats a DROP TABLE statement
func (f *Formatter) DropTable(stmt *parser.DropTableStmt) string {
	return f.ddl().
		keyword("DROP").
		keywordIf(stmt.Temporary, "TEMPORARY").
		keyword("TABLE").
		keywordIf(stmt.IfExists, "IF EXISTS").
		raw(f.tableName(stmt.Name)).
		statement()
}

// tableOptions renders the options in source order.
func (f *Formatter) tableOptions(opts []*parser.TableOption) string {
	b := f.ddl()
	for _, o := range opts {
		switch {
		case o.AutoextendSize != nil:
			size := o.AutoextendSize.Number.String()
			if o.AutoextendSize.Unit != nil {
				size += strings.ToUpper(*o.AutoextendSize.Unit)
			}
			b.option("AUTOEXTEND_SIZE", size)
		case o.AutoIncrement != nil:
			b.option("AUTO_INCREMENT", o.AutoIncrement.String())
		case o.AvgRowLength != nil:
			b.option("AVG_ROW_LENGTH", o.AvgRowLength.String())
		case o.Charset != nil:
			b.option("DEFAULT CHARSET", o.Charset.String())
		case o.Checksum != nil:
			b.option("CHECKSUM", string(*o.Checksum))
		case o.Collate != nil:
			b.option("COLLATE", o.Collate.String())
		case o.Comment != nil:
			b.option("COMMENT", utils.QuoteString(o.Comment.String()))
		case o.Compression != nil:
			b.option("COMPRESSION", utils.QuoteString(string(*o.Compression)))
		case o.Connection != nil:
			b.option("CONNECTION", utils.QuoteString(o.Connection.String()))
		case o.Directory != nil:
			b.option(string(o.Directory.Kind)+" DIRECTORY", utils.QuoteString(o.Directory.Path.String()))
		case o.DelayKeyWrite != nil:
			b.option("DELAY_KEY_WRITE", string(*o.DelayKeyWrite))
		case o.Encryption != nil:
			b.option("ENCRYPTION", utils.QuoteString(string(*o.Encryption)))
		case o.Engine != nil:
			b.option("ENGINE", o.Engine.String())
		case o.EngineAttribute != nil:
			b.option("ENGINE_ATTRIBUTE", utils.QuoteString(o.EngineAttribute.String()))
		case o.InsertMethod != nil:
			b.option("INSERT_METHOD", string(*o.InsertMethod))
		case o.KeyBlockSize != nil:
			b.option("KEY_BLOCK_SIZE", o.KeyBlockSize.String())
		case o.MaxRows != nil:
			b.option("MAX_ROWS", o.MaxRows.String())
		case o.MinRows != nil:
			b.option("MIN_ROWS", o.MinRows.String())
		case o.PackKeys != nil:
			b.option("PACK_KEYS", string(*o.PackKeys))
		case o.Password != nil:
			b.option("PASSWORD", utils.QuoteString(o.Password.String()))
		case o.RowFormat != nil:
			b.option("ROW_FORMAT", string(*o.RowFormat))
		case o.SecondaryEngineAttribute != nil:
			b.option("SECONDARY_ENGINE_ATTRIBUTE", utils.QuoteString(o.SecondaryEngineAttribute.String()))
		case o.StatsAutoRecalc != nil:
			b.option("STATS_AUTO_RECALC", string(*o.StatsAutoRecalc))
		case o.StatsPersistent != nil:
			b.option("STATS_PERSISTENT", string(*o.StatsPersistent))
		case o.StatsSamplePages != nil:
			b.option("STATS_SAMPLE_PAGES", o.StatsSamplePages.String())
		case o.Tablespace != nil:
			b.keyword("TABLESPACE").name(o.Tablespace.Name.String())
			if o.Tablespace.Storage != nil {
				b.keyword("STORAGE").raw(string(*o.Tablespace.Storage))
			}
		case o.Union != nil:
			names := make([]string, len(o.Union))
			for i, t := range o.Union {
				names[i] = f.tableName(t)
			}
			b.option("UNION", "("+strings.Join(names, ",")+")")
		}
	}

	return b.clause()
}

package format

import "github.com/pseudomuto/myddl/pkg/utils"

// ddlBuilder wraps utils.SQLBuilder so that every keyword it appends follows
// the formatter's casing.
type ddlBuilder struct {
	formatter *Formatter
	sql       *utils.SQLBuilder
}

func (f *Formatter) ddl() *ddlBuilder {
	return &ddlBuilder{formatter: f, sql: utils.NewSQLBuilder()}
}

func (d *ddlBuilder) keyword(kw string) *ddlBuilder {
	d.sql.Raw(d.formatter.keyword(kw))
	return d
}

// keywordIf appends kw only when cond holds (IF EXISTS, TEMPORARY, ...).
func (d *ddlBuilder) keywordIf(cond bool, kw string) *ddlBuilder {
	if cond {
		d.keyword(kw)
	}
	return d
}

func (d *ddlBuilder) name(name string) *ddlBuilder {
	d.sql.Name(name)
	return d
}

func (d *ddlBuilder) raw(sql string) *ddlBuilder {
	d.sql.Raw(sql)
	return d
}

func (d *ddlBuilder) quoted(value string) *ddlBuilder {
	d.sql.Quoted(value)
	return d
}

// option appends KEY=value with the key cased like a keyword.
func (d *ddlBuilder) option(key, value string) *ddlBuilder {
	d.sql.Option(d.formatter.keyword(key), value)
	return d
}

func (d *ddlBuilder) empty() bool {
	return d.sql.Len() == 0
}

// statement returns the built statement terminated by a semicolon.
func (d *ddlBuilder) statement() string {
	return d.sql.String()
}

// clause returns the built text without a terminator.
func (d *ddlBuilder) clause() string {
	return d.sql.StringWithoutSemicolon()
}

package cmd

import (
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
)

type (
	// schemaSummary is the printable model of a parsed unit used by
	// `schema parse`. Types and defaults are rendered with the formatter so
	// they read the way they would in a formatted schema file.
	schemaSummary struct {
		Databases []databaseSummary `json:"databases" yaml:"databases"`
	}

	databaseSummary struct {
		Name    string         `json:"name" yaml:"name"`
		Charset string         `json:"charset,omitempty" yaml:"charset,omitempty"`
		Collate string         `json:"collate,omitempty" yaml:"collate,omitempty"`
		Tables  []tableSummary `json:"tables,omitempty" yaml:"tables,omitempty"`
	}

	tableSummary struct {
		Name      string          `json:"name" yaml:"name"`
		Temporary bool            `json:"temporary,omitempty" yaml:"temporary,omitempty"`
		Engine    string          `json:"engine,omitempty" yaml:"engine,omitempty"`
		Charset   string          `json:"charset,omitempty" yaml:"charset,omitempty"`
		Collate   string          `json:"collate,omitempty" yaml:"collate,omitempty"`
		Comment   string          `json:"comment,omitempty" yaml:"comment,omitempty"`
		Columns   []columnSummary `json:"columns" yaml:"columns"`
		Keys      []keySummary    `json:"keys,omitempty" yaml:"keys,omitempty"`
	}

	columnSummary struct {
		Name          string `json:"name" yaml:"name"`
		Type          string `json:"type" yaml:"type"`
		Nullable      bool   `json:"nullable" yaml:"nullable"`
		Default       string `json:"default,omitempty" yaml:"default,omitempty"`
		AutoIncrement bool   `json:"auto_increment,omitempty" yaml:"auto_increment,omitempty"`
		Comment       string `json:"comment,omitempty" yaml:"comment,omitempty"`
	}

	keySummary struct {
		Kind       string   `json:"kind" yaml:"kind"`
		Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
		Columns    []string `json:"columns,omitempty" yaml:"columns,omitempty"`
		References string   `json:"references,omitempty" yaml:"references,omitempty"`
		Definition string   `json:"definition" yaml:"definition"`
	}
)

func summarize(f *format.Formatter, unit *parser.Unit) *schemaSummary {
	out := &schemaSummary{Databases: []databaseSummary{}}
	for _, db := range unit.Databases() {
		ds := databaseSummary{Name: db.Name}
		if db.Create != nil {
			ds.Charset = deref(db.Create.Charset())
			ds.Collate = deref(db.Create.Collate())
		}

		for _, t := range db.Tables {
			ds.Tables = append(ds.Tables, summarizeTable(f, t))
		}
		out.Databases = append(out.Databases, ds)
	}

	return out
}

func summarizeTable(f *format.Formatter, t *parser.CreateTableStmt) tableSummary {
	opts := t.Fold()
	ts := tableSummary{
		Name:      t.Name.Name.String(),
		Temporary: t.Temporary,
		Engine:    deref(opts.Engine),
		Charset:   deref(opts.Charset),
		Collate:   deref(opts.Collate),
		Comment:   deref(opts.Comment),
		Columns:   []columnSummary{},
	}

	for _, col := range t.Columns() {
		cs := columnSummary{
			Name:     col.Name.String(),
			Type:     f.DataType(col.Type),
			Nullable: true,
		}

		if attrs := col.Attributes(); attrs != nil {
			cs.Nullable = !attrs.NotNull && !attrs.HasKey(parser.PrimaryKeyKey)
			cs.AutoIncrement = attrs.HasKey(parser.AutoIncrementKey)
			cs.Comment = deref(attrs.Comment)
			if attrs.Default != nil {
				cs.Default = f.DefaultValue(attrs.Default)
			}
		}
		ts.Columns = append(ts.Columns, cs)
	}

	for _, k := range t.Keys() {
		ts.Keys = append(ts.Keys, summarizeKey(f, k))
	}

	return ts
}

func summarizeKey(f *format.Formatter, k *parser.KeyDefinition) keySummary {
	ks := keySummary{Definition: f.Key(k)}
	if sym := k.Symbol(); sym != nil {
		ks.Name = *sym
	}

	switch {
	case k.Index != nil:
		ks.Kind = "index"
		ks.Name = identifier(k.Index.Name)
		ks.Columns = k.Index.Columns()
	case k.Fulltext != nil:
		ks.Kind = "fulltext"
		ks.Name = identifier(k.Fulltext.Name)
		ks.Columns = k.Fulltext.Columns()
	case k.Spatial != nil:
		ks.Kind = "spatial"
		ks.Name = identifier(k.Spatial.Name)
		ks.Columns = k.Spatial.Columns()
	case k.Primary != nil:
		ks.Kind = "primary"
		ks.Columns = k.Primary.Columns()
	case k.Unique != nil:
		ks.Kind = "unique"
		if k.Unique.Name != nil {
			ks.Name = k.Unique.Name.String()
		}
		ks.Columns = k.Unique.Columns()
	case k.Foreign != nil:
		ks.Kind = "foreign"
		ks.Columns = k.Foreign.Columns()
		ref := k.Foreign.Reference
		ks.References = ref.Table.Name.String()
		if ref.Table.Database != nil {
			ks.References = ref.Table.Database.String() + "." + ks.References
		}
	case k.Check != nil:
		ks.Kind = "check"
	}

	return ks
}

func identifier(id *parser.Identifier) string {
	if id == nil {
		return ""
	}

	return id.String()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

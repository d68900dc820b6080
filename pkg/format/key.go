package format

import (
	"strings"

	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/pseudomuto/myddl/pkg/utils"
)

// Key formats an index or constraint definition of CREATE TABLE
func (f *Formatter) Key(key *parser.KeyDefinition) string {
	b := f.ddl()

	switch {
	case key.Index != nil:
		k := key.Index
		b.keyword(k.Keyword).raw(f.optionalName(k.Name)).raw(f.indexType(k.Using)).
			raw(f.keyParts(k.Parts)).raw(f.indexOptions(k.Options))
	case key.Fulltext != nil:
		f.specialIndex(b.keyword("FULLTEXT"), key.Fulltext)
	case key.Spatial != nil:
		f.specialIndex(b.keyword("SPATIAL"), key.Spatial)
	case key.Primary != nil:
		k := key.Primary
		f.constraint(b, k.Constraint).keyword("PRIMARY KEY").raw(f.indexType(k.Using)).
			raw(f.keyParts(k.Parts)).raw(f.indexOptions(k.Options))
	case key.Unique != nil:
		k := key.Unique
		f.constraint(b, k.Constraint).keyword("UNIQUE")
		if k.Keyword != nil {
			b.keyword(*k.Keyword)
		}
		b.raw(f.optionalName(k.Name)).raw(f.indexType(k.Using)).
			raw(f.keyParts(k.Parts)).raw(f.indexOptions(k.Options))
	case key.Foreign != nil:
		k := key.Foreign
		f.constraint(b, k.Constraint).keyword("FOREIGN KEY").raw(f.optionalName(k.Name)).
			raw(f.keyParts(k.Parts)).raw(f.reference(k.Reference))
	case key.Check != nil:
		k := key.Check
		f.constraint(b, k.Constraint).keyword("CHECK").raw("(" + k.Text() + ")")
		if k.Enforcement != nil {
			b.keyword(string(*k.Enforcement))
		}
	}

	return b.clause()
}

func (f *Formatter) specialIndex(b *ddlBuilder, k *parser.SpecialIndex) {
	if k.Keyword != nil {
		b.keyword(*k.Keyword)
	}
	b.raw(f.optionalName(k.Name)).raw(f.keyParts(k.Parts)).raw(f.indexOptions(k.Options))
}

func (f *Formatter) constraint(b *ddlBuilder, c *parser.ConstraintName) *ddlBuilder {
	if c == nil {
		return b
	}

	b.keyword("CONSTRAINT")
	if c.Symbol != nil {
		b.name(c.Symbol.String())
	}
	return b
}

func (f *Formatter) optionalName(name *parser.Identifier) string {
	if name == nil {
		return ""
	}

	return f.identifier(*name)
}

func (f *Formatter) indexType(t *parser.IndexType) string {
	if t == nil {
		return ""
	}

	return f.keyword("USING") + " " + f.keyword(string(t.Algorithm))
}

// keyParts renders (`a`(10) DESC,`b`).
func (f *Formatter) keyParts(parts []*parser.KeyPart) string {
	out := make([]string, len(parts))
	for i, p := range parts {
		part := f.identifier(p.Column) + length(p.Length)
		if p.Order != nil {
			part += " " + f.keyword(*p.Order)
		}
		out[i] = part
	}

	return "(" + strings.Join(out, ",") + ")"
}

func (f *Formatter) indexOptions(opts []*parser.IndexOptionFragment) string {
	b := f.ddl()
	for _, o := range opts {
		switch {
		case o.KeyBlockSize != nil:
			b.option("KEY_BLOCK_SIZE", o.KeyBlockSize.String())
		case o.Using != nil:
			b.raw(f.indexType(o.Using))
		case o.WithParser != nil:
			b.keyword("WITH PARSER").raw(o.WithParser.String())
		case o.Comment != nil:
			b.keyword("COMMENT").quoted(o.Comment.String())
		case o.Visibility != nil:
			b.keyword(string(*o.Visibility))
		case o.EngineAttribute != nil:
			b.option("ENGINE_ATTRIBUTE", utils.QuoteString(o.EngineAttribute.String()))
		case o.SecondaryEngineAttribute != nil:
			b.option("SECONDARY_ENGINE_ATTRIBUTE", utils.QuoteString(o.SecondaryEngineAttribute.String()))
		}
	}

	return b.clause()
}

func (f *Formatter) reference(ref *parser.Reference) string {
	b := f.ddl().keyword("REFERENCES").raw(f.tableName(ref.Table)).raw(f.keyParts(ref.Parts))
	if ref.Match != nil {
		b.keyword("MATCH").keyword(string(*ref.Match))
	}

	for _, a := range ref.Actions {
		b.keyword("ON").keyword(string(a.Event)).keyword(string(a.Option))
	}

	return b.clause()
}

// Package format renders parsed MySQL DDL back into canonical SQL text.
//
// The output is stable and re-parses to the same AST (ignoring positions):
// identifiers are back-ticked, keywords follow the configured casing, table
// elements are written one per line and table options use the mysqldump
// KEY=value form. Attribute fragments, index options and table options are
// written in source order, so repeated options survive a round trip.
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		IndentSize:        2,
//		UppercaseKeywords: false,
//		AlignColumns:      true,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, sql.Statements...)
//
//	// Functional API
//	err := format.Format(&buf, format.Defaults, sql.Statements...)
//
//	// A parsed unit, with tables qualified by their database
//	err := format.Unit(&buf, format.Defaults, unit)
//
// Output for CREATE TABLE users (id BIGINT NOT NULL, PRIMARY KEY (id)) ENGINE=InnoDB:
//
//	CREATE TABLE `users` (
//	    `id` BIGINT NOT NULL,
//	    PRIMARY KEY (`id`)
//	) ENGINE=InnoDB;
package format

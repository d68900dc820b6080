// Package parser provides a participle-based parser for MySQL DDL statements.
//
// The parser understands the subset of MySQL 8.0 DDL needed to describe a
// schema: CREATE/DROP DATABASE, USE and CREATE/DROP TABLE with the full
// column, index, constraint and table option grammar. Views, triggers,
// routines, partitioning and ALTER statements are not supported.
//
// Parsing happens in two passes. The grammar pass builds a typed AST and is
// deliberately permissive about values (an unknown ROW_FORMAT or an
// oversized VARCHAR still matches). The validation pass then checks ranges
// and closed value sets, so a grammar alternative never hides a value error.
// Every failure is reported as an *Error carrying a Kind, the source
// position, the offending line and, where known, the canonical syntax of the
// construct.
//
// Comments (--, # and /* */) are ignored wherever whitespace is allowed.
// mysqldump's conditional comments (/*!40101 ... */;) therefore reduce to
// empty statements.
//
// Basic usage:
//
//	sql, err := parser.ParseString(`
//	    CREATE DATABASE shop;
//	    CREATE TABLE users (
//	        id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
//	        email VARCHAR(255) NOT NULL,
//	        PRIMARY KEY (id),
//	        UNIQUE KEY uq_email (email)
//	    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
//	`)
//
// To pair every table with its database use ParseUnit:
//
//	unit, err := parser.ParseUnit("schema.sql", f, parser.WithUseTracking(true))
//	for _, db := range unit.Databases() {
//	    for _, table := range db.Tables {
//	        fmt.Println(db.Name, table.Name)
//	    }
//	}
//
// Errors can be inspected with errors.As:
//
//	var perr *parser.Error
//	if errors.As(err, &perr) && perr.Kind == parser.KindValue {
//	    fmt.Println(perr.Usage)
//	}
package parser

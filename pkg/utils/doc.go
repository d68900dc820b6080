// Package utils provides common utility functions used throughout the myddl codebase.
//
// # Identifier Utilities (identifier.go)
//
// MySQL identifiers are quoted with backticks; a backtick inside a name is
// written twice. The parser hands out unquoted names, so everything that
// writes SQL goes through these helpers:
//
//	utils.BacktickIdentifier("users")            // `users`
//	utils.BacktickQualifiedName(&db, "users")    // `shop`.`users`
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles single-line statements such as CREATE DATABASE,
// DROP TABLE or SHOW CREATE TABLE from parts:
//
//	sql := utils.NewSQLBuilder().Show("CREATE TABLE").QualifiedName(&db, "users").StringWithoutSemicolon()
//	// SHOW CREATE TABLE `shop`.`users`
//
// # Pointers (ptr.go)
//
// Ptr returns a pointer to any value, which keeps optional AST fields easy to
// build in tests.
package utils

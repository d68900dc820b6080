package utils

import "strings"

// BacktickIdentifier quotes a single MySQL identifier with backticks. Embedded
// backticks are doubled, so any name round-trips through the parser.
//
// Examples:
//   - "users" -> "`users`"
//   - "order details" -> "`order details`"
//   - "odd`name" -> "`odd``name`"
//   - "" -> ""
func BacktickIdentifier(name string) string {
	if name == "" {
		return ""
	}

	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// BacktickQualifiedName formats a qualified name (database.name) with proper backticks.
// If database is nil or empty, only the name is backticked.
//
// Examples:
//   - ("shop", "users") -> "`shop`.`users`"
//   - (nil, "users") -> "`users`"
//   - ("", "users") -> "`users`"
func BacktickQualifiedName(database *string, name string) string {
	if database != nil && *database != "" {
		return BacktickIdentifier(*database) + "." + BacktickIdentifier(name)
	}
	return BacktickIdentifier(name)
}

// QuoteString wraps a value in single quotes. MySQL DDL text handled by this
// project never embeds a quote, so no escaping is applied.
func QuoteString(s string) string {
	return "'" + s + "'"
}

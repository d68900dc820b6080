package parser_test

import "testing"

func TestDatabaseStatements(t *testing.T) {
	t.Parallel()

	tests := []statementTest{
		{name: "basic", sql: `CREATE DATABASE shop;`},
		{name: "schema_with_options", sql: "CREATE SCHEMA IF NOT EXISTS `shop` DEFAULT CHARSET utf8mb4 DEFAULT COLLATE = utf8mb4_0900_ai_ci DEFAULT ENCRYPTION = 'Y';"},
		{name: "drop", sql: `DROP DATABASE IF EXISTS shop;`},
		{name: "drop_schema", sql: `drop schema shop;`},
		{name: "use", sql: `USE shop;`},
	}

	runStatementTests(t, "database", tests)
}

package format_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestFormatter_Options(t *testing.T) {
	t.Run("lowercase keywords", func(t *testing.T) {
		sqlResult, err := parser.ParseString("CREATE DATABASE test;")
		require.NoError(t, err)

		options := FormatterOptions{
			IndentSize:        4,
			UppercaseKeywords: false,
		}

		var buf bytes.Buffer
		require.NoError(t, Format(&buf, options, sqlResult.Statements[0]))
		require.Equal(t, "create database `test`;", buf.String())
	})

	t.Run("custom indent", func(t *testing.T) {
		sqlResult, err := parser.ParseString("CREATE TABLE users (id INT, name TEXT) ENGINE = InnoDB;")
		require.NoError(t, err)

		options := FormatterOptions{
			IndentSize:        2,
			UppercaseKeywords: false,
		}

		var buf bytes.Buffer
		require.NoError(t, Format(&buf, options, sqlResult.Statements[0]))
		expected := strings.Join([]string{
			"create table `users` (",
			"  `id` int,",
			"  `name` text",
			") engine=InnoDB;",
		}, "\n")
		require.Equal(t, expected, buf.String())
	})

	t.Run("column alignment", func(t *testing.T) {
		sqlResult, err := parser.ParseString("CREATE TABLE test (id INT, very_long_name TEXT, KEY (id));")
		require.NoError(t, err)

		options := Defaults
		options.AlignColumns = true

		var buf bytes.Buffer
		require.NoError(t, Format(&buf, options, sqlResult.Statements[0]))
		formatted := buf.String()
		padding := strings.Repeat(" ", len("`very_long_name`")-len("`id`"))
		require.Contains(t, formatted, "`id`"+padding+" INT,")
		require.Contains(t, formatted, "`very_long_name` TEXT,")
		require.Contains(t, formatted, "    KEY (`id`)")
	})

	t.Run("invalid indent falls back to default", func(t *testing.T) {
		sqlResult, err := parser.ParseString("CREATE TABLE t (id INT);")
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Format(&buf, FormatterOptions{UppercaseKeywords: true}, sqlResult.Statements...))
		require.Equal(t, "CREATE TABLE `t` (\n    `id` INT\n);", buf.String())
	})
}

func TestFormatter_SQL(t *testing.T) {
	sql := `CREATE DATABASE test;
			/*!40101 SET NAMES utf8mb4 */;
			CREATE TABLE test.users (id BIGINT) ENGINE = InnoDB;`

	sqlResult, err := parser.ParseString(sql)
	require.NoError(t, err)
	require.Len(t, sqlResult.Statements, 3)

	var buf bytes.Buffer
	require.NoError(t, New(Defaults).Format(&buf, sqlResult.Statements...))

	expected := "CREATE DATABASE `test`;\n\nCREATE TABLE `test`.`users` (\n    `id` BIGINT\n) ENGINE=InnoDB;"
	require.Equal(t, expected, buf.String())
}

func TestFormatter_EmptyInput(t *testing.T) {
	// Test no statements
	var buf1 bytes.Buffer
	require.NoError(t, Format(&buf1, Defaults))
	require.Empty(t, buf1.String())

	// Test nil statement
	var buf2 bytes.Buffer
	require.NoError(t, Format(&buf2, Defaults, nil))
	require.Empty(t, buf2.String())

	// Test empty statements
	var buf3 bytes.Buffer
	require.NoError(t, Format(&buf3, Defaults, []*parser.Statement{}...))
	require.Empty(t, buf3.String())

	require.Empty(t, Statement(&parser.Statement{Empty: true}))
}

func TestFormatter_Unit(t *testing.T) {
	input := `
		CREATE DATABASE a;
		CREATE TABLE t1 (id INT);
		CREATE DATABASE b;
		CREATE TABLE t2 (id INT);
		CREATE TABLE other.t3 (id INT);
		DROP TABLE t1;
	`

	unit, err := parser.ParseUnit("schema.sql", strings.NewReader(input))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Unit(&buf, Defaults, unit))

	expected := strings.Join([]string{
		"CREATE DATABASE `a`;",
		"CREATE TABLE `a`.`t1` (\n    `id` INT\n);",
		"CREATE DATABASE `b`;",
		"CREATE TABLE `b`.`t2` (\n    `id` INT\n);",
		"CREATE TABLE `other`.`t3` (\n    `id` INT\n);",
	}, "\n\n")
	require.Equal(t, expected, buf.String())
	require.Equal(t, expected, strings.Join(New(Defaults).UnitStatements(unit), "\n\n"))

	// The parsed statements are left untouched
	require.Nil(t, unit.Tables()[0].CreateTable.Name.Database)
}

func TestFormatter_UnitEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Unit(&buf, Defaults, nil))
	require.NoError(t, Unit(&buf, Defaults, &parser.Unit{}))
	require.Empty(t, buf.String())
	require.Empty(t, New(Defaults).UnitStatements(nil))
}

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/myddl/pkg/consts"
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const unformattedSQL = "CREATE DATABASE test CHARACTER SET utf8mb4;CREATE TABLE test.users(id BIGINT NOT NULL,name VARCHAR(50))ENGINE=InnoDB;"

const formattedSQL = "CREATE DATABASE `test` CHARACTER SET utf8mb4;\n\n" +
	"CREATE TABLE `test`.`users` (\n" +
	"    `id` BIGINT NOT NULL,\n" +
	"    `name` VARCHAR(50)\n" +
	") ENGINE=InnoDB;\n"

func runFmt(t *testing.T, args ...string) (string, error) {
	t.Helper()

	command := fmtCmd(format.New(format.Defaults))

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	err := app.Run(context.Background(), append([]string{"test"}, args...))
	return buf.String(), err
}

func TestFmtCommand_RequiresPath(t *testing.T) {
	_, err := runFmt(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "test.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte(unformattedSQL), consts.ModeFile))

	output, err := runFmt(t, sqlFile)
	require.NoError(t, err)
	require.Equal(t, formattedSQL, output)

	// stdout mode leaves the file alone
	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, unformattedSQL, string(content))
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "test.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte(unformattedSQL), consts.ModeFile))

	output, err := runFmt(t, "-w", sqlFile)
	require.NoError(t, err)
	require.Empty(t, output)

	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, formattedSQL, string(content))
}

func TestFmtCommand_Idempotent(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "test.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte(formattedSQL), consts.ModeFile))

	output, err := runFmt(t, sqlFile)
	require.NoError(t, err)
	require.Equal(t, formattedSQL, output)
}

func TestFmtCommand_Directory(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "schema1.sql"), []byte("create database db1;"), consts.ModeFile))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "schema2.sql"), []byte("create database db2;"), consts.ModeFile))

	output, err := runFmt(t, tmpDir)
	require.NoError(t, err)
	require.Equal(t, "CREATE DATABASE `db1`;\nCREATE DATABASE `db2`;\n", output)
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	tmpDir := t.TempDir()

	file1 := filepath.Join(tmpDir, "schema1.sql")
	file2 := filepath.Join(tmpDir, "schema2.sql")
	require.NoError(t, os.WriteFile(file1, []byte("create database db1;"), consts.ModeFile))
	require.NoError(t, os.WriteFile(file2, []byte("drop table if exists db2.t;"), consts.ModeFile))

	_, err := runFmt(t, "-w", tmpDir)
	require.NoError(t, err)

	content1, err := os.ReadFile(file1)
	require.NoError(t, err)
	require.Equal(t, "CREATE DATABASE `db1`;\n", string(content1))

	content2, err := os.ReadFile(file2)
	require.NoError(t, err)
	require.Equal(t, "DROP TABLE IF EXISTS `db2`.`t`;\n", string(content2))
}

func TestFmtCommand_RecursiveDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	subDir := filepath.Join(tmpDir, "subdir")
	require.NoError(t, os.MkdirAll(subDir, consts.ModeDir))

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "root.sql"), []byte("CREATE DATABASE root;"), consts.ModeFile))
	require.NoError(t, os.WriteFile(filepath.Join(subDir, "sub.SQL"), []byte("CREATE DATABASE sub;"), consts.ModeFile))
	require.NoError(t, os.WriteFile(filepath.Join(subDir, "notes.txt"), []byte("not sql"), consts.ModeFile))

	output, err := runFmt(t, tmpDir)
	require.NoError(t, err)
	require.Contains(t, output, "`root`")
	require.Contains(t, output, "`sub`")
	require.NotContains(t, output, "not sql")
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	_, err := runFmt(t, "/nonexistent/path")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_InvalidSQL(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "invalid.sql")
	invalidSQL := "CREATE TABLE t (name VARCHAR(70000));"
	require.NoError(t, os.WriteFile(sqlFile, []byte(invalidSQL), consts.ModeFile))

	_, err := runFmt(t, "-w", sqlFile)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse SQL")
	require.Contains(t, err.Error(), "VARCHAR length 70000 out of range")

	// nothing is written when parsing fails
	content, err := os.ReadFile(sqlFile)
	require.NoError(t, err)
	require.Equal(t, invalidSQL, string(content))
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "readme.txt"), []byte("Not SQL"), consts.ModeFile))

	_, err := runFmt(t, tmpDir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no SQL files found")
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	command := fmtCmd(format.New(format.Defaults))

	require.Equal(t, "fmt", command.Name)
	require.Equal(t, "Format SQL files", command.Usage)
	require.Equal(t, "<path>", command.ArgsUsage)
	require.Len(t, command.Flags, 1)

	writeFlag := command.Flags[0].(*cli.BoolFlag)
	require.Equal(t, "write", writeFlag.Name)
	require.Equal(t, []string{"w"}, writeFlag.Aliases)
}

func TestFmtCommand_FormatterOptions(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "test.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte(unformattedSQL), consts.ModeFile))

	command := fmtCmd(format.New(format.FormatterOptions{IndentSize: 2, AlignColumns: true}))

	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	require.NoError(t, app.Run(context.Background(), []string{"test", sqlFile}))
	require.Contains(t, buf.String(), "create table `test`.`users` (\n  `id`   bigint not null,\n  `name` varchar(50)\n) engine=InnoDB;")
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "empty.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte("-- nothing here\n"), consts.ModeFile))

	output, err := runFmt(t, sqlFile)
	require.NoError(t, err)
	require.Empty(t, strings.TrimSpace(output))
}

func TestFmtCommand_WritePermissions(t *testing.T) {
	tmpDir := t.TempDir()

	sqlFile := filepath.Join(tmpDir, "test.sql")
	require.NoError(t, os.WriteFile(sqlFile, []byte("CREATE DATABASE test;"), 0o600))

	originalInfo, err := os.Stat(sqlFile)
	require.NoError(t, err)

	_, err = runFmt(t, "-w", sqlFile)
	require.NoError(t, err)

	newInfo, err := os.Stat(sqlFile)
	require.NoError(t, err)
	require.Equal(t, originalInfo.Mode(), newInfo.Mode())
}

func TestFmtCommand_MultipleArguments(t *testing.T) {
	_, err := runFmt(t, "a.sql", "b.sql")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting MySQL DDL files. It works like
// gofmt: a single file or a whole directory tree of .sql files is parsed,
// validated and rewritten with the configured formatter.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Files that fail to parse are reported with their position and a snippet of
// the offending line, and nothing is written.
//
// Examples:
//
//	# Format single file to stdout
//	myddl fmt schema.sql
//
//	# Format all SQL files in directory tree in-place
//	myddl fmt -w db/
//
// Indentation, keyword case and column alignment come from the format section
// of myddl.yaml when one is present.
func fmtCmd(formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			f := &fileFormatter{
				formatter: formatter,
				writeBack: cmd.Bool("write"),
				writer:    cmd.Writer,
			}

			return f.formatPath(cmd.Args().First())
		},
	}
}

type fileFormatter struct {
	formatter *format.Formatter
	writeBack bool
	writer    io.Writer
}

// formatPath dispatches to formatFile or formatDirectory depending on what
// path points at.
func (f *fileFormatter) formatPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return f.formatDirectory(path)
	}

	return f.formatFile(path)
}

// formatDirectory formats every .sql file below dir in lexical order.
func (f *fileFormatter) formatDirectory(dir string) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := f.formatFile(sqlFile); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single file to the writer or back onto itself. The
// original file mode is kept when writing back.
func (f *fileFormatter) formatFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	sql, err := parser.ParseFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to parse SQL in file: %s", path)
	}

	var buf strings.Builder
	if err := f.formatter.Format(&buf, sql.Statements...); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	formatted := buf.String()
	if formatted != "" {
		formatted += "\n"
	}

	if f.writeBack {
		if err := os.WriteFile(path, []byte(formatted), info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}
		return nil
	}

	if _, err := fmt.Fprint(f.writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}

	return nil
}

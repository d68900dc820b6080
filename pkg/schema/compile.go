package schema

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// ImportDirective marks a line that is replaced by the contents of another
// schema file, e.g.
//
//	-- myddl:import tables/users.sql
const ImportDirective = "-- myddl:import"

// Compile recursively compiles a schema file and its imports. Lines starting
// with ImportDirective are replaced by the referenced file's contents; every
// other line is copied as is. Import paths are resolved relative to the
// directory of the file containing the directive.
//
// Example:
//
//	var buf bytes.Buffer
//	if err := schema.Compile("db/main.sql", &buf); err != nil {
//		log.Fatal(err)
//	}
//
//	unit, err := parser.ParseUnit("db/main.sql", &buf)
func Compile(path string, w io.Writer) error {
	return compile(path, w, nil)
}

func compile(path string, w io.Writer, stack []string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrapf(err, "failed to resolve %s", path)
	}

	if slices.Contains(stack, abs) {
		return errors.Errorf("import cycle: %s", strings.Join(append(stack, abs), " -> "))
	}
	stack = append(stack, abs)

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file %s", path)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if importPath, ok := strings.CutPrefix(strings.TrimSpace(line), ImportDirective); ok {
			importPath = strings.TrimSpace(importPath)
			if importPath == "" {
				return errors.Errorf("%s: import directive without a path", path)
			}

			if !filepath.IsAbs(importPath) {
				importPath = filepath.Join(filepath.Dir(path), importPath)
			}

			if err := compile(importPath, w, stack); err != nil {
				return err
			}

			continue
		}

		fmt.Fprintln(w, line)
	}

	return errors.Wrapf(scanner.Err(), "failed scanning %s", path)
}

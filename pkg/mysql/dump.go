package mysql

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/pseudomuto/myddl/pkg/utils"
)

// DumpOptions selects what DumpDDL and DumpSchema extract.
type DumpOptions struct {
	// Databases to dump. When empty every user database on the server is
	// dumped.
	Databases []string

	// IgnoreDatabases are skipped even when listed in Databases.
	IgnoreDatabases []string
}

// DumpDDL extracts the schema of the selected databases as a single DDL
// script: for each database its CREATE DATABASE statement, a USE statement,
// and the CREATE TABLE statement of every base table.
func DumpDDL(ctx context.Context, client *Client, opts DumpOptions) (string, error) {
	databases, err := selectDatabases(ctx, client, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, db := range databases {
		slog.Info("Dumping database", "database", db)

		ddl, err := client.ShowCreateDatabase(ctx, db)
		if err != nil {
			return "", errors.Wrap(err, "failed to extract databases")
		}
		sb.WriteString(ddl + ";\n\n")
		sb.WriteString(utils.NewSQLBuilder().Raw("USE").Name(db).String() + "\n\n")

		tables, err := client.Tables(ctx, db)
		if err != nil {
			return "", errors.Wrap(err, "failed to extract tables")
		}

		for _, table := range tables {
			ddl, err := client.ShowCreateTable(ctx, db, table)
			if err != nil {
				return "", errors.Wrap(err, "failed to extract tables")
			}
			sb.WriteString(ddl + ";\n\n")
		}

		slog.Debug("Dumped database", "database", db, "tables", len(tables))
	}

	return sb.String(), nil
}

// DumpSchema extracts the selected databases and parses the result into a
// Unit. Tables are attributed to the database they were read from.
//
// Example:
//
//	unit, err := DumpSchema(ctx, client, DumpOptions{})
//	if err != nil {
//		return err
//	}
//
//	for _, entry := range unit.Tables() {
//		fmt.Println(entry.Database, entry.CreateTable.Name)
//	}
func DumpSchema(ctx context.Context, client *Client, opts DumpOptions) (*parser.Unit, error) {
	ddl, err := DumpDDL(ctx, client, opts)
	if err != nil {
		return nil, err
	}

	unit, err := parser.ParseUnit("mysql", strings.NewReader(ddl), parser.WithUseTracking(true))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse extracted schema")
	}

	return unit, nil
}

func selectDatabases(ctx context.Context, client *Client, opts DumpOptions) ([]string, error) {
	databases := opts.Databases
	if len(databases) == 0 {
		var err error
		if databases, err = client.Databases(ctx); err != nil {
			return nil, errors.Wrap(err, "failed to extract databases")
		}
	}

	return filterDatabases(databases, opts.IgnoreDatabases), nil
}

// filterDatabases drops ignored names, keeping the order of databases.
func filterDatabases(databases, ignore []string) []string {
	out := make([]string, 0, len(databases))
	for _, db := range databases {
		if slices.Contains(ignore, db) {
			continue
		}
		out = append(out, db)
	}

	return out
}

package mysql

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parseUnit(t *testing.T, sql string) *parser.Unit {
	t.Helper()

	unit, err := parser.ParseUnit("", strings.NewReader(sql))
	require.NoError(t, err)
	return unit
}

func TestLoadUnit_UnnamedDatabase(t *testing.T) {
	tests := []struct {
		name   string
		unit   *parser.Unit
		errMsg string
	}{
		{
			name: "database without tables",
			unit: &parser.Unit{Entries: []parser.Entry{
				{CreateDatabase: &parser.CreateDatabaseStmt{}},
			}},
			errMsg: "unit contains a database without a name",
		},
		{
			name:   "unqualified table",
			unit:   parseUnit(t, "CREATE TABLE users (id INT);"),
			errMsg: "table users has no database",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// fails before the client is used
			err := LoadUnit(context.Background(), &Client{}, format.New(format.Defaults), tt.unit)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadUnit_EmptyDatabaseName(t *testing.T) {
	_, err := parser.ParseUnit("", strings.NewReader("CREATE DATABASE ``;"))

	var perr *parser.Error
	require.ErrorAs(t, err, &perr)
	require.Equal(t, parser.KindValue, perr.Kind)
}

func TestCheckCompatibility(t *testing.T) {
	expressionDefault := parseUnit(t, `
		CREATE DATABASE shop;
		CREATE TABLE users (id BINARY(16) DEFAULT (uuid_to_bin(uuid())));
	`)
	checked := parseUnit(t, `
		CREATE DATABASE shop;
		CREATE TABLE items (qty INT, CONSTRAINT qty_positive CHECK (qty > 0));
	`)
	plain := parseUnit(t, `
		CREATE DATABASE shop;
		CREATE TABLE users (id INT DEFAULT 0, name VARCHAR(10) DEFAULT 'x');
	`)

	tests := []struct {
		name    string
		version VersionInfo
		unit    *parser.Unit
		errMsg  string
		warning bool
	}{
		{name: "expression default supported", version: VersionInfo{Major: 8, Patch: 13}, unit: expressionDefault},
		{
			name:    "expression default on old server",
			version: VersionInfo{Major: 8, Patch: 12},
			unit:    expressionDefault,
			errMsg:  "column shop.users.id uses an expression default, which requires MySQL 8.0.13 (server is 8.0.12)",
		},
		{name: "literal defaults on old server", version: VersionInfo{Major: 5, Minor: 7, Patch: 44}, unit: plain},
		{name: "check enforced", version: VersionInfo{Major: 8, Patch: 16}, unit: checked},
		{name: "check ignored", version: VersionInfo{Major: 8, Patch: 15}, unit: checked, warning: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			prev := slog.Default()
			slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
			t.Cleanup(func() { slog.SetDefault(prev) })

			err := checkCompatibility(&tt.version, tt.unit)
			if tt.errMsg != "" {
				require.EqualError(t, err, tt.errMsg)
				return
			}

			require.NoError(t, err)
			if tt.warning {
				require.Contains(t, logs.String(), "CHECK constraints are parsed but not enforced")
				require.Contains(t, logs.String(), "table=shop.items")
			} else {
				require.Empty(t, logs.String())
			}
		})
	}
}

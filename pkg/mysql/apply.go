package mysql

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/pseudomuto/myddl/pkg/utils"
)

// Apply executes the statements in order on a single connection. Foreign key
// checks are disabled for that connection so tables may reference tables
// created after them.
func (c *Client) Apply(ctx context.Context, statements ...string) error {
	conn, err := c.db.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to acquire connection")
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.ExecContext(ctx, "SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		return errors.Wrap(err, "failed to disable foreign key checks")
	}

	for i, stmt := range statements {
		stmt = strings.TrimSuffix(strings.TrimSpace(stmt), ";")
		if stmt == "" {
			continue
		}

		slog.Debug("Applying statement", "index", i+1, "total", len(statements))
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return errors.Wrapf(err, "failed to execute statement %d: %s", i+1, stmt)
		}
	}

	return nil
}

// LoadUnit creates the databases and tables of the unit on the server.
// Databases that tables are attributed to but that the unit never creates
// are created with server defaults first. The unit is checked against the
// server version before anything is executed.
func LoadUnit(ctx context.Context, client *Client, formatter *format.Formatter, unit *parser.Unit) error {
	var statements []string
	for _, db := range unit.Databases() {
		if db.Name == "" {
			if len(db.Tables) == 0 {
				return errors.New("unit contains a database without a name")
			}

			return errors.Errorf("table %s has no database: qualify it or create a database before it",
				db.Tables[0].Name.Name)
		}

		if db.Create == nil {
			statements = append(statements,
				utils.NewSQLBuilder().Create("DATABASE").IfNotExists().Name(db.Name).String())
		}
	}

	version, err := client.GetVersion(ctx)
	if err != nil {
		return err
	}

	if err := checkCompatibility(version, unit); err != nil {
		return err
	}

	statements = append(statements, formatter.UnitStatements(unit)...)
	slog.Info("Loading schema", "databases", len(unit.Databases()), "statements", len(statements), "version", version.String())

	return client.Apply(ctx, statements...)
}

// checkCompatibility fails for features the server cannot load and warns for
// ones it accepts but ignores.
func checkCompatibility(version *VersionInfo, unit *parser.Unit) error {
	for _, e := range unit.Tables() {
		table := e.CreateTable
		name := e.Database + "." + table.Name.Name.String()
		if !version.SupportsExpressionDefaults() {
			for _, col := range table.Columns() {
				attrs := col.Attributes()
				if attrs == nil || attrs.Default == nil || attrs.Default.Literal == nil || attrs.Default.Literal.Expression == nil {
					continue
				}

				return errors.Errorf("column %s.%s uses an expression default, which requires MySQL 8.0.13 (server is %s)",
					name, col.Name, version)
			}
		}

		if !version.EnforcesCheckConstraints() {
			for _, key := range table.Keys() {
				if key.Check != nil {
					slog.Warn("CHECK constraints are parsed but not enforced before MySQL 8.0.16",
						"table", name, "version", version.String())
					break
				}
			}
		}
	}

	return nil
}

package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"slices"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/consts"
	"github.com/pseudomuto/myddl/pkg/utils"
)

type (
	// Client represents a MySQL database connection
	Client struct {
		db *sql.DB
	}

	// ClientOptions holds optional connection settings
	ClientOptions struct {
		TLSSettings
	}
)

func init() {
	_ = mysql.SetLogger(driverLogger{})
}

// NewClient creates a new MySQL client connection.
// The DSN uses the go-sql-driver format, e.g. "user:pass@tcp(localhost:3306)/".
//
// Example:
//
//	client, err := NewClient(ctx, "root:secret@tcp(localhost:3306)/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	return NewClientWithOptions(ctx, dsn, ClientOptions{})
}

// NewClientWithOptions creates a new MySQL client connection with the given
// options. The connection is verified with a ping before returning.
func NewClientWithOptions(ctx context.Context, dsn string, opts ClientOptions) (*Client, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid MySQL DSN")
	}

	if opts.TLSSettings.enabled() {
		if err := configureTLS(cfg, opts.TLSSettings); err != nil {
			return nil, err
		}
	}

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "invalid MySQL DSN")
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to connect to MySQL")
	}

	return &Client{db: db}, nil
}

// Close closes the MySQL connection
func (c *Client) Close() error {
	return c.db.Close()
}

// Databases returns the user databases on the server, skipping the system
// schemas.
func (c *Client) Databases(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, "SHOW DATABASES")
	if err != nil {
		return nil, errors.Wrap(err, "failed to query databases")
	}
	defer rows.Close()

	var databases []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errors.Wrap(err, "failed to scan database name")
		}

		if slices.Contains(consts.SystemDatabases, name) {
			continue
		}
		databases = append(databases, name)
	}

	return databases, errors.Wrap(rows.Err(), "failed to read databases")
}

// ShowCreateDatabase returns the CREATE DATABASE statement for the database.
func (c *Client) ShowCreateDatabase(ctx context.Context, database string) (string, error) {
	query := utils.NewSQLBuilder().Show("CREATE DATABASE").Name(database).StringWithoutSemicolon()

	var name, ddl string
	if err := c.db.QueryRowContext(ctx, query).Scan(&name, &ddl); err != nil {
		return "", errors.Wrapf(err, "failed to show create database %s", database)
	}

	return ddl, nil
}

// Tables returns the base tables in the database in the order the server
// lists them. Views are skipped.
func (c *Client) Tables(ctx context.Context, database string) ([]string, error) {
	query := utils.NewSQLBuilder().Show("FULL TABLES FROM").Name(database).StringWithoutSemicolon()

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query tables in %s", database)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name, kind string
		if err := rows.Scan(&name, &kind); err != nil {
			return nil, errors.Wrap(err, "failed to scan table")
		}

		if kind != "BASE TABLE" {
			continue
		}
		tables = append(tables, name)
	}

	return tables, errors.Wrapf(rows.Err(), "failed to read tables in %s", database)
}

// ShowCreateTable returns the CREATE TABLE statement for database.table.
func (c *Client) ShowCreateTable(ctx context.Context, database, table string) (string, error) {
	query := utils.NewSQLBuilder().Show("CREATE TABLE").QualifiedName(&database, table).StringWithoutSemicolon()

	var name, ddl string
	if err := c.db.QueryRowContext(ctx, query).Scan(&name, &ddl); err != nil {
		return "", errors.Wrapf(err, "failed to show create table %s.%s", database, table)
	}

	return ddl, nil
}

// driverLogger routes the driver's internal messages to slog.
type driverLogger struct{}

func (driverLogger) Print(v ...any) {
	slog.Debug("mysql driver", "message", fmt.Sprint(v...))
}

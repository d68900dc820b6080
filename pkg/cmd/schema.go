package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/config"
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/mysql"
	"github.com/pseudomuto/myddl/pkg/parser"
	schemafile "github.com/pseudomuto/myddl/pkg/schema"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// schema returns a CLI command that groups the schema operations.
//
// Available subcommands:
//   - dump: Extract the schema of a live MySQL server
//   - parse: Parse schema files and print the resulting model
//   - verify: Load schema files into a throwaway MySQL server and compare
func schema(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Commands for working with schemas",
		Commands: []*cli.Command{
			schemaDump(cfg, formatter),
			schemaParse(cfg, formatter),
			schemaVerify(cfg, formatter),
		},
	}
}

// schemaDump returns a CLI command that extracts the schema of a MySQL server
// and writes it as formatted DDL. Every table is written with a qualified
// name so the output can be parsed again without tracking USE.
//
// The DSN is taken from --url, then MYDDL_DSN, then mysql.dsn in myddl.yaml.
// Databases default to mysql.databases from the config, and to every user
// database when that is empty as well.
//
// Example usage:
//
//	# Dump every user database to stdout
//	myddl schema dump --url "root:secret@tcp(localhost:3306)/"
//
//	# Dump two databases to a file
//	myddl schema dump -d shop -d inventory --out schema.sql
func schemaDump(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Extract and format schema from a MySQL server",
		Flags: []cli.Flag{
			urlFlag,
			&cli.StringSliceFlag{
				Name:    "database",
				Aliases: []string{"d"},
				Usage:   "Databases to dump (can be specified multiple times)",
			},
			&cli.StringSliceFlag{
				Name:    "ignore-databases",
				Aliases: []string{"i"},
				Usage:   "Databases to exclude from schema dump (can be specified multiple times)",
			},
			&cli.StringFlag{
				Name:  "tls-cert",
				Usage: "Client certificate for mTLS",
			},
			&cli.StringFlag{
				Name:  "tls-key",
				Usage: "Client key for mTLS",
			},
			&cli.StringFlag{
				Name:  "tls-ca",
				Usage: "CA bundle used to verify the server",
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output file path for dumped schema",
				DefaultText: "stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dsn, err := resolveDSN(cmd, cfg)
			if err != nil {
				return err
			}

			client, err := mysql.NewClientWithOptions(ctx, dsn, mysql.ClientOptions{
				TLSSettings: mysql.TLSSettings{
					CertFile: cmd.String("tls-cert"),
					KeyFile:  cmd.String("tls-key"),
					CAFile:   cmd.String("tls-ca"),
				},
			})
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			unit, err := mysql.DumpSchema(ctx, client, dumpOptions(cmd, cfg))
			if err != nil {
				return err
			}

			return writeOutput(cmd, func(w io.Writer) error {
				return writeUnit(w, formatter, unit)
			})
		},
	}
}

// schemaParse returns a CLI command that parses one or more schema files and
// prints the databases, tables, columns and keys they define. Parse errors are
// printed with their position and a snippet of the offending line.
//
// Example usage:
//
//	myddl schema parse schema.sql
//	myddl schema parse --output json --track-use dump.sql
func schemaParse(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse schema files and print the schema model",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"f"},
				Usage:   "Output format (yaml or json)",
				Value:   "yaml",
			},
			trackUseFlag(),
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "File to write the output to",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			output := cmd.String("output")
			if output != "yaml" && output != "json" {
				return errors.Errorf("unsupported output format: %s", output)
			}

			unit, err := parseArgs(cmd, cfg)
			if err != nil {
				return err
			}

			return writeOutput(cmd, func(w io.Writer) error {
				return writeSummary(w, output, summarize(formatter, unit))
			})
		},
	}
}

func dumpOptions(cmd *cli.Command, cfg *config.Config) mysql.DumpOptions {
	opts := mysql.DumpOptions{
		Databases:       cmd.StringSlice("database"),
		IgnoreDatabases: cmd.StringSlice("ignore-databases"),
	}

	if cfg != nil {
		if len(opts.Databases) == 0 {
			opts.Databases = cfg.MySQL.Databases
		}
		opts.IgnoreDatabases = append(opts.IgnoreDatabases, cfg.MySQL.IgnoreDatabases...)
	}

	return opts
}

// parseArgs parses every file argument into one unit. Each file starts
// without a current database. Parser options come from the config, and an
// explicit --track-use overrides parser.track_use.
func parseArgs(cmd *cli.Command, cfg *config.Config) (*parser.Unit, error) {
	if cmd.Args().Len() == 0 {
		return nil, errors.New("at least one file argument is required")
	}

	opts := cfg.UnitOptions()
	if cmd.IsSet("track-use") {
		opts = append(opts, parser.WithUseTracking(cmd.Bool("track-use")))
	}

	unit := &parser.Unit{}
	for _, path := range cmd.Args().Slice() {
		u, err := parseUnitFile(path, opts...)
		if err != nil {
			return nil, err
		}
		unit.Entries = append(unit.Entries, u.Entries...)
	}

	return unit, nil
}

func parseUnitFile(path string, opts ...parser.UnitOption) (*parser.Unit, error) {
	var buf bytes.Buffer
	if err := schemafile.Compile(path, &buf); err != nil {
		return nil, err
	}

	unit, err := parser.ParseUnit(path, &buf, opts...)
	if err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			return nil, errors.Errorf("%s\n%s", perr.Error(), perr.Snippet())
		}
		return nil, err
	}

	return unit, nil
}

func writeUnit(w io.Writer, formatter *format.Formatter, unit *parser.Unit) error {
	if err := formatter.Unit(w, unit); err != nil {
		return err
	}

	if len(unit.Entries) == 0 {
		return nil
	}

	_, err := io.WriteString(w, "\n")
	return errors.Wrap(err, "failed to write formatted SQL")
}

func writeSummary(w io.Writer, output string, summary *schemaSummary) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(summary), "failed to encode schema as JSON")
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(summary); err != nil {
		return errors.Wrap(err, "failed to encode schema as YAML")
	}

	return errors.Wrap(enc.Close(), "failed to encode schema as YAML")
}

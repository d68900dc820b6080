package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/compare"
	"github.com/pseudomuto/myddl/pkg/config"
	"github.com/pseudomuto/myddl/pkg/docker"
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/mysql"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/urfave/cli/v3"
)

// schemaVerify returns a CLI command that checks schema files against a real
// server. The files are parsed, loaded into a throwaway MySQL container,
// dumped back and compared with what was parsed. Every difference is printed
// and the command fails when there is at least one.
//
// Example usage:
//
//	myddl schema verify schema.sql
//	myddl schema verify --mysql-version 8.4 --config-dir db/conf.d db/*.sql
func schemaVerify(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Load schema files into a MySQL container and compare the result",
		ArgsUsage: "<file>...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "mysql-version",
				Usage: "MySQL image tag to verify against",
				Value: docker.DefaultVersion,
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "Directory of .cnf files to mount at /etc/mysql/conf.d",
			},
			trackUseFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			unit, err := parseArgs(cmd, cfg)
			if err != nil {
				return err
			}

			container := docker.NewWithOptions(docker.DockerOptions{
				Version:   cmd.String("mysql-version"),
				ConfigDir: cmd.String("config-dir"),
			})

			diffs, err := verifyUnit(ctx, container, formatter, unit)
			if err != nil {
				return err
			}

			for _, d := range diffs {
				fmt.Fprintln(cmd.Writer, d)
			}

			if len(diffs) > 0 {
				return errors.Errorf("schema verification found %d difference(s)", len(diffs))
			}

			fmt.Fprintf(cmd.Writer, "Verified %d table(s) in %d database(s) against %s\n",
				len(unit.Tables()),
				len(unit.Databases()),
				container.Image(),
			)
			return nil
		},
	}
}

// verifyUnit runs the unit through a fresh server and compares what comes
// back. The container is always stopped before returning.
func verifyUnit(ctx context.Context, container *docker.Container, formatter *format.Formatter, unit *parser.Unit) ([]compare.Difference, error) {
	slog.Info("Starting MySQL container", "image", container.Image())
	if err := container.Start(ctx); err != nil {
		return nil, err
	}
	defer func() {
		if err := container.Stop(ctx); err != nil {
			slog.Warn("Failed to stop MySQL container", "err", err)
		}
	}()

	dsn, err := container.GetDSN(ctx)
	if err != nil {
		return nil, err
	}

	client, err := mysql.NewClient(ctx, dsn)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	if err := mysql.LoadUnit(ctx, client, formatter, unit); err != nil {
		return nil, errors.Wrap(err, "MySQL rejected the schema")
	}

	databases := make([]string, 0, len(unit.Databases()))
	for _, db := range unit.Databases() {
		databases = append(databases, db.Name)
	}

	actual, err := mysql.DumpSchema(ctx, client, mysql.DumpOptions{Databases: databases})
	if err != nil {
		return nil, err
	}

	return compare.Units(unit, actual), nil
}

// Package cmd provides the CLI commands for myddl.
//
// Commands are plain functions returning a *cli.Command (urfave/cli/v3). They
// are registered with fx through the "commands" value group and receive the
// project configuration and formatter as constructor arguments, which keeps
// each command testable on its own.
//
// # Available Commands
//
//   - fmt: Format MySQL DDL files, to stdout or in place
//   - schema parse: Parse schema files and print the model as YAML or JSON
//   - schema dump: Extract the schema of a live MySQL server as formatted DDL
//
// # Configuration
//
// When myddl.yaml exists in the working directory (or MYDDL_CONFIG names a
// file) it supplies formatter settings, the default for USE tracking, and the
// connection settings for schema dump. Every command also works without one.
//
// # Example Usage
//
//	myddl fmt -w db/
//	myddl schema parse --output json --track-use dump.sql
//	myddl schema dump --url "root:secret@tcp(localhost:3306)/" -d shop
//	MYDDL_DSN="root:secret@tcp(localhost:3306)/" myddl schema dump -i scratch
package cmd

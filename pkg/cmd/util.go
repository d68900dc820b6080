package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/config"
	"github.com/pseudomuto/myddl/pkg/consts"
	"github.com/urfave/cli/v3"
)

var urlFlag = &cli.StringFlag{
	Name:    "url",
	Aliases: []string{"u"},
	Usage:   "MySQL connection DSN (user:pass@tcp(host:port)/)",
	Sources: cli.EnvVars(consts.DSNEnvVar),
	Config: cli.StringConfig{
		TrimSpace: true,
	},
}

// trackUseFlag overrides parser.track_use when it is passed.
func trackUseFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "track-use",
		Usage: "Let USE statements change the current database (default: parser.track_use)",
	}
}

// resolveDSN returns the DSN from the --url flag (or its environment
// variable), falling back to the configuration file.
func resolveDSN(cmd *cli.Command, cfg *config.Config) (string, error) {
	if dsn := cmd.String("url"); dsn != "" {
		return dsn, nil
	}

	if cfg != nil && cfg.MySQL.DSN != "" {
		return cfg.MySQL.DSN, nil
	}

	return "", errors.Errorf("a MySQL DSN is required: pass --url, set %s or configure mysql.dsn in %s",
		consts.DSNEnvVar,
		consts.DefaultConfigFile,
	)
}

// outputWriter returns the file named by --out or the command's writer when
// the flag is empty. The returned func closes the file; its error must be
// checked since buffered writes can fail on close.
func outputWriter(cmd *cli.Command) (io.Writer, func() error, error) {
	path := cmd.String("out")
	if path == "" {
		return cmd.Writer, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create output file: %s", path)
	}

	return f, func() error {
		return errors.Wrapf(f.Close(), "failed to close output file: %s", path)
	}, nil
}

// writeOutput runs write against the --out destination and reports the first
// error from writing or closing it.
func writeOutput(cmd *cli.Command, write func(io.Writer) error) error {
	w, closer, err := outputWriter(cmd)
	if err != nil {
		return err
	}

	if err := write(w); err != nil {
		_ = closer()
		return err
	}

	return closer()
}

package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
	"gopkg.in/yaml.v3"
)

type (
	// Parser controls how statements are folded into a unit.
	Parser struct {
		// TrackUse makes USE statements change the current database, in
		// addition to CREATE DATABASE
		TrackUse bool `yaml:"track_use,omitempty"`
	}

	// Format holds the formatter settings used by the fmt and dump commands.
	Format struct {
		// IndentSize is the number of spaces per indent level (default 4)
		IndentSize int `yaml:"indent_size,omitempty"`

		// UppercaseKeywords controls keyword casing (default true)
		UppercaseKeywords *bool `yaml:"uppercase_keywords,omitempty"`

		// AlignColumns pads column names so that types line up
		AlignColumns bool `yaml:"align_columns,omitempty"`
	}

	// MySQL represents the connection settings used by the dump command.
	MySQL struct {
		// DSN is a go-sql-driver/mysql data source name. Environment
		// variables ($VAR or ${VAR}) are expanded so that passwords need not
		// be committed.
		DSN string `yaml:"dsn,omitempty"`

		// Databases limits the dump to the listed databases. When empty every
		// non-system database is dumped.
		Databases []string `yaml:"databases,omitempty"`

		// IgnoreDatabases are skipped when dumping every database
		IgnoreDatabases []string `yaml:"ignore_databases,omitempty"`
	}

	// Config represents the project configuration read from myddl.yaml.
	Config struct {
		Parser Parser `yaml:"parser"`
		Format Format `yaml:"format"`
		MySQL  MySQL  `yaml:"mysql"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Unset formatter values fall back to format.Defaults and the DSN has its
// environment variables expanded.
//
// Example:
//
//	yamlData := `
//	parser:
//	  track_use: true
//	mysql:
//	  dsn: root:${MYSQL_PASSWORD}@tcp(localhost:3306)/
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if cfg.Format.IndentSize <= 0 {
		cfg.Format.IndentSize = format.Defaults.IndentSize
	}
	if cfg.Format.UppercaseKeywords == nil {
		upper := format.Defaults.UppercaseKeywords
		cfg.Format.UppercaseKeywords = &upper
	}

	cfg.MySQL.DSN = os.ExpandEnv(cfg.MySQL.DSN)
	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// FormatterOptions returns the formatter settings. A nil config yields
// format.Defaults.
func (c *Config) FormatterOptions() format.FormatterOptions {
	if c == nil {
		return format.Defaults
	}

	opts := format.Defaults
	if c.Format.IndentSize > 0 {
		opts.IndentSize = c.Format.IndentSize
	}
	if c.Format.UppercaseKeywords != nil {
		opts.UppercaseKeywords = *c.Format.UppercaseKeywords
	}
	opts.AlignColumns = c.Format.AlignColumns

	return opts
}

// GetFormatter returns a formatter configured from the format section.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.FormatterOptions())
}

// UnitOptions returns the parser options for ParseUnit.
func (c *Config) UnitOptions() []parser.UnitOption {
	if c == nil {
		return nil
	}

	return []parser.UnitOption{parser.WithUseTracking(c.Parser.TrackUse)}
}

package config

import (
	"os"

	"github.com/pseudomuto/myddl/pkg/consts"
	"github.com/pseudomuto/myddl/pkg/format"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Loads myddl.yaml (or the file named by MYDDL_CONFIG) if it exists. A nil
	// config is provided otherwise; every command works without one.
	func() (*Config, error) {
		path := consts.DefaultConfigFile
		if env := os.Getenv(consts.ConfigEnvVar); env != "" {
			return LoadConfigFile(env)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(path)
	},
	func(c *Config) *format.Formatter {
		return c.GetFormatter()
	},
))

package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration file looked up in the
	// working directory.
	DefaultConfigFile = "myddl.yaml"

	// ConfigEnvVar overrides the location of the configuration file.
	ConfigEnvVar = "MYDDL_CONFIG"

	// DSNEnvVar is consulted when no DSN is given on the command line or in
	// the configuration.
	DSNEnvVar = "MYDDL_DSN"
)

// SystemDatabases are the schemas every MySQL server carries. They are never
// dumped.
var SystemDatabases = []string{"information_schema", "mysql", "performance_schema", "sys"}

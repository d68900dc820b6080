package mysql

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var versionRegex = regexp.MustCompile(`^(\d+)\.(\d+)(?:\.(\d+))?`)

// VersionInfo represents parsed MySQL server version information
type VersionInfo struct {
	Major int    // Major version number (e.g., 8)
	Minor int    // Minor version number (e.g., 0)
	Patch int    // Patch version number (e.g., 36)
	Raw   string // Raw version string from the server
}

// String returns the version as a string in format "major.minor.patch"
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// IsAtLeast checks if this version is at least the specified version
func (v VersionInfo) IsAtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// SupportsExpressionDefaults reports whether DEFAULT (expr) is available.
// Introduced in 8.0.13.
func (v VersionInfo) SupportsExpressionDefaults() bool {
	return v.IsAtLeast(8, 0, 13)
}

// EnforcesCheckConstraints reports whether CHECK constraints are enforced
// rather than parsed and ignored. Introduced in 8.0.16.
func (v VersionInfo) EnforcesCheckConstraints() bool {
	return v.IsAtLeast(8, 0, 16)
}

// GetVersion retrieves and parses the MySQL version from the server
func (c *Client) GetVersion(ctx context.Context) (*VersionInfo, error) {
	var versionStr string
	if err := c.db.QueryRowContext(ctx, "SELECT VERSION()").Scan(&versionStr); err != nil {
		return nil, errors.Wrap(err, "failed to query MySQL version")
	}

	version, err := parseVersion(versionStr)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse MySQL version: %s", versionStr)
	}

	return version, nil
}

// parseVersion parses a MySQL version string. Distribution suffixes are
// ignored:
//   - "8.0.36"
//   - "8.0.36-log"
//   - "8.0.36-0ubuntu0.22.04.1"
//   - "5.7.44-debug"
func parseVersion(versionStr string) (*VersionInfo, error) {
	cleaned := strings.TrimSpace(versionStr)
	if dashIdx := strings.Index(cleaned, "-"); dashIdx != -1 {
		cleaned = cleaned[:dashIdx]
	}

	matches := versionRegex.FindStringSubmatch(cleaned)
	if len(matches) < 3 {
		return nil, errors.Errorf("invalid version format: %s", versionStr)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, errors.Errorf("invalid major version: %s", matches[1])
	}

	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return nil, errors.Errorf("invalid minor version: %s", matches[2])
	}

	patch := 0
	if matches[3] != "" {
		patch, err = strconv.Atoi(matches[3])
		if err != nil {
			return nil, errors.Errorf("invalid patch version: %s", matches[3])
		}
	}

	return &VersionInfo{
		Major: major,
		Minor: minor,
		Patch: patch,
		Raw:   versionStr,
	}, nil
}

package docker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql" // registers the driver used by the wait strategy
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultMySQLPort is the port MySQL listens on inside the container
	DefaultMySQLPort = "3306/tcp"

	// DefaultVersion is the image tag used when no version is configured
	DefaultVersion = "8.0"

	rootPassword = "myddl"
)

type (
	// DockerOptions represents options for running MySQL in Docker
	DockerOptions struct {
		// Version is the MySQL image tag to run (default: 8.0)
		Version string

		// ConfigDir is an optional directory of .cnf files mounted at
		// /etc/mysql/conf.d. Relative paths are resolved against the working
		// directory.
		ConfigDir string
	}

	// Container manages a throwaway MySQL server used to check schemas
	Container struct {
		options   DockerOptions
		container *mysql.MySQLContainer
	}
)

// New creates a new Docker container with default options
//
// Example:
//
//	container := docker.New()
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
func New() *Container {
	return NewWithOptions(DockerOptions{})
}

// NewWithOptions creates a new Docker container with custom options
func NewWithOptions(opts DockerOptions) *Container {
	return &Container{
		options: opts,
	}
}

// Image returns the image reference the container runs.
func (c *Container) Image() string {
	version := c.options.Version
	if version == "" {
		version = DefaultVersion
	}

	return "mysql:" + version
}

// Start starts the MySQL container and waits until it accepts queries.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	customizers := []testcontainers.ContainerCustomizer{
		mysql.WithUsername("root"),
		mysql.WithPassword(rootPassword),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.ForSQL(nat.Port(DefaultMySQLPort), "mysql", func(host string, port nat.Port) string {
				return fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, host, port.Port())
			}),
		),
	}

	if c.options.ConfigDir != "" {
		absConfigDir, err := filepath.Abs(c.options.ConfigDir)
		if err != nil {
			return errors.Wrapf(err, "failed to get absolute path for ConfigDir: %s", c.options.ConfigDir)
		}

		customizers = append(
			customizers,
			testcontainers.WithHostConfigModifier(func(hostConfig *container.HostConfig) {
				hostConfig.Mounts = []mount.Mount{
					{
						Type:     mount.TypeBind,
						Source:   absConfigDir,
						Target:   "/etc/mysql/conf.d",
						ReadOnly: true,
					},
				}
			}),
		)
	}

	ctr, err := mysql.Run(ctx, c.Image(), customizers...)
	if err != nil {
		if ctr != nil {
			_ = ctr.Terminate(ctx)
		}
		return errors.Wrap(err, "failed to start MySQL container")
	}

	c.container = ctr
	return nil
}

// Stop stops and removes the MySQL container
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	return errors.Wrap(err, "failed to stop MySQL container")
}

// GetDSN returns a go-sql-driver DSN for the running server. The DSN has no
// default database.
func (c *Container) GetDSN(ctx context.Context) (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	host, err := c.container.Host(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to get container host")
	}

	port, err := c.container.MappedPort(ctx, nat.Port(DefaultMySQLPort))
	if err != nil {
		return "", errors.Wrap(err, "failed to get container port")
	}

	return fmt.Sprintf("root:%s@tcp(%s:%s)/", rootPassword, host, port.Port()), nil
}

// IsRunning returns true if the container is currently running
func (c *Container) IsRunning() bool {
	return c.container != nil
}

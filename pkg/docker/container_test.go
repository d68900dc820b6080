package docker_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pseudomuto/myddl/pkg/consts"
	"github.com/pseudomuto/myddl/pkg/docker"
	"github.com/pseudomuto/myddl/pkg/mysql"
	"github.com/stretchr/testify/require"
)

func TestContainer_Image(t *testing.T) {
	require.Equal(t, "mysql:8.0", docker.New().Image())
	require.Equal(t, "mysql:8.4", docker.NewWithOptions(docker.DockerOptions{Version: "8.4"}).Image())
}

func TestContainer_NotRunning(t *testing.T) {
	container := docker.New()
	require.False(t, container.IsRunning())

	_, err := container.GetDSN(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "container is not running")

	// stopping a container that never started is a no-op
	require.NoError(t, container.Stop(context.Background()))
}

func TestContainer_StartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping Docker tests in short mode")
	}

	configDir := filepath.Join(t.TempDir(), "conf.d")
	require.NoError(t, os.MkdirAll(configDir, consts.ModeDir))
	require.NoError(t, os.WriteFile(
		filepath.Join(configDir, "myddl.cnf"),
		[]byte("[mysqld]\nsql_mode=STRICT_ALL_TABLES\n"),
		consts.ModeFile,
	))

	container := docker.NewWithOptions(docker.DockerOptions{ConfigDir: configDir})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	defer func() { _ = container.Stop(ctx) }()

	require.NoError(t, container.Start(ctx))
	require.True(t, container.IsRunning())

	err := container.Start(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already running")

	dsn, err := container.GetDSN(ctx)
	require.NoError(t, err)
	require.Contains(t, dsn, "@tcp(")

	client, err := mysql.NewClient(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	version, err := client.GetVersion(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, version.Major)

	require.NoError(t, container.Stop(ctx))
	require.False(t, container.IsRunning())
}

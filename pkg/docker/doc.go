// Package docker runs throwaway MySQL servers for schema verification.
//
// Containers are started with testcontainers-go and its MySQL module. The
// server is considered ready once it answers a query over the mapped port,
// not when it first logs that it is listening, since the official image
// restarts mysqld once during initialization.
//
// # Usage Example
//
//	container := docker.NewWithOptions(docker.DockerOptions{
//		Version:   "8.4",
//		ConfigDir: "db/mysql.conf.d",
//	})
//
//	ctx := context.Background()
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer container.Stop(ctx)
//
//	dsn, _ := container.GetDSN(ctx)
//	client, _ := mysql.NewClient(ctx, dsn)
//	defer client.Close()
//
// A ConfigDir is bind mounted read-only at /etc/mysql/conf.d so the
// container can run with the same sql_mode and defaults as production.
package docker

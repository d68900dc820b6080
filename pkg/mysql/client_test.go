package mysql_test

import (
	"context"
	"strings"
	"testing"

	"github.com/pseudomuto/myddl/pkg/mysql"
	"github.com/stretchr/testify/require"
)

func TestNewClient_DSNParsing(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		dsn    string
		errMsg string
	}{
		{
			name:   "missing database separator",
			dsn:    "root:secret@tcp(localhost:3306)",
			errMsg: "invalid mysql dsn",
		},
		{
			name:   "invalid bool parameter",
			dsn:    "root:secret@tcp(localhost:3306)/?parseTime=maybe",
			errMsg: "invalid mysql dsn",
		},
		{
			name:   "unreachable server",
			dsn:    "root:secret@tcp(127.0.0.1:1)/?timeout=1s",
			errMsg: "failed to connect to mysql",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := mysql.NewClient(ctx, tt.dsn)
			require.Error(t, err)
			require.Nil(t, client)
			require.Contains(t, strings.ToLower(err.Error()), tt.errMsg,
				"Expected error to contain '%s' but got: %v", tt.errMsg, err)
		})
	}
}

func TestNewClientWithOptions_BadTLSFiles(t *testing.T) {
	client, err := mysql.NewClientWithOptions(
		context.Background(),
		"root:secret@tcp(127.0.0.1:1)/",
		mysql.ClientOptions{
			TLSSettings: mysql.TLSSettings{
				CertFile: "missing.crt",
				KeyFile:  "missing.key",
				CAFile:   "missing-ca.crt",
			},
		},
	)

	require.Error(t, err)
	require.Nil(t, client)
	require.Contains(t, err.Error(), "unable to load certfile/keyfile")
}

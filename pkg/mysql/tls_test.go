package mysql

import (
	"crypto/tls"
	"path/filepath"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
)

func tlsFixture(name string) string {
	return filepath.Join("testdata", "tls", name)
}

func TestTLSSettings_Config(t *testing.T) {
	tests := []struct {
		name     string
		settings TLSSettings
		certs    int
		rootCAs  bool
		errMsg   string
	}{
		{
			name: "client certificate verified against a private CA",
			settings: TLSSettings{
				CertFile: tlsFixture("client.crt"),
				KeyFile:  tlsFixture("client.key"),
				CAFile:   tlsFixture("ca.crt"),
			},
			certs:   1,
			rootCAs: true,
		},
		{
			name:     "server verification only",
			settings: TLSSettings{CAFile: tlsFixture("ca.crt")},
			rootCAs:  true,
		},
		{
			name: "client certificate against system roots",
			settings: TLSSettings{
				CertFile: tlsFixture("client.crt"),
				KeyFile:  tlsFixture("client.key"),
			},
			certs: 1,
		},
		{
			name:     "certificate without key",
			settings: TLSSettings{CertFile: tlsFixture("client.crt")},
			errMsg:   "certificate and key must be given together",
		},
		{
			name:     "key without certificate",
			settings: TLSSettings{KeyFile: tlsFixture("client.key")},
			errMsg:   "certificate and key must be given together",
		},
		{
			name: "missing certificate",
			settings: TLSSettings{
				CertFile: tlsFixture("missing.crt"),
				KeyFile:  tlsFixture("client.key"),
			},
			errMsg: "unable to load certfile/keyfile",
		},
		{
			name:     "missing CA",
			settings: TLSSettings{CAFile: tlsFixture("missing.crt")},
			errMsg:   "unable to load CA file",
		},
		{
			name:     "CA file without certificates",
			settings: TLSSettings{CAFile: tlsFixture("client.key")},
			errMsg:   "no certificates found in " + tlsFixture("client.key"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.settings.Config()
			if tt.errMsg != "" {
				require.ErrorContains(t, err, tt.errMsg)
				require.Nil(t, cfg)
				return
			}

			require.NoError(t, err)
			require.Len(t, cfg.Certificates, tt.certs)
			require.Equal(t, tt.rootCAs, cfg.RootCAs != nil)
			require.Equal(t, uint16(tls.VersionTLS12), cfg.MinVersion)
		})
	}
}

func TestTLSSettings_Enabled(t *testing.T) {
	require.False(t, TLSSettings{}.enabled())
	require.True(t, TLSSettings{CAFile: "ca.crt"}.enabled())
	require.True(t, TLSSettings{KeyFile: "client.key"}.enabled())
}

func TestConfigureTLS(t *testing.T) {
	settings := TLSSettings{
		CertFile: tlsFixture("client.crt"),
		KeyFile:  tlsFixture("client.key"),
		CAFile:   tlsFixture("ca.crt"),
	}

	t.Run("replaces the DSN tls parameter", func(t *testing.T) {
		cfg, err := mysql.ParseDSN("root@tcp(db.internal:3306)/?tls=true")
		require.NoError(t, err)
		require.NotNil(t, cfg.TLS)

		require.NoError(t, configureTLS(cfg, settings))
		require.Nil(t, cfg.TLS)
		require.Equal(t, tlsConfigKey, cfg.TLSConfig)
		require.Contains(t, cfg.FormatDSN(), "tls="+tlsConfigKey)

		// the connector resolves the registered name without dialing
		_, err = mysql.NewConnector(cfg)
		require.NoError(t, err)
	})

	t.Run("leaves the DSN untouched on error", func(t *testing.T) {
		cfg, err := mysql.ParseDSN("root@tcp(db.internal:3306)/")
		require.NoError(t, err)

		err = configureTLS(cfg, TLSSettings{CAFile: tlsFixture("missing.crt")})
		require.ErrorContains(t, err, "unable to load CA file")
		require.Empty(t, cfg.TLSConfig)
	})
}

package mysql

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// tlsConfigKey is the name the client's TLS settings are registered under
// with the driver.
const tlsConfigKey = "myddl"

// TLSSettings points at the PEM files used to secure the connection. A client
// certificate needs its key. CAFile alone verifies the server against that CA
// instead of the system roots.
type TLSSettings struct {
	CertFile string
	KeyFile  string
	CAFile   string
}

func (s TLSSettings) enabled() bool {
	return s.CertFile != "" || s.KeyFile != "" || s.CAFile != ""
}

// Config builds the client TLS configuration.
func (s TLSSettings) Config() (*tls.Config, error) {
	if (s.CertFile == "") != (s.KeyFile == "") {
		return nil, errors.New("a TLS client certificate and key must be given together")
	}

	cfg := &tls.Config{MinVersion: tls.VersionTLS12}
	if s.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load certfile/keyfile")
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if s.CAFile != "" {
		pem, err := os.ReadFile(s.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "unable to load CA file")
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.Errorf("no certificates found in %s", s.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}

// configureTLS registers the settings with the driver and points the DSN at
// them, replacing any tls parameter the DSN carried. The driver fills in the
// server name from the DSN address.
func configureTLS(dsn *mysql.Config, s TLSSettings) error {
	tlsConfig, err := s.Config()
	if err != nil {
		return err
	}

	if err := mysql.RegisterTLSConfig(tlsConfigKey, tlsConfig); err != nil {
		return errors.Wrap(err, "failed to register TLS config")
	}

	dsn.TLS = nil
	dsn.TLSConfig = tlsConfigKey
	return nil
}

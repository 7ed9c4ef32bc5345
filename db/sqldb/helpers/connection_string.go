package helpers

import (
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"errors"
	"os"
	"time"

	"code.cloudfoundry.org/lager/v3"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type DBParam struct {
	DriverName                    string
	DatabaseConnectionString      string
	SQLCACertFile                 string
	SQLEnableIdentityVerification bool
	ConnectionTimeout             time.Duration
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
}

func Connect(logger lager.Logger, dbParam *DBParam) (*sql.DB, error) {
	connString := addTLSParams(logger, dbParam)
	driverName := dbParam.DriverName

	if driverName == Postgres {
		driverName = "pgx"
	}

	return sql.Open(driverName, connString)
}

// addTLSParams appends necessary extra parameters to the connection string
// if tls verification is enabled. If SQLEnableIdentityVerification is true,
// turn on hostname/identity verification, otherwise only ensure that the
// server certificate is signed by one of the CAs in SQLCACertFile.
func addTLSParams(logger lager.Logger, dbParam *DBParam) string {
	dbConnectionString := dbParam.DatabaseConnectionString
	switch dbParam.DriverName {
	case MySQL:
		cfg, err := mysql.ParseDSN(dbConnectionString)
		if err != nil {
			logger.Fatal("invalid-db-connection-string", err, lager.Data{"connection-string": dbConnectionString})
		}

		tlsConfig := generateTLSConfig(logger, dbParam.SQLCACertFile, dbParam.SQLEnableIdentityVerification)
		if tlsConfig != nil {
			err = mysql.RegisterTLSConfig("resource-groups-tls", tlsConfig)
			if err != nil {
				logger.Fatal("cannot-register-tls-config", err)
			}
			cfg.TLSConfig = "resource-groups-tls"
		}

		cfg.Timeout = dbParam.ConnectionTimeout
		cfg.ReadTimeout = dbParam.ReadTimeout
		cfg.WriteTimeout = dbParam.WriteTimeout
		cfg.MultiStatements = false
		dbConnectionString = cfg.FormatDSN()
	case Postgres:
		config, err := pgx.ParseConfig(dbConnectionString)
		if err != nil {
			logger.Fatal("invalid-db-connection-string", err, lager.Data{"connection-string": dbConnectionString})
		}

		tlsConfig := generateTLSConfig(logger, dbParam.SQLCACertFile, dbParam.SQLEnableIdentityVerification)
		if tlsConfig != nil {
			config.TLSConfig = tlsConfig
		}

		dbConnectionString = config.ConnString()
	default:
		logger.Fatal("invalid-driver-name", nil, lager.Data{"driver-name": dbParam.DriverName})
	}

	return dbConnectionString
}

func generateTLSConfig(logger lager.Logger, sqlCACertPath string, sqlEnableIdentityVerification bool) *tls.Config {
	var tlsConfig *tls.Config

	if sqlCACertPath == "" {
		return tlsConfig
	}

	certBytes, err := os.ReadFile(sqlCACertPath)
	if err != nil {
		logger.Fatal("failed-to-read-sql-ca-file", err)
	}

	caCertPool := x509.NewCertPool()
	if ok := caCertPool.AppendCertsFromPEM(certBytes); !ok {
		logger.Fatal("failed-to-parse-sql-ca", errors.New("no CA certificates could be parsed from "+sqlCACertPath))
	}

	if sqlEnableIdentityVerification {
		tlsConfig = &tls.Config{
			InsecureSkipVerify: false,
			RootCAs:            caCertPool,
		}
	} else {
		tlsConfig = &tls.Config{
			InsecureSkipVerify:    true,
			RootCAs:               caCertPool,
			VerifyPeerCertificate: generateCustomTLSVerificationFunction(caCertPool),
		}
	}

	return tlsConfig
}

func generateCustomTLSVerificationFunction(caCertPool *x509.CertPool) func([][]byte, [][]*x509.Certificate) error {
	return func(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error {
		opts := x509.VerifyOptions{
			Roots:         caCertPool,
			CurrentTime:   time.Now(),
			DNSName:       "",
			Intermediates: x509.NewCertPool(),
		}

		certs := make([]*x509.Certificate, len(rawCerts))
		for i, rawCert := range rawCerts {
			cert, err := x509.ParseCertificate(rawCert)
			if err != nil {
				return err
			}
			certs[i] = cert
		}

		for i, cert := range certs {
			if i == 0 {
				continue
			}

			opts.Intermediates.AddCert(cert)
		}

		_, err := certs[0].Verify(opts)
		if err != nil {
			return err
		}

		return nil
	}
}

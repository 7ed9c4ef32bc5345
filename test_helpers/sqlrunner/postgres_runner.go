package sqlrunner

import (
	"database/sql"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresRunner is responsible for creating and tearing down a test
// database in a local Postgres instance. The runner assumes postgres is
// already running locally; it does not start or stop the postgres service.
type PostgresRunner struct {
	logger    lager.Logger
	sqlDBName string
	db        *sql.DB
}

func NewPostgresRunner(sqlDBName string) *PostgresRunner {
	return &PostgresRunner{
		logger:    lagertest.NewTestLogger("postgres-runner"),
		sqlDBName: sqlDBName,
	}
}

func (p *PostgresRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	defer GinkgoRecover()
	logger := p.logger.Session("run")
	logger.Info("starting")
	defer logger.Info("completed")

	var err error
	p.db, err = sql.Open("pgx", p.baseConnectionString())
	Expect(err).NotTo(HaveOccurred())
	Expect(p.db.Ping()).To(Succeed())

	_, err = p.db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", p.sqlDBName))
	Expect(err).NotTo(HaveOccurred())

	_, err = p.db.Exec(fmt.Sprintf("CREATE DATABASE %s", p.sqlDBName))
	Expect(err).NotTo(HaveOccurred())

	Expect(p.db.Close()).To(Succeed())

	p.db, err = sql.Open("pgx", p.ConnectionString())
	Expect(err).NotTo(HaveOccurred())
	Expect(p.db.Ping()).NotTo(HaveOccurred())

	close(ready)

	<-signals

	logger.Info("signaled")

	// The connection to the doomed database has to go away before the drop.
	Expect(p.db.Close()).To(Succeed())
	p.db, err = sql.Open("pgx", p.baseConnectionString())
	Expect(err).NotTo(HaveOccurred())

	_, err = p.db.Exec(fmt.Sprintf("DROP DATABASE %s", p.sqlDBName))
	Expect(err).NotTo(HaveOccurred())

	logger.Info("closing-connection")
	Expect(p.db.Close()).To(Succeed())
	p.db = nil

	return nil
}

func (p *PostgresRunner) baseConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@localhost:%d?sslmode=disable", p.Username(), p.Password(), p.Port())
}

func (p *PostgresRunner) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@localhost:%d/%s?sslmode=disable", p.Username(), p.Password(), p.Port(), p.sqlDBName)
}

func (p *PostgresRunner) DriverName() string {
	return "postgres"
}

func (p *PostgresRunner) DBName() string {
	return p.sqlDBName
}

func (p *PostgresRunner) Username() string {
	user, ok := os.LookupEnv("POSTGRES_USER")
	if !ok {
		user = "presto"
	}
	return user
}

func (p *PostgresRunner) Password() string {
	password, ok := os.LookupEnv("POSTGRES_PASSWORD")
	if !ok {
		password = "presto_password"
	}
	return password
}

func (p *PostgresRunner) Port() int {
	return 5432
}

func (p *PostgresRunner) DB() *sql.DB {
	return p.db
}

func (p *PostgresRunner) Reset() {
	logger := p.logger.Session("reset")
	logger.Info("starting")
	defer logger.Info("completed")

	for _, name := range MigrationTables {
		_, err := p.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", name))
		Expect(err).NotTo(HaveOccurred())
	}
}

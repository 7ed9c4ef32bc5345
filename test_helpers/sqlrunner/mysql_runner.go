package sqlrunner

import (
	"database/sql"
	"fmt"
	"os"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagertest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLRunner is responsible for creating and tearing down a test database
// in a local MySQL instance. The runner assumes mysql is already running
// locally; it does not start or stop the mysql service.
type MySQLRunner struct {
	logger    lager.Logger
	sqlDBName string
	db        *sql.DB
}

func NewMySQLRunner(sqlDBName string) *MySQLRunner {
	return &MySQLRunner{
		logger:    lagertest.NewTestLogger("mysql-runner"),
		sqlDBName: sqlDBName,
	}
}

func (m *MySQLRunner) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	defer GinkgoRecover()
	logger := m.logger.Session("run")
	logger.Info("starting")
	defer logger.Info("completed")

	baseConnString := fmt.Sprintf("%s:%s@tcp(localhost:%d)/", m.Username(), m.Password(), m.Port())

	var err error
	m.db, err = sql.Open("mysql", baseConnString)
	Expect(err).NotTo(HaveOccurred())
	Expect(m.db.Ping()).To(Succeed())

	_, err = m.db.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS %s", m.sqlDBName))
	Expect(err).NotTo(HaveOccurred())

	_, err = m.db.Exec(fmt.Sprintf("CREATE DATABASE %s", m.sqlDBName))
	Expect(err).NotTo(HaveOccurred())

	Expect(m.db.Close()).To(Succeed())

	m.db, err = sql.Open("mysql", m.ConnectionString())
	Expect(err).NotTo(HaveOccurred())
	Expect(m.db.Ping()).NotTo(HaveOccurred())

	close(ready)

	<-signals

	logger.Info("signaled")

	_, err = m.db.Exec(fmt.Sprintf("DROP DATABASE %s", m.sqlDBName))
	Expect(err).NotTo(HaveOccurred())

	logger.Info("closing-connection")
	Expect(m.db.Close()).To(Succeed())
	m.db = nil

	return nil
}

func (m *MySQLRunner) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(localhost:%d)/%s", m.Username(), m.Password(), m.Port(), m.sqlDBName)
}

func (m *MySQLRunner) DriverName() string {
	return "mysql"
}

func (m *MySQLRunner) DBName() string {
	return m.sqlDBName
}

func (m *MySQLRunner) Username() string {
	user, ok := os.LookupEnv("MYSQL_USER")
	if !ok {
		user = "presto"
	}
	return user
}

func (m *MySQLRunner) Password() string {
	password, ok := os.LookupEnv("MYSQL_PASSWORD")
	if !ok {
		password = "presto_password"
	}
	return password
}

func (m *MySQLRunner) Port() int {
	return 3306
}

func (m *MySQLRunner) DB() *sql.DB {
	return m.db
}

func (m *MySQLRunner) Reset() {
	logger := m.logger.Session("reset")
	logger.Info("starting")
	defer logger.Info("completed")

	for _, name := range MigrationTables {
		_, err := m.db.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", name))
		Expect(err).NotTo(HaveOccurred())
	}
}

package test_helpers

import (
	"os"

	"github.com/posulliv/presto/test_helpers/sqlrunner"
)

func UseMySQL() bool {
	return os.Getenv("USE_SQL") == "mysql" || os.Getenv("USE_SQL") == ""
}

func UsePostgres() bool {
	return os.Getenv("USE_SQL") == "postgres"
}

func NewSQLRunner(dbName string) sqlrunner.SQLRunner {
	var sqlRunner sqlrunner.SQLRunner

	if UsePostgres() {
		sqlRunner = sqlrunner.NewPostgresRunner(dbName)
	} else if UseMySQL() {
		sqlRunner = sqlrunner.NewMySQLRunner(dbName)
	} else {
		panic("driver not supported")
	}

	return sqlRunner
}

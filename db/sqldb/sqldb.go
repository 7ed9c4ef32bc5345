package sqldb

import (
	"database/sql"
	"fmt"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
)

const (
	GlobalPropertiesTable          = "resource_groups_global_properties"
	ResourceGroupsTable            = "resource_groups"
	SelectorsTable                 = "selectors"
	ExactMatchSourceSelectorsTable = "exact_match_source_selectors"
	SchemaMigrationsTable          = "resource_groups_schema_migrations"
)

type SQLDB struct {
	db     *sql.DB
	clock  clock.Clock
	flavor string
	helper helpers.SQLHelper
}

func NewSQLDB(db *sql.DB, clock clock.Clock, flavor string) *SQLDB {
	return &SQLDB{
		db:     db,
		clock:  clock,
		flavor: flavor,
		helper: helpers.NewSQLHelper(flavor),
	}
}

func (db *SQLDB) Flavor() string {
	return db.flavor
}

// TableExists reports whether a table of the given name exists in the
// database the connection is bound to.
func (db *SQLDB) TableExists(logger lager.Logger, q helpers.Queryable, tableName string) (bool, error) {
	var query string
	switch db.flavor {
	case helpers.MySQL:
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = DATABASE() AND table_name = ?"
	case helpers.Postgres:
		query = "SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = current_schema() AND table_name = ?"
	default:
		return false, fmt.Errorf("database flavor not implemented: %s", db.flavor)
	}

	var count int
	err := q.QueryRow(db.helper.Rebind(query), tableName).Scan(&count)
	if err != nil {
		logger.Error("failed-checking-table-existence", err, lager.Data{"table": tableName})
		return false, db.helper.ConvertSQLError(err)
	}

	return count > 0, nil
}

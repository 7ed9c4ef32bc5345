package sqlrunner

import (
	"database/sql"

	"github.com/tedsuo/ifrit"
)

// SQLRunner provisions an isolated database for a test suite. Run creates
// the database and holds it open until signaled, then drops it; Reset drops
// the tables owned by the migration lineage so a scenario leaves the
// database indistinguishable from a freshly provisioned one.
type SQLRunner interface {
	ifrit.Runner
	ConnectionString() string
	DriverName() string
	DBName() string
	Username() string
	Password() string
	Port() int
	DB() *sql.DB
	Reset()
}

// MigrationTables are every table the migration lineage may create,
// bookkeeping included, in an order safe to drop under foreign keys.
var MigrationTables = []string{
	"selectors",
	"exact_match_source_selectors",
	"resource_groups",
	"resource_groups_global_properties",
	"resource_groups_schema_migrations",
}

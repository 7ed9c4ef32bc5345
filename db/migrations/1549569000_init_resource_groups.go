package migrations

import (
	"database/sql"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/migration"
)

func init() {
	appendMigration(NewInitResourceGroups())
}

// InitResourceGroups creates the original hand-rolled resource-group schema:
// the global properties table, the resource group hierarchy, and the
// selectors that map queries onto groups. Databases that already carry these
// tables without a version record are baselined at this version by the
// manager, so this migration only ever runs against a database that has none
// of them.
type InitResourceGroups struct {
	clock    clock.Clock
	rawSQLDB *sql.DB
	dbFlavor string
}

func NewInitResourceGroups() migration.Migration {
	return new(InitResourceGroups)
}

func (e *InitResourceGroups) String() string {
	return migrationString(e)
}

func (e *InitResourceGroups) Version() int64 {
	return 1549569000
}

func (e *InitResourceGroups) SetRawSQLDB(db *sql.DB)    { e.rawSQLDB = db }
func (e *InitResourceGroups) SetClock(c clock.Clock)    { e.clock = c }
func (e *InitResourceGroups) SetDBFlavor(flavor string) { e.dbFlavor = flavor }

func (e *InitResourceGroups) Up(tx *sql.Tx, logger lager.Logger) error {
	logger = logger.Session("init-resource-groups")
	logger.Info("starting")
	defer logger.Info("completed")

	var createTablesSQL []string
	if e.dbFlavor == helpers.MySQL {
		createTablesSQL = []string{
			createGlobalPropertiesMySQL,
			createResourceGroupsMySQL,
			createSelectorsMySQL,
		}
	} else {
		createTablesSQL = []string{
			createGlobalPropertiesPostgres,
			createResourceGroupsPostgres,
			createSelectorsPostgres,
		}
	}

	for _, query := range createTablesSQL {
		_, err := tx.Exec(query)
		if err != nil {
			logger.Error("failed-creating-table", err, lager.Data{"query": query})
			return err
		}
	}

	return nil
}

const createGlobalPropertiesMySQL = `CREATE TABLE IF NOT EXISTS resource_groups_global_properties (
	name VARCHAR(128) NOT NULL PRIMARY KEY,
	value VARCHAR(512) NULL,
	CHECK (name in ('cpu_quota_period'))
);`

const createResourceGroupsMySQL = `CREATE TABLE IF NOT EXISTS resource_groups (
	resource_group_id BIGINT NOT NULL AUTO_INCREMENT,
	name VARCHAR(250) NOT NULL,
	soft_memory_limit VARCHAR(128) NOT NULL,
	max_queued INT NOT NULL,
	soft_concurrency_limit INT NULL,
	hard_concurrency_limit INT NOT NULL,
	scheduling_policy VARCHAR(128) NULL,
	scheduling_weight INT NULL,
	jmx_export BOOLEAN NULL,
	soft_cpu_limit VARCHAR(128) NULL,
	hard_cpu_limit VARCHAR(128) NULL,
	parent BIGINT NULL,
	environment VARCHAR(128) NULL,
	PRIMARY KEY (resource_group_id),
	FOREIGN KEY (parent) REFERENCES resource_groups (resource_group_id) ON DELETE CASCADE
);`

const createSelectorsMySQL = `CREATE TABLE IF NOT EXISTS selectors (
	resource_group_id BIGINT NOT NULL,
	priority BIGINT NOT NULL,
	user_regex VARCHAR(512),
	source_regex VARCHAR(512),
	query_type VARCHAR(512),
	client_tags VARCHAR(512),
	selector_resource_estimate VARCHAR(1024),
	FOREIGN KEY (resource_group_id) REFERENCES resource_groups (resource_group_id) ON DELETE CASCADE
);`

const createGlobalPropertiesPostgres = `CREATE TABLE IF NOT EXISTS resource_groups_global_properties (
	name VARCHAR(128) NOT NULL PRIMARY KEY,
	value VARCHAR(512) NULL,
	CHECK (name in ('cpu_quota_period'))
);`

const createResourceGroupsPostgres = `CREATE TABLE IF NOT EXISTS resource_groups (
	resource_group_id BIGSERIAL,
	name VARCHAR(250) NOT NULL,
	soft_memory_limit VARCHAR(128) NOT NULL,
	max_queued INT NOT NULL,
	soft_concurrency_limit INT NULL,
	hard_concurrency_limit INT NOT NULL,
	scheduling_policy VARCHAR(128) NULL,
	scheduling_weight INT NULL,
	jmx_export BOOLEAN NULL,
	soft_cpu_limit VARCHAR(128) NULL,
	hard_cpu_limit VARCHAR(128) NULL,
	parent BIGINT NULL,
	environment VARCHAR(128) NULL,
	PRIMARY KEY (resource_group_id),
	FOREIGN KEY (parent) REFERENCES resource_groups (resource_group_id) ON DELETE CASCADE
);`

const createSelectorsPostgres = `CREATE TABLE IF NOT EXISTS selectors (
	resource_group_id BIGINT NOT NULL,
	priority BIGINT NOT NULL,
	user_regex VARCHAR(512),
	source_regex VARCHAR(512),
	query_type VARCHAR(512),
	client_tags VARCHAR(512),
	selector_resource_estimate VARCHAR(1024),
	FOREIGN KEY (resource_group_id) REFERENCES resource_groups (resource_group_id) ON DELETE CASCADE
);`

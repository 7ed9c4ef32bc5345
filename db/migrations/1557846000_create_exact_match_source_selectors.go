package migrations

import (
	"database/sql"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/migration"
)

func init() {
	appendMigration(NewCreateExactMatchSourceSelectors())
}

// CreateExactMatchSourceSelectors adds the exact-match selector table: a
// pre-resolved (environment, source, query type) to resource-group mapping
// that bypasses regex selectors for known sources.
type CreateExactMatchSourceSelectors struct {
	clock    clock.Clock
	rawSQLDB *sql.DB
	dbFlavor string
}

func NewCreateExactMatchSourceSelectors() migration.Migration {
	return new(CreateExactMatchSourceSelectors)
}

func (e *CreateExactMatchSourceSelectors) String() string {
	return migrationString(e)
}

func (e *CreateExactMatchSourceSelectors) Version() int64 {
	return 1557846000
}

func (e *CreateExactMatchSourceSelectors) SetRawSQLDB(db *sql.DB)    { e.rawSQLDB = db }
func (e *CreateExactMatchSourceSelectors) SetClock(c clock.Clock)    { e.clock = c }
func (e *CreateExactMatchSourceSelectors) SetDBFlavor(flavor string) { e.dbFlavor = flavor }

func (e *CreateExactMatchSourceSelectors) Up(tx *sql.Tx, logger lager.Logger) error {
	logger = logger.Session("create-exact-match-source-selectors")
	logger.Info("starting")
	defer logger.Info("completed")

	var addTableSQL string
	if e.dbFlavor == helpers.MySQL {
		// source gets a prefix index to stay under the InnoDB key length
		// limit with a 512-char column.
		addTableSQL = `CREATE TABLE IF NOT EXISTS exact_match_source_selectors (
	environment VARCHAR(128) NOT NULL,
	source VARCHAR(512) NOT NULL,
	query_type VARCHAR(128) NOT NULL,
	update_time BIGINT NOT NULL,
	resource_group_id VARCHAR(256) NOT NULL,
	PRIMARY KEY (environment, source(128), query_type),
	UNIQUE KEY unique_source_selector (environment, source(128), query_type, resource_group_id)
);`
	} else {
		addTableSQL = `CREATE TABLE IF NOT EXISTS exact_match_source_selectors (
	environment VARCHAR(128) NOT NULL,
	source VARCHAR(512) NOT NULL,
	query_type VARCHAR(128) NOT NULL,
	update_time BIGINT NOT NULL,
	resource_group_id VARCHAR(256) NOT NULL,
	PRIMARY KEY (environment, source, query_type),
	UNIQUE (environment, source, query_type, resource_group_id)
);`
	}

	logger.Info("creating-table")
	_, err := tx.Exec(addTableSQL)
	if err != nil {
		logger.Error("failed-creating-table", err)
		return err
	}

	return nil
}

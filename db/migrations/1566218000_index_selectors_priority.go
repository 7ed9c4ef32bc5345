package migrations

import (
	"database/sql"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/migration"
)

func init() {
	appendMigration(NewIndexSelectorsPriority())
}

// IndexSelectorsPriority adds an index over (resource_group_id, priority) on
// selectors. Selector evaluation scans a group's selectors in priority
// order; without the index that is a full table scan per query.
type IndexSelectorsPriority struct {
	clock    clock.Clock
	rawSQLDB *sql.DB
	dbFlavor string
}

func NewIndexSelectorsPriority() migration.Migration {
	return new(IndexSelectorsPriority)
}

func (e *IndexSelectorsPriority) String() string {
	return migrationString(e)
}

func (e *IndexSelectorsPriority) Version() int64 {
	return 1566218000
}

func (e *IndexSelectorsPriority) SetRawSQLDB(db *sql.DB)    { e.rawSQLDB = db }
func (e *IndexSelectorsPriority) SetClock(c clock.Clock)    { e.clock = c }
func (e *IndexSelectorsPriority) SetDBFlavor(flavor string) { e.dbFlavor = flavor }

const selectorsPriorityIndexName = "selectors_resource_group_id_priority_idx"

func (e *IndexSelectorsPriority) Up(tx *sql.Tx, logger lager.Logger) error {
	logger = logger.Session("index-selectors-priority")
	logger.Info("starting")
	defer logger.Info("completed")

	if e.dbFlavor == helpers.MySQL {
		// mysql has no CREATE INDEX IF NOT EXISTS
		var count int
		err := tx.QueryRow(
			"SELECT COUNT(*) FROM information_schema.statistics WHERE table_schema = DATABASE() AND table_name = 'selectors' AND index_name = ?",
			selectorsPriorityIndexName,
		).Scan(&count)
		if err != nil {
			logger.Error("failed-checking-index", err)
			return err
		}
		if count > 0 {
			return nil
		}

		_, err = tx.Exec("CREATE INDEX " + selectorsPriorityIndexName + " ON selectors (resource_group_id, priority)")
		if err != nil {
			logger.Error("failed-creating-index", err)
			return err
		}
		return nil
	}

	_, err := tx.Exec("CREATE INDEX IF NOT EXISTS " + selectorsPriorityIndexName + " ON selectors (resource_group_id, priority)")
	if err != nil {
		logger.Error("failed-creating-index", err)
		return err
	}

	return nil
}

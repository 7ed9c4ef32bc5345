package sqldb

import (
	"database/sql"
	"encoding/json"

	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/models"
)

const VersionID = "version"

// CreateVersionsTable provisions the migration bookkeeping table. It is
// called before the version record is first read, so it must tolerate the
// table already existing.
func (db *SQLDB) CreateVersionsTable(logger lager.Logger) error {
	logger = logger.Session("db-create-versions-table")
	logger.Debug("starting")
	defer logger.Debug("complete")

	createTableSQL := `CREATE TABLE IF NOT EXISTS ` + SchemaMigrationsTable + ` (
	id VARCHAR(255) PRIMARY KEY,
	value TEXT
);`

	_, err := db.db.Exec(createTableSQL)
	if err != nil {
		logger.Error("failed-creating-versions-table", err)
		return db.helper.ConvertSQLError(err)
	}

	return nil
}

func (db *SQLDB) SetVersion(logger lager.Logger, version *models.Version) error {
	logger = logger.Session("db-set-version", lager.Data{"version": version})
	logger.Debug("starting")
	defer logger.Debug("complete")

	versionJSON, err := json.Marshal(version)
	if err != nil {
		logger.Error("failed-marshalling-version", err)
		return err
	}

	_, err = db.helper.Upsert(logger, db.db, SchemaMigrationsTable,
		helpers.SQLAttributes{"id": VersionID},
		helpers.SQLAttributes{"value": string(versionJSON)},
	)
	if err != nil {
		return db.helper.ConvertSQLError(err)
	}

	return nil
}

func (db *SQLDB) Version(logger lager.Logger) (*models.Version, error) {
	logger = logger.Session("db-version")
	logger.Debug("starting")
	defer logger.Debug("complete")

	row := db.helper.One(logger, db.db, SchemaMigrationsTable,
		helpers.ColumnList{"value"}, helpers.NoLockRow,
		"id = ?", VersionID,
	)

	var versionJSON string
	err := row.Scan(&versionJSON)
	if err == sql.ErrNoRows {
		return nil, models.ErrResourceNotFound
	}
	if err != nil {
		converted := db.helper.ConvertSQLError(err)
		if converted == models.ErrResourceNotFound {
			return nil, models.ErrResourceNotFound
		}
		return nil, converted
	}

	var version models.Version
	err = json.Unmarshal([]byte(versionJSON), &version)
	if err != nil {
		logger.Error("failed-to-deserialize-version", err)
		return nil, models.ErrDeserialize
	}

	return &version, nil
}

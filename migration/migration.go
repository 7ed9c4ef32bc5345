package migration

import (
	"database/sql"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/models"
)

// Migration is one versioned, forward-only schema change. Up runs inside a
// transaction owned by the Manager; a migration never commits or rolls back
// itself.
//
//counterfeiter:generate . Migration
type Migration interface {
	String() string
	Version() int64
	Up(tx *sql.Tx, logger lager.Logger) error
	SetRawSQLDB(rawSQLDB *sql.DB)
	SetClock(c clock.Clock)
	SetDBFlavor(flavor string)
}

// VersionDB is the bookkeeping surface the Manager needs from the database
// layer.
//
//counterfeiter:generate . VersionDB
type VersionDB interface {
	CreateVersionsTable(logger lager.Logger) error
	Version(logger lager.Logger) (*models.Version, error)
	SetVersion(logger lager.Logger, version *models.Version) error
	TableExists(logger lager.Logger, q helpers.Queryable, tableName string) (bool, error)
}

type Migrations []Migration

func (m Migrations) Len() int           { return len(m) }
func (m Migrations) Swap(i, j int)      { m[i], m[j] = m[j], m[i] }
func (m Migrations) Less(i, j int) bool { return m[i].Version() < m[j].Version() }

package migration

import (
	"database/sql"
	"fmt"
	"os"
	"sort"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager/v3"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/models"
)

const (
	resourceGroupsTableName            = "resource_groups"
	exactMatchSourceSelectorsTableName = "exact_match_source_selectors"
)

// Manager applies all pending migrations on Run and then idles until
// signaled. Migrations are forward-only: there is no path back to an older
// schema, and a database ahead of the binary is a fatal condition.
type Manager struct {
	logger         lager.Logger
	versionDB      VersionDB
	rawSQLDB       *sql.DB
	migrations     Migrations
	migrationsDone chan<- struct{}
	clock          clock.Clock
	databaseDriver string
	helper         helpers.SQLHelper
}

func NewManager(
	logger lager.Logger,
	versionDB VersionDB,
	rawSQLDB *sql.DB,
	migrations Migrations,
	migrationsDone chan<- struct{},
	clock clock.Clock,
	databaseDriver string,
) Manager {
	sort.Sort(migrations)

	return Manager{
		logger:         logger,
		versionDB:      versionDB,
		rawSQLDB:       rawSQLDB,
		migrations:     migrations,
		migrationsDone: migrationsDone,
		clock:          clock,
		databaseDriver: databaseDriver,
		helper:         helpers.NewSQLHelper(databaseDriver),
	}
}

func (m Manager) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := m.logger.Session("migration-manager")
	logger.Info("starting")
	defer logger.Info("exited")

	err := m.versionDB.CreateVersionsTable(logger)
	if err != nil {
		logger.Error("failed-creating-versions-table", err)
		return err
	}

	version, err := m.resolveVersion(logger)
	if err != nil {
		return err
	}

	var maxMigrationVersion int64
	if len(m.migrations) > 0 {
		maxMigrationVersion = m.migrations[len(m.migrations)-1].Version()
	}

	if version.TargetVersion < version.CurrentVersion {
		return fmt.Errorf(
			"existing DB target version (%d) exceeds current version (%d)",
			version.TargetVersion,
			version.CurrentVersion,
		)
	}

	if version.CurrentVersion > maxMigrationVersion {
		return fmt.Errorf(
			"existing DB version (%d) exceeds latest known migration version (%d)",
			version.CurrentVersion,
			maxMigrationVersion,
		)
	}

	if version.TargetVersion != maxMigrationVersion {
		if version.TargetVersion > maxMigrationVersion {
			version.TargetVersion = maxMigrationVersion
		}

		err = m.writeVersion(logger, version.CurrentVersion, maxMigrationVersion)
		if err != nil {
			return err
		}
	}

	migrateStart := m.clock.Now()
	if version.CurrentVersion != maxMigrationVersion {
		lastVersion := version.CurrentVersion

		for _, currentMigration := range m.migrations {
			if lastVersion >= currentMigration.Version() {
				continue
			}

			logger.Info("running-migration", lager.Data{
				"current_version":   lastVersion,
				"migration_version": currentMigration.Version(),
				"migration":         currentMigration.String(),
			})

			currentMigration.SetRawSQLDB(m.rawSQLDB)
			currentMigration.SetClock(m.clock)
			currentMigration.SetDBFlavor(m.databaseDriver)

			err = m.helper.Transact(logger, m.rawSQLDB, func(logger lager.Logger, tx *sql.Tx) error {
				return currentMigration.Up(tx, logger)
			})
			if err != nil {
				logger.Error("failed-migration", err, lager.Data{
					"migration_version": currentMigration.Version(),
				})
				return err
			}

			lastVersion = currentMigration.Version()

			err = m.writeVersion(logger, lastVersion, maxMigrationVersion)
			if err != nil {
				return err
			}

			logger.Info("completed-migration", lager.Data{
				"migration_version": currentMigration.Version(),
			})
		}
	}

	logger.Info("migrations-finished", lager.Data{
		"duration": m.clock.Since(migrateStart).String(),
	})

	close(ready)
	close(m.migrationsDone)

	<-signals
	return nil
}

// resolveVersion loads the stored version record. When no record exists the
// database is either brand new or carries a hand-rolled legacy schema that
// predates versioned migrations; the legacy case is adopted at the initial
// migration's version so later migrations upgrade it in place.
func (m Manager) resolveVersion(logger lager.Logger) (*models.Version, error) {
	version, err := m.versionDB.Version(logger)
	if err == nil {
		return version, nil
	}

	if err != models.ErrResourceNotFound {
		logger.Error("failed-fetching-version", err)
		return nil, err
	}

	legacyPresent, err := m.versionDB.TableExists(logger, m.rawSQLDB, resourceGroupsTableName)
	if err != nil {
		return nil, err
	}

	if !legacyPresent {
		version = &models.Version{}
		err = m.versionDB.SetVersion(logger, version)
		if err != nil {
			return nil, err
		}
		return version, nil
	}

	migratedPresent, err := m.versionDB.TableExists(logger, m.rawSQLDB, exactMatchSourceSelectorsTableName)
	if err != nil {
		return nil, err
	}

	if migratedPresent {
		return nil, fmt.Errorf(
			"database contains migrated tables but no version record; cannot reconcile schema state",
		)
	}

	if len(m.migrations) == 0 {
		return nil, fmt.Errorf("legacy schema detected but no migrations are registered")
	}

	baselineVersion := m.migrations[0].Version()
	logger.Info("adopting-legacy-schema", lager.Data{"baseline_version": baselineVersion})

	version = &models.Version{
		CurrentVersion: baselineVersion,
		TargetVersion:  baselineVersion,
	}
	err = m.versionDB.SetVersion(logger, version)
	if err != nil {
		return nil, err
	}

	return version, nil
}

func (m Manager) writeVersion(logger lager.Logger, currentVersion, targetVersion int64) error {
	return m.versionDB.SetVersion(logger, &models.Version{
		CurrentVersion: currentVersion,
		TargetVersion:  targetVersion,
	})
}

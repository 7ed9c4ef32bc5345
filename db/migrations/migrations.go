package migrations

import (
	"fmt"
	"sort"

	"github.com/posulliv/presto/migration"
)

var allMigrations = migration.Migrations{}

func appendMigration(m migration.Migration) {
	for _, existing := range allMigrations {
		if existing.Version() == m.Version() {
			panic(fmt.Sprintf("cannot have two migrations with the same version. %T & %T", existing, m))
		}
	}

	allMigrations = append(allMigrations, m)
}

// AllMigrations returns the registered migrations in ascending version
// order.
func AllMigrations() migration.Migrations {
	migrations := make(migration.Migrations, len(allMigrations))
	copy(migrations, allMigrations)
	sort.Sort(migrations)
	return migrations
}

func migrationString(m migration.Migration) string {
	return fmt.Sprintf("%T{version: %d}", m, m.Version())
}

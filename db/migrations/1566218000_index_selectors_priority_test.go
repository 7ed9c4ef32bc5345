package migrations_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/posulliv/presto/db/migrations"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/migration"
)

var _ = Describe("IndexSelectorsPriority", func() {
	var indexMigration migration.Migration

	BeforeEach(func() {
		initMigration := migrations.NewInitResourceGroups()
		initMigration.SetDBFlavor(flavor)
		initMigration.SetClock(fakeClock)
		testUpInTransaction(rawSQLDB, initMigration, logger)

		indexMigration = migrations.NewIndexSelectorsPriority()
	})

	It("appends itself to the migration list", func() {
		Expect(migrations.AllMigrations()).To(ContainElement(indexMigration))
	})

	Describe("Version", func() {
		It("returns the timestamp from which it was created", func() {
			Expect(indexMigration.Version()).To(BeEquivalentTo(1566218000))
		})
	})

	Describe("Up", func() {
		BeforeEach(func() {
			indexMigration.SetDBFlavor(flavor)
			indexMigration.SetClock(fakeClock)
		})

		It("adds the index", func() {
			testUpInTransaction(rawSQLDB, indexMigration, logger)

			var count int
			var query string
			if flavor == helpers.MySQL {
				query = "SELECT COUNT(DISTINCT index_name) FROM information_schema.statistics WHERE table_schema = DATABASE() AND table_name = 'selectors' AND index_name = 'selectors_resource_group_id_priority_idx'"
			} else {
				query = "SELECT COUNT(*) FROM pg_indexes WHERE tablename = 'selectors' AND indexname = 'selectors_resource_group_id_priority_idx'"
			}
			Expect(rawSQLDB.QueryRow(query).Scan(&count)).To(Succeed())
			Expect(count).To(Equal(1))
		})

		It("leaves existing selector rows in place", func() {
			insertGroup := helpers.RebindForFlavor(
				"INSERT INTO resource_groups (name, soft_memory_limit, max_queued, hard_concurrency_limit) VALUES (?, ?, ?, ?)", flavor)
			_, err := rawSQLDB.Exec(insertGroup, "global", "100%", 100, 10)
			Expect(err).NotTo(HaveOccurred())

			var groupID int64
			row := rawSQLDB.QueryRow(helpers.RebindForFlavor(
				"SELECT resource_group_id FROM resource_groups WHERE name = ?", flavor), "global")
			Expect(row.Scan(&groupID)).To(Succeed())

			_, err = rawSQLDB.Exec(helpers.RebindForFlavor(
				"INSERT INTO selectors (resource_group_id, priority, user_regex) VALUES (?, ?, ?)", flavor),
				groupID, 1, ".*")
			Expect(err).NotTo(HaveOccurred())

			testUpInTransaction(rawSQLDB, indexMigration, logger)

			var count int
			Expect(rawSQLDB.QueryRow("SELECT COUNT(*) FROM selectors").Scan(&count)).To(Succeed())
			Expect(count).To(Equal(1))
		})

		It("is idempotent", func() {
			testIdempotency(rawSQLDB, indexMigration, logger)
		})
	})
})

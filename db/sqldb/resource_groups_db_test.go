package sqldb_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/posulliv/presto/db/migrations"
	"github.com/posulliv/presto/db/sqldb/helpers"
)

var _ = Describe("ResourceGroups", func() {
	BeforeEach(func() {
		for _, m := range migrations.AllMigrations() {
			m.SetRawSQLDB(rawSQLDB)
			m.SetClock(fakeClock)
			m.SetDBFlavor(sqlRunner.DriverName())

			tx, err := rawSQLDB.Begin()
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Up(tx, logger)).To(Succeed())
			Expect(tx.Commit()).To(Succeed())
		}
	})

	Describe("typed counts", func() {
		It("returns zero for every freshly migrated table", func() {
			count, err := db.GlobalPropertyCount(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			count, err = db.ResourceGroupCount(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			count, err = db.SelectorCount(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())

			count, err = db.ExactMatchSourceSelectorCount(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
		})

		It("reflects inserted rows", func() {
			insertSQL := helpers.RebindForFlavor(
				"INSERT INTO resource_groups_global_properties (name, value) VALUES (?, ?)",
				sqlRunner.DriverName())
			_, err := rawSQLDB.Exec(insertSQL, "cpu_quota_period", "1h")
			Expect(err).NotTo(HaveOccurred())

			count, err := db.GlobalPropertyCount(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(BeEquivalentTo(1))
		})
	})

	Describe("GlobalProperties", func() {
		It("returns the stored properties with their values", func() {
			insertSQL := helpers.RebindForFlavor(
				"INSERT INTO resource_groups_global_properties (name, value) VALUES (?, ?)",
				sqlRunner.DriverName())
			_, err := rawSQLDB.Exec(insertSQL, "cpu_quota_period", "1h")
			Expect(err).NotTo(HaveOccurred())

			properties, err := db.GlobalProperties(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(properties).To(HaveLen(1))
			Expect(properties[0].Name).To(Equal("cpu_quota_period"))
			Expect(properties[0].Value.Valid).To(BeTrue())
			Expect(properties[0].Value.String).To(Equal("1h"))
		})
	})

	Describe("ResourceGroups", func() {
		It("returns no rows for a freshly migrated table", func() {
			groups, err := db.ResourceGroups(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(BeEmpty())
		})

		It("returns the stored groups with nullable columns intact", func() {
			insertSQL := helpers.RebindForFlavor(
				"INSERT INTO resource_groups (name, soft_memory_limit, max_queued, hard_concurrency_limit, scheduling_policy) VALUES (?, ?, ?, ?, ?)",
				sqlRunner.DriverName())
			_, err := rawSQLDB.Exec(insertSQL, "global", "100%", 100, 10, "weighted_fair")
			Expect(err).NotTo(HaveOccurred())

			groups, err := db.ResourceGroups(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(groups).To(HaveLen(1))
			Expect(groups[0].Name).To(Equal("global"))
			Expect(groups[0].SoftMemoryLimit).To(Equal("100%"))
			Expect(groups[0].MaxQueued).To(BeEquivalentTo(100))
			Expect(groups[0].HardConcurrencyLimit).To(BeEquivalentTo(10))
			Expect(groups[0].SchedulingPolicy.String).To(Equal("weighted_fair"))
			Expect(groups[0].SchedulingWeight.Valid).To(BeFalse())
			Expect(groups[0].Parent.Valid).To(BeFalse())
		})
	})

	Describe("Selectors", func() {
		It("returns the stored selectors for their group", func() {
			insertGroup := helpers.RebindForFlavor(
				"INSERT INTO resource_groups (name, soft_memory_limit, max_queued, hard_concurrency_limit) VALUES (?, ?, ?, ?)",
				sqlRunner.DriverName())
			_, err := rawSQLDB.Exec(insertGroup, "adhoc", "50%", 10, 5)
			Expect(err).NotTo(HaveOccurred())

			var groupID int64
			row := rawSQLDB.QueryRow(helpers.RebindForFlavor(
				"SELECT resource_group_id FROM resource_groups WHERE name = ?",
				sqlRunner.DriverName()), "adhoc")
			Expect(row.Scan(&groupID)).To(Succeed())

			insertSelector := helpers.RebindForFlavor(
				"INSERT INTO selectors (resource_group_id, priority, user_regex) VALUES (?, ?, ?)",
				sqlRunner.DriverName())
			_, err = rawSQLDB.Exec(insertSelector, groupID, 1, ".*")
			Expect(err).NotTo(HaveOccurred())

			selectors, err := db.Selectors(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(selectors).To(HaveLen(1))
			Expect(selectors[0].ResourceGroupID).To(Equal(groupID))
			Expect(selectors[0].Priority).To(BeEquivalentTo(1))
			Expect(selectors[0].UserRegex.String).To(Equal(".*"))
			Expect(selectors[0].SourceRegex.Valid).To(BeFalse())
		})
	})

	Describe("ExactMatchSourceSelectors", func() {
		It("returns the stored mappings", func() {
			insertSQL := helpers.RebindForFlavor(
				"INSERT INTO exact_match_source_selectors (environment, source, query_type, update_time, resource_group_id) VALUES (?, ?, ?, ?, ?)",
				sqlRunner.DriverName())
			_, err := rawSQLDB.Exec(insertSQL, "production", "datagrip", "SELECT", 1566218000, "global.adhoc")
			Expect(err).NotTo(HaveOccurred())

			selectors, err := db.ExactMatchSourceSelectors(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(selectors).To(HaveLen(1))
			Expect(selectors[0].Environment).To(Equal("production"))
			Expect(selectors[0].Source).To(Equal("datagrip"))
			Expect(selectors[0].QueryType).To(Equal("SELECT"))
			Expect(selectors[0].UpdateTime).To(BeEquivalentTo(1566218000))
			Expect(selectors[0].ResourceGroupID).To(Equal("global.adhoc"))
		})
	})

	Describe("TableExists", func() {
		It("finds tables created by the migration lineage", func() {
			exists, err := db.TableExists(logger, rawSQLDB, "resource_groups")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})

		It("does not find tables that were never created", func() {
			exists, err := db.TableExists(logger, rawSQLDB, "no_such_table")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})
})

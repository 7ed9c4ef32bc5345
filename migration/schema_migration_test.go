package migration_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/tedsuo/ifrit"

	"github.com/posulliv/presto/db/migrations"
	"github.com/posulliv/presto/db/sqldb"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/migration"
	"github.com/posulliv/presto/test_helpers"
)

var _ = Describe("Schema migration", func() {
	var db *sqldb.SQLDB

	BeforeEach(func() {
		db = sqldb.NewSQLDB(rawSQLDB, fakeClock, flavor)
	})

	invokeMigrations := func() error {
		migrationsDone := make(chan struct{})
		manager := migration.NewManager(
			logger,
			db,
			rawSQLDB,
			migrations.AllMigrations(),
			migrationsDone,
			fakeClock,
			flavor,
		)

		process := ifrit.Background(manager)
		defer func() {
			process.Signal(os.Interrupt)
			<-process.Wait()
		}()

		select {
		case <-migrationsDone:
			return nil
		case err := <-process.Wait():
			return err
		}
	}

	expectCounts := func(globalProperties int64) {
		count, err := db.GlobalPropertyCount(logger)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, count).To(Equal(globalProperties))

		count, err = db.ResourceGroupCount(logger)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, count).To(BeZero())

		count, err = db.SelectorCount(logger)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, count).To(BeZero())

		count, err = db.ExactMatchSourceSelectorCount(logger)
		ExpectWithOffset(1, err).NotTo(HaveOccurred())
		ExpectWithOffset(1, count).To(BeZero())
	}

	createLegacySchema := func() {
		statements, err := test_helpers.LegacySchemaStatements("legacy_v1", flavor)
		Expect(err).NotTo(HaveOccurred())
		for _, statement := range statements {
			_, err = rawSQLDB.Exec(statement)
			Expect(err).NotTo(HaveOccurred())
		}
	}

	Context("with an empty database", func() {
		It("produces the target schema with no rows", func() {
			Expect(invokeMigrations()).To(Succeed())
			expectCounts(0)
		})

		It("is a no-op when run a second time", func() {
			Expect(invokeMigrations()).To(Succeed())
			Expect(invokeMigrations()).To(Succeed())
			expectCounts(0)
		})
	})

	Context("with unrelated pre-existing tables", func() {
		BeforeEach(func() {
			_, err := rawSQLDB.Exec("CREATE TABLE t1 (id INT)")
			Expect(err).NotTo(HaveOccurred())
			_, err = rawSQLDB.Exec("CREATE TABLE t2 (id INT)")
			Expect(err).NotTo(HaveOccurred())
		})

		AfterEach(func() {
			_, err := rawSQLDB.Exec("DROP TABLE t1")
			Expect(err).NotTo(HaveOccurred())
			_, err = rawSQLDB.Exec("DROP TABLE t2")
			Expect(err).NotTo(HaveOccurred())
		})

		It("leaves them alone and still produces the target schema", func() {
			Expect(invokeMigrations()).To(Succeed())
			expectCounts(0)

			exists, err := db.TableExists(logger, rawSQLDB, "t1")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = db.TableExists(logger, rawSQLDB, "t2")
			Expect(err).NotTo(HaveOccurred())
			Expect(exists).To(BeTrue())
		})
	})

	Context("with a legacy hand-rolled schema", func() {
		BeforeEach(func() {
			createLegacySchema()

			insertSQL := helpers.RebindForFlavor(
				"INSERT INTO resource_groups_global_properties (name, value) VALUES (?, ?)", flavor)
			_, err := rawSQLDB.Exec(insertSQL, "cpu_quota_period", "1h")
			Expect(err).NotTo(HaveOccurred())
		})

		It("upgrades in place and preserves the existing row", func() {
			Expect(invokeMigrations()).To(Succeed())
			expectCounts(1)

			properties, err := db.GlobalProperties(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(properties).To(HaveLen(1))
			Expect(properties[0].Name).To(Equal("cpu_quota_period"))
			Expect(properties[0].Value.String).To(Equal("1h"))
		})

		It("is idempotent after the upgrade", func() {
			Expect(invokeMigrations()).To(Succeed())
			Expect(invokeMigrations()).To(Succeed())
			expectCounts(1)
		})
	})

	Context("with a partially migrated schema and no version record", func() {
		BeforeEach(func() {
			createLegacySchema()

			_, err := rawSQLDB.Exec("CREATE TABLE exact_match_source_selectors (id INT)")
			Expect(err).NotTo(HaveOccurred())
		})

		It("refuses to migrate", func() {
			err := invokeMigrations()
			Expect(err).To(MatchError(ContainSubstring("cannot reconcile schema state")))
		})
	})

	Context("after cleanup", func() {
		It("leaves the database indistinguishable from a fresh one", func() {
			Expect(invokeMigrations()).To(Succeed())
			sqlRunner.Reset()

			for _, table := range []string{
				"resource_groups_global_properties",
				"resource_groups",
				"selectors",
				"exact_match_source_selectors",
				sqldb.SchemaMigrationsTable,
			} {
				exists, err := db.TableExists(logger, rawSQLDB, table)
				Expect(err).NotTo(HaveOccurred())
				Expect(exists).To(BeFalse())
			}

			Expect(invokeMigrations()).To(Succeed())
			expectCounts(0)
		})
	})
})

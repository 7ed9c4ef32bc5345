package sqldb_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/posulliv/presto/db/sqldb"
	"github.com/posulliv/presto/db/sqldb/helpers"
	"github.com/posulliv/presto/models"
)

var _ = Describe("Version", func() {
	BeforeEach(func() {
		Expect(db.CreateVersionsTable(logger)).To(Succeed())
	})

	Describe("CreateVersionsTable", func() {
		It("tolerates the table already existing", func() {
			Expect(db.CreateVersionsTable(logger)).To(Succeed())
		})
	})

	Describe("SetVersion", func() {
		It("stores a version record that can be read back", func() {
			expected := &models.Version{CurrentVersion: 1549569000, TargetVersion: 1566218000}
			Expect(db.SetVersion(logger, expected)).To(Succeed())

			version, err := db.Version(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(version).To(Equal(expected))
		})

		It("overwrites an existing version record", func() {
			Expect(db.SetVersion(logger, &models.Version{CurrentVersion: 1, TargetVersion: 2})).To(Succeed())
			Expect(db.SetVersion(logger, &models.Version{CurrentVersion: 2, TargetVersion: 2})).To(Succeed())

			version, err := db.Version(logger)
			Expect(err).NotTo(HaveOccurred())
			Expect(version.CurrentVersion).To(BeEquivalentTo(2))
			Expect(version.TargetVersion).To(BeEquivalentTo(2))
		})
	})

	Describe("Version", func() {
		Context("when no version record has been written", func() {
			It("returns ErrResourceNotFound", func() {
				version, err := db.Version(logger)
				Expect(err).To(MatchError(models.ErrResourceNotFound))
				Expect(version).To(BeNil())
			})
		})

		Context("when the stored record is not valid JSON", func() {
			BeforeEach(func() {
				insertSQL := helpers.RebindForFlavor(
					"INSERT INTO "+sqldb.SchemaMigrationsTable+" (id, value) VALUES (?, ?)",
					sqlRunner.DriverName())
				_, err := rawSQLDB.Exec(insertSQL, sqldb.VersionID, "{{")
				Expect(err).NotTo(HaveOccurred())
			})

			It("returns a deserialization error", func() {
				_, err := db.Version(logger)
				Expect(err).To(MatchError(models.ErrDeserialize))
			})
		})
	})
})

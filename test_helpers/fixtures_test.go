package test_helpers_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/posulliv/presto/test_helpers"
)

var _ = Describe("LegacySchemaStatements", func() {
	It("splits the mysql fixture into one statement per table", func() {
		statements, err := test_helpers.LegacySchemaStatements("legacy_v1", "mysql")
		Expect(err).NotTo(HaveOccurred())
		Expect(statements).To(HaveLen(3))
		Expect(statements[0]).To(ContainSubstring("resource_groups_global_properties"))
		Expect(statements[1]).To(ContainSubstring("CREATE TABLE resource_groups"))
		Expect(statements[2]).To(ContainSubstring("CREATE TABLE selectors"))
	})

	It("splits the postgres fixture into one statement per table", func() {
		statements, err := test_helpers.LegacySchemaStatements("legacy_v1", "postgres")
		Expect(err).NotTo(HaveOccurred())
		Expect(statements).To(HaveLen(3))
	})

	It("errors for an unknown fixture", func() {
		_, err := test_helpers.LegacySchemaStatements("legacy_v9", "mysql")
		Expect(err).To(HaveOccurred())
	})
})

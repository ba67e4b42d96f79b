package sgml_test

import (
	"reflect"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxevent/sgml"
)

var _ = Describe("sgml", func() {
	Describe("GetAggregates()", func() {
		It("should return the singleton instance.", func() {
			i1 := sgml.GetAggregates()
			i2 := sgml.GetAggregates()
			Expect(i1).NotTo(BeNil())
			Expect(reflect.ValueOf(i1).Pointer()).To(Equal(reflect.ValueOf(i2).Pointer()))
		})
	})
	Describe("IsAggregate()", func() {
		DescribeTable("should return true if the element is aggregate", func(name string, expected bool) {
			Expect(sgml.IsAggregate(name)).To(Equal(expected))
		},
			Entry("OFX", "OFX", true),
			Entry("OFC", "OFC", true),
			Entry("lower case ofx", "ofx", true),
			Entry("SONRS", "SONRS", true),
			Entry("STATUS", "STATUS", true),
			Entry("STMTRS", "STMTRS", true),
			Entry("BANKACCTFROM", "BANKACCTFROM", true),
			Entry("STMTTRN", "STMTTRN", true),
			Entry("LEDGERBAL", "LEDGERBAL", true),
			Entry("BUYSTOCK", "BUYSTOCK", true),
			Entry("SECINFO", "SECINFO", true),
			Entry("GENTRN", "GENTRN", true),

			Entry("CODE", "CODE", false),
			Entry("SEVERITY", "SEVERITY", false),
			Entry("DEFAULT", "DEFAULT", false),
		)
	})
	Describe("IsDataElement()", func() {
		DescribeTable("should return true if the element is a data element", func(name string, expected bool) {
			Expect(sgml.IsDataElement(name)).To(Equal(expected))
		},
			Entry("CODE", "CODE", true),
			Entry("TRNAMT", "TRNAMT", true),
			Entry("lower case memo", "memo", true),
			Entry("OFX", "OFX", false),
			Entry("unknown", "FOO", false),
		)
	})
})

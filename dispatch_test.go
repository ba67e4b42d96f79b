package ofxevent_test

import (
	"sort"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/rockstardevs/ofxevent"
)

var _ = Describe("KnownTags()", func() {
	It("should return the sorted tags", func() {
		tags := ofxevent.KnownTags()
		Expect(sort.StringsAreSorted(tags)).To(BeTrue())
		Expect(tags).To(ContainElement("OFX"))
		Expect(tags).To(ContainElement("OFC"))
		Expect(tags).To(ContainElement("STMTTRN"))
		Expect(tags).To(ContainElement("BUYSTOCK"))
		Expect(tags).NotTo(ContainElement("SONRS"))
	})
})

package expense_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/fintrack/internal/expense"
)

var _ = Describe("Categories", func() {
	It("accepts every member of the fixed set", func() {
		for _, c := range expense.Categories {
			Expect(expense.IsValidCategory(c.ID)).To(BeTrue(), c.ID)
		}
	})

	It("rejects ids outside the set, including the all sentinel", func() {
		Expect(expense.IsValidCategory("groceries")).To(BeFalse())
		Expect(expense.IsValidCategory("")).To(BeFalse())
		Expect(expense.IsValidCategory(expense.CategoryAll)).To(BeFalse())
	})

	It("resolves known ids to their label and icon", func() {
		c := expense.LookupCategory("food")
		Expect(c.Label).To(Equal("Food & Dining"))
		Expect(c.Icon).To(Equal("cutlery"))
	})

	It("degrades unknown ids to the raw id and default icon", func() {
		c := expense.LookupCategory("crypto")
		Expect(c.ID).To(Equal("crypto"))
		Expect(c.Label).To(Equal("crypto"))
		Expect(c.Icon).To(Equal(expense.DefaultIcon))
	})
})

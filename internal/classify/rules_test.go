package classify_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/model"
)

var _ = Describe("RuleClassifier", func() {
	var (
		classifier *classify.RuleClassifier
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		classifier = classify.NewRuleClassifier()
	})

	Describe("Classify", func() {
		DescribeTable("keyword routing",
			func(message string, category model.LeadCategory, urgency int32) {
				result, err := classifier.Classify(ctx, message, "+15551234567")

				Expect(err).NotTo(HaveOccurred())
				Expect(result.Category).To(Equal(category))
				Expect(result.Urgency).To(Equal(urgency))
				Expect(result.SuggestedResponse).NotTo(BeEmpty())
			},
			Entry("rental inquiry via rent", "Is the rent negotiable?", model.CategoryRentalInquiry, int32(4)),
			Entry("rental inquiry via apartment", "Do you have an apartment open?", model.CategoryRentalInquiry, int32(4)),
			Entry("rental inquiry via bedroom", "Looking for a two bedroom", model.CategoryRentalInquiry, int32(4)),
			Entry("maintenance via broken", "The dishwasher is broken", model.CategoryMaintenance, int32(4)),
			Entry("maintenance via leak", "There is a leak under the sink", model.CategoryMaintenance, int32(4)),
			Entry("viewing request via tour", "Can I get a tour tomorrow?", model.CategoryViewingRequest, int32(3)),
			Entry("visitor entry via here for", "John here for Sarah", model.CategoryVisitorEntry, int32(5)),
			Entry("visitor entry via delivery", "Amazon delivery at the gate", model.CategoryVisitorEntry, int32(5)),
			Entry("visitor entry via bare unit number", "Buzz me in, 204", model.CategoryVisitorEntry, int32(5)),
			Entry("payment via deposit", "When is my deposit returned?", model.CategoryPayment, int32(3)),
			Entry("general fallthrough", "Hello there", model.CategoryGeneral, int32(3)),
		)

		It("matches keywords case-insensitively", func() {
			result, err := classifier.Classify(ctx, "IS THE APARTMENT AVAILABLE?", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Category).To(Equal(model.CategoryRentalInquiry))
		})

		It("prefers rental inquiry when maintenance keywords also match", func() {
			result, err := classifier.Classify(ctx, "The apartment heater is broken, is it still available?", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Category).To(Equal(model.CategoryRentalInquiry))
		})

		It("prefers viewing request over visitor entry on keyword overlap", func() {
			result, err := classifier.Classify(ctx, "I'd like to visit the property", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Category).To(Equal(model.CategoryViewingRequest))
		})

		It("defaults urgency 3 with a generic response for unmatched text", func() {
			result, err := classifier.Classify(ctx, "ok thanks", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Category).To(Equal(model.CategoryGeneral))
			Expect(result.Urgency).To(Equal(int32(3)))
			Expect(result.SuggestedResponse).To(ContainSubstring("Thank you for your message"))
		})
	})

	Describe("extraction", func() {
		It("takes a leading alphabetic token as the name", func() {
			result, err := classifier.Classify(ctx, "Maria here for unit 204", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.ExtractedInfo.Name).To(Equal("Maria"))
		})

		It("skips short or non-alphabetic leading tokens", func() {
			result, err := classifier.Classify(ctx, "Hi, is the unit available?", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.ExtractedInfo.Name).To(BeEmpty())
		})

		It("pulls an email address out of the message", func() {
			result, err := classifier.Classify(ctx, "Contact me at jane.doe@example.com about the lease", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.ExtractedInfo.Email).To(Equal("jane.doe@example.com"))
		})

		It("pulls a dollar budget out of the message", func() {
			result, err := classifier.Classify(ctx, "Looking to rent around $1,500 a month", "+15551234567")

			Expect(err).NotTo(HaveOccurred())
			Expect(result.ExtractedInfo.Budget).To(Equal("$1,500"))
		})
	})
})

package service_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/service"
)

func int32Ptr(v int32) *int32 {
	return &v
}

var _ = Describe("DashboardService", func() {
	var (
		svc        service.DashboardService
		leads      *mockLeadStore
		properties *mockPropertyStore
		ctx        context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		leads = &mockLeadStore{}
		properties = &mockPropertyStore{
			listByUserFn: func(ctx context.Context, userID int64) ([]model.Property, error) {
				return []model.Property{{ID: 1}, {ID: 2}}, nil
			},
		}
		svc = service.NewDashboardService(leads, properties)
	})

	It("aggregates counts, response times, and conversion rate", func() {
		now := time.Now()
		yesterday := now.Add(-36 * time.Hour)
		leads.listByUserFn = func(ctx context.Context, userID int64) ([]model.Lead, error) {
			return []model.Lead{
				{ID: 4, Status: model.LeadStatusNew, CreatedAt: now, ResponseTime: int32Ptr(2)},
				{ID: 3, Status: model.LeadStatusConverted, CreatedAt: now, ResponseTime: int32Ptr(5)},
				{ID: 2, Status: model.LeadStatusContacted, CreatedAt: yesterday},
				{ID: 1, Status: model.LeadStatusClosed, CreatedAt: yesterday, ResponseTime: int32Ptr(10)},
			}, nil
		}

		stats, err := svc.Stats(ctx, 7)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.NewLeadsToday).To(Equal(2))
		Expect(stats.TotalLeads).To(Equal(4))
		Expect(stats.TotalProperties).To(Equal(2))
		// (2 + 5 + 10) / 3, rounded to one decimal.
		Expect(stats.AverageResponseTime).To(Equal(5.7))
		// 1 converted of 4, rounded percent.
		Expect(stats.ConversionRate).To(Equal(25))
		Expect(stats.RecentLeads).To(HaveLen(4))
	})

	It("caps the recent list at ten leads", func() {
		leads.listByUserFn = func(ctx context.Context, userID int64) ([]model.Lead, error) {
			all := make([]model.Lead, 15)
			for i := range all {
				all[i] = model.Lead{ID: int64(i + 1)}
			}
			return all, nil
		}

		stats, err := svc.Stats(ctx, 7)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.RecentLeads).To(HaveLen(10))
		Expect(stats.TotalLeads).To(Equal(15))
	})

	It("returns zeros for a user with no leads", func() {
		stats, err := svc.Stats(ctx, 7)

		Expect(err).NotTo(HaveOccurred())
		Expect(stats.NewLeadsToday).To(Equal(0))
		Expect(stats.AverageResponseTime).To(Equal(0.0))
		Expect(stats.ConversionRate).To(Equal(0))
		Expect(stats.TotalLeads).To(Equal(0))
	})
})

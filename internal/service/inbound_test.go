package service_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/common/id"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/service"
	"leaseline.app/server/internal/store"
)

// mockLeadIngest implements service.LeadIngestService for testing.
type mockLeadIngest struct {
	ingestFn  func(ctx context.Context, params service.LeadIngestParams) (*service.LeadIngestResult, error)
	callCount int
}

func (m *mockLeadIngest) Ingest(ctx context.Context, params service.LeadIngestParams) (*service.LeadIngestResult, error) {
	m.callCount++
	if m.ingestFn != nil {
		return m.ingestFn(ctx, params)
	}
	return nil, errors.New("mock not configured")
}

// mockVisitorApprovals implements service.VisitorApprovalService for testing.
type mockVisitorApprovals struct {
	handleTenantReplyFn func(ctx context.Context, tenant *model.Tenant, message string) (*service.TenantReplyResult, error)
	callCount           int
}

func (m *mockVisitorApprovals) CreateRequest(ctx context.Context, params service.VisitorRequestParams) (*service.VisitorRequestResult, error) {
	return nil, errors.New("mock not configured")
}

func (m *mockVisitorApprovals) HandleTenantReply(ctx context.Context, tenant *model.Tenant, message string) (*service.TenantReplyResult, error) {
	m.callCount++
	if m.handleTenantReplyFn != nil {
		return m.handleTenantReplyFn(ctx, tenant, message)
	}
	return nil, errors.New("mock not configured")
}

var _ = Describe("InboundMessageService", func() {
	var (
		svc        service.InboundMessageService
		tenants    *mockTenantStore
		properties *mockPropertyStore
		leadIngest *mockLeadIngest
		visitors   *mockVisitorApprovals
		ctx        context.Context
	)

	BeforeEach(func() {
		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		tenants = &mockTenantStore{}
		properties = &mockPropertyStore{
			getBySMSNumberFn: func(ctx context.Context, smsNumber string) (*model.Property, error) {
				return &model.Property{ID: 42, Name: "Maple Court"}, nil
			},
		}
		leadIngest = &mockLeadIngest{
			ingestFn: func(ctx context.Context, params service.LeadIngestParams) (*service.LeadIngestResult, error) {
				return &service.LeadIngestResult{
					Lead: &model.Lead{ID: 1, PropertyID: params.PropertyID, Phone: params.Phone},
				}, nil
			},
		}
		visitors = &mockVisitorApprovals{
			handleTenantReplyFn: func(ctx context.Context, tenant *model.Tenant, message string) (*service.TenantReplyResult, error) {
				return &service.TenantReplyResult{Outcome: service.ReplyApproved}, nil
			},
		}

		svc = service.NewInboundMessageService(tenants, properties, leadIngest, visitors, nil)
	})

	Describe("Handle", func() {
		It("routes a known tenant to the reply flow, never to ingestion", func() {
			tenants.getActiveByPhoneFn = func(ctx context.Context, phone string) (*model.Tenant, error) {
				return &model.Tenant{ID: 100, PropertyID: 42, Phone: phone, IsActive: true}, nil
			}

			result, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15559990000",
				To:   "+15550007777",
				Body: "YES",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Kind).To(Equal(service.InboundTenantReply))
			Expect(result.ReplyOutcome).To(Equal(service.ReplyApproved))
			Expect(visitors.callCount).To(Equal(1))
			Expect(leadIngest.callCount).To(Equal(0))
		})

		It("routes an unknown sender on a known number to lead ingestion", func() {
			result, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15550001111",
				To:   "+15550007777",
				Body: "Is the apartment available?",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Kind).To(Equal(service.InboundLead))
			Expect(result.Lead).NotTo(BeNil())
			Expect(leadIngest.callCount).To(Equal(1))
			Expect(visitors.callCount).To(Equal(0))
		})

		It("drops messages addressed to a number no property claims", func() {
			properties.getBySMSNumberFn = func(ctx context.Context, smsNumber string) (*model.Property, error) {
				return nil, store.ErrNotFound
			}

			result, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15550001111",
				To:   "+15550009999",
				Body: "hello",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Kind).To(Equal(service.InboundUnrouted))
			Expect(leadIngest.callCount).To(Equal(0))
		})

		It("drops messages with no sender or body", func() {
			result, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15550001111",
				To:   "+15550007777",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Kind).To(Equal(service.InboundUnrouted))
		})

		It("swallows ingestion validation errors as unrouted", func() {
			leadIngest.ingestFn = func(ctx context.Context, params service.LeadIngestParams) (*service.LeadIngestResult, error) {
				return nil, service.ErrPropertyNotFound
			}

			result, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15550001111",
				To:   "+15550007777",
				Body: "hello",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(result.Kind).To(Equal(service.InboundUnrouted))
		})

		It("propagates unexpected ingestion errors", func() {
			leadIngest.ingestFn = func(ctx context.Context, params service.LeadIngestParams) (*service.LeadIngestResult, error) {
				return nil, errors.New("database down")
			}

			_, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15550001111",
				To:   "+15550007777",
				Body: "hello",
			})

			Expect(err).To(HaveOccurred())
		})

		It("propagates tenant lookup failures", func() {
			tenants.getActiveByPhoneFn = func(ctx context.Context, phone string) (*model.Tenant, error) {
				return nil, errors.New("database down")
			}

			_, err := svc.Handle(ctx, service.InboundSMSParams{
				From: "+15550001111",
				To:   "+15550007777",
				Body: "hello",
			})

			Expect(err).To(HaveOccurred())
		})
	})
})

package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/common/id"
	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/service"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

var _ = Describe("LeadIngestService", func() {
	var (
		svc        service.LeadIngestService
		properties *mockPropertyStore
		leads      *mockLeadStore
		comms      *mockCommunicationStore
		txRunner   *mockTxRunner
		classifier *mockClassifier
		gateway    *mockGateway
		producer   *mockProducer
		ctx        context.Context
	)

	BeforeEach(func() {
		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		properties = &mockPropertyStore{
			getByIDFn: func(ctx context.Context, id int64) (*model.Property, error) {
				return &model.Property{ID: id, Name: "Maple Court", UserID: 7}, nil
			},
		}
		leads = &mockLeadStore{
			createFn: func(ctx context.Context, lead *model.Lead) error {
				// The real store backfills DB-generated columns on create.
				lead.CreatedAt = time.Now()
				return nil
			},
			markContactedFn: func(ctx context.Context, id int64, responseTimeMinutes int32) (*model.Lead, error) {
				rt := responseTimeMinutes
				return &model.Lead{
					ID:           id,
					Status:       model.LeadStatusContacted,
					ResponseTime: &rt,
				}, nil
			},
		}
		comms = &mockCommunicationStore{}
		txRunner = &mockTxRunner{provider: &mockStoreProvider{leads: leads, comms: comms}}
		classifier = &mockClassifier{
			classifyFn: func(ctx context.Context, message, phone string) (classify.Categorization, error) {
				return classify.Categorization{
					Category:          model.CategoryRentalInquiry,
					Urgency:           4,
					SuggestedResponse: "Thanks for your interest!",
				}, nil
			},
		}
		gateway = &mockGateway{}
		producer = &mockProducer{}

		svc = service.NewLeadIngestService(
			properties, leads, comms,
			txRunner, classifier, gateway, producer,
			24*time.Hour, nil,
		)
	})

	Describe("Ingest", func() {
		Context("happy path", func() {
			It("persists the lead, sends the auto-response, and schedules a follow-up", func() {
				result, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
					Message:    "Is the apartment available?",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.NotificationSent).To(BeTrue())
				Expect(result.NotificationError).To(BeEmpty())
				Expect(result.Lead.Status).To(Equal(model.LeadStatusContacted))
				Expect(result.Lead.ResponseTime).NotTo(BeNil())
				Expect(classifier.callCount).To(Equal(1))

				Expect(gateway.sent).To(HaveLen(1))
				Expect(gateway.sent[0].to).To(Equal("+15550001111"))
				Expect(gateway.sent[0].body).To(Equal("Thanks for your interest!"))

				Expect(leads.created).To(HaveLen(1))
				Expect(leads.created[0].Category).To(Equal(model.CategoryRentalInquiry))
				Expect(leads.created[0].Status).To(Equal(model.LeadStatusNew))
				Expect(leads.created[0].Metadata).NotTo(BeEmpty())

				// One inbound and one outbound communication.
				Expect(comms.created).To(HaveLen(2))
				Expect(comms.created[0].Direction).To(Equal(model.DirectionInbound))
				Expect(comms.created[1].Direction).To(Equal(model.DirectionOutbound))
				Expect(comms.created[1].Status).To(Equal(model.CommunicationStatusSent))
				Expect(comms.created[1].ProviderSID).To(Equal(stringPtr("SM_test")))

				Expect(producer.enqueued).To(HaveLen(1))
				Expect(producer.enqueued[0].LeadID).To(Equal(result.Lead.ID))
				Expect(producer.enqueued[0].NotBefore).To(BeTemporally(">", time.Now().Add(23*time.Hour)))
			})

			It("measures response time from the wall clock, not the stored creation timestamp", func() {
				leads.createFn = func(ctx context.Context, lead *model.Lead) error {
					// Simulate the database clock running behind the app clock.
					lead.CreatedAt = time.Now().Add(-90 * time.Minute)
					return nil
				}
				gotMinutes := int32(-1)
				leads.markContactedFn = func(ctx context.Context, id int64, responseTimeMinutes int32) (*model.Lead, error) {
					gotMinutes = responseTimeMinutes
					rt := responseTimeMinutes
					return &model.Lead{
						ID:           id,
						Status:       model.LeadStatusContacted,
						ResponseTime: &rt,
					}, nil
				}

				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
					Message:    "Is the apartment available?",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(gotMinutes).To(Equal(int32(0)))
			})

			It("uses extracted contact details when the caller supplies none", func() {
				classifier.classifyFn = func(ctx context.Context, message, phone string) (classify.Categorization, error) {
					return classify.Categorization{
						Category:          model.CategoryRentalInquiry,
						Urgency:           4,
						SuggestedResponse: "Thanks!",
						ExtractedInfo: classify.ExtractedInfo{
							Name:  "Jordan",
							Email: "jordan@example.com",
						},
					}, nil
				}

				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
					Message:    "Jordan here, jordan@example.com",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(leads.created[0].Name).To(Equal(stringPtr("Jordan")))
				Expect(leads.created[0].Email).To(Equal(stringPtr("jordan@example.com")))
			})

			It("prefers caller-supplied details over extraction", func() {
				classifier.classifyFn = func(ctx context.Context, message, phone string) (classify.Categorization, error) {
					return classify.Categorization{
						Category:          model.CategoryGeneral,
						Urgency:           3,
						SuggestedResponse: "Thanks!",
						ExtractedInfo:     classify.ExtractedInfo{Name: "Wrong"},
					}, nil
				}

				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Name:       stringPtr("Alex"),
					Phone:      "+15550001111",
					Message:    "hello",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(leads.created[0].Name).To(Equal(stringPtr("Alex")))
			})
		})

		Context("send failure", func() {
			It("keeps the lead in status new and reports the error", func() {
				gateway.sendFn = func(ctx context.Context, to, body string) (*sms.Result, error) {
					return nil, errors.New("provider unavailable")
				}

				result, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
					Message:    "Is the apartment available?",
				})

				Expect(err).NotTo(HaveOccurred())
				Expect(result.NotificationSent).To(BeFalse())
				Expect(result.NotificationError).To(ContainSubstring("provider unavailable"))
				Expect(result.Lead.Status).To(Equal(model.LeadStatusNew))
				Expect(result.Lead.ResponseTime).To(BeNil())

				Expect(comms.created).To(HaveLen(2))
				Expect(comms.created[1].Status).To(Equal(model.CommunicationStatusFailed))
				Expect(producer.enqueued).To(BeEmpty())
			})
		})

		Context("validation", func() {
			It("rejects a missing property id", func() {
				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					Phone:   "+15550001111",
					Message: "hello",
				})

				Expect(err).To(MatchError(service.ErrValidation))
			})

			It("rejects a missing phone", func() {
				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Message:    "hello",
				})

				Expect(err).To(MatchError(service.ErrValidation))
			})

			It("rejects an empty message", func() {
				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
				})

				Expect(err).To(MatchError(service.ErrValidation))
			})
		})

		Context("unknown property", func() {
			It("returns ErrPropertyNotFound", func() {
				properties.getByIDFn = func(ctx context.Context, id int64) (*model.Property, error) {
					return nil, store.ErrNotFound
				}

				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
					Message:    "hello",
				})

				Expect(err).To(MatchError(service.ErrPropertyNotFound))
				Expect(classifier.callCount).To(Equal(0))
			})
		})

		Context("transaction failure", func() {
			It("propagates the error without sending anything", func() {
				leads.createFn = func(ctx context.Context, lead *model.Lead) error {
					return errors.New("unique violation")
				}

				_, err := svc.Ingest(ctx, service.LeadIngestParams{
					PropertyID: 42,
					Phone:      "+15550001111",
					Message:    "hello",
				})

				Expect(err).To(HaveOccurred())
				Expect(gateway.sent).To(BeEmpty())
			})
		})
	})
})

package worker

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"leaseline.app/server/common/id"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

var _ = Describe("Worker", func() {
	var (
		w        *Worker
		consumer *mockConsumer
		leads    *mockLeadStore
		comms    *mockCommunicationStore
		gateway  *mockGateway
		lead     *model.Lead
		ctx      context.Context
	)

	dueMessage := func() queue.Message {
		return queue.Message{
			ID:          "1700000000-0",
			LeadID:      42,
			Category:    string(model.CategoryRentalInquiry),
			ContactedAt: time.Now().Add(-24 * time.Hour),
			NotBefore:   time.Now().Add(-time.Minute),
			Attempt:     1,
		}
	}

	BeforeEach(func() {
		err := id.Init(1)
		Expect(err).NotTo(HaveOccurred())

		ctx = context.Background()
		lead = &model.Lead{
			ID:         42,
			PropertyID: 7,
			Phone:      "+15550001111",
			Message:    "Is the apartment available?",
			Category:   model.CategoryRentalInquiry,
			Status:     model.LeadStatusContacted,
		}
		consumer = &mockConsumer{}
		leads = &mockLeadStore{
			getByIDFn: func(ctx context.Context, id int64) (*model.Lead, error) {
				if id == lead.ID {
					return lead, nil
				}
				return nil, store.ErrNotFound
			},
		}
		comms = &mockCommunicationStore{}
		gateway = &mockGateway{}

		w = New(consumer, leads, comms, nil, gateway, Config{MaxAttempts: 3})
	})

	Describe("ProcessMessage", func() {
		It("sends the nudge, records it, and acks", func() {
			err := w.ProcessMessage(ctx, dueMessage())

			Expect(err).NotTo(HaveOccurred())
			Expect(gateway.sent).To(HaveLen(1))
			Expect(gateway.sent[0].to).To(Equal("+15550001111"))

			Expect(comms.created).To(HaveLen(1))
			Expect(comms.created[0].Direction).To(Equal(model.DirectionOutbound))
			Expect(comms.created[0].Status).To(Equal(model.CommunicationStatusSent))
			Expect(comms.created[0].ProviderSID).NotTo(BeNil())

			Expect(consumer.acked).To(HaveLen(1))
			Expect(consumer.deferred).To(BeEmpty())
		})

		It("parks a message that arrives before its due time", func() {
			msg := dueMessage()
			msg.NotBefore = time.Now().Add(30 * time.Minute)

			err := w.ProcessMessage(ctx, msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(consumer.deferred).To(HaveLen(1))
			Expect(consumer.deferred[0].Attempt).To(Equal(1))

			// Nothing else happens until the message is due again.
			Expect(consumer.acked).To(BeEmpty())
			Expect(consumer.requeued).To(BeEmpty())
			Expect(gateway.sent).To(BeEmpty())
			Expect(comms.created).To(BeEmpty())
		})

		It("drops the message when the lead is gone", func() {
			msg := dueMessage()
			msg.LeadID = 999

			err := w.ProcessMessage(ctx, msg)

			Expect(err).NotTo(HaveOccurred())
			Expect(consumer.acked).To(HaveLen(1))
			Expect(gateway.sent).To(BeEmpty())
			Expect(comms.created).To(BeEmpty())
		})

		It("skips the nudge when the lead has progressed", func() {
			lead.Status = model.LeadStatusInProgress

			err := w.ProcessMessage(ctx, dueMessage())

			Expect(err).NotTo(HaveOccurred())
			Expect(consumer.acked).To(HaveLen(1))
			Expect(gateway.sent).To(BeEmpty())
		})
	})

	Describe("processOneBatch", func() {
		It("requeues a message when the send fails with attempts left", func() {
			gateway.sendFn = func(ctx context.Context, to, body string) (*sms.Result, error) {
				return nil, errors.New("provider unavailable")
			}
			consumer.readFn = func(ctx context.Context) ([]queue.Message, error) {
				return []queue.Message{dueMessage()}, nil
			}

			err := w.processOneBatch(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(consumer.requeued).To(HaveLen(1))
			Expect(consumer.requeued[0].errMsg).To(ContainSubstring("provider unavailable"))
			Expect(consumer.dlq).To(BeEmpty())
		})

		It("dead-letters a message that exhausted its attempts", func() {
			gateway.sendFn = func(ctx context.Context, to, body string) (*sms.Result, error) {
				return nil, errors.New("provider unavailable")
			}
			consumer.readFn = func(ctx context.Context) ([]queue.Message, error) {
				msg := dueMessage()
				msg.Attempt = 3
				return []queue.Message{msg}, nil
			}

			err := w.processOneBatch(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(consumer.dlq).To(HaveLen(1))
			Expect(consumer.dlq[0].errMsg).To(ContainSubstring("provider unavailable"))
			Expect(consumer.requeued).To(BeEmpty())
		})

		It("propagates read errors", func() {
			consumer.readFn = func(ctx context.Context) ([]queue.Message, error) {
				return nil, errors.New("connection reset")
			}

			err := w.processOneBatch(ctx)

			Expect(err).To(MatchError(ContainSubstring("connection reset")))
		})
	})
})

// Package worker drains the follow-up stream: for every contacted lead
// that never replied, it writes and sends one nudge message.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"leaseline.app/server/common/id"
	"leaseline.app/server/common/logger"
	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

type Config struct {
	MaxAttempts int
}

type Worker struct {
	consumer Consumer
	leads    store.LeadStore
	comms    store.CommunicationStore
	writer   classify.FollowUpWriter // nil = templates only
	gateway  sms.Gateway
	cfg      Config

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func New(consumer Consumer, leads store.LeadStore, comms store.CommunicationStore, writer classify.FollowUpWriter, gateway sms.Gateway, cfg Config) *Worker {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 3
	}
	return &Worker{
		consumer:  consumer,
		leads:     leads,
		comms:     comms,
		writer:    writer,
		gateway:   gateway,
		cfg:       cfg,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

func (w *Worker) Run(ctx context.Context) error {
	defer close(w.stoppedCh)

	slog.InfoContext(ctx, "follow-up worker started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			slog.InfoContext(ctx, "follow-up worker stopping")
			return nil
		default:
			if err := w.processOneBatch(ctx); err != nil {
				slog.ErrorContext(ctx, "batch processing error", "error", err)
				// Brief backoff on error
				time.Sleep(time.Second)
			}
		}
	}
}

func (w *Worker) Stop() {
	close(w.stopCh)
	<-w.stoppedCh
}

func (w *Worker) processOneBatch(ctx context.Context) error {
	messages, err := w.consumer.Read(ctx)
	if err != nil {
		return fmt.Errorf("reading from stream: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessageSafe(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "follow-up failed",
				"error", err,
				"message_id", msg.ID,
				"lead_id", msg.LeadID)
			w.handleFailedMessage(ctx, msg, err)
		}
	}

	return nil
}

func (w *Worker) processMessageSafe(ctx context.Context, msg queue.Message) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.ErrorContext(ctx, "panic recovered in follow-up processing",
				"panic", r,
				"message_id", msg.ID,
				"lead_id", msg.LeadID)
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return w.ProcessMessage(ctx, msg)
}

func (w *Worker) ProcessMessage(ctx context.Context, msg queue.Message) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "leaseline.worker",
		LeadID:    logger.Ptr(msg.LeadID),
	})

	if !msg.Due(time.Now()) {
		slog.DebugContext(ctx, "follow-up not due yet, deferring",
			"not_before", msg.NotBefore)
		return w.consumer.Defer(ctx, msg)
	}

	lead, err := w.leads.GetByID(ctx, msg.LeadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lead was deleted, nothing to follow up on.
			slog.InfoContext(ctx, "lead gone, dropping follow-up")
			return w.consumer.Ack(ctx, msg)
		}
		return fmt.Errorf("fetching lead: %w", err)
	}

	// Only contacted leads get a nudge. Anything further along means the
	// landlord is already engaged; anything earlier means the auto-response
	// never went out and a nudge would be confusing.
	if lead.Status != model.LeadStatusContacted {
		slog.InfoContext(ctx, "lead progressed, skipping follow-up",
			"status", lead.Status)
		return w.consumer.Ack(ctx, msg)
	}

	days := int(time.Since(msg.ContactedAt).Hours() / 24)
	body := w.composeFollowUp(ctx, lead, days)

	sendResult, sendErr := w.gateway.Send(ctx, lead.Phone, body)
	if sendErr != nil {
		return fmt.Errorf("sending follow-up: %w", sendErr)
	}

	w.recordFollowUp(ctx, lead, body, &sendResult.SID)

	slog.InfoContext(ctx, "follow-up sent",
		"category", lead.Category,
		"days_since_contact", days)

	return w.consumer.Ack(ctx, msg)
}

func (w *Worker) composeFollowUp(ctx context.Context, lead *model.Lead, days int) string {
	if w.writer != nil {
		body, err := w.writer.Generate(ctx, lead.Category, lead.Message, days)
		if err == nil {
			return body
		}
		slog.WarnContext(ctx, "llm follow-up failed, using template", "error", err)
	}
	return classify.FollowUp(lead.Category, days)
}

func (w *Worker) recordFollowUp(ctx context.Context, lead *model.Lead, body string, sid *string) {
	comm := &model.Communication{
		ID:          id.New(),
		LeadID:      &lead.ID,
		PropertyID:  lead.PropertyID,
		Type:        model.CommunicationTypeSMS,
		Direction:   model.DirectionOutbound,
		Message:     body,
		PhoneNumber: &lead.Phone,
		Status:      model.CommunicationStatusSent,
		ProviderSID: sid,
	}
	if err := w.comms.Create(ctx, comm); err != nil {
		slog.ErrorContext(ctx, "failed to record follow-up communication", "error", err)
	}
}

func (w *Worker) handleFailedMessage(ctx context.Context, msg queue.Message, procErr error) {
	if msg.Attempt >= w.cfg.MaxAttempts {
		if err := w.consumer.SendDLQ(ctx, msg, procErr.Error()); err != nil {
			slog.ErrorContext(ctx, "failed to DLQ message",
				"error", err,
				"message_id", msg.ID)
		}
		return
	}

	if err := w.consumer.Requeue(ctx, msg, procErr.Error()); err != nil {
		slog.ErrorContext(ctx, "failed to requeue message",
			"error", err,
			"message_id", msg.ID)
	}
}

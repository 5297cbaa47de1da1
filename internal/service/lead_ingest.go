package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"leaseline.app/server/common/id"
	"leaseline.app/server/common/logger"
	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

type LeadIngestParams struct {
	PropertyID int64
	Name       *string
	Phone      string
	Email      *string
	Message    string
	Source     model.LeadSource
}

type LeadIngestResult struct {
	Lead           *model.Lead
	Categorization classify.Categorization
	// NotificationSent reports whether the auto-response went out. When it
	// did not, the lead still exists with status new and no response time,
	// and NotificationError says why.
	NotificationSent  bool
	NotificationError string
}

type LeadIngestService interface {
	Ingest(ctx context.Context, params LeadIngestParams) (*LeadIngestResult, error)
}

var (
	ErrValidation       = errors.New("validation failed")
	ErrPropertyNotFound = errors.New("property not found")
)

type leadIngestService struct {
	properties    store.PropertyStore
	leads         store.LeadStore
	comms         store.CommunicationStore
	txRunner      TxRunner
	classifier    classify.Classifier
	gateway       sms.Gateway
	queue         queue.Producer
	followUpDelay time.Duration
	logger        *slog.Logger
}

func NewLeadIngestService(
	properties store.PropertyStore,
	leads store.LeadStore,
	comms store.CommunicationStore,
	txRunner TxRunner,
	classifier classify.Classifier,
	gateway sms.Gateway,
	producer queue.Producer,
	followUpDelay time.Duration,
	logger *slog.Logger,
) LeadIngestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &leadIngestService{
		properties:    properties,
		leads:         leads,
		comms:         comms,
		txRunner:      txRunner,
		classifier:    classifier,
		gateway:       gateway,
		queue:         producer,
		followUpDelay: followUpDelay,
		logger:        logger,
	}
}

// Ingest classifies an inbound inquiry, persists the lead, and sends the
// suggested auto-response. The lead is committed before the send is
// attempted: a dead SMS provider must never lose a lead, so a failed send
// leaves the lead in status new for manual follow-up.
func (s *leadIngestService) Ingest(ctx context.Context, params LeadIngestParams) (*LeadIngestResult, error) {
	if params.PropertyID == 0 {
		return nil, fmt.Errorf("%w: property_id is required", ErrValidation)
	}
	if params.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if params.Message == "" {
		return nil, fmt.Errorf("%w: message is required", ErrValidation)
	}
	if params.Source == "" {
		params.Source = model.LeadSourceSMS
	}

	property, err := s.properties.GetByID(ctx, params.PropertyID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("fetching property: %w", err)
	}

	cat, err := s.classifier.Classify(ctx, params.Message, params.Phone)
	if err != nil {
		// Only reachable with a classifier not wrapped in a fallback.
		return nil, fmt.Errorf("classifying message: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		PropertyID: logger.Ptr(property.ID),
		Phone:      logger.Ptr(params.Phone),
		Category:   logger.Ptr(string(cat.Category)),
	})

	metadata, err := json.Marshal(map[string]any{
		"classification": map[string]any{
			"category":           cat.Category,
			"urgency":            cat.Urgency,
			"suggested_response": cat.SuggestedResponse,
		},
		"extracted_info": cat.ExtractedInfo,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling metadata: %w", err)
	}

	name := params.Name
	if name == nil && cat.ExtractedInfo.Name != "" {
		name = &cat.ExtractedInfo.Name
	}
	email := params.Email
	if email == nil && cat.ExtractedInfo.Email != "" {
		email = &cat.ExtractedInfo.Email
	}

	lead := &model.Lead{
		ID:         id.New(),
		PropertyID: property.ID,
		Name:       name,
		Phone:      params.Phone,
		Email:      email,
		Message:    params.Message,
		Category:   cat.Category,
		Urgency:    cat.Urgency,
		Status:     model.LeadStatusNew,
		Source:     params.Source,
		Metadata:   metadata,
	}

	if err := s.txRunner.WithTx(ctx, func(sp StoreProvider) error {
		if err := sp.Leads().Create(ctx, lead); err != nil {
			return fmt.Errorf("creating lead: %w", err)
		}

		inbound := &model.Communication{
			ID:          id.New(),
			LeadID:      &lead.ID,
			PropertyID:  property.ID,
			Type:        model.CommunicationTypeSMS,
			Direction:   model.DirectionInbound,
			Message:     params.Message,
			PhoneNumber: &params.Phone,
			Status:      model.CommunicationStatusDelivered,
		}
		if err := sp.Communications().Create(ctx, inbound); err != nil {
			return fmt.Errorf("recording inbound communication: %w", err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{LeadID: logger.Ptr(lead.ID)})
	s.logger.InfoContext(ctx, "lead created",
		"category", cat.Category,
		"urgency", cat.Urgency)

	result := &LeadIngestResult{
		Lead:           lead,
		Categorization: cat,
	}

	// Wall clock, not lead.CreatedAt: the latter is the database's now()
	// and clock skew between app and DB would distort the elapsed minutes.
	start := time.Now()

	sendResult, sendErr := s.gateway.Send(ctx, params.Phone, cat.SuggestedResponse)
	if sendErr != nil {
		result.NotificationError = sendErr.Error()
		s.logger.WarnContext(ctx, "auto-response failed, lead stays new",
			"error", sendErr)
		s.recordOutbound(ctx, lead, cat.SuggestedResponse, model.CommunicationStatusFailed, nil)
		return result, nil
	}

	result.NotificationSent = true
	s.recordOutbound(ctx, lead, cat.SuggestedResponse, model.CommunicationStatusSent, &sendResult.SID)

	elapsed := int32(math.Round(time.Since(start).Minutes()))
	contacted, err := s.leads.MarkContacted(ctx, lead.ID, elapsed)
	if err != nil {
		return nil, fmt.Errorf("marking lead contacted: %w", err)
	}
	result.Lead = contacted

	s.enqueueFollowUp(ctx, contacted)

	return result, nil
}

func (s *leadIngestService) recordOutbound(ctx context.Context, lead *model.Lead, body string, status model.CommunicationStatus, sid *string) {
	comm := &model.Communication{
		ID:          id.New(),
		LeadID:      &lead.ID,
		PropertyID:  lead.PropertyID,
		Type:        model.CommunicationTypeSMS,
		Direction:   model.DirectionOutbound,
		Message:     body,
		PhoneNumber: &lead.Phone,
		Status:      status,
		ProviderSID: sid,
	}
	if err := s.comms.Create(ctx, comm); err != nil {
		// Audit trail only, the send already happened (or failed) either way.
		s.logger.ErrorContext(ctx, "failed to record outbound communication", "error", err)
	}
}

func (s *leadIngestService) enqueueFollowUp(ctx context.Context, lead *model.Lead) {
	if s.queue == nil {
		return
	}

	now := time.Now()
	task := queue.FollowUpTask{
		LeadID:      lead.ID,
		Category:    string(lead.Category),
		ContactedAt: now,
		NotBefore:   now.Add(s.followUpDelay),
		Attempt:     1,
	}
	if err := s.queue.Enqueue(ctx, task); err != nil {
		// Follow-ups are best effort, losing one never fails ingestion.
		s.logger.ErrorContext(ctx, "failed to enqueue follow-up", "error", err)
	}
}

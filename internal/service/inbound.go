package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"leaseline.app/server/common/logger"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/store"
)

type InboundSMSParams struct {
	From       string
	To         string
	Body       string
	MessageSID string
}

// InboundKind says which flow an inbound message was routed to.
type InboundKind string

const (
	InboundTenantReply InboundKind = "tenant_reply"
	InboundLead        InboundKind = "lead"
	// InboundUnrouted covers messages we accept but cannot act on: unknown
	// sender on a number no property claims, or an empty body.
	InboundUnrouted InboundKind = "unrouted"
)

type InboundResult struct {
	Kind         InboundKind
	ReplyOutcome ReplyOutcome
	Lead         *model.Lead
}

// InboundMessageService routes a raw webhook message. Sender-is-a-tenant
// wins over everything: a tenant texting YES must never become a lead.
type InboundMessageService interface {
	Handle(ctx context.Context, params InboundSMSParams) (*InboundResult, error)
}

type inboundMessageService struct {
	tenants    store.TenantStore
	properties store.PropertyStore
	leadIngest LeadIngestService
	visitors   VisitorApprovalService
	logger     *slog.Logger
}

func NewInboundMessageService(
	tenants store.TenantStore,
	properties store.PropertyStore,
	leadIngest LeadIngestService,
	visitors VisitorApprovalService,
	logger *slog.Logger,
) InboundMessageService {
	if logger == nil {
		logger = slog.Default()
	}
	return &inboundMessageService{
		tenants:    tenants,
		properties: properties,
		leadIngest: leadIngest,
		visitors:   visitors,
		logger:     logger,
	}
}

func (s *inboundMessageService) Handle(ctx context.Context, params InboundSMSParams) (*InboundResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "leaseline.service.inbound",
		Phone:     logger.Ptr(params.From),
	})

	if params.From == "" || params.Body == "" {
		s.logger.WarnContext(ctx, "inbound message missing sender or body, dropping")
		return &InboundResult{Kind: InboundUnrouted}, nil
	}

	tenant, err := s.tenants.GetActiveByPhone(ctx, params.From)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("resolving sender: %w", err)
	}

	if tenant != nil {
		reply, err := s.visitors.HandleTenantReply(ctx, tenant, params.Body)
		if err != nil {
			return nil, err
		}
		return &InboundResult{Kind: InboundTenantReply, ReplyOutcome: reply.Outcome}, nil
	}

	property, err := s.properties.GetBySMSNumber(ctx, params.To)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.logger.WarnContext(ctx, "no property claims inbound number, dropping",
				"to", params.To)
			return &InboundResult{Kind: InboundUnrouted}, nil
		}
		return nil, fmt.Errorf("resolving property: %w", err)
	}

	ingested, err := s.leadIngest.Ingest(ctx, LeadIngestParams{
		PropertyID: property.ID,
		Phone:      params.From,
		Message:    params.Body,
		Source:     model.LeadSourceSMS,
	})
	if err != nil {
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrPropertyNotFound) {
			// Nothing persistent failed; acknowledge and move on.
			s.logger.WarnContext(ctx, "inbound message rejected by ingestion",
				"error", err)
			return &InboundResult{Kind: InboundUnrouted}, nil
		}
		return nil, err
	}

	return &InboundResult{Kind: InboundLead, Lead: ingested.Lead}, nil
}

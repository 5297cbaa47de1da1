package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"leaseline.app/server/common/id"
	"leaseline.app/server/common/logger"
	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

// approvalTTL is how long a visitor request stays answerable. A reply
// arriving after this window is treated as having nothing to act on.
const approvalTTL = 2 * time.Hour

type VisitorRequestParams struct {
	TenantID     int64
	VisitorName  *string
	VisitorPhone string
	Message      *string
}

type VisitorRequestResult struct {
	Approval          *model.VisitorApproval
	NotificationSent  bool
	NotificationError string
}

// ReplyOutcome says what a tenant reply did.
type ReplyOutcome string

const (
	// ReplyApproved and ReplyDenied resolved a pending request.
	ReplyApproved ReplyOutcome = "approved"
	ReplyDenied   ReplyOutcome = "denied"
	// ReplyIgnored means the text was not a YES/NO/SAVE token.
	ReplyIgnored ReplyOutcome = "ignored"
	// ReplyNoPending means no live pending request existed for the tenant.
	ReplyNoPending ReplyOutcome = "no_pending"
	// ReplyAlreadyResolved means a concurrent reply won the race; this one
	// changed nothing.
	ReplyAlreadyResolved ReplyOutcome = "already_resolved"
)

type TenantReplyResult struct {
	Outcome           ReplyOutcome
	Approval          *model.VisitorApproval
	NotificationSent  bool
	NotificationError string
}

type VisitorApprovalService interface {
	CreateRequest(ctx context.Context, params VisitorRequestParams) (*VisitorRequestResult, error)
	HandleTenantReply(ctx context.Context, tenant *model.Tenant, message string) (*TenantReplyResult, error)
}

var ErrTenantNotFound = errors.New("tenant not found")

type visitorApprovalService struct {
	tenants    store.TenantStore
	properties store.PropertyStore
	approvals  store.VisitorApprovalStore
	comms      store.CommunicationStore
	gateway    sms.Gateway
	logger     *slog.Logger
}

func NewVisitorApprovalService(
	tenants store.TenantStore,
	properties store.PropertyStore,
	approvals store.VisitorApprovalStore,
	comms store.CommunicationStore,
	gateway sms.Gateway,
	logger *slog.Logger,
) VisitorApprovalService {
	if logger == nil {
		logger = slog.Default()
	}
	return &visitorApprovalService{
		tenants:    tenants,
		properties: properties,
		approvals:  approvals,
		comms:      comms,
		gateway:    gateway,
		logger:     logger,
	}
}

// CreateRequest records a visitor entry request and texts the tenant for a
// decision. The request is persisted before the text goes out; a failed
// send leaves it answerable through any later channel.
func (s *visitorApprovalService) CreateRequest(ctx context.Context, params VisitorRequestParams) (*VisitorRequestResult, error) {
	if params.TenantID == 0 {
		return nil, fmt.Errorf("%w: tenant_id is required", ErrValidation)
	}
	if params.VisitorPhone == "" {
		return nil, fmt.Errorf("%w: visitor_phone is required", ErrValidation)
	}

	tenant, err := s.tenants.GetByID(ctx, params.TenantID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("fetching tenant: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TenantID:   logger.Ptr(tenant.ID),
		PropertyID: logger.Ptr(tenant.PropertyID),
	})

	propertyName := s.propertyName(ctx, tenant.PropertyID, "Your property")

	approval := &model.VisitorApproval{
		ID:             id.New(),
		TenantID:       tenant.ID,
		VisitorName:    params.VisitorName,
		VisitorPhone:   params.VisitorPhone,
		RequestMessage: params.Message,
		ExpiresAt:      time.Now().Add(approvalTTL),
	}
	if err := s.approvals.Create(ctx, approval); err != nil {
		return nil, fmt.Errorf("creating visitor approval: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ApprovalID: logger.Ptr(approval.ID)})
	s.logger.InfoContext(ctx, "visitor approval requested",
		"visitor_phone", params.VisitorPhone,
		"expires_at", approval.ExpiresAt)

	result := &VisitorRequestResult{Approval: approval}

	body := sms.VisitorApprovalRequest(propertyName, params.VisitorPhone)
	sendResult, sendErr := s.gateway.Send(ctx, tenant.Phone, body)
	if sendErr != nil {
		result.NotificationError = sendErr.Error()
		s.logger.WarnContext(ctx, "tenant notification failed", "error", sendErr)
		s.recordComm(ctx, tenant, body, model.CommunicationStatusFailed, nil)
		return result, nil
	}

	result.NotificationSent = true
	s.recordComm(ctx, tenant, body, model.CommunicationStatusSent, &sendResult.SID)
	return result, nil
}

// HandleTenantReply applies a tenant's text to their oldest answerable
// pending request. The resolution is a conditional write, so replaying the
// same reply, or racing a second one, is a harmless no-op.
func (s *visitorApprovalService) HandleTenantReply(ctx context.Context, tenant *model.Tenant, message string) (*TenantReplyResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		TenantID:   logger.Ptr(tenant.ID),
		PropertyID: logger.Ptr(tenant.PropertyID),
	})

	s.recordInboundReply(ctx, tenant, message)

	token := strings.ToUpper(strings.TrimSpace(message))
	if token != "YES" && token != "NO" && token != "SAVE" {
		s.logger.InfoContext(ctx, "tenant message is not an approval token, ignoring",
			"message", logger.Truncate(message, 40))
		return &TenantReplyResult{Outcome: ReplyIgnored}, nil
	}

	pending, err := s.approvals.ListPendingByTenant(ctx, tenant.ID)
	if err != nil {
		return nil, fmt.Errorf("listing pending approvals: %w", err)
	}

	now := time.Now()
	var target *model.VisitorApproval
	for i := range pending {
		if pending[i].Expired(now) {
			continue
		}
		target = &pending[i]
		break
	}
	if target == nil {
		s.logger.InfoContext(ctx, "approval token with no live pending request")
		return &TenantReplyResult{Outcome: ReplyNoPending}, nil
	}

	// SAVE approves like YES; the trusted-list behavior ends there for now.
	approved := token == "YES" || token == "SAVE"
	status := model.ApprovalStatusDenied
	outcome := ReplyDenied
	if approved {
		status = model.ApprovalStatusApproved
		outcome = ReplyApproved
	}

	resolved, err := s.approvals.Resolve(ctx, target.ID, status, &message)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Lost the race to a concurrent reply.
			s.logger.InfoContext(ctx, "approval already resolved",
				"approval_id", target.ID)
			return &TenantReplyResult{Outcome: ReplyAlreadyResolved}, nil
		}
		return nil, fmt.Errorf("resolving approval: %w", err)
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{ApprovalID: logger.Ptr(resolved.ID)})
	s.logger.InfoContext(ctx, "visitor approval resolved",
		"status", resolved.Status,
		"visitor_phone", resolved.VisitorPhone)

	result := &TenantReplyResult{Outcome: outcome, Approval: resolved}

	if resolved.VisitorPhone == "" {
		return result, nil
	}

	propertyName := s.propertyName(ctx, tenant.PropertyID, "Property")
	body := sms.VisitorAccessDenied(propertyName)
	if approved {
		body = sms.VisitorAccessGranted(propertyName)
	}

	sendResult, sendErr := s.gateway.Send(ctx, resolved.VisitorPhone, body)
	if sendErr != nil {
		// The decision stands; the visitor just never hears about it here.
		result.NotificationError = sendErr.Error()
		s.logger.WarnContext(ctx, "visitor notification failed", "error", sendErr)
		s.recordVisitorComm(ctx, tenant, resolved.VisitorPhone, body, model.CommunicationStatusFailed, nil)
		return result, nil
	}

	result.NotificationSent = true
	s.recordVisitorComm(ctx, tenant, resolved.VisitorPhone, body, model.CommunicationStatusSent, &sendResult.SID)
	return result, nil
}

func (s *visitorApprovalService) propertyName(ctx context.Context, propertyID int64, fallback string) string {
	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch property for message copy",
			"property_id", propertyID,
			"error", err)
		return fallback
	}
	return property.Name
}

func (s *visitorApprovalService) recordInboundReply(ctx context.Context, tenant *model.Tenant, message string) {
	comm := &model.Communication{
		ID:          id.New(),
		TenantID:    &tenant.ID,
		PropertyID:  tenant.PropertyID,
		Type:        model.CommunicationTypeSMS,
		Direction:   model.DirectionInbound,
		Message:     message,
		PhoneNumber: &tenant.Phone,
		Status:      model.CommunicationStatusDelivered,
	}
	if err := s.comms.Create(ctx, comm); err != nil {
		s.logger.ErrorContext(ctx, "failed to record inbound reply", "error", err)
	}
}

func (s *visitorApprovalService) recordComm(ctx context.Context, tenant *model.Tenant, body string, status model.CommunicationStatus, sid *string) {
	comm := &model.Communication{
		ID:          id.New(),
		TenantID:    &tenant.ID,
		PropertyID:  tenant.PropertyID,
		Type:        model.CommunicationTypeSMS,
		Direction:   model.DirectionOutbound,
		Message:     body,
		PhoneNumber: &tenant.Phone,
		Status:      status,
		ProviderSID: sid,
	}
	if err := s.comms.Create(ctx, comm); err != nil {
		s.logger.ErrorContext(ctx, "failed to record outbound communication", "error", err)
	}
}

func (s *visitorApprovalService) recordVisitorComm(ctx context.Context, tenant *model.Tenant, visitorPhone, body string, status model.CommunicationStatus, sid *string) {
	comm := &model.Communication{
		ID:          id.New(),
		TenantID:    &tenant.ID,
		PropertyID:  tenant.PropertyID,
		Type:        model.CommunicationTypeSMS,
		Direction:   model.DirectionOutbound,
		Message:     body,
		PhoneNumber: &visitorPhone,
		Status:      status,
		ProviderSID: sid,
	}
	if err := s.comms.Create(ctx, comm); err != nil {
		s.logger.ErrorContext(ctx, "failed to record outbound communication", "error", err)
	}
}

package service

import (
	"log/slog"
	"time"

	"leaseline.app/server/internal/classify"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

type Services struct {
	stores        *store.Stores
	txRunner      TxRunner
	classifier    classify.Classifier
	gateway       sms.Gateway
	producer      queue.Producer
	followUpDelay time.Duration
	logger        *slog.Logger
}

func NewServices(
	stores *store.Stores,
	txRunner TxRunner,
	classifier classify.Classifier,
	gateway sms.Gateway,
	producer queue.Producer,
	followUpDelay time.Duration,
	logger *slog.Logger,
) *Services {
	return &Services{
		stores:        stores,
		txRunner:      txRunner,
		classifier:    classifier,
		gateway:       gateway,
		producer:      producer,
		followUpDelay: followUpDelay,
		logger:        logger,
	}
}

func (s *Services) LeadIngest() LeadIngestService {
	return NewLeadIngestService(s.stores.Properties(), s.stores.Leads(), s.stores.Communications(), s.txRunner, s.classifier, s.gateway, s.producer, s.followUpDelay, s.logger)
}

func (s *Services) VisitorApprovals() VisitorApprovalService {
	return NewVisitorApprovalService(s.stores.Tenants(), s.stores.Properties(), s.stores.VisitorApprovals(), s.stores.Communications(), s.gateway, s.logger)
}

func (s *Services) Inbound() InboundMessageService {
	return NewInboundMessageService(s.stores.Tenants(), s.stores.Properties(), s.LeadIngest(), s.VisitorApprovals(), s.logger)
}

func (s *Services) Dashboard() DashboardService {
	return NewDashboardService(s.stores.Leads(), s.stores.Properties())
}

package worker

import (
	"context"

	"leaseline.app/server/internal/model"
	"leaseline.app/server/internal/queue"
	"leaseline.app/server/internal/sms"
	"leaseline.app/server/internal/store"
)

// mockConsumer implements Consumer for testing.
type mockConsumer struct {
	readFn func(ctx context.Context) ([]queue.Message, error)

	acked    []queue.Message
	deferred []queue.Message
	requeued []failedMessage
	dlq      []failedMessage
}

type failedMessage struct {
	msg    queue.Message
	errMsg string
}

func (m *mockConsumer) Read(ctx context.Context) ([]queue.Message, error) {
	if m.readFn != nil {
		return m.readFn(ctx)
	}
	return nil, nil
}

func (m *mockConsumer) Ack(ctx context.Context, msg queue.Message) error {
	m.acked = append(m.acked, msg)
	return nil
}

func (m *mockConsumer) Defer(ctx context.Context, msg queue.Message) error {
	m.deferred = append(m.deferred, msg)
	return nil
}

func (m *mockConsumer) Requeue(ctx context.Context, msg queue.Message, errMsg string) error {
	m.requeued = append(m.requeued, failedMessage{msg: msg, errMsg: errMsg})
	return nil
}

func (m *mockConsumer) SendDLQ(ctx context.Context, msg queue.Message, errMsg string) error {
	m.dlq = append(m.dlq, failedMessage{msg: msg, errMsg: errMsg})
	return nil
}

// mockLeadStore implements store.LeadStore for testing.
type mockLeadStore struct {
	getByIDFn func(ctx context.Context, id int64) (*model.Lead, error)
}

func (m *mockLeadStore) GetByID(ctx context.Context, id int64) (*model.Lead, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrNotFound
}

func (m *mockLeadStore) Create(ctx context.Context, lead *model.Lead) error {
	return nil
}

func (m *mockLeadStore) MarkContacted(ctx context.Context, id int64, responseTimeMinutes int32) (*model.Lead, error) {
	return nil, store.ErrNotFound
}

func (m *mockLeadStore) Update(ctx context.Context, params store.UpdateLeadParams) (*model.Lead, error) {
	return nil, store.ErrNotFound
}

func (m *mockLeadStore) ListByProperty(ctx context.Context, propertyID int64) ([]model.Lead, error) {
	return nil, nil
}

func (m *mockLeadStore) ListByUser(ctx context.Context, userID int64) ([]model.Lead, error) {
	return nil, nil
}

// mockCommunicationStore implements store.CommunicationStore for testing.
type mockCommunicationStore struct {
	created []*model.Communication
}

func (m *mockCommunicationStore) Create(ctx context.Context, comm *model.Communication) error {
	m.created = append(m.created, comm)
	return nil
}

func (m *mockCommunicationStore) ListByLead(ctx context.Context, leadID int64) ([]model.Communication, error) {
	return nil, nil
}

// mockGateway implements sms.Gateway for testing.
type mockGateway struct {
	sendFn func(ctx context.Context, to, body string) (*sms.Result, error)
	sent   []sentMessage
}

type sentMessage struct {
	to   string
	body string
}

func (m *mockGateway) Send(ctx context.Context, to, body string) (*sms.Result, error) {
	m.sent = append(m.sent, sentMessage{to: to, body: body})
	if m.sendFn != nil {
		return m.sendFn(ctx, to, body)
	}
	return &sms.Result{SID: "SM_test"}, nil
}

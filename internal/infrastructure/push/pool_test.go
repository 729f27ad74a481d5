package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/factory-ops-api/internal/application/notification"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/pkg/config"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

type mockSender struct {
	mu     sync.Mutex
	status map[string]int
	sent   []sentPush
}

type sentPush struct {
	endpoint string
	body     payload
	opts     webpush.Options
}

func (m *mockSender) Send(body []byte, sub *webpush.Subscription, opts *webpush.Options) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	m.sent = append(m.sent, sentPush{endpoint: sub.Endpoint, body: p, opts: *opts})
	code := http.StatusCreated
	if c, ok := m.status[sub.Endpoint]; ok {
		code = c
	}
	return &http.Response{StatusCode: code, Body: io.NopCloser(bytes.NewReader(nil))}, nil
}

type memTokens struct {
	mu      sync.Mutex
	tokens  []*entity.DeviceToken
	deleted []string
}

func (m *memTokens) Create(context.Context, *entity.DeviceToken) error { return nil }
func (m *memTokens) GetByID(context.Context, string) (*entity.DeviceToken, error) {
	return nil, nil
}
func (m *memTokens) ListByUser(context.Context, string) ([]*entity.DeviceToken, error) {
	return nil, nil
}
func (m *memTokens) ListByCompany(_ context.Context, companyID string) ([]*entity.DeviceToken, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*entity.DeviceToken
	for _, t := range m.tokens {
		if t.CompanyID == companyID {
			out = append(out, t)
		}
	}
	return out, nil
}
func (m *memTokens) Delete(context.Context, string) error { return nil }
func (m *memTokens) DeleteByToken(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, token)
	return nil
}

func testConfig(workers, queue int) config.PushConfig {
	return config.PushConfig{
		VAPIDPublicKey:  "pub",
		VAPIDPrivateKey: "priv",
		Subscriber:      "mailto:ops@example.com",
		Workers:         workers,
		QueueSize:       queue,
		TTL:             60,
	}
}

func TestWorkerPool_EntregaATodosLosDispositivos(t *testing.T) {
	tokens := &memTokens{tokens: []*entity.DeviceToken{
		{ID: "t1", CompanyID: "company-a", Token: "https://push.example/1"},
		{ID: "t2", CompanyID: "company-a", Token: "https://push.example/2"},
		{ID: "t3", CompanyID: "company-b", Token: "https://push.example/3"},
	}}
	sender := &mockSender{}
	wp := NewWorkerPool(testConfig(2, 4), tokens, sender, logger.Nop())
	wp.Start(context.Background())

	require.NoError(t, wp.Notify(context.Background(), notification.Message{
		CompanyID: "company-a",
		MachineID: "SEW-001",
		Title:     "🚨 A machine is broken down",
		Body:      "Status: ❌ Broken (was Active)",
		Topic:     notification.TopicMechanics,
		Urgent:    true,
	}))
	wp.Stop()

	require.Len(t, sender.sent, 2)
	for _, s := range sender.sent {
		assert.Contains(t, []string{"https://push.example/1", "https://push.example/2"}, s.endpoint)
		assert.Equal(t, notification.TopicMechanics, s.opts.Topic)
		assert.Equal(t, webpush.UrgencyHigh, s.opts.Urgency)
		assert.Equal(t, 60, s.opts.TTL)
		assert.Equal(t, "SEW-001", s.body.MachineID)
	}
}

func TestWorkerPool_MensajeGenericoUrgenciaNormal(t *testing.T) {
	tokens := &memTokens{tokens: []*entity.DeviceToken{{ID: "t1", CompanyID: "company-a", Token: "e1"}}}
	sender := &mockSender{}
	wp := NewWorkerPool(testConfig(1, 1), tokens, sender, logger.Nop())
	wp.Start(context.Background())

	require.NoError(t, wp.Notify(context.Background(), notification.Message{
		CompanyID: "company-a", Topic: notification.TopicMachineStatus,
	}))
	wp.Stop()

	require.Len(t, sender.sent, 1)
	assert.Equal(t, webpush.UrgencyNormal, sender.sent[0].opts.Urgency)
}

func TestWorkerPool_EliminaSuscripcionesExpiradas(t *testing.T) {
	tokens := &memTokens{tokens: []*entity.DeviceToken{
		{ID: "t1", CompanyID: "company-a", Token: "gone"},
		{ID: "t2", CompanyID: "company-a", Token: "missing"},
		{ID: "t3", CompanyID: "company-a", Token: "ok"},
	}}
	sender := &mockSender{status: map[string]int{"gone": http.StatusGone, "missing": http.StatusNotFound}}
	wp := NewWorkerPool(testConfig(1, 1), tokens, sender, logger.Nop())
	wp.Start(context.Background())

	require.NoError(t, wp.Notify(context.Background(), notification.Message{CompanyID: "company-a"}))
	wp.Stop()

	assert.ElementsMatch(t, []string{"gone", "missing"}, tokens.deleted)
}

func TestWorkerPool_ColaLlenaDescartaSinBloquear(t *testing.T) {
	wp := NewWorkerPool(testConfig(1, 1), &memTokens{}, &mockSender{}, logger.Nop())
	ctx := context.Background()

	require.NoError(t, wp.Notify(ctx, notification.Message{CompanyID: "company-a"}))

	done := make(chan error, 1)
	go func() { done <- wp.Notify(ctx, notification.Message{CompanyID: "company-a"}) }()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrQueueFull)
	case <-time.After(time.Second):
		t.Fatal("Notify bloqueó con la cola llena")
	}
}

func TestWorkerPool_NotificarTrasDetener(t *testing.T) {
	wp := NewWorkerPool(testConfig(1, 1), &memTokens{}, &mockSender{}, logger.Nop())
	wp.Start(context.Background())
	wp.Stop()
	wp.Stop()

	assert.ErrorIs(t, wp.Notify(context.Background(), notification.Message{}), ErrStopped)
}

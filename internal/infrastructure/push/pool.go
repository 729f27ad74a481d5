// Package push entrega las notificaciones de estado de máquinas por Web Push a los
// dispositivos registrados de la empresa.
package push

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"

	"github.com/SherClockHolmes/webpush-go"

	"github.com/jhoicas/factory-ops-api/internal/application/notification"
	"github.com/jhoicas/factory-ops-api/internal/domain/entity"
	"github.com/jhoicas/factory-ops-api/internal/domain/repository"
	"github.com/jhoicas/factory-ops-api/pkg/config"
	"github.com/jhoicas/factory-ops-api/pkg/logger"
)

var _ notification.Notifier = (*WorkerPool)(nil)

// ErrQueueFull la cola está llena y el mensaje se descartó.
var ErrQueueFull = errors.New("push: cola de notificaciones llena")

// ErrStopped el pool ya no acepta mensajes.
var ErrStopped = errors.New("push: pool detenido")

// Sender envía una notificación web push.
type Sender interface {
	Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error)
}

// WebPushSender implementación real con webpush-go.
type WebPushSender struct{}

func (WebPushSender) Send(payload []byte, sub *webpush.Subscription, options *webpush.Options) (*http.Response, error) {
	return webpush.SendNotification(payload, sub, options)
}

// payload cuerpo JSON que recibe el service worker del cliente.
type payload struct {
	Title     string `json:"title"`
	Body      string `json:"body"`
	Topic     string `json:"topic"`
	MachineID string `json:"machine_id"`
	Urgent    bool   `json:"urgent"`
}

// WorkerPool reparte los mensajes entre workers. Notify nunca bloquea: con la cola llena
// el mensaje se descarta.
type WorkerPool struct {
	size   int
	jobs   chan notification.Message
	tokens repository.DeviceTokenRepository
	sender Sender
	cfg    config.PushConfig
	log    *logger.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewWorkerPool crea el pool. sender nil usa WebPushSender.
func NewWorkerPool(cfg config.PushConfig, tokens repository.DeviceTokenRepository, sender Sender, log *logger.Logger) *WorkerPool {
	if sender == nil {
		sender = WebPushSender{}
	}
	size := cfg.Workers
	if size <= 0 {
		size = 1
	}
	queue := cfg.QueueSize
	if queue <= 0 {
		queue = size
	}
	return &WorkerPool{
		size:   size,
		jobs:   make(chan notification.Message, queue),
		tokens: tokens,
		sender: sender,
		cfg:    cfg,
		log:    log.Named("push"),
	}
}

// Start lanza los workers; terminan con ctx o con Stop.
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.size; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}
}

// Stop deja de aceptar mensajes, drena la cola y espera a los workers.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	if !wp.stopped {
		wp.stopped = true
		close(wp.jobs)
	}
	wp.mu.Unlock()
	wp.wg.Wait()
}

// Notify encola el mensaje sin bloquear.
func (wp *WorkerPool) Notify(_ context.Context, msg notification.Message) error {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.stopped {
		return ErrStopped
	}
	select {
	case wp.jobs <- msg:
		return nil
	default:
		wp.log.Warn().
			Str("company_id", msg.CompanyID).
			Str("machine_id", msg.MachineID).
			Str("topic", msg.Topic).
			Msg("cola de notificaciones llena, mensaje descartado")
		return ErrQueueFull
	}
}

func (wp *WorkerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()
	wp.log.Debug().Int("worker", id).Msg("worker iniciado")
	for {
		select {
		case msg, ok := <-wp.jobs:
			if !ok {
				return
			}
			wp.deliver(ctx, msg)
		case <-ctx.Done():
			return
		}
	}
}

// deliver envía msg a cada dispositivo de la empresa. Las suscripciones que el servicio
// push reporta como inexistentes (404/410) se eliminan.
func (wp *WorkerPool) deliver(ctx context.Context, msg notification.Message) {
	tokens, err := wp.tokens.ListByCompany(ctx, msg.CompanyID)
	if err != nil {
		wp.log.Warn().Err(err).Str("company_id", msg.CompanyID).Msg("no se pudieron leer los dispositivos")
		return
	}
	if len(tokens) == 0 {
		return
	}

	body, err := json.Marshal(payload{
		Title:     msg.Title,
		Body:      msg.Body,
		Topic:     msg.Topic,
		MachineID: msg.MachineID,
		Urgent:    msg.Urgent,
	})
	if err != nil {
		wp.log.Error().Err(err).Msg("serializar notificación")
		return
	}
	opts := wp.options(msg)

	sent := 0
	for _, t := range tokens {
		if wp.send(ctx, t, body, opts) {
			sent++
		}
	}
	wp.log.Info().
		Str("company_id", msg.CompanyID).
		Str("machine_id", msg.MachineID).
		Str("topic", msg.Topic).
		Int("devices", len(tokens)).
		Int("sent", sent).
		Msg("notificación enviada")
}

func (wp *WorkerPool) send(ctx context.Context, t *entity.DeviceToken, body []byte, opts *webpush.Options) bool {
	sub := &webpush.Subscription{
		Endpoint: t.Token,
		Keys:     webpush.Keys{P256dh: t.P256dh, Auth: t.Auth},
	}
	resp, err := wp.sender.Send(body, sub, opts)
	if err != nil {
		wp.log.Warn().Err(err).Str("device_token_id", t.ID).Msg("error enviando push")
		return false
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		wp.log.Info().Str("device_token_id", t.ID).Int("status", resp.StatusCode).Msg("suscripción caducada, se elimina")
		if err := wp.tokens.DeleteByToken(ctx, t.Token); err != nil {
			wp.log.Warn().Err(err).Str("device_token_id", t.ID).Msg("no se pudo eliminar la suscripción")
		}
		return false
	case resp.StatusCode >= 300:
		wp.log.Warn().Str("device_token_id", t.ID).Int("status", resp.StatusCode).Msg("servicio push rechazó el mensaje")
		return false
	}
	return true
}

func (wp *WorkerPool) options(msg notification.Message) *webpush.Options {
	urgency := webpush.UrgencyNormal
	if msg.Urgent {
		urgency = webpush.UrgencyHigh
	}
	return &webpush.Options{
		Subscriber:      wp.cfg.Subscriber,
		VAPIDPublicKey:  wp.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: wp.cfg.VAPIDPrivateKey,
		TTL:             wp.cfg.TTL,
		Topic:           msg.Topic,
		Urgency:         urgency,
	}
}

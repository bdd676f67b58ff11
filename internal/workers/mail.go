package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-social-api/internal/adapter"
	"github.com/MKhiriev/go-social-api/internal/logger"
	"github.com/MKhiriev/go-social-api/models"
)

// drainTimeout bounds delivery of mails still queued when the worker stops.
const drainTimeout = 5 * time.Second

// MailWorker delivers mails from a bounded in-memory queue through an
// [adapter.MailSender]. Delivery failures are logged and the mail is dropped.
type MailWorker struct {
	queue  chan models.Mail
	sender adapter.MailSender

	// mu makes the stop transition atomic with respect to Enqueue: every
	// mail accepted before stopped is set is seen by drain.
	mu      sync.RWMutex
	stopped bool

	logger *logger.Logger
}

// NewMailWorker creates a MailWorker whose queue holds up to queueSize mails.
// A queueSize below 1 is treated as 1.
func NewMailWorker(sender adapter.MailSender, queueSize int, logger *logger.Logger) *MailWorker {
	if queueSize < 1 {
		queueSize = 1
	}
	return &MailWorker{
		queue:  make(chan models.Mail, queueSize),
		sender: sender,
		logger: logger,
	}
}

// Enqueue schedules mail for delivery without blocking.
func (m *MailWorker) Enqueue(mail models.Mail) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.stopped {
		return ErrWorkerStopped
	}

	select {
	case m.queue <- mail:
		return nil
	default:
		return ErrQueueFull
	}
}

// Run implements [Worker]. After ctx is cancelled the mails already queued
// are still delivered, bounded by drainTimeout.
func (m *MailWorker) Run(ctx context.Context) error {
	for {
		select {
		case mail := <-m.queue:
			m.deliver(ctx, mail)
		case <-ctx.Done():
			m.stop()
			m.drain(ctx)
			return nil
		}
	}
}

func (m *MailWorker) stop() {
	m.mu.Lock()
	m.stopped = true
	m.mu.Unlock()
}

func (m *MailWorker) drain(ctx context.Context) {
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), drainTimeout)
	defer cancel()

	for {
		select {
		case mail := <-m.queue:
			m.deliver(drainCtx, mail)
		default:
			return
		}
	}
}

func (m *MailWorker) deliver(ctx context.Context, mail models.Mail) {
	if err := m.sender.Send(ctx, mail); err != nil {
		m.logger.Err(err).
			Str("to", logger.MaskEmail(mail.To)).
			Str("subject", mail.Subject).
			Msg("mail delivery failed")
		return
	}

	m.logger.Debug().
		Str("to", logger.MaskEmail(mail.To)).
		Msg("mail delivered")
}

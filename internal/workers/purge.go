package workers

import (
	"context"
	"time"

	"github.com/vidabem/securechat/internal/logger"
	"github.com/vidabem/securechat/internal/store"
)

// defaultPurgeInterval is used when no interval is configured.
const defaultPurgeInterval = time.Minute

// PurgeWorker periodically deletes messages whose expiry has passed.
// Expired ciphertext is already unreadable through the service layer;
// the purge removes it from storage entirely.
type PurgeWorker struct {
	messages store.MessageRepository
	interval time.Duration
	stop     chan struct{}

	logger *logger.Logger
}

func NewPurgeWorker(messages store.MessageRepository, interval time.Duration, logger *logger.Logger) *PurgeWorker {
	if interval <= 0 {
		interval = defaultPurgeInterval
	}

	return &PurgeWorker{
		messages: messages,
		interval: interval,
		stop:     make(chan struct{}),
		logger:   logger,
	}
}

// Run launches the purge loop in a background goroutine and returns
// immediately. Stop terminates the loop.
func (p *PurgeWorker) Run() {
	p.logger.Info().
		Str("func", "PurgeWorker.Run").
		Dur("interval", p.interval).
		Msg("purge worker started")

	go p.loop()
}

// Stop terminates the purge loop. Safe to call once.
func (p *PurgeWorker) Stop() {
	close(p.stop)
}

func (p *PurgeWorker) loop() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			p.logger.Info().Str("func", "PurgeWorker.loop").Msg("purge worker stopped")
			return
		case <-ticker.C:
			p.purge()
		}
	}
}

func (p *PurgeWorker) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	deleted, err := p.messages.DeleteExpired(ctx, time.Now())
	if err != nil {
		p.logger.Err(err).Str("func", "PurgeWorker.purge").Msg("error purging expired messages")
		return
	}

	if deleted > 0 {
		p.logger.Info().
			Str("func", "PurgeWorker.purge").
			Int64("deleted", deleted).
			Msg("purged expired messages")
	}
}

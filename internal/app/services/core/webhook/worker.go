package webhook

import (
	"context"
	"time"

	"railpay-service/internal/app/config"
	"railpay-service/internal/app/contracts"
	"railpay-service/internal/app/services/shared/webhookqueue"
	"railpay-service/internal/pkg/constvars"
	"railpay-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Worker drains the webhook queue and applies each event through the webhook
// usecase with at-least-once semantics. Failed events are requeued with a
// bumped failed count until the retry budget is spent, then moved to the DLQ.
type Worker struct {
	log     *zap.Logger
	cfg     *config.InternalConfig
	queue   *webhookqueue.Service
	usecase contracts.WebhookUsecase
	limiter *rate.Limiter
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, queue *webhookqueue.Service, usecase contracts.WebhookUsecase) *Worker {
	ratePerSec := cfg.App.WebhookWorkerRatePerSec
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	return &Worker{
		log:     log,
		cfg:     cfg,
		queue:   queue,
		usecase: usecase,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
		stop:    make(chan struct{}),
	}
}

// Start begins the polling loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(time.Second)
	stopped := make(chan struct{})

	w.log.Info("webhook worker started",
		zap.Int("rate_per_sec", w.cfg.App.WebhookWorkerRatePerSec),
		zap.Int("prefetch", w.cfg.App.WebhookWorkerPrefetch),
	)

	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-w.stop:
				ticker.Stop()
				return
			case <-ticker.C:
				w.runOnce(ctx)
			}
		}
	}()

	return func() {
		close(w.stop)
		<-stopped
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	max := w.cfg.App.WebhookWorkerPrefetch
	if max <= 0 {
		max = 1
	}
	items, err := w.queue.FetchN(ctx, max)
	if err != nil {
		w.log.Error("webhook.worker queue fetch error", zap.Error(err))
		return
	}

	for _, item := range items {
		if err := w.limiter.Wait(ctx); err != nil {
			return
		}
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item webhookqueue.QueuedItem) {
	msg := item.Message

	w.log.Info("webhook.worker processing event",
		zap.String("message_id", msg.ID),
		zap.String(constvars.LoggingProviderKey, string(msg.Provider)),
		zap.Int("failed_count", msg.FailedCount),
	)

	if err := w.dispatch(ctx, msg); err != nil {
		w.requeueOnError(ctx, item, msg, err)
		return
	}

	if err := w.queue.AckMessage(item.DeliveryTag); err != nil {
		w.log.Error("webhook.worker ack failed after success",
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
	}
}

func (w *Worker) dispatch(ctx context.Context, msg webhookqueue.WebhookQueueMessage) error {
	switch msg.Provider {
	case constvars.ProviderCoinbase:
		var event requests.CoinbaseWebhookEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return err
		}
		return w.usecase.HandleCoinbaseEvent(ctx, &event)
	default:
		var event requests.PrimerWebhookEvent
		if err := json.Unmarshal(msg.Body, &event); err != nil {
			return err
		}
		return w.usecase.HandlePrimerEvent(ctx, &event)
	}
}

func (w *Worker) requeueOnError(ctx context.Context, item webhookqueue.QueuedItem, msg webhookqueue.WebhookQueueMessage, cause error) {
	msg.FailedCount++

	w.log.Warn("webhook.worker event processing failed",
		zap.String("message_id", msg.ID),
		zap.String(constvars.LoggingProviderKey, string(msg.Provider)),
		zap.Int("failed_count", msg.FailedCount),
		zap.Error(cause),
	)

	if msg.FailedCount >= w.cfg.App.WebhookThrottleRetry {
		if err := w.queue.EnqueueToDeadQueue(ctx, &msg); err != nil {
			w.log.Error("webhook.worker enqueue to DLQ failed",
				zap.String("message_id", msg.ID),
				zap.Error(err),
			)
			return
		}
		_ = w.queue.AckMessage(item.DeliveryTag)
		return
	}

	if err := w.queue.Reenqueue(ctx, &msg); err != nil {
		w.log.Error("webhook.worker reenqueue failed",
			zap.String("message_id", msg.ID),
			zap.Error(err),
		)
		return
	}
	_ = w.queue.AckMessage(item.DeliveryTag)
}

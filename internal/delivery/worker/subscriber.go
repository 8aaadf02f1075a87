package worker

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"aurelise/config"
	"aurelise/internal/delivery"
	"aurelise/internal/delivery/worker/handler"
	"aurelise/internal/domain/lifecycle"
	"aurelise/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	portable "gocloud.dev/pubsub"
	// Subscription URL schemes.
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"
	"golang.org/x/sync/semaphore"
)

const defaultMaxConcurrency = 10

// eventProcessor handles the body of one delivered order event.
type eventProcessor interface {
	Process(ctx context.Context, data []byte, attributes map[string]string) error
}

// pullSubscriber pulls order events from a portable subscription URL.
type pullSubscriber struct {
	url         string
	processor   eventProcessor
	concurrency int64
	sem         *semaphore.Weighted
	logger      *slog.Logger

	started  atomic.Bool
	stopOnce sync.Once
	stopping chan struct{}
	done     chan struct{}
}

// SubscriberParams holds dependencies for the pull subscriber
type SubscriberParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewSubscriber creates the pull subscriber delivery. It serves nothing
// unless worker.pullEnabled is set.
func NewSubscriber(params SubscriberParams) (delivery.Delivery, error) {
	if params.Cfg.Worker == nil || !params.Cfg.Worker.PullEnabled {
		return disabledSubscriber{}, nil
	}
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.SubscriptionURL == "" {
		return nil, errors.New("pubsub.subscriptionUrl is required when worker.pullEnabled is set")
	}

	sub := newPullSubscriber(params.Cfg.PubSub.SubscriptionURL, maxConcurrency(params.Cfg), params.PushHandler, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStop: sub.stop,
	})

	return sub, nil
}

type disabledSubscriber struct{}

func (disabledSubscriber) Serve(context.Context) error { return nil }

func newPullSubscriber(url string, concurrency int, processor eventProcessor, logger *slog.Logger) *pullSubscriber {
	return &pullSubscriber{
		url:         url,
		processor:   processor,
		concurrency: int64(concurrency),
		sem:         semaphore.NewWeighted(int64(concurrency)),
		logger:      logger,
		stopping:    make(chan struct{}),
		done:        make(chan struct{}),
	}
}

func maxConcurrency(cfg *config.Config) int {
	if cfg.Worker != nil && cfg.Worker.MaxConcurrency > 0 {
		return cfg.Worker.MaxConcurrency
	}

	return defaultMaxConcurrency
}

// Serve receives until the subscription fails or stop is called.
func (s *pullSubscriber) Serve(ctx context.Context) error {
	s.started.Store(true)
	defer close(s.done)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stopping:
			cancel()
		case <-ctx.Done():
		}
	}()

	subscription, err := portable.OpenSubscription(ctx, s.url)
	if err != nil {
		return errors.Wrapf(err, "failed to open subscription %s", s.url)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := subscription.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("[Worker] Failed to shut down subscription", slog.Any("error", err))
		}
	}()

	s.logger.Info("Starting order event subscriber", slog.String("subscription_url", s.url))

	return s.receive(ctx, subscription)
}

func (s *pullSubscriber) receive(ctx context.Context, subscription *portable.Subscription) error {
	// Waits for in-flight messages before returning.
	defer func() {
		_ = s.sem.Acquire(context.Background(), s.concurrency)
	}()

	// In-flight messages finish even after stop cancels receiving.
	handleCtx := context.WithoutCancel(ctx)

	for {
		msg, err := subscription.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			return errors.Wrap(err, "failed to receive message")
		}

		if err := s.sem.Acquire(ctx, 1); err != nil {
			if msg.Nackable() {
				msg.Nack()
			}

			return nil
		}

		go func(msg *portable.Message) {
			defer s.sem.Release(1)
			s.handle(handleCtx, msg)
		}(msg)
	}
}

// handle acks everything except retryable failures, which are nacked for redelivery.
func (s *pullSubscriber) handle(ctx context.Context, msg *portable.Message) {
	err := s.processor.Process(ctx, msg.Body, msg.Metadata)
	if err != nil && usecase.IsRetryableError(err) && msg.Nackable() {
		msg.Nack()

		return
	}

	msg.Ack()
}

func (s *pullSubscriber) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stopping) })
	if !s.started.Load() {
		return nil
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

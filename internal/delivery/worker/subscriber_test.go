package worker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"aurelise/config"
	"aurelise/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	portable "gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

type fakeProcessor struct {
	mu      sync.Mutex
	results []error
	bodies  []string
	calls   chan struct{}
}

func newFakeProcessor(results ...error) *fakeProcessor {
	return &fakeProcessor{results: results, calls: make(chan struct{}, 16)}
}

func (p *fakeProcessor) Process(_ context.Context, data []byte, _ map[string]string) error {
	p.mu.Lock()
	var err error
	if len(p.bodies) < len(p.results) {
		err = p.results[len(p.bodies)]
	}
	p.bodies = append(p.bodies, string(data))
	p.mu.Unlock()

	p.calls <- struct{}{}

	return err
}

func (p *fakeProcessor) waitCalls(t *testing.T, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		select {
		case <-p.calls:
		case <-time.After(5 * time.Second):
			t.Fatalf("processor called %d times, want %d", i, n)
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestPullSubscriber_Receive(t *testing.T) {
	tests := []struct {
		name      string
		results   []error
		wantCalls int
	}{
		{
			name:      "processed message is acked once",
			results:   []error{nil},
			wantCalls: 1,
		},
		{
			name:      "permanent failure is acked",
			results:   []error{errors.New("order not found")},
			wantCalls: 1,
		},
		{
			name:      "retryable failure is redelivered",
			results:   []error{usecase.NewRetryableError(errors.New("fcm unavailable")), nil},
			wantCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			topic := mempubsub.NewTopic()
			defer topic.Shutdown(context.Background())
			subscription := mempubsub.NewSubscription(topic, time.Minute)
			defer subscription.Shutdown(context.Background())

			processor := newFakeProcessor(tt.results...)
			sub := newPullSubscriber("mem://unused", 1, processor, discardLogger())

			errCh := make(chan error, 1)
			go func() { errCh <- sub.receive(ctx, subscription) }()

			require.NoError(t, topic.Send(ctx, &portable.Message{Body: []byte(`{"order_id":"o-1"}`)}))
			processor.waitCalls(t, tt.wantCalls)

			// No further deliveries once the message is acked.
			select {
			case <-processor.calls:
				t.Fatal("message delivered again after ack")
			case <-time.After(100 * time.Millisecond):
			}

			cancel()
			require.NoError(t, <-errCh)

			processor.mu.Lock()
			defer processor.mu.Unlock()
			for _, body := range processor.bodies {
				assert.Equal(t, `{"order_id":"o-1"}`, body)
			}
		})
	}
}

func TestPullSubscriber_ServeAndStop(t *testing.T) {
	ctx := context.Background()
	const url = "mem://aurelise-serve-test"

	topic, err := portable.OpenTopic(ctx, url)
	require.NoError(t, err)
	defer topic.Shutdown(ctx)

	processor := newFakeProcessor()
	sub := newPullSubscriber(url, 2, processor, discardLogger())

	errCh := make(chan error, 1)
	go func() { errCh <- sub.Serve(ctx) }()

	// The subscription only sees messages sent after it attaches.
	require.Eventually(t, func() bool {
		_ = topic.Send(ctx, &portable.Message{Body: []byte(`{"order_id":"o-2"}`)})
		select {
		case <-processor.calls:
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, sub.stop(stopCtx))
	require.NoError(t, <-errCh)
}

func TestPullSubscriber_StopBeforeServe(t *testing.T) {
	sub := newPullSubscriber("mem://never-opened", 1, newFakeProcessor(), discardLogger())

	require.NoError(t, sub.stop(context.Background()))
	require.NoError(t, sub.stop(context.Background()))
}

func TestNewSubscriber(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *config.Config
		wantErr      bool
		wantDisabled bool
	}{
		{
			name:         "pull disabled",
			cfg:          &config.Config{Worker: &config.WorkerConfig{}},
			wantDisabled: true,
		},
		{
			name:    "pull enabled without subscription",
			cfg:     &config.Config{Worker: &config.WorkerConfig{PullEnabled: true}, PubSub: &config.PubSubConfig{}},
			wantErr: true,
		},
		{
			name: "pull enabled",
			cfg: &config.Config{
				Worker: &config.WorkerConfig{PullEnabled: true, MaxConcurrency: 4},
				PubSub: &config.PubSubConfig{SubscriptionURL: "mem://orders"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub, err := NewSubscriber(SubscriberParams{
				Lc:     fxtest.NewLifecycle(t),
				Cfg:    tt.cfg,
				Logger: discardLogger(),
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			if tt.wantDisabled {
				assert.IsType(t, disabledSubscriber{}, sub)
				assert.NoError(t, sub.Serve(context.Background()))

				return
			}

			puller, ok := sub.(*pullSubscriber)
			require.True(t, ok)
			assert.Equal(t, int64(4), puller.concurrency)
		})
	}
}

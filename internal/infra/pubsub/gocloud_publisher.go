package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"aurelise/internal/domain/service"

	"github.com/pkg/errors"
	portable "gocloud.dev/pubsub"
	// URL schemes understood by gocloud topics and subscriptions.
	_ "gocloud.dev/pubsub/gcppubsub"
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher implements EventPublisher on a portable gocloud topic URL
// (mem:// in tests and single-process setups, gcppubsub:// in production).
type goCloudPublisher struct {
	topic  *portable.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic behind topicURL.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := portable.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("gocloud publisher initialized", slog.String("topic_url", topicURL))

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

// PublishOrderEvent sends the JSON encoded event with the shared attributes as metadata
func (p *goCloudPublisher) PublishOrderEvent(ctx context.Context, event *service.OrderEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &portable.Message{Body: body, Metadata: eventAttributes(event)}); err != nil {
		return errors.Wrap(err, "failed to send event")
	}

	p.logger.Debug("[GoCloudPubSub] Event published",
		slog.String("type", event.Type),
		slog.String("order_id", event.OrderID),
	)

	return nil
}

// Close flushes pending sends and releases the topic
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}

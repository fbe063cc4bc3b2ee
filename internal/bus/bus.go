package bus

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus is the in-process event bus used to fan out change notifications
// between modules, e.g. catalog writes to the catalog cache.
type Bus struct {
	pubSub *gochannel.GoChannel
}

func New(logger *slog.Logger) *Bus {
	return &Bus{
		pubSub: gochannel.NewGoChannel(gochannel.Config{}, watermill.NewSlogLogger(logger)),
	}
}

// Publish broadcasts payload on topic. Delivery is best-effort: a publish
// failure must not fail the write that triggered it.
func (b *Bus) Publish(topic string, payload []byte) error {
	return b.pubSub.Publish(topic, message.NewMessage(watermill.NewUUID(), payload))
}

// Subscribe returns a channel of messages for topic. The channel closes when
// ctx is cancelled, so consumers do not leak past their owner's lifetime.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubSub.Subscribe(ctx, topic)
}

func (b *Bus) Close() error {
	return b.pubSub.Close()
}

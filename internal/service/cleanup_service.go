package service

import (
	"context"
	"encoding/json"

	"parts-catalog-be/internal/dto"
	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/pkg/logger"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type ICleanupService interface {
	Consume(ctx context.Context) error
}

// cleanupService removes orphaned blobs after an entity delete. Removal is
// best-effort: failures are logged and the message is acked either way, so
// a missing file never blocks the queue.
type cleanupService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	store     filestore.Store
	log       logger.ILogger
}

func NewCleanupService(
	pubSub *gochannel.GoChannel,
	topicName string,
	store filestore.Store,
	log logger.ILogger,
) ICleanupService {
	return &cleanupService{
		pubSub:    pubSub,
		topicName: topicName,
		store:     store,
		log:       log,
	}
}

func (cs *cleanupService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *cleanupService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.FileCleanupMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("cleanup", "failed to unmarshal cleanup message", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	for _, path := range payload.Paths {
		if path == "" {
			continue
		}
		if err := cs.store.Delete(path); err != nil {
			cs.log.Warn("cleanup", "failed to delete blob", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
		}
	}
}

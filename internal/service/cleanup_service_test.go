package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"parts-catalog-be/internal/pkg/filestore"
	"parts-catalog-be/internal/pkg/logger"
	"parts-catalog-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupConsumerDeletesPublishedBlobs(t *testing.T) {
	root := t.TempDir()
	store := filestore.NewLocalStore(root)

	relPath, err := store.Save("machines", "photo.jpg", []byte("blob"))
	require.NoError(t, err)
	absPath := filepath.Join(root, relPath)
	_, err = os.Stat(absPath)
	require.NoError(t, err)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	publisher := NewPublisherService(pubSub, events.TopicFileCleanup)
	cleanup := NewCleanupService(pubSub, events.TopicFileCleanup, store, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cleanup.Consume(ctx))

	require.NoError(t, publisher.Publish(ctx, cleanupPayload([]string{relPath})))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(absPath)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

func TestCleanupConsumerIgnoresMalformedPayload(t *testing.T) {
	root := t.TempDir()
	store := filestore.NewLocalStore(root)

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	log := logger.NewZapLogger(filepath.Join(t.TempDir(), "test.log"), false)
	publisher := NewPublisherService(pubSub, events.TopicFileCleanup)
	cleanup := NewCleanupService(pubSub, events.TopicFileCleanup, store, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, cleanup.Consume(ctx))

	require.NoError(t, publisher.Publish(ctx, []byte("not json")))

	// A good message after the bad one still gets through.
	relPath, err := store.Save("machines", "photo.jpg", []byte("blob"))
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, cleanupPayload([]string{relPath})))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(root, relPath))
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)
}

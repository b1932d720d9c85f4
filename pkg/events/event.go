package events

import "time"

// TopicFileCleanup carries requests to remove orphaned blobs after an
// entity delete. Blob removal is best-effort and deliberately outside the
// database transaction.
const TopicFileCleanup = "FILE_CLEANUP"

// Event defines the contract for all system events.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewFileCleanupEvent describes blobs left behind by a deleted entity.
func NewFileCleanupEvent(paths []string) Event {
	return BaseEvent{
		Type:       TopicFileCleanup,
		Data:       map[string]interface{}{"paths": paths},
		OccurredAt: time.Now(),
	}
}

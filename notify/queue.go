// ABOUTME: Ephemeral user-facing notification queue
// ABOUTME: Messages self-expire a fixed delay after enqueue, independently
package notify

import (
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Level tags a notification for display styling.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelInfo    Level = "info"
)

// DefaultTTL matches the UI convention of toasts that linger for 3 seconds.
const DefaultTTL = 3 * time.Second

// Notification is one short-lived message.
type Notification struct {
	ID        string
	Message   string
	Level     Level
	CreatedAt time.Time
}

// Queue holds pending notifications in insertion order. Each entry is removed
// by its own timer; removing one never touches another's remaining lifetime.
type Queue struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []Notification
}

// NewQueue creates a queue with the standard 3 second lifetime.
func NewQueue() *Queue {
	return NewQueueWithTTL(DefaultTTL)
}

// NewQueueWithTTL creates a queue with a custom lifetime, used by tests.
func NewQueueWithTTL(ttl time.Duration) *Queue {
	return &Queue{ttl: ttl}
}

// Push enqueues a message and schedules its expiry.
func (q *Queue) Push(message string, level Level) Notification {
	n := Notification{
		ID:        ulid.Make().String(),
		Message:   message,
		Level:     level,
		CreatedAt: time.Now(),
	}

	q.mu.Lock()
	q.items = append(q.items, n)
	q.mu.Unlock()

	time.AfterFunc(q.ttl, func() { q.remove(n.ID) })
	return n
}

// Success enqueues a success-level message.
func (q *Queue) Success(message string) Notification { return q.Push(message, LevelSuccess) }

// Error enqueues an error-level message.
func (q *Queue) Error(message string) Notification { return q.Push(message, LevelError) }

// Info enqueues an info-level message.
func (q *Queue) Info(message string) Notification { return q.Push(message, LevelInfo) }

// Active returns a copy of the pending notifications in insertion order.
func (q *Queue) Active() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]Notification, len(q.items))
	copy(out, q.items)
	return out
}

func (q *Queue) remove(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	for _, n := range q.items {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	q.items = kept
}

// Package notify holds the single transient notification shown to the user.
//
// A Queue keeps at most one notification. Setting a new one replaces the
// current message and restarts the dismissal timer; when the timer fires
// the slot is cleared. Close cancels any pending timer and must be called
// when the owner is torn down.
package notify

import (
	"sync"
	"time"

	"github.com/dmitrijs2005/patientkeeper/internal/client/models"
)

const DefaultTTL = 3 * time.Second

// Listener is called after the slot changes. visible is false when the
// slot was cleared. It runs outside the queue lock and may be invoked from
// the timer goroutine.
type Listener func(n models.Notification, visible bool)

type Queue struct {
	mu       sync.Mutex
	ttl      time.Duration
	current  models.Notification
	visible  bool
	gen      uint64
	timer    *time.Timer
	closed   bool
	listener Listener
}

// NewQueue returns a queue whose notifications live for ttl. A non-positive
// ttl selects DefaultTTL.
func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl}
}

// OnChange installs fn as the change listener, replacing any previous one.
func (q *Queue) OnChange(fn Listener) {
	q.mu.Lock()
	q.listener = fn
	q.mu.Unlock()
}

// Set shows message, discarding any current notification and its timer.
// Calls after Close are ignored.
func (q *Queue) Set(message string, kind models.NotificationKind) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	if q.timer != nil {
		q.timer.Stop()
	}
	q.gen++
	gen := q.gen
	q.current = models.Notification{Message: message, Kind: kind}
	q.visible = true
	q.timer = time.AfterFunc(q.ttl, func() { q.expire(gen) })
	n, fn := q.current, q.listener
	q.mu.Unlock()

	if fn != nil {
		fn(n, true)
	}
}

// expire clears the slot if it still holds the notification of generation gen.
func (q *Queue) expire(gen uint64) {
	q.mu.Lock()
	if q.closed || gen != q.gen || !q.visible {
		q.mu.Unlock()
		return
	}
	n := q.current
	q.current = models.Notification{}
	q.visible = false
	q.timer = nil
	fn := q.listener
	q.mu.Unlock()

	if fn != nil {
		fn(n, false)
	}
}

// Current returns the visible notification, if any.
func (q *Queue) Current() (models.Notification, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.current, q.visible
}

// Close stops the pending timer and clears the slot without notifying
// the listener. It is safe to call more than once.
func (q *Queue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.timer != nil {
		q.timer.Stop()
		q.timer = nil
	}
	q.closed = true
	q.visible = false
	q.current = models.Notification{}
}

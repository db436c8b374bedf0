// File: internal/conversation/unread.go
package conversation

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Watcher is the live-query slice of the repository the aggregator needs.
type Watcher interface {
	Watch(ctx context.Context, uid string) (<-chan []Conversation, error)
}

// BadgeListener receives unread badge values.
type BadgeListener func(int64)

// Aggregator maintains one live subscription over the current identity's
// conversations and reduces every snapshot to a single unread badge value.
// The subscription lifetime is tied to identity presence: SetIdentity tears
// down the previous watch and, on sign-out, forces the badge back to zero
// rather than leaving a stale count.
type Aggregator struct {
	watcher Watcher
	logger  *zap.Logger

	mu          sync.Mutex
	uid         string
	badge       int64
	cancel      context.CancelFunc
	subscribers map[int]BadgeListener
	nextSubID   int
}

// NewAggregator creates an aggregator with no active subscription.
func NewAggregator(watcher Watcher, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		watcher:     watcher,
		logger:      logger.Named("unread"),
		subscribers: make(map[int]BadgeListener),
	}
}

// SetIdentity re-keys the aggregation. An empty uid (sign-out) cancels the
// watch and publishes a zero badge.
func (a *Aggregator) SetIdentity(uid string) {
	a.mu.Lock()
	if a.uid == uid {
		a.mu.Unlock()
		return
	}
	a.uid = uid
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.mu.Unlock()

	if uid == "" {
		a.publish(0)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	ch, err := a.watcher.Watch(ctx, uid)
	if err != nil {
		a.logger.Error("Failed to establish conversation watch", zap.Error(err), zap.String("uid", uid))
		cancel()
		a.publish(0)
		return
	}

	go a.run(ctx, uid, ch)
}

// run consumes snapshots until the watch is torn down. Every snapshot is a
// full re-sum over the identity's conversations.
func (a *Aggregator) run(ctx context.Context, uid string, ch <-chan []Conversation) {
	for {
		select {
		case <-ctx.Done():
			return
		case convs, ok := <-ch:
			if !ok {
				return
			}
			var total int64
			for i := range convs {
				total += convs[i].UnreadFor(uid)
			}

			// A re-key may have raced the snapshot; drop it if so.
			a.mu.Lock()
			stale := a.uid != uid
			a.mu.Unlock()
			if stale {
				return
			}
			a.publish(total)
		}
	}
}

// Badge returns the latest published badge value.
func (a *Aggregator) Badge() int64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.badge
}

// Subscribe registers a badge listener, immediately delivering the current
// value. Returns the listener's teardown function.
func (a *Aggregator) Subscribe(l BadgeListener) func() {
	a.mu.Lock()
	id := a.nextSubID
	a.nextSubID++
	a.subscribers[id] = l
	badge := a.badge
	a.mu.Unlock()

	l(badge)

	return func() {
		a.mu.Lock()
		delete(a.subscribers, id)
		a.mu.Unlock()
	}
}

// Close cancels any active watch.
func (a *Aggregator) Close() {
	a.mu.Lock()
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.mu.Unlock()
}

func (a *Aggregator) publish(badge int64) {
	a.mu.Lock()
	a.badge = badge
	listeners := make([]BadgeListener, 0, len(a.subscribers))
	for _, l := range a.subscribers {
		listeners = append(listeners, l)
	}
	a.mu.Unlock()

	for _, l := range listeners {
		l(badge)
	}
}

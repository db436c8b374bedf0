// File: internal/conversation/unread_test.go
package conversation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklink_app/internal/common"
)

// fakeWatcher hands each identity its own snapshot channel.
type fakeWatcher struct {
	mu       sync.Mutex
	channels map[string]chan []Conversation
	calls    int
	err      error
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{channels: make(map[string]chan []Conversation)}
}

func (f *fakeWatcher) Watch(ctx context.Context, uid string) (<-chan []Conversation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan []Conversation, 4)
	f.channels[uid] = ch
	return ch, nil
}

func (f *fakeWatcher) push(uid string, convs []Conversation) {
	f.mu.Lock()
	ch := f.channels[uid]
	f.mu.Unlock()
	ch <- convs
}

// awaitBadge blocks until the aggregator publishes want, or fails the test.
func awaitBadge(t *testing.T, updates <-chan int64, want int64) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case got := <-updates:
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for badge value %d", want)
		}
	}
}

func setupAggregator(t *testing.T, watcher Watcher) (*Aggregator, <-chan int64) {
	a := NewAggregator(watcher, zap.NewNop())
	t.Cleanup(a.Close)

	updates := make(chan int64, 16)
	unsub := a.Subscribe(func(badge int64) { updates <- badge })
	t.Cleanup(unsub)

	// Drain the immediate initial delivery.
	<-updates
	return a, updates
}

func TestAggregator_SumsUnreadAcrossConversations(t *testing.T) {
	watcher := newFakeWatcher()
	a, updates := setupAggregator(t, watcher)

	a.SetIdentity("u1")
	watcher.push("u1", []Conversation{
		{ID: "c1", UnreadCounts: map[string]int64{"u1": 2, "u2": 7}},
		{ID: "c2", UnreadCounts: map[string]int64{"u1": 3}},
	})

	awaitBadge(t, updates, 5)
	assert.Equal(t, int64(5), a.Badge())
}

func TestAggregator_BadgeDropsAfterMarkRead(t *testing.T) {
	// Marking a conversation read shows up as a fresh snapshot with that
	// counter zeroed; the badge must follow it down.
	watcher := newFakeWatcher()
	a, updates := setupAggregator(t, watcher)

	a.SetIdentity("u1")
	watcher.push("u1", []Conversation{
		{ID: "c1", UnreadCounts: map[string]int64{"u1": 4}},
		{ID: "c2", UnreadCounts: map[string]int64{"u1": 1}},
	})
	awaitBadge(t, updates, 5)

	watcher.push("u1", []Conversation{
		{ID: "c1", UnreadCounts: map[string]int64{"u1": 0}},
		{ID: "c2", UnreadCounts: map[string]int64{"u1": 1}},
	})
	awaitBadge(t, updates, 1)
}

func TestAggregator_SignOutZeroesBadge(t *testing.T) {
	watcher := newFakeWatcher()
	a, updates := setupAggregator(t, watcher)

	a.SetIdentity("u1")
	watcher.push("u1", []Conversation{
		{ID: "c1", UnreadCounts: map[string]int64{"u1": 9}},
	})
	awaitBadge(t, updates, 9)

	a.SetIdentity("")
	awaitBadge(t, updates, 0)
	assert.Equal(t, int64(0), a.Badge())
}

func TestAggregator_RekeySwitchesIdentity(t *testing.T) {
	watcher := newFakeWatcher()
	a, updates := setupAggregator(t, watcher)

	a.SetIdentity("u1")
	watcher.push("u1", []Conversation{
		{ID: "c1", UnreadCounts: map[string]int64{"u1": 3}},
	})
	awaitBadge(t, updates, 3)

	a.SetIdentity("u2")
	watcher.push("u2", []Conversation{
		{ID: "c9", UnreadCounts: map[string]int64{"u2": 6}},
	})
	awaitBadge(t, updates, 6)
}

func TestAggregator_SameIdentityIsANoOp(t *testing.T) {
	watcher := newFakeWatcher()
	a, _ := setupAggregator(t, watcher)

	a.SetIdentity("u1")
	a.SetIdentity("u1")

	watcher.mu.Lock()
	calls := watcher.calls
	watcher.mu.Unlock()
	require.Equal(t, 1, calls)
}

func TestAggregator_WatchFailurePublishesZero(t *testing.T) {
	watcher := newFakeWatcher()
	watcher.err = common.ErrInternal
	a, updates := setupAggregator(t, watcher)

	a.SetIdentity("u1")
	awaitBadge(t, updates, 0)
	assert.Equal(t, int64(0), a.Badge())
}

package activity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestTracker(capacity int) (*Tracker, *time.Time) {
	tr := NewTracker(capacity, slog.Default())
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return clock }
	return tr, &clock
}

func TestTouchUpsert(t *testing.T) {
	tr, clock := newTestTracker(0)

	tr.Touch(Entry{UserID: "u1", Username: "alice"})
	*clock = clock.Add(time.Minute)
	tr.Touch(Entry{UserID: "u1", Username: "alice", Browser: "Firefox"})

	count, latest := tr.Snapshot(0)
	require.Len(t, latest, 1, "повторный визит не должен плодить записи")
	assert.Equal(t, 1, count)
	assert.Equal(t, "Firefox", latest[0].Browser)
	assert.Equal(t, *clock, latest[0].LastActive)
}

func TestTouchEviction(t *testing.T) {
	tr, clock := newTestTracker(3)

	for i := 0; i < 4; i++ {
		tr.Touch(Entry{UserID: fmt.Sprintf("u%d", i)})
		*clock = clock.Add(time.Second)
	}

	_, latest := tr.Snapshot(0)
	require.Len(t, latest, 3)
	for _, e := range latest {
		assert.NotEqual(t, "u0", e.UserID, "самый давний посетитель должен вытесняться")
	}
}

func TestSnapshotActiveWindow(t *testing.T) {
	tr, clock := newTestTracker(0)

	tr.Touch(Entry{UserID: "stale"})
	*clock = clock.Add(11 * time.Minute)
	tr.Touch(Entry{UserID: "fresh"})
	*clock = clock.Add(9 * time.Minute)

	count, latest := tr.Snapshot(0)
	assert.Equal(t, 1, count, "активен только посетитель в пределах 10 минут")
	assert.Len(t, latest, 2, "устаревшие записи остаются в журнале")
}

func TestSnapshotOrderAndLimit(t *testing.T) {
	tr, clock := newTestTracker(0)

	for i := 0; i < 5; i++ {
		tr.Touch(Entry{UserID: fmt.Sprintf("u%d", i)})
		*clock = clock.Add(time.Second)
	}

	count, latest := tr.Snapshot(2)
	assert.Equal(t, 5, count)
	require.Len(t, latest, 2)
	assert.Equal(t, "u4", latest[0].UserID)
	assert.Equal(t, "u3", latest[1].UserID)
}

func TestSnapshotEmpty(t *testing.T) {
	tr, _ := newTestTracker(0)

	count, latest := tr.Snapshot(10)
	assert.Zero(t, count)
	assert.Empty(t, latest)
}

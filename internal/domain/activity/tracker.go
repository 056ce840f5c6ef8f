package activity

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

const (
	DefaultCapacity = 12

	// Посетитель считается активным, если был замечен за последние 10 минут.
	activeWindow = 10 * time.Minute
)

// Entry - один посетитель в журнале активности.
type Entry struct {
	UserID     string    `json:"userId"`
	Username   string    `json:"username"`
	IP         string    `json:"ip,omitempty"`
	Device     string    `json:"device"`
	OS         string    `json:"os"`
	Browser    string    `json:"browser"`
	LastActive time.Time `json:"lastActive"`
}

// Tracker - ограниченный по емкости журнал недавних посетителей. Живет
// только в памяти процесса и явно инжектируется туда, где нужен; никакого
// глобального состояния.
type Tracker struct {
	mu       sync.Mutex
	capacity int
	entries  []Entry
	now      func() time.Time
	log      *slog.Logger
}

func NewTracker(capacity int, log *slog.Logger) *Tracker {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Tracker{
		capacity: capacity,
		now:      time.Now,
		log:      log.With("component", "activity_tracker"),
	}
}

// Touch upserts a visitor by user id and evicts the least recently active
// entry once the journal is over capacity.
func (t *Tracker) Touch(e Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e.LastActive = t.now()

	for i := range t.entries {
		if t.entries[i].UserID == e.UserID {
			t.entries[i] = e
			return
		}
	}

	t.entries = append(t.entries, e)
	if len(t.entries) > t.capacity {
		sort.Slice(t.entries, func(i, j int) bool {
			return t.entries[i].LastActive.Before(t.entries[j].LastActive)
		})
		t.entries = t.entries[len(t.entries)-t.capacity:]
		t.log.Debug("oldest visitor evicted", "capacity", t.capacity)
	}
}

// Snapshot returns the count of visitors active within the window and the
// latest entries, most recent first.
func (t *Tracker) Snapshot(limit int) (int, []Entry) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	active := 0
	for i := range t.entries {
		if now.Sub(t.entries[i].LastActive) < activeWindow {
			active++
		}
	}

	latest := make([]Entry, len(t.entries))
	copy(latest, t.entries)
	sort.Slice(latest, func(i, j int) bool {
		return latest[i].LastActive.After(latest[j].LastActive)
	})

	if limit > 0 && len(latest) > limit {
		latest = latest[:limit]
	}
	return active, latest
}

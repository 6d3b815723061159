package realtime

import (
	"sync"

	"path-of-sharing/internal/features/giveaway/models"
)

// EntryView is a consumer side list of entries keyed by entry id. It is
// seeded with a snapshot and absorbs notifications that may repeat entries
// already in the snapshot or delivered before.
type EntryView struct {
	mu      sync.Mutex
	entries []models.Entry
	seen    map[string]struct{}
}

func NewEntryView(snapshot []*models.Entry) *EntryView {
	v := &EntryView{
		entries: make([]models.Entry, 0, len(snapshot)),
		seen:    make(map[string]struct{}, len(snapshot)),
	}
	for _, e := range snapshot {
		v.Merge(*e)
	}
	return v
}

// Merge appends entry unless its id is already present and reports whether
// the view changed.
func (v *EntryView) Merge(entry models.Entry) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if _, ok := v.seen[entry.ID]; ok {
		return false
	}
	v.seen[entry.ID] = struct{}{}
	v.entries = append(v.entries, entry)
	return true
}

// Entries returns a copy in snapshot then arrival order.
func (v *EntryView) Entries() []models.Entry {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]models.Entry, len(v.entries))
	copy(out, v.entries)
	return out
}

func (v *EntryView) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.entries)
}

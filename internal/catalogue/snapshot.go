// Package catalogue provides the read-only item catalogue view the
// engine computes against. A Snapshot is versioned and immutable: every
// engine call receives one and no call ever mutates it, so concurrent
// requests share snapshots freely without locking.
package catalogue

import (
	"time"

	"github.com/scapelab/gear-api/internal/entities/osrs"
)

// Snapshot is an immutable projection of the item catalogue at a point
// in time. Build one with New and treat it as read-only afterwards.
type Snapshot struct {
	version   string
	createdAt time.Time

	items  []osrs.Item
	byID   map[int64]*osrs.Item
	bySlot map[osrs.Slot][]*osrs.Item
}

// New builds a snapshot from a provider's item list. The items are copied
// so later mutation of the input slice cannot leak into the snapshot.
func New(version string, createdAt time.Time, items []osrs.Item) *Snapshot {
	s := &Snapshot{
		version:   version,
		createdAt: createdAt,
		items:     make([]osrs.Item, len(items)),
		byID:      make(map[int64]*osrs.Item, len(items)),
		bySlot:    make(map[osrs.Slot][]*osrs.Item, len(osrs.CanonicalSlots)),
	}
	copy(s.items, items)

	for i := range s.items {
		item := &s.items[i]
		s.byID[item.ID] = item
		s.bySlot[item.Slot] = append(s.bySlot[item.Slot], item)
	}
	return s
}

// Version returns the snapshot version
func (s *Snapshot) Version() string {
	return s.version
}

// CreatedAt returns when the snapshot was built
func (s *Snapshot) CreatedAt() time.Time {
	return s.createdAt
}

// Len returns the number of items in the snapshot
func (s *Snapshot) Len() int {
	return len(s.items)
}

// Items returns every item in the snapshot. The returned slice is shared;
// callers must not modify it.
func (s *Snapshot) Items() []osrs.Item {
	return s.items
}

// ByID returns the item with the given id, or nil
func (s *Snapshot) ByID(id int64) *osrs.Item {
	return s.byID[id]
}

// BySlot returns the items occupying the given slot. The returned slice
// is shared; callers must not modify it.
func (s *Snapshot) BySlot(slot osrs.Slot) []*osrs.Item {
	return s.bySlot[slot]
}

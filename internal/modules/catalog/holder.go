package catalog

import "sync"

// Holder keeps the current snapshot and serialises the mutations that replace it.
// Readers always get a complete snapshot; a snapshot is never modified once published.
type Holder struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewHolder(s *Snapshot) *Holder { return &Holder{snap: s} }

// Snapshot returns the current snapshot.
func (h *Holder) Snapshot() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

// Update hands fn a detached copy of the current data and publishes the result
// as the new snapshot. Nothing is published when fn fails.
func (h *Holder) Update(fn func(d *Data) error) (*Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	d := h.snap.Data()
	if err := fn(&d); err != nil {
		return nil, err
	}
	h.snap = NewSnapshot(d)
	return h.snap, nil
}

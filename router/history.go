package router

import "sync"

// Ensure MemoryHistory implements History at compile time.
var _ History = (*MemoryHistory)(nil)

// MemoryHistory is an in-process History with back and forward
// navigation.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
	index   int
}

// NewMemoryHistory returns an empty MemoryHistory.
func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{index: -1}
}

// Push adds e after the current entry, discarding forward entries.
func (h *MemoryHistory) Push(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], e)
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry, or adds the first one.
func (h *MemoryHistory) Replace(e Entry) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 {
		h.entries = append(h.entries, e)
		h.index = 0
		return
	}
	h.entries[h.index] = e
}

// Back moves to the previous entry and returns it.
func (h *MemoryHistory) Back() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index <= 0 {
		return Entry{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves to the next entry and returns it.
func (h *MemoryHistory) Forward() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index+1 >= len(h.entries) {
		return Entry{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// Current returns the current entry.
func (h *MemoryHistory) Current() (Entry, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index < 0 {
		return Entry{}, false
	}
	return h.entries[h.index], true
}

// Len returns the number of entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

package domain

import "time"

// DefaultHistoryCapacity is the number of results kept for quick recall
const DefaultHistoryCapacity = 6

// HistoryEntry is a previously generated result
type HistoryEntry struct {
	CreatedAt         time.Time
	Definition        string
	DiagramType       string
	SourceDescription string
}

// History keeps the most recent results, newest first.
// Adding to a full history evicts the oldest entry.
type History struct {
	capacity int
	entries  []HistoryEntry
}

// NewHistory creates a history bounded to capacity entries.
// A non-positive capacity falls back to DefaultHistoryCapacity.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultHistoryCapacity
	}
	return &History{
		capacity: capacity,
		entries:  make([]HistoryEntry, 0, capacity),
	}
}

// Add inserts entry as the most recent one
func (h *History) Add(entry HistoryEntry) {
	if len(h.entries) == h.capacity {
		h.entries = h.entries[:h.capacity-1]
	}
	h.entries = append([]HistoryEntry{entry}, h.entries...)
}

// Entries returns a copy of the entries, newest first
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Get returns the entry at index i (0 = newest)
func (h *History) Get(i int) (HistoryEntry, bool) {
	if i < 0 || i >= len(h.entries) {
		return HistoryEntry{}, false
	}
	return h.entries[i], true
}

// Len returns the number of entries
func (h *History) Len() int {
	return len(h.entries)
}

// Capacity returns the maximum number of entries kept
func (h *History) Capacity() int {
	return h.capacity
}

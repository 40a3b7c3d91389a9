package renderer

import "sync"

// BufferTarget is a RenderTarget that keeps the latest rendered content in memory.
// The TUI preview reads it after each state change.
type BufferTarget struct {
	content string
	mu      sync.RWMutex
	version uint64
}

// NewBufferTarget creates an empty target
func NewBufferTarget() *BufferTarget {
	return &BufferTarget{}
}

// Replace discards the previous content
func (b *BufferTarget) Replace(content string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.content = content
	b.version++
}

// Content returns the current content
func (b *BufferTarget) Content() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.content
}

// Version increases with every Replace
func (b *BufferTarget) Version() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.version
}

// Package secure holds phrase input in locked, zeroed-on-destroy memory.
package secure

import (
	"bytes"
	"runtime"
	"sync"
)

// Buffer wraps sensitive bytes (a typed or pasted phrase). The backing memory
// is mlocked where the platform allows and zeroed by Destroy.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
}

// NewBuffer allocates a zeroed buffer of size bytes.
func NewBuffer(size int) *Buffer {
	b := &Buffer{data: make([]byte, size)}
	b.locked = mlock(b.data)

	runtime.SetFinalizer(b, func(b *Buffer) {
		b.Destroy()
	})
	return b
}

// Take moves src into a new Buffer and zeroes src.
func Take(src []byte) *Buffer {
	b := NewBuffer(len(src))
	copy(b.data, src)
	clear(src)
	return b
}

// Bytes returns the underlying slice, or nil after Destroy.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.data
}

// Len returns the number of held bytes.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}

// IsLocked reports whether the memory is mlocked.
func (b *Buffer) IsLocked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.locked
}

// Fields splits the held bytes on whitespace. The returned strings are
// ordinary Go strings and outlive Destroy.
func (b *Buffer) Fields() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	fields := bytes.Fields(b.data)
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = string(f)
	}
	return out
}

// Destroy zeroes and unlocks the memory. Safe to call multiple times.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.data == nil {
		return
	}

	clear(b.data)
	if b.locked {
		munlock(b.data)
		b.locked = false
	}
	b.data = nil

	runtime.SetFinalizer(b, nil)
}

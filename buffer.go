package go_bufferpool

import (
	"fmt"
	"io"
)

// Buffer is a fixed-capacity byte region with position and limit cursors.
// Writes and reads happen between position and limit; the capacity never
// changes after creation.
//
// A Buffer obtained from a pool is exclusively owned by the caller until it
// is handed back via Deallocate. Concurrent use of a single Buffer is a
// caller error.
type Buffer struct {
	data  []byte
	pos   int
	limit int
}

func newBuffer(size int) *Buffer {
	return &Buffer{data: make([]byte, size), limit: size}
}

func (b *Buffer) Cap() int { return len(b.data) }

func (b *Buffer) Position() int { return b.pos }

func (b *Buffer) SetPosition(pos int) error {
	if pos < 0 || pos > b.limit {
		return fmt.Errorf("position %d out of range [0, %d]", pos, b.limit)
	}
	b.pos = pos
	return nil
}

func (b *Buffer) Limit() int { return b.limit }

// SetLimit bounds the usable region. If the current position is past the new
// limit, it is pulled back to the limit.
func (b *Buffer) SetLimit(limit int) error {
	if limit < 0 || limit > len(b.data) {
		return fmt.Errorf("limit %d out of range [0, %d]", limit, len(b.data))
	}
	b.limit = limit
	if b.pos > limit {
		b.pos = limit
	}
	return nil
}

// Clear resets position to 0 and limit to the capacity. The bytes themselves
// are left untouched, so a recycled buffer may still carry stale content.
func (b *Buffer) Clear() {
	b.pos = 0
	b.limit = len(b.data)
}

// Flip switches the buffer from filling to draining: limit moves to the
// current position, position moves to 0.
func (b *Buffer) Flip() {
	b.limit = b.pos
	b.pos = 0
}

// Remaining reports how many bytes are left between position and limit.
func (b *Buffer) Remaining() int { return b.limit - b.pos }

// Write copies p into the buffer at the current position and advances it.
// If p does not fit, the remaining space is filled and ErrBufferFull is
// returned alongside the short count.
func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.data[b.pos:b.limit], p)
	b.pos += n
	if n < len(p) {
		return n, fmt.Errorf("%w: %d of %d bytes written", ErrBufferFull, n, len(p))
	}
	return n, nil
}

// Read copies bytes from the current position into p and advances the
// position. Returns io.EOF once the position reaches the limit.
func (b *Buffer) Read(p []byte) (int, error) {
	if b.pos >= b.limit {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.pos:b.limit])
	b.pos += n
	return n, nil
}

// Bytes exposes the region between position and limit without copying.
func (b *Buffer) Bytes() []byte {
	return b.data[b.pos:b.limit]
}

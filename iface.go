package go_bufferpool

import (
	"context"
	"time"
)

type IBufferPool interface {
	// Allocate hands out a buffer of exactly size bytes, blocking up to
	// timeout for space to become available. The returned buffer is
	// exclusively owned by the caller until it is passed to Deallocate.
	Allocate(ctx context.Context, size int, timeout time.Duration) (*Buffer, error)

	// Deallocate returns a buffer to the pool. Must be called at most once
	// per allocated buffer.
	Deallocate(buf *Buffer)

	// utils

	Stats() Stats
}

var _ IBufferPool = (*BufferPool)(nil)

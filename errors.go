package go_bufferpool

import "errors"

var (
	// ErrInvalidSize is returned when the requested size is non-positive or
	// exceeds the total pool capacity. Detected before any locking or waiting.
	ErrInvalidSize = errors.New("invalid buffer size")

	// ErrTimeout is returned when no space became available within the
	// caller's timeout. The waiter registration is cleaned up before this
	// propagates, so a retry with a fresh timeout is always safe.
	ErrTimeout = errors.New("timed out waiting for buffer space")

	// ErrCancelled is returned when the caller's context is cancelled while
	// blocked in Allocate. Same cleanup guarantee as ErrTimeout.
	ErrCancelled = errors.New("allocation cancelled")

	// ErrBufferFull is returned by Buffer.Write when the payload does not fit
	// between the current position and the limit.
	ErrBufferFull = errors.New("buffer is full")
)

// Package go_bufferpool implements a fixed-capacity, thread-safe buffer pool.
//
// The pool hands out buffers of arbitrary requested sizes from a bounded byte
// budget. Buffers of one distinguished slot size are recycled through a FIFO
// cache instead of being re-allocated; every other size is created fresh and
// its bytes are returned to the free budget on deallocation. When the budget
// is exhausted, Allocate blocks until space is returned, the timeout passes,
// or the caller's context is cancelled.
package go_bufferpool

import (
	"container/list"
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/eapache/queue"
	"go.uber.org/zap"
)

// BufferPool is a bounded allocator with flyweight reuse of a single slot
// size. All mutable state is guarded by one mutex; blocked callers park on
// per-waiter wake channels queued in arrival order.
type BufferPool struct {
	capacity int
	slotSize int

	mu          sync.Mutex
	free        int
	outstanding int
	slotQueue   *queue.Queue // of *Buffer, each exactly slotSize bytes
	waiters     *list.List   // of chan struct{}, arrival order

	logger *zap.Logger
}

// New creates a pool with the given total capacity and reusable slot size,
// both in bytes. The caller must ensure slotSize <= capacity.
func New(capacity, slotSize int, opts ...OptionFn) *BufferPool {
	p := &BufferPool{
		capacity:  capacity,
		slotSize:  slotSize,
		free:      capacity,
		slotQueue: queue.New(),
		waiters:   list.New(),
		logger:    zap.L(),
	}

	for _, o := range opts {
		o(p)
	}

	return p
}

// Allocate hands out a buffer of exactly size bytes.
//
// A request for the slot size is served from the recycle queue when possible;
// any other request converts idle slots back into free space as needed and
// allocates fresh memory. When neither path can proceed, the caller is queued
// behind earlier waiters and retries on every wake-up until the timeout
// budget is spent or ctx is cancelled.
//
// The returned buffer has position 0 and limit equal to its capacity. Its
// content is undefined: a recycled slot may carry bytes from a previous
// holder.
func (p *BufferPool) Allocate(ctx context.Context, size int, timeout time.Duration) (*Buffer, error) {
	if size <= 0 || size > p.capacity {
		p.logger.Error("invalid buffer size requested",
			zap.Int("size", size), zap.Int("capacity", p.capacity))
		return nil, fmt.Errorf("%w: %d (pool capacity %d)", ErrInvalidSize, size, p.capacity)
	}

	p.mu.Lock()
	defer func() {
		// Forward availability to the oldest waiter before every unlock,
		// even when this call consumed space itself. One signal per unlock;
		// the woken waiter passes it on the same way.
		p.signalNext()
		p.mu.Unlock()
	}()

	if buf, ok := p.tryAllocate(size); ok {
		return buf, nil
	}

	// Out of space. Register at the back of the waiter queue; the handle is
	// removed on every exit path so nothing leaks on timeout or cancellation.
	wake := make(chan struct{}, 1)
	elem := p.waiters.PushBack(wake)
	defer p.waiters.Remove(elem)

	remaining := timeout
	for {
		start := time.Now()

		p.mu.Unlock()
		timer := time.NewTimer(remaining)
		select {
		case <-wake:
			timer.Stop()
		case <-timer.C:
			p.mu.Lock()
			p.logger.Warn("timed out waiting for buffer space",
				zap.Int("size", size), zap.Duration("timeout", timeout))
			return nil, fmt.Errorf("%w: no %d bytes available within %v", ErrTimeout, size, timeout)
		case <-ctx.Done():
			timer.Stop()
			p.mu.Lock()
			p.logger.Warn("allocation cancelled while waiting",
				zap.Int("size", size), zap.Error(ctx.Err()))
			return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		}
		p.mu.Lock()

		// A wake-up is a hint, not a grant. Re-run both fast paths and keep
		// waiting on whatever budget is left.
		if buf, ok := p.tryAllocate(size); ok {
			return buf, nil
		}

		remaining -= time.Since(start)
		if remaining <= 0 {
			p.logger.Warn("timed out waiting for buffer space",
				zap.Int("size", size), zap.Duration("timeout", timeout))
			return nil, fmt.Errorf("%w: no %d bytes available within %v", ErrTimeout, size, timeout)
		}
	}
}

// Deallocate returns a buffer to the pool. Slot-sized buffers are cleared and
// recycled; any other size melts back into free space. Must be called at most
// once per allocated buffer.
func (p *BufferPool) Deallocate(buf *Buffer) {
	if buf == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if buf.Cap() == p.slotSize {
		buf.Clear()
		p.slotQueue.Add(buf)
	} else {
		p.free += buf.Cap()
	}
	p.outstanding -= buf.Cap()

	// A deallocation always creates availability.
	p.signalHead()
}

// tryAllocate runs the two fast paths. Caller must hold p.mu.
func (p *BufferPool) tryAllocate(size int) (*Buffer, bool) {
	// Flyweight path: recycle an idle slot of exactly the requested size.
	if size == p.slotSize && p.slotQueue.Length() > 0 {
		buf := p.slotQueue.Remove().(*Buffer)
		buf.Clear()
		p.outstanding += size
		return buf, true
	}

	// Budget path: enough total space once idle slots are melted down.
	if p.free+p.slotQueue.Length()*p.slotSize >= size {
		p.freeUp(size)
		p.free -= size
		p.outstanding += size
		return newBuffer(size), true
	}

	return nil, false
}

// freeUp converts idle slots into free space until size fits or the recycle
// queue runs dry. Caller must hold p.mu.
func (p *BufferPool) freeUp(size int) {
	for size > p.free && p.slotQueue.Length() > 0 {
		buf := p.slotQueue.Remove().(*Buffer)
		p.free += buf.Cap()
	}
}

// signalHead delivers one wake-up to the oldest waiter, if any. Non-blocking:
// each waiter channel holds at most one pending signal, extras are dropped.
// Caller must hold p.mu.
func (p *BufferPool) signalHead() {
	if p.waiters.Len() == 0 {
		return
	}
	wake := p.waiters.Front().Value.(chan struct{})
	select {
	case wake <- struct{}{}:
	default:
	}
}

// signalNext wakes the oldest waiter unless the pool is fully exhausted.
// Caller must hold p.mu.
func (p *BufferPool) signalNext() {
	if p.free == 0 && p.slotQueue.Length() == 0 {
		return
	}
	p.signalHead()
}

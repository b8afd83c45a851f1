package go_bufferpool

// Stats is a point-in-time snapshot of the pool accounting. Whenever the
// lock is free the fields satisfy
//
//	Free + PooledSlots*SlotSize + Outstanding == Capacity
type Stats struct {
	// Capacity is the immutable total budget in bytes.
	Capacity int

	// SlotSize is the distinguished reusable buffer size in bytes.
	SlotSize int

	// Free is the byte count available for new allocation and not
	// represented by a pooled slot.
	Free int

	// PooledSlots is the number of idle slot buffers in the recycle queue.
	PooledSlots int

	// Outstanding is the total byte count of buffers currently held by
	// callers.
	Outstanding int

	// Waiters is the number of callers currently blocked in Allocate.
	Waiters int
}

func (p *BufferPool) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Stats{
		Capacity:    p.capacity,
		SlotSize:    p.slotSize,
		Free:        p.free,
		PooledSlots: p.slotQueue.Length(),
		Outstanding: p.outstanding,
		Waiters:     p.waiters.Len(),
	}
}

package go_bufferpool

import (
	"fmt"

	"go.uber.org/zap"
)

type OptionFn func(*BufferPool)

// WithPrewarmedSlots pre-creates n slot buffers at construction time,
// consuming free space up front so the first n slot allocations never touch
// the allocator. Panics if n slots do not fit into the pool capacity.
func WithPrewarmedSlots(n int) OptionFn {
	return func(p *BufferPool) {
		if n <= 0 {
			return
		}
		if n*p.slotSize > p.capacity {
			msg := fmt.Sprintf("cannot prewarm %d slots of %d bytes into a %d byte pool",
				n, p.slotSize, p.capacity)
			zap.L().Error(msg)
			panic(msg)
		}
		for i := 0; i < n; i++ {
			p.free -= p.slotSize
			p.slotQueue.Add(newBuffer(p.slotSize))
		}
	}
}

// WithLogger scopes the pool to the given logger instead of the global one.
func WithLogger(logger *zap.Logger) OptionFn {
	return func(p *BufferPool) {
		p.logger = logger
	}
}

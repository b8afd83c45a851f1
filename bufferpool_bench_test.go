package go_bufferpool

import (
	"context"
	"testing"
	"time"
)

const benchTimeout = time.Minute

func BenchmarkAllocate_SlotReuse(b *testing.B) {
	p := New(1<<20, 4096, WithPrewarmedSlots(16))
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf, err := p.Allocate(ctx, 4096, benchTimeout)
			if err != nil {
				b.Fatal(err)
			}
			p.Deallocate(buf)
		}
	})
}

func BenchmarkAllocate_NonSlot(b *testing.B) {
	p := New(1<<20, 4096)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			buf, err := p.Allocate(ctx, 1024, benchTimeout)
			if err != nil {
				b.Fatal(err)
			}
			p.Deallocate(buf)
		}
	})
}

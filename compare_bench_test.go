package couplist

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
)

// coarseMap is the baseline the hand-over-hand list is measured against: a
// plain map behind a single mutex, so every operation serializes.
type coarseMap struct {
	mu sync.Mutex
	m  map[int]int
}

func newCoarseMap() *coarseMap {
	return &coarseMap{m: make(map[int]int)}
}

func (c *coarseMap) Insert(key, value int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[key]; ok {
		return false
	}
	c.m[key] = value
	return true
}

func (c *coarseMap) Remove(key int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.m[key]; !ok {
		return false
	}
	delete(c.m, key)
	return true
}

func (c *coarseMap) Get(key int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *coarseMap) Contains(key int) bool {
	_, ok := c.Get(key)
	return ok
}

func BenchmarkCompareAgainstCoarseLock(b *testing.B) {
	workloads := []struct {
		name         string
		writePercent int
	}{
		{name: "ReadMostly", writePercent: 5},
		{name: "WriteHeavy", writePercent: 90},
		{name: "Mixed", writePercent: 50},
	}

	threadCounts := []int{1, 2, 4, 8, 16, 32}
	const keyRange = 1 << 10

	runWorkers := func(b *testing.B, threads, writePercent int, do func(r *rand.Rand, key, choice int)) {
		var ops int64
		var wg sync.WaitGroup
		wg.Add(threads)
		for tIdx := 0; tIdx < threads; tIdx++ {
			go func(worker int) {
				defer wg.Done()
				r := rand.New(rand.NewSource(int64(worker+1) * 1_000_003))
				for {
					if atomic.AddInt64(&ops, 1) > int64(b.N) {
						break
					}
					do(r, r.Intn(keyRange), r.Intn(100))
				}
			}(tIdx)
		}
		wg.Wait()
	}

	for _, workload := range workloads {
		workload := workload
		b.Run(workload.name, func(b *testing.B) {
			for _, threads := range threadCounts {
				threads := threads

				b.Run(fmt.Sprintf("HandOverHand_P%d", threads), func(b *testing.B) {
					l := NewOrdered[int, int]()
					for i := 0; i < keyRange/2; i++ {
						_ = l.Insert(i, i)
					}
					b.ResetTimer()
					runWorkers(b, threads, workload.writePercent, func(r *rand.Rand, key, choice int) {
						if choice < workload.writePercent {
							if r.Intn(2) == 0 {
								_ = l.Insert(key, key)
							} else {
								_ = l.Remove(key)
							}
						} else {
							_ = l.Contains(key)
						}
					})
				})

				b.Run(fmt.Sprintf("CoarseLock_P%d", threads), func(b *testing.B) {
					c := newCoarseMap()
					for i := 0; i < keyRange/2; i++ {
						_ = c.Insert(i, i)
					}
					b.ResetTimer()
					runWorkers(b, threads, workload.writePercent, func(r *rand.Rand, key, choice int) {
						if choice < workload.writePercent {
							if r.Intn(2) == 0 {
								_ = c.Insert(key, key)
							} else {
								_ = c.Remove(key)
							}
						} else {
							_ = c.Contains(key)
						}
					})
				})
			}
		})
	}
}

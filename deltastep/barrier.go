package deltastep

import "sync"

// cyclicBarrier synchronizes a fixed-size team of goroutines at
// repeated rendezvous points, the way an OpenMP "#pragma omp barrier"
// synchronizes a thread team inside a parallel region. Every Wait
// call blocks until exactly n callers (n set at construction) have
// each called it once, then releases them all together and resets
// for the next round.
type cyclicBarrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	n       int
	waiting int
	round   uint64
}

func newCyclicBarrier(n int) *cyclicBarrier {
	b := &cyclicBarrier{n: n}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *cyclicBarrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	myRound := b.round
	b.waiting++
	if b.waiting == b.n {
		b.waiting = 0
		b.round++
		b.cond.Broadcast()
		return
	}
	for b.round == myRound {
		b.cond.Wait()
	}
}

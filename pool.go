package couplist

import "sync"

// nodePool recycles unlinked nodes. A node enters the pool only after remove
// has redirected its predecessor's link under both locks, so no traversal
// can reach it anymore; the freed flag arms the reclamation tripwire for the
// window between unlink and reuse.
type nodePool[K comparable, V any] struct {
	p sync.Pool
}

func newNodePool[K comparable, V any]() *nodePool[K, V] {
	return &nodePool[K, V]{
		p: sync.Pool{New: func() any { return new(node[K, V]) }},
	}
}

func (np *nodePool[K, V]) acquire(key K, val V) *node[K, V] {
	n := np.p.Get().(*node[K, V])
	n.freed.Store(false)
	n.key = key
	n.val = val
	n.next = nil
	return n
}

func (np *nodePool[K, V]) release(n *node[K, V]) {
	if n == nil || n.tail {
		return
	}
	n.freed.Store(true)

	var zeroK K
	var zeroV V
	n.key = zeroK
	n.val = zeroV
	n.next = nil

	np.p.Put(n)
}

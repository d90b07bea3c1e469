package couplist

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrReclaimed is the panic value raised when a node is locked after it has
// been unlinked and returned to the pool. Hitting it means some traversal
// kept a reference past the point where the node was reachable; the list
// must be considered corrupt and discarded.
var ErrReclaimed = errors.New("couplist: node locked after reclamation")

// node holds one key/value entry and the owned link to its successor.
// mu guards key, val and next as a single unit: they may be read or written
// only while holding mu.
type node[K, V any] struct {
	mu   sync.Mutex
	key  K
	val  V
	next *node[K, V]
	// tail marks the tail sentinel, which compares greater than every key.
	tail bool
	// freed flips to true when the node is handed back to the pool.
	freed atomic.Bool
}

// lock acquires the node's mutex and trips on reclaimed nodes.
func (n *node[K, V]) lock() {
	n.mu.Lock()
	if n.freed.Load() {
		panic(ErrReclaimed)
	}
}

// newSentinels creates the head and tail boundary nodes. The head carries no
// key (traversal never compares it) and the tail flag short-circuits every
// comparison, so no extremal key values are required of K.
func newSentinels[K, V any]() (head, tail *node[K, V]) {
	tail = &node[K, V]{tail: true}
	head = &node[K, V]{next: tail}
	return head, tail
}

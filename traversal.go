package couplist

// find walks the list hand-over-hand and returns the locked pair bracketing
// key: pred.key < key <= curr.key, with pred.next == curr at the moment both
// locks are held. The caller owns both locks and must release them through
// the pair.
//
// The discipline: lock head, lock head.next, then advance by unlocking the
// trailing node only after the next one is locked. At every instant past the
// first acquisition the traversal holds one or two adjacent locks, never
// zero and never more. Mutating pred.next requires pred's lock, so no other
// thread can splice a node into or out of the edge being crossed; the
// pred.next == curr identity never needs re-validation and no restart path
// exists. Locks are only ever taken in list order, which rules out deadlock.
func (l *List[K, V]) find(key K) pair[K, V] {
	pred := l.head
	pred.lock()
	curr := pred.next
	curr.lock()
	for !curr.tail && l.less(curr.key, key) {
		pred.mu.Unlock()
		pred = curr
		curr = pred.next
		curr.lock()
	}
	if findPairHook != nil {
		findPairHook(pred, curr)
	}
	return pair[K, V]{pred: pred, curr: curr}
}

package couplist

// Ascend visits every element in ascending key order, stopping early when fn
// returns false. The walk uses the same lock-coupling discipline as find, so
// each visited edge is observed consistently; it is not a snapshot, and
// elements inserted or removed behind the scan's position are not revisited.
// fn runs with the visited node's lock held and must not call back into the
// list.
func (l *List[K, V]) Ascend(fn func(key K, value V) bool) {
	pred := l.head
	pred.lock()
	curr := pred.next
	curr.lock()
	for !curr.tail {
		if !fn(curr.key, curr.val) {
			break
		}
		pred.mu.Unlock()
		pred = curr
		curr = pred.next
		curr.lock()
	}
	pred.mu.Unlock()
	curr.mu.Unlock()
}

// Keys returns the keys in ascending order.
func (l *List[K, V]) Keys() []K {
	hint := l.Len()
	if hint < 0 {
		hint = 0
	}
	keys := make([]K, 0, hint)
	l.Ascend(func(key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

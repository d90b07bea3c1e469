package couplist

// Insert adds key with the given value. It returns false and leaves the list
// untouched when the key is already present: under concurrent inserts of the
// same key the first writer wins and every other caller observes false.
func (l *List[K, V]) Insert(key K, value V) bool {
	p := l.find(key)
	if p.matches(key) {
		p.release()
		l.metrics.IncInsertConflict()
		return false
	}

	// curr is still locked, so the new node observes a stable successor.
	n := l.pool.acquire(key, value)
	n.next = p.curr
	if insertSpliceHook != nil {
		insertSpliceHook(p.pred, n)
	}
	p.pred.next = n
	p.release()

	l.metrics.AddLen(1)
	return true
}

// Remove deletes the entry for key. It returns false when the key is absent.
func (l *List[K, V]) Remove(key K) bool {
	p := l.find(key)
	if !p.matches(key) {
		p.release()
		l.metrics.IncRemoveMiss()
		return false
	}

	// Unlink happens under both locks, strictly before either is released.
	// Once unlink returns, no traversal can reach the target again, so the
	// node is safe to recycle.
	target := p.unlink()
	l.metrics.AddLen(-1)
	l.pool.release(target)
	return true
}

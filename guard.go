package couplist

// pair owns the two adjacent locked nodes returned by find. Holding both
// guards in one value replaces the guard-aliasing gymnastics that
// hand-over-hand traversal otherwise needs: the pair exists only between
// find's return and one of the release methods below, and every method
// defines the exact release order it performs.
type pair[K comparable, V any] struct {
	pred *node[K, V]
	curr *node[K, V]
}

// matches reports whether curr holds exactly the given key. The tail
// sentinel never matches.
func (p pair[K, V]) matches(key K) bool {
	return !p.curr.tail && p.curr.key == key
}

// release unlocks pred, then curr, without mutating the list.
func (p pair[K, V]) release() {
	p.pred.mu.Unlock()
	p.curr.mu.Unlock()
}

// unlink splices curr out of the list and returns it for reclamation.
// The splice happens while both locks are held; curr is unlocked before
// pred so that no lock is ever released while the chain still routes
// through a node the lock was protecting. After pred's link is redirected
// no traversal can reach curr: reaching it requires pred's lock, which
// this pair holds until the redirect is done.
func (p pair[K, V]) unlink() *node[K, V] {
	target := p.curr
	p.pred.next = target.next
	if removeUnlinkHook != nil {
		removeUnlinkHook(p.pred, target)
	}
	target.mu.Unlock()
	p.pred.mu.Unlock()
	return target
}

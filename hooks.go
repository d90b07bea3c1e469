package couplist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They run on the operating goroutine with the relevant locks held and must
// not block or call back into the list.
var (
	// findPairHook is invoked with the locked pred/curr pair just before
	// find returns it.
	findPairHook func(pred, curr any)

	// insertSpliceHook is invoked right before a new node is linked in.
	insertSpliceHook func(pred, newNode any)

	// removeUnlinkHook is invoked right after the predecessor's link is
	// redirected past the target, while both locks are still held.
	removeUnlinkHook func(pred, target any)
)

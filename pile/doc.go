// Package pile implements the concurrent, ordered, identity-keyed container
// underlying every stateful collection in pilekit: message histories, tool
// registries, graph node and edge sets, and log buffers are all piles.
//
// A Pile composes a keyed map (id to item), a progression defining order, an
// optional runtime type constraint, and a dual-mode guard. Every operation is
// atomic on its own; sequences of operations are not transactional. Blocking
// callers use the plain methods; cooperative callers use the Context-suffixed
// mirrors, which suspend while contending for the same guard.
//
// Iteration is snapshot based: the current order is captured under the guard,
// the guard is released, and items are yielded from the fixed snapshot.
// Concurrent mutation during iteration never corrupts the snapshot but may
// make it diverge from the live pile. That divergence is a documented
// trade-off, not a defect.
package pile

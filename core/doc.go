// Package core provides the foundational identity types shared by every
// collection in pilekit. It defines:
//
//   - ID (opaque random identifiers) and the Identifiable contract
//   - Element (the base identity unit: id, creation time, metadata)
//   - A tag registry with a subtype conformance predicate used for
//     runtime type constraints on piles
//   - The sentinel error taxonomy matched via errors.Is across packages
//
// The package intentionally contains no container logic; piles, progressions
// and their consumers build on these contracts without core depending back
// on any of them.
package core

// Package pilekit provides a small façade over the core building blocks:
// identity-keyed, insertion-ordered, concurrency-safe collections (pile),
// bare orderings over ids (progression) and the shared identity primitives
// (core). Most applications interact with the library by:
//  1. Embedding core.Element in their item types (and optionally implementing
//     core.Tagged for type-constrained piles)
//  2. Creating collections via NewPile / PileOf / NewProgression
//  3. Mutating and reading them through the pile and progression packages
//
// The façade only re-exports constructors; the full APIs live in the
// subpackages. The consumer packages (message, toolreg, graph, logbook) show
// how richer structures compose on top of a pile.
package pilekit

import (
	"github.com/hupe1980/pilekit/core"
	"github.com/hupe1980/pilekit/pile"
	"github.com/hupe1980/pilekit/progression"
)

// NewID generates a fresh random identity.
func NewID() core.ID { return core.NewID() }

// ParseID validates and converts a string into an identity.
func ParseID(s string) (core.ID, error) { return core.ParseID(s) }

// NewPile creates a pile seeded with items. See pile.New for the available
// options (type constraints, strictness, explicit order).
func NewPile[T core.Identifiable](items []T, optFns ...func(o *pile.Options)) (*pile.Pile[T], error) {
	return pile.New(items, optFns...)
}

// PileOf creates an unconstrained pile from items, panicking on invalid
// seeds. Intended for literals and tests.
func PileOf[T core.Identifiable](items ...T) *pile.Pile[T] {
	return pile.Of(items...)
}

// NewProgression creates an ordering seeded with ids; duplicates in the seed
// are dropped.
func NewProgression(ids ...core.ID) *progression.Progression {
	return progression.New(ids...)
}

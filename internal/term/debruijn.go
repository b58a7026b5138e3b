package term

// DeBruijn is a variable's binding depth, counted outward from its nearest
// enclosing Lambda parameter list.
type DeBruijn uint32

// Shifted returns the index as seen from k additional enclosing lambdas.
func (d DeBruijn) Shifted(k uint32) DeBruijn {
	return d + DeBruijn(k)
}

// Cache is a compact, approximate record of which of the first 16 De Bruijn
// indices occur free in a term. It answers "definitely not present" in O(1)
// without walking the term, at the cost of answering "don't know" once an
// index reaches 16 or higher.
//
// UnknownCache is represented with every bit of the 16-bit field set, the
// same bit pattern a term reaches if it genuinely has all sixteen small
// indices free. The two cases are indistinguishable on purpose: once a term
// depends on that many distinct small indices, callers fall back to a full
// traversal anyway, so collapsing them costs nothing.
type Cache uint16

const (
	// EmptyCache describes a term with no free variables among indices 0-15.
	EmptyCache Cache = 0
	// UnknownCache means the cache carries no usable information; callers
	// must traverse the term directly to answer containment queries.
	UnknownCache Cache = 0xFFFF
)

// maxCachedIndex is one past the highest De Bruijn index the cache tracks
// precisely.
const maxCachedIndex = 16

// IsUnknown reports whether the cache carries no usable information.
func (c Cache) IsUnknown() bool {
	return c == UnknownCache
}

// Contains reports whether index is known to occur free in the term this
// cache describes. The second return value is false when the cache cannot
// answer and the caller must fall back to traversing the term.
//
// A non-unknown cache is precise for every index, not just the ones below
// maxCachedIndex: Insert forces the unknown state as soon as an index that
// large is ever recorded, so a cache that isn't UnknownCache provably has
// no free occurrence at or above maxCachedIndex. Index >= maxCachedIndex is
// therefore a known, definite absence, not an unanswerable query.
func (c Cache) Contains(index DeBruijn) (present, known bool) {
	if c.IsUnknown() {
		return false, false
	}
	if index >= maxCachedIndex {
		return false, true
	}
	return c&(1<<uint(index)) != 0, true
}

// Insert records that index occurs free. Indices at or beyond maxCachedIndex
// force the cache into the unknown state, since the fixed-width field has
// nowhere to record them.
func (c Cache) Insert(index DeBruijn) Cache {
	if index >= maxCachedIndex {
		return UnknownCache
	}
	return c | (1 << uint(index))
}

// Union merges two caches, describing the set of indices free in either of
// the terms they came from. If either input is unknown the result is too.
func (c Cache) Union(other Cache) Cache {
	return c | other
}

// ShiftRight adjusts the cache for k fewer enclosing binders, as when a
// subterm moves out from under a Lambda with k parameters. Indices below k
// are bound by those parameters and drop out of the free set entirely.
func (c Cache) ShiftRight(k uint32) Cache {
	if c.IsUnknown() {
		return UnknownCache
	}
	if k >= maxCachedIndex {
		return EmptyCache
	}
	return c >> k
}

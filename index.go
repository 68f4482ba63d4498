package sord

import "github.com/google/btree"

// compareComponent orders two node-reference components where nil is
// a wildcard: nil sorts strictly before any non-nil node, which lets a
// pattern be used directly as a lower-bound search key.
func compareComponent(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return compareNodes(a, b)
}

// lessKey is the total order over quadKey used both to order a
// materialized index and, via the same function, to binary-search it
// with a wildcard-bearing pattern: one comparator serves both roles.
func lessKey(x, y quadKey) bool {
	for i := 0; i < 4; i++ {
		if c := compareComponent(x[i], y[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

// matchKey reports whether pat matches key under the wildcard rule:
// a component matches if either side is nil, or both sides are the
// same node. This is deliberately symmetric, which means a stored
// quad's default-graph nil also matches a pattern bound to a specific
// graph — a quirk of overloading nil for both "default graph" and
// "wildcard" that this port keeps rather than special-cases away.
func matchKey(pat, key quadKey) bool {
	for i := 0; i < 4; i++ {
		if pat[i] != nil && key[i] != nil && pat[i] != key[i] {
			return false
		}
	}
	return true
}

// componentMatches is matchKey's single-component rule, used when
// checking whether a range's leading prefix still matches a pattern.
func componentMatches(a, b *Node) bool {
	return a == nil || b == nil || a == b
}

// orderedIndex is one materialized permutation index: a btree of
// quadKey ordered by lessKey. Insertion keys never contain wildcards;
// lowerBound additionally accepts wildcard-bearing search keys.
type orderedIndex struct {
	tree *btree.BTreeG[quadKey]
}

func newOrderedIndex() *orderedIndex {
	return &orderedIndex{tree: btree.NewG(32, lessKey)}
}

func (ix *orderedIndex) len() int { return ix.tree.Len() }

func (ix *orderedIndex) has(key quadKey) bool {
	_, ok := ix.tree.Get(key)
	return ok
}

// insert adds key if absent, reporting whether it was newly inserted.
func (ix *orderedIndex) insert(key quadKey) bool {
	if ix.has(key) {
		return false
	}
	ix.tree.ReplaceOrInsert(key)
	return true
}

func (ix *orderedIndex) delete(key quadKey) bool {
	_, ok := ix.tree.Delete(key)
	return ok
}

func (ix *orderedIndex) first() (quadKey, bool) {
	var out quadKey
	found := false
	ix.tree.Ascend(func(item quadKey) bool {
		out, found = item, true
		return false
	})
	return out, found
}

func (ix *orderedIndex) last() (quadKey, bool) {
	var out quadKey
	found := false
	ix.tree.Descend(func(item quadKey) bool {
		out, found = item, true
		return false
	})
	return out, found
}

func (ix *orderedIndex) firstGE(pivot quadKey) (quadKey, bool) {
	var out quadKey
	found := false
	ix.tree.AscendGreaterOrEqual(pivot, func(item quadKey) bool {
		out, found = item, true
		return false
	})
	return out, found
}

// next returns the stored key immediately after cur in index order.
func (ix *orderedIndex) next(cur quadKey) (quadKey, bool) {
	var out quadKey
	found := false
	skip := true
	ix.tree.AscendGreaterOrEqual(cur, func(item quadKey) bool {
		if skip {
			skip = false
			return true
		}
		out, found = item, true
		return false
	})
	return out, found
}

// prev returns the stored key immediately before cur in index order.
func (ix *orderedIndex) prev(cur quadKey) (quadKey, bool) {
	var out quadKey
	found := false
	skip := true
	ix.tree.DescendLessOrEqual(cur, func(item quadKey) bool {
		if skip {
			skip = false
			return true
		}
		out, found = item, true
		return false
	})
	return out, found
}

// lowerBound finds a position to begin scanning for pat: the stored
// key at or after the binary-search landing point for pat, walked
// back while the preceding entry still matches pat under the wildcard
// rule, so that the true leftmost match is returned. The caller must
// still check matchKey on the result — a returned position is only a
// starting point, not a guaranteed hit.
func (ix *orderedIndex) lowerBound(pat quadKey) (quadKey, bool) {
	cur, ok := ix.firstGE(pat)
	if !ok {
		last, hasLast := ix.last()
		if !hasLast {
			return quadKey{}, false
		}
		cur = last
	}
	prev, hasPrev := ix.prev(cur)
	if !hasPrev {
		return cur, true
	}
	if !matchKey(pat, cur) {
		if !matchKey(pat, prev) {
			return cur, true
		}
		cur = prev
	}
	for {
		p, has := ix.prev(cur)
		if !has {
			break
		}
		if !matchKey(pat, cur) || !matchKey(pat, p) {
			break
		}
		cur = p
	}
	return cur, true
}

package sord

// Iterator walks one chosen index, yielding the quads matching a
// pattern (or every quad, for Begin). When it walks a triple-ordered
// index for a pattern whose graph is unbound, quads that differ only
// in their graph are yielded once. It holds no external resources;
// Close exists only for API symmetry with a model that might later
// need cleanup.
type Iterator struct {
	model      *Model
	order      Order
	pat        quadKey // pattern permuted into order's component order
	mode       SearchMode
	prefixLen  int
	skipGraphs bool

	cur   quadKey
	ended bool
}

// Find returns an iterator over every quad matching pattern. It never
// fails: an empty result is represented by an iterator whose End is
// already true. A fully-wildcard pattern is equivalent to Begin.
func (m *Model) Find(pattern Quad) *Iterator {
	std := pattern.std()
	if pattern.IsWildcard() {
		return m.Begin()
	}

	order, mode, prefixLen := m.bestIndex(std)
	key := permute(std, order)
	it := &Iterator{
		model:      m,
		order:      order,
		pat:        key,
		mode:       mode,
		prefixLen:  prefixLen,
		skipGraphs: order < GSPO && std[3] == nil,
	}

	idx := m.indices[order]
	if idx == nil {
		it.ended = true
		return it
	}
	start, ok := idx.lowerBound(key)
	if !ok {
		it.ended = true
		return it
	}

	switch mode {
	case ModeAll, ModeRange, ModeSingle:
		if !matchKey(key, start) {
			it.ended = true
			return it
		}
		it.cur = start
	case ModeFilterRange:
		it.cur = start
		it.seekMatchRange()
	case ModeFilterAll:
		it.cur = start
		it.seekMatch()
	}
	return it
}

// Quad returns the current quad in standard (S, P, O, G) order. It
// reports false once the iterator has ended.
func (it *Iterator) Quad() (Quad, bool) {
	if it.ended {
		return Quad{}, false
	}
	return quadFromStd(it.cur.unpermute(it.order)), true
}

// End reports whether the iterator has been exhausted.
func (it *Iterator) End() bool { return it.ended }

// Model returns the Model this iterator walks.
func (it *Iterator) Model() *Model { return it.model }

// Close releases any resources held by the iterator. Iterator holds
// none; Close is a no-op kept so callers can treat iteration
// uniformly with resource-owning iterators elsewhere.
func (it *Iterator) Close() {}

// Next advances the iterator by one matching row and reports whether
// it has reached its end.
func (it *Iterator) Next() bool {
	if it.ended {
		return true
	}
	if it.forward() {
		it.ended = true
		return true
	}
	switch it.mode {
	case ModeAll:
		// never stop short
	case ModeSingle:
		it.ended = true
	case ModeRange:
		it.ended = !it.prefixStillMatches()
	case ModeFilterRange:
		it.seekMatchRange()
	case ModeFilterAll:
		it.seekMatch()
	}
	return it.ended
}

// forward advances the underlying index cursor by one row, honoring
// skip-graphs deduplication: when iterating a non-graph-prefixed
// index, rows differing only in their trailing graph component are
// treated as the same result and skipped.
func (it *Iterator) forward() (end bool) {
	idx := it.model.indices[it.order]
	if !it.skipGraphs {
		next, ok := idx.next(it.cur)
		if !ok {
			return true
		}
		it.cur = next
		return false
	}
	initial := it.cur
	for {
		next, ok := idx.next(it.cur)
		if !ok {
			return true
		}
		it.cur = next
		if next[0] != initial[0] || next[1] != initial[1] || next[2] != initial[2] {
			return false
		}
	}
}

func (it *Iterator) prefixStillMatches() bool {
	for i := 0; i < it.prefixLen; i++ {
		if !componentMatches(it.pat[i], it.cur[i]) {
			return false
		}
	}
	return true
}

// seekMatchRange scans forward from the current row, stopping at the
// first row matching the full pattern, or setting ended once the
// leading prefixLen components stop matching.
func (it *Iterator) seekMatchRange() {
	for {
		if matchKey(it.pat, it.cur) {
			it.ended = false
			return
		}
		if !it.prefixStillMatches() {
			it.ended = true
			return
		}
		if it.forward() {
			it.ended = true
			return
		}
	}
}

// seekMatch scans forward from the current row to the first row
// matching the full pattern, or to the end of the index.
func (it *Iterator) seekMatch() {
	for {
		if matchKey(it.pat, it.cur) {
			it.ended = false
			return
		}
		if it.forward() {
			it.ended = true
			return
		}
	}
}

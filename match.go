package sord

// SearchMode classifies how an Iterator walks its chosen index, from
// the cheapest (no filtering at all) to the most expensive (full scan
// with per-row filtering).
type SearchMode int

const (
	ModeAll SearchMode = iota
	ModeSingle
	ModeRange
	ModeFilterRange
	ModeFilterAll
)

func (mo SearchMode) String() string {
	switch mo {
	case ModeAll:
		return "all"
	case ModeSingle:
		return "single"
	case ModeRange:
		return "range"
	case ModeFilterRange:
		return "filter_range"
	case ModeFilterAll:
		return "filter_all"
	default:
		return "invalid"
	}
}

// bestIndex chooses an index order, a SearchMode, and a prefix length
// for a pattern given in standard (S, P, O, G) order, preferring an
// index whose leading components are all bound over one needing
// post-filtering. The prefix length is the number of leading
// components (in the chosen order) that must keep matching the
// pattern for RANGE/FILTER_RANGE iteration to continue.
func (m *Model) bestIndex(pat [4]*Node) (Order, SearchMode, int) {
	graphSearch := pat[3] != nil
	sig := 0
	if pat[0] != nil {
		sig |= 0x4
	}
	if pat[1] != nil {
		sig |= 0x2
	}
	if pat[2] != nil {
		sig |= 0x1
	}

	switch sig {
	case 0x0:
		if graphSearch && m.HasIndex(GSPO) {
			return GSPO, ModeRange, 1
		}
		if graphSearch {
			return SPO, ModeFilterAll, 0
		}
		return SPO, ModeAll, 0
	case 0x7:
		if graphSearch && m.HasIndex(GSPO) {
			return GSPO, ModeSingle, 0
		}
		return SPO, ModeSingle, 0
	}

	var primary, secondary Order
	prefix := 0
	switch sig {
	case 0x1: // O
		primary, secondary, prefix = OPS, OSP, 1
	case 0x2: // P
		primary, secondary, prefix = POS, PSO, 1
	case 0x3: // P, O
		primary, secondary, prefix = OPS, POS, 2
	case 0x4: // S
		primary, secondary, prefix = SPO, SOP, 1
	case 0x5: // S, O
		primary, secondary, prefix = SOP, OSP, 2
	case 0x6: // S, P
		primary, secondary, prefix = SPO, PSO, 2
	}

	if ord, pfx, ok := m.rangeCandidate(primary, graphSearch, prefix); ok {
		return ord, ModeRange, pfx
	}
	if ord, pfx, ok := m.rangeCandidate(secondary, graphSearch, prefix); ok {
		return ord, ModeRange, pfx
	}

	var filterPrimary, filterSecondary Order
	haveFilter := true
	switch sig {
	case 0x3:
		filterPrimary, filterSecondary = OSP, PSO
	case 0x5:
		filterPrimary, filterSecondary = SPO, OPS
	case 0x6:
		filterPrimary, filterSecondary = SOP, POS
	default:
		haveFilter = false
	}
	if haveFilter {
		if ord, pfx, ok := m.rangeCandidate(filterPrimary, graphSearch, 1); ok {
			return ord, ModeFilterRange, pfx
		}
		if ord, pfx, ok := m.rangeCandidate(filterSecondary, graphSearch, 1); ok {
			return ord, ModeFilterRange, pfx
		}
	}

	if graphSearch && m.HasIndex(GSPO) {
		return GSPO, ModeFilterRange, 1
	}
	return SPO, ModeFilterAll, 0
}

// rangeCandidate adjusts order and prefix for a bound graph component
// (using the graph-prefixed order and one extra prefix position) and
// reports whether the resulting index is actually materialized.
//
// A prior design mutated a shared prefix accumulator across both the
// primary and secondary probe, over-counting the prefix by one when
// the primary probe's graph-prefixed index is absent. That has no
// observable effect — the extra guarded position is always the
// pattern's own wildcard, which matches unconditionally — but this
// version recomputes the adjustment fresh per probe instead of
// carrying a mutated value forward, which is simpler to reason about.
func (m *Model) rangeCandidate(order Order, graphSearch bool, prefix int) (Order, int, bool) {
	if graphSearch {
		order += GSPO
		prefix++
	}
	return order, prefix, m.HasIndex(order)
}

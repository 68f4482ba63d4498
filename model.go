package sord

import "github.com/insilications/sord-clr/internal/qlog"

// IndexMask selects which of the six triple orders a Model
// materializes. Bit i corresponds to triple order i in the fixed
// sequence SPO, SOP, OPS, OSP, PSO, POS.
type IndexMask uint8

const (
	IndexSPO IndexMask = 1 << iota
	IndexSOP
	IndexOPS
	IndexOSP
	IndexPSO
	IndexPOS

	IndexAll IndexMask = IndexSPO | IndexSOP | IndexOPS | IndexOSP | IndexPSO | IndexPOS
)

// Size reports a count and whether it is exact — groundwork for the
// metrics package's prometheus.Collector adapter.
type Size struct {
	Value int64
	Exact bool
}

// Model is a set of quads held across up to twelve sorted indexes,
// one per Order. The SPO index is always materialized, even if mask
// doesn't request it. Model holds no internal locks; callers sharing
// one across goroutines must synchronize externally.
type Model struct {
	world    *World
	indices  [numOrders]*orderedIndex
	numQuads int
}

// NewModel constructs a Model over w, materializing the triple orders
// selected by mask (SPO is always included) and, when withGraphs is
// true, each selected order's graph-prefixed counterpart too.
func NewModel(w *World, mask IndexMask, withGraphs bool) *Model {
	m := &Model{world: w}
	for i := 0; i < numTripleOrders; i++ {
		if mask&(1<<uint(i)) != 0 {
			m.indices[i] = newOrderedIndex()
			if withGraphs {
				m.indices[i+numTripleOrders] = newOrderedIndex()
			}
		}
	}
	if m.indices[SPO] == nil {
		m.indices[SPO] = newOrderedIndex()
	}
	return m
}

// World returns the Model's owning World.
func (m *Model) World() *World { return m.world }

// NumQuads returns the number of quads currently stored.
func (m *Model) NumQuads() int { return m.numQuads }

// Stats reports NumQuads as an exact Size.
func (m *Model) Stats() Size {
	return Size{Value: int64(m.numQuads), Exact: true}
}

// HasIndex reports whether order is materialized.
func (m *Model) HasIndex(order Order) bool {
	return order >= 0 && int(order) < numOrders && m.indices[order] != nil
}

// Add inserts q, returning false (without modifying any index) if
// subject, predicate, or object is nil, or if q is already present.
// On success, every node referenced by q has its total reference
// count bumped (and its object-position count, for Object) and the
// quad count is incremented.
func (m *Model) Add(q Quad) bool {
	if q.Subject == nil || q.Predicate == nil || q.Object == nil {
		qlog.Errorf("sord: attempt to add quad with nil subject, predicate, or object")
		return false
	}
	std := q.std()
	for i := 0; i < numOrders; i++ {
		idx := m.indices[i]
		if idx == nil {
			continue
		}
		key := permute(std, Order(i))
		if !idx.insert(key) {
			// Every materialized index holds the same quad set, and
			// SPO (index 0) is always present and processed first, so
			// a duplicate can only ever be reported here.
			return false
		}
	}
	for i, n := range std {
		m.world.quadRef(n, i == 2)
	}
	m.numQuads++
	return true
}

// Remove deletes q from every index. Removing a quad absent from the
// SPO index is a no-op.
func (m *Model) Remove(q Quad) {
	std := q.std()
	if !m.indices[SPO].has(permute(std, SPO)) {
		return
	}
	for i := 0; i < numOrders; i++ {
		idx := m.indices[i]
		if idx == nil {
			continue
		}
		idx.delete(permute(std, Order(i)))
	}
	for i, n := range std {
		m.world.quadUnref(n, i == 2)
	}
	m.numQuads--
}

// Begin returns an iterator over every quad, in SPO order. Quads that
// differ only in their graph are yielded once.
func (m *Model) Begin() *Iterator {
	idx := m.indices[SPO]
	it := &Iterator{model: m, order: SPO, mode: ModeAll, skipGraphs: SPO < GSPO}
	start, ok := idx.first()
	if !ok {
		it.ended = true
		return it
	}
	it.cur = start
	return it
}

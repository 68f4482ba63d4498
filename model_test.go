package sord

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmptyModel(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexSPO, false)
	require.Equal(t, 0, m.NumQuads())
	require.True(t, m.Find(Quad{}).End())
}

func TestAddAndFindExact(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexAll, false)
	a, b, c := w.InternURI("a"), w.InternURI("b"), w.InternURI("c")
	q := Quad{Subject: a, Predicate: b, Object: c}

	require.True(t, m.Add(q))
	require.Equal(t, 1, m.NumQuads())

	it := m.Find(q)
	require.False(t, it.End())
	got, ok := it.Quad()
	require.True(t, ok)
	require.Equal(t, q, got)
	require.True(t, it.Next())
	require.True(t, it.End())

	require.False(t, m.Add(q))
	require.Equal(t, 1, m.NumQuads())
}

func TestWildcardPrefix(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexAll, false)
	a, b, b2 := w.InternURI("a"), w.InternURI("b"), w.InternURI("b2")
	c1, c2, c3 := w.InternURI("c1"), w.InternURI("c2"), w.InternURI("c3")

	require.True(t, m.Add(Quad{Subject: a, Predicate: b, Object: c1}))
	require.True(t, m.Add(Quad{Subject: a, Predicate: b, Object: c2}))
	require.True(t, m.Add(Quad{Subject: a, Predicate: b2, Object: c3}))

	var objs []*Node
	it := m.Find(Quad{Subject: a, Predicate: b})
	for !it.End() {
		q, _ := it.Quad()
		objs = append(objs, q.Object)
		it.Next()
	}
	require.Equal(t, []*Node{c1, c2}, objs)

	count := 0
	it = m.Find(Quad{Subject: a})
	for !it.End() {
		count++
		it.Next()
	}
	require.Equal(t, 3, count)
}

func TestRemoveIsSymmetricAndIdempotent(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexAll, false)
	a, b, c := w.InternURI("a"), w.InternURI("b"), w.InternURI("c")
	q := Quad{Subject: a, Predicate: b, Object: c}

	baseRefs := a.Refs()
	require.True(t, m.Add(q))
	require.Greater(t, a.Refs(), baseRefs)

	m.Remove(q)
	require.Equal(t, 0, m.NumQuads())
	require.Equal(t, baseRefs, a.Refs())
	require.True(t, m.Find(q).End())

	// removing an absent quad is a no-op
	m.Remove(q)
	require.Equal(t, 0, m.NumQuads())
}

func TestGraphDiscriminationWithoutGraphIndexes(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexSPO, false)
	a, b, c := w.InternURI("a"), w.InternURI("b"), w.InternURI("c")
	g1, g2 := w.InternURI("g1"), w.InternURI("g2")

	require.True(t, m.Add(Quad{Subject: a, Predicate: b, Object: c, Graph: g1}))
	require.True(t, m.Add(Quad{Subject: a, Predicate: b, Object: c, Graph: g2}))
	require.Equal(t, 2, m.NumQuads())

	count := 0
	it := m.Find(Quad{Subject: a, Predicate: b, Object: c})
	for !it.End() {
		count++
		it.Next()
	}
	require.Equal(t, 1, count, "skip_graphs should deduplicate triples differing only in graph")
}

func TestGraphDiscriminationWithGraphIndexes(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexSPO, true)
	a, b, c := w.InternURI("a"), w.InternURI("b"), w.InternURI("c")
	g1, g2 := w.InternURI("g1"), w.InternURI("g2")

	require.True(t, m.Add(Quad{Subject: a, Predicate: b, Object: c, Graph: g1}))
	require.True(t, m.Add(Quad{Subject: a, Predicate: b, Object: c, Graph: g2}))

	it := m.Find(Quad{Subject: a, Predicate: b, Object: c, Graph: g1})
	require.False(t, it.End())
	got, _ := it.Quad()
	require.Same(t, g1, got.Graph)
	require.True(t, it.Next())
	require.True(t, it.End())
}

func TestRefcountLifecycle(t *testing.T) {
	w := NewWorld()
	m := NewModel(w, IndexAll, false)
	s, p := w.InternURI("s"), w.InternURI("p")
	dt := w.InternURI("http://www.w3.org/2001/XMLSchema#string")
	lit := w.InternLiteral(dt, "x", 0, "")

	q := Quad{Subject: s, Predicate: p, Object: lit}
	require.True(t, m.Add(q))
	require.Equal(t, 1, lit.RefsAsObject())

	m.Remove(q)
	// lit had refs==1 before Add (from InternLiteral); Add bumped it to 2
	// and Remove dropped it back to 1, so it survives.
	require.Equal(t, 1, lit.Refs())
	// dt's refcount is untouched by Add/Remove on the quad itself — it is
	// held only via lit.Datatype(), at 2: one from the test's own
	// InternURI call, one from the literal.
	require.Equal(t, 2, dt.Refs())

	w.Free(lit)
	_, stillInterned := w.literals[literalKey{text: "x", datatype: dt, lang: nil}]
	require.False(t, stillInterned, "freeing the last reference to lit must drop it from the intern table")
	// dt drops to 1 (the literal's reference released) but survives,
	// since the test still holds its own reference via dt.
	require.Equal(t, 1, dt.Refs())
	_, dtInterned := w.names["http://www.w3.org/2001/XMLSchema#string"]
	require.True(t, dtInterned)
}

func TestFindPredicateOnlyPattern(t *testing.T) {
	// A pattern bound only on P is answered from the POS index and
	// must yield every quad with that predicate.
	w := NewWorld()
	m := NewModel(w, IndexAll, false)
	p := w.InternURI("p")
	for _, name := range []string{"s1", "s2", "s3"} {
		s := w.InternURI(name)
		o := w.InternURI(name + "-o")
		require.True(t, m.Add(Quad{Subject: s, Predicate: p, Object: o}))
	}

	count := 0
	it := m.Find(Quad{Predicate: p})
	for !it.End() {
		q, _ := it.Quad()
		require.Same(t, p, q.Predicate)
		count++
		it.Next()
	}
	require.Equal(t, 3, count)
}

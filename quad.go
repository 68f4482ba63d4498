package sord

// Quad is an ordered (subject, predicate, object, graph) tuple of node
// references. Graph is nil to mean the default graph when the quad is
// stored; the same nil also means "wildcard" when the Quad is used as
// a search pattern passed to Model.Find — this overload follows
// directly from the node comparator's "nil is wildcard" rule and is
// intentional, not an oversight.
type Quad struct {
	Subject, Predicate, Object, Graph *Node
}

func (q Quad) std() [4]*Node {
	return [4]*Node{q.Subject, q.Predicate, q.Object, q.Graph}
}

func quadFromStd(std [4]*Node) Quad {
	return Quad{Subject: std[0], Predicate: std[1], Object: std[2], Graph: std[3]}
}

// IsWildcard reports whether every component of q is nil, i.e. q used
// as a pattern matches every stored quad.
func (q Quad) IsWildcard() bool {
	return q.Subject == nil && q.Predicate == nil && q.Object == nil && q.Graph == nil
}

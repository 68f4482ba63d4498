package sord

// Order names one of the twelve ways a quad's four node references
// can be permuted into an index key. The six triple orders (SPO
// through POS) sort graph least-significant; their graph-prefixed
// counterparts (GSPO through GPOS) sort graph most-significant. Every
// order's key carries all four components regardless of which one
// leads.
type Order int

const (
	SPO Order = iota
	SOP
	OPS
	OSP
	PSO
	POS
	GSPO
	GSOP
	GOPS
	GOSP
	GPSO
	GPOS

	numOrders       = 12
	numTripleOrders = 6
)

var orderNames = [numOrders]string{
	"spo", "sop", "ops", "osp", "pso", "pos",
	"gspo", "gsop", "gops", "gosp", "gpso", "gpos",
}

func (o Order) String() string {
	if o < 0 || int(o) >= numOrders {
		return "invalid"
	}
	return orderNames[o]
}

// orderings[o] maps a position in order o's key to the index of the
// corresponding component in standard (S, P, O, G) order. It is the
// Go form of sord.c's `orderings` table.
var orderings = [numOrders][4]int{
	{0, 1, 2, 3}, // SPO
	{0, 2, 1, 3}, // SOP
	{2, 1, 0, 3}, // OPS
	{2, 0, 1, 3}, // OSP
	{1, 0, 2, 3}, // PSO
	{1, 2, 0, 3}, // POS
	{3, 0, 1, 2}, // GSPO
	{3, 0, 2, 1}, // GSOP
	{3, 2, 1, 0}, // GOPS
	{3, 2, 0, 1}, // GOSP
	{3, 1, 0, 2}, // GPSO
	{3, 1, 2, 0}, // GPOS
}

// quadKey is a quad's four node references, permuted into one
// index's component order. It doubles as a search pattern permuted
// the same way, in which case nil components are wildcards.
type quadKey [4]*Node

func permute(std [4]*Node, o Order) quadKey {
	ord := orderings[o]
	return quadKey{std[ord[0]], std[ord[1]], std[ord[2]], std[ord[3]]}
}

// unpermute projects a key in order o's component order back to
// standard (S, P, O, G) order.
func (k quadKey) unpermute(o Order) [4]*Node {
	ord := orderings[o]
	var out [4]*Node
	out[ord[0]], out[ord[1]], out[ord[2]], out[ord[3]] = k[0], k[1], k[2], k[3]
	return out
}

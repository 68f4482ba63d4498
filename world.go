package sord

import (
	"github.com/google/uuid"

	"github.com/insilications/sord-clr/internal/qlog"
)

type literalKey struct {
	text     string
	datatype *Node
	lang     *string
}

// World owns the three interning tables — names (URI and blank nodes
// share one table, keyed by string), languages, and literals — and is
// the lifetime parent of every Node it mints. A World has no internal
// locking: callers sharing one across goroutines must synchronize
// externally, the same way callers of a plain Go map must.
type World struct {
	names    map[string]*Node
	langs    map[string]*string
	literals map[literalKey]*Node
	numNodes int
}

// NewWorld returns an empty World ready to intern nodes.
func NewWorld() *World {
	return &World{
		names:    make(map[string]*Node),
		langs:    make(map[string]*string),
		literals: make(map[literalKey]*Node),
	}
}

// NumNodes reports how many distinct nodes are currently interned.
func (w *World) NumNodes() int { return w.numNodes }

// InternURI returns the canonical node for a URI with the given bytes,
// minting one on first use.
func (w *World) InternURI(name string) *Node {
	return w.internNamed(URI, name)
}

// InternBlank returns the canonical node for a blank node identifier
// with the given bytes, minting one on first use.
func (w *World) InternBlank(name string) *Node {
	return w.internNamed(Blank, name)
}

// NewBlank mints a fresh blank node with a randomly generated
// identifier, for callers constructing quads programmatically rather
// than parsing them from a document that already names its blanks.
func (w *World) NewBlank() *Node {
	return w.InternBlank("b" + uuid.NewString())
}

func (w *World) internNamed(k Kind, name string) *Node {
	if n, ok := w.names[name]; ok {
		n.refs++
		return n
	}
	n := &Node{kind: k, buf: []byte(name), refs: 1}
	w.names[name] = n
	w.numNodes++
	return n
}

// InternLanguage returns the canonical pointer for a language tag,
// minting one on first use. It returns nil for the empty tag, so that
// "no language" is represented identically everywhere.
func (w *World) InternLanguage(tag string) *string {
	if tag == "" {
		return nil
	}
	if p, ok := w.langs[tag]; ok {
		return p
	}
	s := tag
	w.langs[tag] = &s
	return &s
}

// InternLiteral returns the canonical node for a literal with the
// given text, datatype, flags, and language, minting one on first
// use. The literal table is keyed by (text, datatype pointer,
// canonical language pointer); the datatype reference, if any, is
// itself counted so the datatype node stays alive as long as any
// literal refers to it.
func (w *World) InternLiteral(datatype *Node, text string, flags Flags, lang string) *Node {
	canonLang := w.InternLanguage(lang)
	key := literalKey{text: text, datatype: datatype, lang: canonLang}
	if n, ok := w.literals[key]; ok {
		n.refs++
		return n
	}
	n := &Node{
		kind:     Literal,
		buf:      []byte(text),
		datatype: w.refDatatype(datatype),
		lang:     canonLang,
		flags:    flags,
		refs:     1,
	}
	w.literals[key] = n
	w.numNodes++
	return n
}

func (w *World) refDatatype(dt *Node) *Node {
	if dt == nil {
		return nil
	}
	dt.refs++
	return dt
}

// Copy bumps n's reference count and returns it, for callers that want
// to hold their own reference independent of any Model.
func (w *World) Copy(n *Node) *Node {
	if n == nil {
		return nil
	}
	n.refs++
	return n
}

// Free drops a reference to n, destroying it once its refcount reaches
// zero. Freeing past zero is a caller bug; it is logged, not panicked.
func (w *World) Free(n *Node) {
	if n == nil {
		return
	}
	if n.refs <= 0 {
		qlog.Errorf("sord: free of node %q with non-positive refcount %d", n.buf, n.refs)
		return
	}
	n.refs--
	if n.refs == 0 {
		w.destroy(n)
	}
}

func (w *World) destroy(n *Node) {
	switch n.kind {
	case Literal:
		key := literalKey{text: string(n.buf), datatype: n.datatype, lang: n.lang}
		if _, ok := w.literals[key]; ok {
			delete(w.literals, key)
		} else {
			qlog.Errorf("sord: literal %q missing from intern table on free", n.buf)
		}
		w.Free(n.datatype)
	default:
		if _, ok := w.names[string(n.buf)]; ok {
			delete(w.names, string(n.buf))
		} else {
			qlog.Errorf("sord: name %q missing from intern table on free", n.buf)
		}
	}
	w.numNodes--
}

// quadRef and quadUnref are the Model/World collaboration points for
// quad-level reference bookkeeping: a node's total reference count and,
// for nodes appearing in object position, its separate object-position
// count. They are distinct from Copy/Free only in that they also track
// the object-position count; both operate on the same underlying refs
// field.
func (w *World) quadRef(n *Node, isObject bool) {
	if n == nil {
		return
	}
	n.refs++
	if isObject {
		n.refsAsObject++
	}
}

func (w *World) quadUnref(n *Node, isObject bool) {
	if n == nil {
		return
	}
	if isObject {
		n.refsAsObject--
	}
	n.refs--
	if n.refs == 0 {
		w.destroy(n)
	}
}

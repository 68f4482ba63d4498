// Package writer provides a batch/transaction convenience layer over
// sord.Model: stage a set of adds and removes, apply them together,
// and get back which delta failed and why rather than losing track
// partway through a large load.
package writer

import (
	"errors"
	"fmt"

	"github.com/insilications/sord-clr"
)

// Procedure is the action a Delta stages: add or remove.
type Procedure int8

const (
	Add    Procedure = +1
	Delete Procedure = -1
)

func (p Procedure) String() string {
	switch p {
	case Add:
		return "add"
	case Delete:
		return "delete"
	default:
		return "invalid"
	}
}

// Delta is a single staged change to a Model.
type Delta struct {
	Quad   sord.Quad
	Action Procedure
}

var (
	ErrQuadExists    = errors.New("quad exists")
	ErrQuadNotExist  = errors.New("quad does not exist")
	ErrInvalidAction = errors.New("invalid action")
)

// DeltaError records an error alongside the Delta that caused it, so
// a caller driving a large batch can report precisely which input
// failed. errors.Is(err, ErrQuadExists) and friends work through it.
type DeltaError struct {
	Delta Delta
	Err   error
}

func (e *DeltaError) Error() string {
	return fmt.Sprintf("%s %+v: %v", e.Delta.Action, e.Delta.Quad, e.Err)
}

func (e *DeltaError) Unwrap() error { return e.Err }

// IgnoreOpts controls whether ApplyDeltas tolerates quads that are
// already present (on add) or already absent (on remove).
type IgnoreOpts struct {
	IgnoreDup, IgnoreMissing bool
}

// Transaction accumulates a set of Deltas to apply together,
// deduplicating so that adding then removing the same quad (or vice
// versa) cancels out rather than staging both operations. Applying it
// is not atomic: ApplyTransaction stops at the first failing delta and
// the deltas applied before it stay applied.
type Transaction struct {
	Deltas []Delta
	staged map[Delta]struct{}
}

// NewTransaction returns an empty Transaction.
func NewTransaction() *Transaction {
	return &Transaction{Deltas: make([]Delta, 0, 10), staged: make(map[Delta]struct{}, 10)}
}

// AddQuad stages q for addition, canceling a previously staged
// removal of the same quad instead if one exists.
func (t *Transaction) AddQuad(q sord.Quad) {
	add, del := Delta{Quad: q, Action: Add}, Delta{Quad: q, Action: Delete}
	if _, ok := t.staged[add]; ok {
		return
	}
	if _, ok := t.staged[del]; ok {
		t.remove(del)
		return
	}
	t.stage(add)
}

// RemoveQuad stages q for removal, canceling a previously staged
// addition of the same quad instead if one exists.
func (t *Transaction) RemoveQuad(q sord.Quad) {
	add, del := Delta{Quad: q, Action: Add}, Delta{Quad: q, Action: Delete}
	if _, ok := t.staged[add]; ok {
		t.remove(add)
		return
	}
	if _, ok := t.staged[del]; !ok {
		t.stage(del)
	}
}

func (t *Transaction) stage(d Delta) {
	t.Deltas = append(t.Deltas, d)
	t.staged[d] = struct{}{}
}

func (t *Transaction) remove(d Delta) {
	delete(t.staged, d)
	for i, existing := range t.Deltas {
		if existing == d {
			t.Deltas = append(t.Deltas[:i], t.Deltas[i+1:]...)
			break
		}
	}
}

// Writer applies batches of Deltas to a Model, tracking IgnoreOpts.
type Writer struct {
	model *sord.Model
	opts  IgnoreOpts
}

// New returns a Writer over m with the given ignore policy.
func New(m *sord.Model, opts IgnoreOpts) *Writer {
	return &Writer{model: m, opts: opts}
}

// AddQuad stages and immediately applies a single addition.
func (w *Writer) AddQuad(q sord.Quad) error {
	return w.ApplyDeltas([]Delta{{Quad: q, Action: Add}})
}

// AddQuadSet applies a set of additions as one batch.
func (w *Writer) AddQuadSet(qs []sord.Quad) error {
	deltas := make([]Delta, len(qs))
	for i, q := range qs {
		deltas[i] = Delta{Quad: q, Action: Add}
	}
	return w.ApplyDeltas(deltas)
}

// RemoveQuad stages and immediately applies a single removal.
func (w *Writer) RemoveQuad(q sord.Quad) error {
	return w.ApplyDeltas([]Delta{{Quad: q, Action: Delete}})
}

// ApplyTransaction applies every delta staged in t.
func (w *Writer) ApplyTransaction(t *Transaction) error {
	return w.ApplyDeltas(t.Deltas)
}

// ApplyDeltas applies each delta to the underlying Model in order,
// stopping at (and reporting) the first one that violates the ignore
// policy. A successful add/remove that the policy would otherwise
// reject (duplicate add, missing remove) is silently accepted when
// the corresponding Ignore flag is set.
func (w *Writer) ApplyDeltas(deltas []Delta) error {
	for _, d := range deltas {
		switch d.Action {
		case Add:
			if !w.model.Add(d.Quad) && !w.opts.IgnoreDup {
				return &DeltaError{Delta: d, Err: ErrQuadExists}
			}
		case Delete:
			before := w.model.NumQuads()
			w.model.Remove(d.Quad)
			missing := w.model.NumQuads() == before
			if missing && !w.opts.IgnoreMissing {
				return &DeltaError{Delta: d, Err: ErrQuadNotExist}
			}
		default:
			return &DeltaError{Delta: d, Err: ErrInvalidAction}
		}
	}
	return nil
}

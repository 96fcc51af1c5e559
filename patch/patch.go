// Package patch interprets ordered sequences of operation descriptors
// against an ir document: the six RFC 6902 operations plus whatever a
// consumer registers. Each operation either fully applies or fails the
// whole apply; there is no rollback of operations already applied.
package patch

import (
	"fmt"

	"github.com/jasnell/json-tools/ir"
	"github.com/jasnell/json-tools/pointer"
)

// Patch is an ordered sequence of operation descriptors together with
// the registry used to dispatch them. A Patch is immutable after New
// and safe for concurrent Apply calls against distinct documents.
type Patch struct {
	ops []*ir.Node
	reg *Registry
}

type Option func(*Patch)

// WithRegistry makes the patch dispatch through r instead of a fresh
// core registry. Use it to layer predicates or custom operations onto
// the core six.
func WithRegistry(r *Registry) Option {
	return func(p *Patch) { p.reg = r }
}

// New validates ops as a patch document: an array whose elements are
// objects each carrying a string "op" member. Operation-specific
// fields are checked later, per operation, during apply. The ops tree
// is cloned, so the caller may keep mutating its copy.
func New(ops *ir.Node, opts ...Option) (*Patch, error) {
	if ops == nil || ops.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: expected an array of operations", ErrMalformedPatch)
	}
	for i, op := range ops.Values {
		if op.Type != ir.ObjectType {
			return nil, fmt.Errorf("%w: operation %d is a %s, not an object", ErrMalformedPatch, i, op.Type)
		}
		name := op.Field("op")
		if name == nil || name.Type != ir.StringType {
			return nil, fmt.Errorf("%w: operation %d has no \"op\" member", ErrMalformedPatch, i)
		}
	}
	p := &Patch{ops: ops.Clone().Values}
	for _, o := range opts {
		o(p)
	}
	if p.reg == nil {
		p.reg = NewRegistry()
	}
	return p, nil
}

// Apply applies the patch to a deep copy of doc and returns the
// result. doc is left untouched, also when the apply fails.
func (p *Patch) Apply(doc *ir.Node) (*ir.Node, error) {
	res := doc.Clone()
	if err := p.ApplyInPlace(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ApplyInPlace applies the patch to doc, mutating it. On failure the
// operations already applied remain applied. The caller must serialize
// concurrent applies against the same document; there is no internal
// locking.
func (p *Patch) ApplyInPlace(doc *ir.Node) error {
	for _, op := range p.ops {
		name := op.Field("op").String
		h := p.reg.Lookup(name)
		if h == nil {
			return fmt.Errorf("%w %q", ErrUnknownOp, name)
		}
		if err := h(op, doc); err != nil {
			return err
		}
	}
	return nil
}

// opPointer parses the pointer held by the named string member of op.
func opPointer(op *ir.Node, field string) (*pointer.Pointer, error) {
	f := op.Field(field)
	if f == nil || f.Type != ir.StringType {
		return nil, FailedOp(op, "missing %q member", field)
	}
	ptr, err := pointer.Parse(f.String)
	if err != nil {
		return nil, FailedOp(op, "%v", err)
	}
	return ptr, nil
}

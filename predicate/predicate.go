// Package predicate evaluates named boolean tests over a document
// location, composable through the and/or/not combinators. Predicates
// are strict boolean algebra: an absent value, a type mismatch, a
// malformed descriptor or an unknown predicate name all evaluate to
// false, never to an error.
package predicate

import (
	"github.com/jasnell/json-tools/ir"
	"github.com/jasnell/json-tools/patch"
	"github.com/jasnell/json-tools/pointer"
)

// Func evaluates one predicate descriptor against doc. The registry is
// passed through so combinators can evaluate nested descriptors.
type Func func(reg *Registry, op, doc *ir.Node) bool

// Registry maps predicate names to evaluation functions.
type Registry struct {
	preds map[string]Func
}

// NewRegistry returns an empty predicate registry.
func NewRegistry() *Registry {
	return &Registry{preds: map[string]Func{}}
}

// Register installs f under name, replacing any previous function.
func (r *Registry) Register(name string, f Func) {
	r.preds[name] = f
}

// Eval evaluates the descriptor op against doc. Descriptors that are
// not objects, lack a string "op" member, or name an unregistered
// predicate evaluate to false.
func (r *Registry) Eval(op, doc *ir.Node) bool {
	if op == nil || op.Type != ir.ObjectType {
		return false
	}
	name := op.Field("op")
	if name == nil || name.Type != ir.StringType {
		return false
	}
	f := r.preds[name.String]
	if f == nil {
		return false
	}
	return f(r, op, doc)
}

// Install registers every predicate in r as a patch operation whose
// handler fails the apply when the predicate evaluates false. This
// lets predicate checks interleave with structural operations in one
// patch sequence, aborting on the first false predicate.
func (r *Registry) Install(ops *patch.Registry) {
	for name, f := range r.preds {
		ops.Register(name, func(op, doc *ir.Node) error {
			if !f(r, op, doc) {
				return patch.FailedOp(op, "predicate is false")
			}
			return nil
		})
	}
}

// value resolves the "path" member of op against doc.
func value(op, doc *ir.Node) (*ir.Node, bool) {
	pathNode := op.Field("path")
	if pathNode == nil || pathNode.Type != ir.StringType {
		return nil, false
	}
	ptr, err := pointer.Parse(pathNode.String)
	if err != nil {
		return nil, false
	}
	return ptr.Value(doc)
}

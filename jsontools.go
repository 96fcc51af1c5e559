// Package jsontools resolves RFC 6901 pointers into a JSON document,
// applies RFC 6902 patch sequences to it, and evaluates JSON Predicate
// tests against it. This package is the byte-level convenience layer;
// the ir, pointer, patch and predicate packages expose the tree-level
// engine.
package jsontools

import (
	"github.com/jasnell/json-tools/ir"
	"github.com/jasnell/json-tools/patch"
	"github.com/jasnell/json-tools/predicate"
)

// Apply decodes doc and ops as JSON text, applies the patch with
// predicates enabled, and returns the re-encoded result. doc is not
// modified, also when the apply fails part way through.
func Apply(doc, ops []byte) ([]byte, error) {
	y, err := ir.Decode(doc)
	if err != nil {
		return nil, err
	}
	opsNode, err := ir.Decode(ops)
	if err != nil {
		return nil, err
	}
	p, err := NewPatch(opsNode)
	if err != nil {
		return nil, err
	}
	res, err := p.Apply(y)
	if err != nil {
		return nil, err
	}
	return ir.Encode(res), nil
}

// Match decodes doc and pred as JSON text and evaluates pred, a single
// predicate descriptor, against the document.
func Match(doc, pred []byte) (bool, error) {
	y, err := ir.Decode(doc)
	if err != nil {
		return false, err
	}
	pd, err := ir.Decode(pred)
	if err != nil {
		return false, err
	}
	return predicate.Default().Eval(pd, y), nil
}

// NewPatch builds a patch interpreter from an already-decoded
// operation array, with every built-in predicate installed alongside
// the six core operations.
func NewPatch(ops *ir.Node) (*patch.Patch, error) {
	reg := patch.NewRegistry()
	predicate.Default().Install(reg)
	return patch.New(ops, patch.WithRegistry(reg))
}

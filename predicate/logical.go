package predicate

import (
	"github.com/jasnell/json-tools/ir"
)

// The combinators take nested predicate descriptors under an "apply"
// member and evaluate each through the registry, so consumer-registered
// predicates participate too. A nested descriptor that fails to
// evaluate counts as false.

// applyList returns the nested descriptors of a combinator.
func applyList(op *ir.Node) []*ir.Node {
	apply := op.Field("apply")
	if apply == nil || apply.Type != ir.ArrayType {
		return nil
	}
	return apply.Values
}

// and is true when every nested predicate is true; vacuously true.
func and(reg *Registry, op, doc *ir.Node) bool {
	for _, sub := range applyList(op) {
		if !reg.Eval(sub, doc) {
			return false
		}
	}
	return true
}

// or is true when any nested predicate is true; vacuously false.
func or(reg *Registry, op, doc *ir.Node) bool {
	for _, sub := range applyList(op) {
		if reg.Eval(sub, doc) {
			return true
		}
	}
	return false
}

// not is true when no nested predicate is true: an n-ary "none true"
// rather than a unary negation, kept as specified.
func not(reg *Registry, op, doc *ir.Node) bool {
	for _, sub := range applyList(op) {
		if reg.Eval(sub, doc) {
			return false
		}
	}
	return true
}

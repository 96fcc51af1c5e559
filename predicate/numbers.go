package predicate

import (
	"github.com/jasnell/json-tools/ir"
)

// numberCheck resolves "path", requires both the resolved value and
// "value" to be numbers, and hands them to f.
func numberCheck(op, doc *ir.Node, f func(have, want float64) bool) bool {
	val, ok := value(op, doc)
	if !ok || val.Type != ir.NumberType {
		return false
	}
	want := op.Field("value")
	if want == nil || want.Type != ir.NumberType {
		return false
	}
	return f(val.Float(), want.Float())
}

func less(_ *Registry, op, doc *ir.Node) bool {
	return numberCheck(op, doc, func(have, want float64) bool { return have < want })
}

func more(_ *Registry, op, doc *ir.Node) bool {
	return numberCheck(op, doc, func(have, want float64) bool { return have > want })
}

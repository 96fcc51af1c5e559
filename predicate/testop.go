package predicate

import (
	"github.com/jasnell/json-tools/ir"
)

// test is true when the value at "path" exists and is structurally
// equal to "value". It mirrors the patch operation of the same name,
// as a composable boolean instead of an apply-aborting check.
func test(_ *Registry, op, doc *ir.Node) bool {
	want := op.Field("value")
	if want == nil {
		return false
	}
	val, ok := value(op, doc)
	if !ok {
		return false
	}
	return ir.Equal(val, want)
}

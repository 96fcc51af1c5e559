package patch

import (
	"github.com/jasnell/json-tools/ir"
)

// test fails unless the value at "path" exists and is structurally
// equal to "value". It never mutates the document.
func applyTest(op, doc *ir.Node) error {
	ptr, err := opPointer(op, "path")
	if err != nil {
		return err
	}
	want := op.Field("value")
	if want == nil {
		return FailedOp(op, "missing \"value\" member")
	}
	val, ok := ptr.Value(doc)
	if !ok {
		return FailedOp(op, "no value at path")
	}
	if !ir.Equal(val, want) {
		return FailedOp(op, "value is %s", ir.Encode(val))
	}
	return nil
}

package patch

import (
	"github.com/jasnell/json-tools/ir"
)

// move reads the value at "from", removes it, and adds it at "path".
// The value is captured before the removal so that overlapping array
// positions shift correctly.
func applyMove(op, doc *ir.Node) error {
	from, err := opPointer(op, "from")
	if err != nil {
		return err
	}
	to, err := opPointer(op, "path")
	if err != nil {
		return err
	}
	val, ok := from.Value(doc)
	if !ok {
		return FailedOp(op, "no value at \"from\" path")
	}
	val = val.Clone()
	parent, found, err := from.ResolveParent(doc)
	if err != nil {
		return FailedOp(op, "%v", err)
	}
	if !found {
		return FailedOp(op, "\"from\" path cannot be resolved")
	}
	if err := ir.Delete(parent, from.Last()); err != nil {
		return FailedOp(op, "%v", err)
	}
	return addValue(op, doc, to, val)
}

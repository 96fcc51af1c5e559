package patch

import (
	"github.com/jasnell/json-tools/ir"
	"github.com/jasnell/json-tools/pointer"
)

// add resolves "path" and inserts "value" at it. Arrays take an index
// in [0, len] or the end marker "-"; object members are upserted,
// overwriting any existing value. An empty path replaces the whole
// document.
func applyAdd(op, doc *ir.Node) error {
	ptr, err := opPointer(op, "path")
	if err != nil {
		return err
	}
	val := op.Field("value")
	if val == nil {
		return FailedOp(op, "missing \"value\" member")
	}
	return addValue(op, doc, ptr, val.Clone())
}

// addValue performs the add step shared by add, move and copy.
func addValue(op, doc *ir.Node, ptr *pointer.Pointer, val *ir.Node) error {
	if ptr.IsRoot() {
		*doc = *val
		return nil
	}
	parent, found, err := ptr.ResolveParent(doc)
	if err != nil {
		return FailedOp(op, "%v", err)
	}
	if !found {
		return FailedOp(op, "path cannot be resolved")
	}
	switch parent.Type {
	case ir.ObjectType, ir.ArrayType:
		if err := ir.Insert(parent, ptr.Last(), val); err != nil {
			return FailedOp(op, "%v", err)
		}
		return nil
	default:
		return FailedOp(op, "cannot add to %s value", parent.Type)
	}
}

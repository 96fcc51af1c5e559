package patch

import (
	"github.com/jasnell/json-tools/ir"
)

// replace overwrites the value at "path", which must already exist.
// An empty path replaces the whole document.
func applyReplace(op, doc *ir.Node) error {
	ptr, err := opPointer(op, "path")
	if err != nil {
		return err
	}
	val := op.Field("value")
	if val == nil {
		return FailedOp(op, "missing \"value\" member")
	}
	if ptr.IsRoot() {
		*doc = *val.Clone()
		return nil
	}
	if !ptr.Exists(doc) {
		return FailedOp(op, "no value at path")
	}
	parent, _, err := ptr.ResolveParent(doc)
	if err != nil {
		return FailedOp(op, "%v", err)
	}
	if parent.Type == ir.ArrayType {
		// delete then insert at the same index overwrites in place
		if err := ir.Delete(parent, ptr.Last()); err != nil {
			return FailedOp(op, "%v", err)
		}
	}
	if err := ir.Insert(parent, ptr.Last(), val.Clone()); err != nil {
		return FailedOp(op, "%v", err)
	}
	return nil
}

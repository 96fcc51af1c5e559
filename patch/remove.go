package patch

import (
	"github.com/jasnell/json-tools/ir"
)

// remove deletes the entry at "path". Removing a path that does not
// exist is a no-op, so remove is idempotent. The document root cannot
// be removed.
func applyRemove(op, doc *ir.Node) error {
	ptr, err := opPointer(op, "path")
	if err != nil {
		return err
	}
	if ptr.IsRoot() {
		return FailedOp(op, "cannot remove the document root")
	}
	parent, found, err := ptr.ResolveParent(doc)
	if err != nil || !found {
		return nil
	}
	// absent entry: no-op
	_ = ir.Delete(parent, ptr.Last())
	return nil
}

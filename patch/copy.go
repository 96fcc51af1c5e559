package patch

import (
	"github.com/jasnell/json-tools/ir"
)

// copy is move without the removal: the value at "from" is deep-copied
// and added at "path".
func applyCopy(op, doc *ir.Node) error {
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
	return addValue(op, doc, to, val.Clone())
}

package patch

import (
	"errors"
	"fmt"

	"github.com/jasnell/json-tools/ir"
)

var (
	// ErrMalformedPatch reports a patch document that is not an array
	// of operation descriptors each carrying a string "op" member.
	// It is detected by New, before any operation runs.
	ErrMalformedPatch = errors.New("malformed patch")

	// ErrUnknownOp reports a descriptor naming an operation absent
	// from the registry. It aborts the whole apply.
	ErrUnknownOp = errors.New("unknown operation")

	// ErrFailedOp reports an operation whose preconditions were not
	// met. The error text carries the offending descriptor.
	ErrFailedOp = errors.New("failed operation")
)

// FailedOp builds an operation failure carrying the offending
// descriptor for diagnostics. Custom handlers should use it to report
// precondition failures.
func FailedOp(op *ir.Node, format string, args ...any) error {
	return fmt.Errorf("%w %s: %s", ErrFailedOp, ir.Encode(op), fmt.Sprintf(format, args...))
}

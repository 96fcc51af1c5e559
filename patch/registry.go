package patch

import (
	"slices"

	"github.com/jasnell/json-tools/ir"
)

// Handler applies a single operation descriptor to doc, mutating it in
// place. A nil return means the operation succeeded; precondition
// failures are reported with FailedOp.
type Handler func(op, doc *ir.Node) error

// Registry maps operation names to handlers. Each Patch owns its
// registry; registering after the registry has been handed to a Patch
// is not safe for concurrent use with Apply.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry returns a registry holding the six core operations.
func NewRegistry() *Registry {
	r := &Registry{handlers: map[string]Handler{}}
	r.Register("add", applyAdd)
	r.Register("remove", applyRemove)
	r.Register("replace", applyReplace)
	r.Register("test", applyTest)
	r.Register("move", applyMove)
	r.Register("copy", applyCopy)
	return r
}

// Register installs h under name, replacing any previous handler.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Lookup returns the handler registered under name, or nil.
func (r *Registry) Lookup(name string) Handler {
	return r.handlers[name]
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

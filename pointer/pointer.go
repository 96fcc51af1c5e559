// Package pointer implements RFC 6901 JSON Pointers over the ir value
// model. A Pointer is stateless after construction and is evaluated
// against a document root on each call.
package pointer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jasnell/json-tools/ir"
)

// ErrPointer reports a pointer that cannot be resolved against a
// document: a bad array index, or traversal through a scalar.
var ErrPointer = errors.New("pointer error")

type Pointer struct {
	segs []string
	last string
	root bool
}

// Parse splits path on '/' and unescapes each segment, "~1" to "/"
// first and then "~0" to "~". The empty string addresses the document
// root. Resolution failures are reported later, when the pointer is
// evaluated against a document.
func Parse(path string) (*Pointer, error) {
	if path == "" {
		return &Pointer{root: true}, nil
	}
	if path[0] != '/' {
		return nil, fmt.Errorf("%w: path %q must begin with '/'", ErrPointer, path)
	}
	parts := strings.Split(path, "/")[1:]
	segs := make([]string, len(parts))
	for i, part := range parts {
		segs[i] = Unescape(part)
	}
	n := len(segs)
	return &Pointer{segs: segs[:n-1], last: segs[n-1]}, nil
}

// Unescape decodes one pointer segment, replacing "~1" with "/" and
// then "~0" with "~", in that order.
func Unescape(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}

// Escape is the inverse of Unescape.
func Escape(seg string) string {
	seg = strings.ReplaceAll(seg, "~", "~0")
	return strings.ReplaceAll(seg, "/", "~1")
}

// IsRoot reports whether the pointer addresses the document root.
func (p *Pointer) IsRoot() bool {
	return p.root
}

// Last returns the final, unescaped segment of the pointer.
func (p *Pointer) Last() string {
	return p.last
}

func (p *Pointer) String() string {
	if p.root {
		return ""
	}
	var sb strings.Builder
	for _, seg := range p.segs {
		sb.WriteByte('/')
		sb.WriteString(Escape(seg))
	}
	sb.WriteByte('/')
	sb.WriteString(Escape(p.last))
	return sb.String()
}

// ResolveParent walks every segment but the last, starting at root.
// It returns the node holding the addressed location, or found=false
// when an intermediate object member is absent. Array traversal with a
// non-numeric or out-of-range segment, and traversal through a scalar,
// return an error wrapping ErrPointer.
func (p *Pointer) ResolveParent(root *ir.Node) (parent *ir.Node, found bool, err error) {
	if p.root {
		return nil, false, fmt.Errorf("%w: document root has no parent", ErrPointer)
	}
	cur := root
	for _, seg := range p.segs {
		switch cur.Type {
		case ir.ArrayType:
			i, err := strconv.Atoi(seg)
			if err != nil {
				return nil, false, fmt.Errorf("%w: array index %q is not a number", ErrPointer, seg)
			}
			if i < 0 || i >= len(cur.Values) {
				return nil, false, fmt.Errorf("%w: index %d out of bounds (len %d)", ErrPointer, i, len(cur.Values))
			}
			cur = cur.Values[i]
		case ir.ObjectType:
			v := cur.Field(seg)
			if v == nil {
				return nil, false, nil
			}
			cur = v
		default:
			return nil, false, fmt.Errorf("%w: cannot traverse %s value at %q", ErrPointer, cur.Type, seg)
		}
	}
	return cur, true, nil
}

// Exists reports whether the pointer addresses an existing location in
// root. Resolution failures of any kind yield false, never an error.
func (p *Pointer) Exists(root *ir.Node) bool {
	if p.root {
		return true
	}
	parent, found, err := p.ResolveParent(root)
	if err != nil || !found {
		return false
	}
	switch parent.Type {
	case ir.ArrayType:
		i, err := strconv.Atoi(p.last)
		return err == nil && i >= 0 && i < len(parent.Values)
	case ir.ObjectType:
		return parent.Field(p.last) != nil
	default:
		return false
	}
}

// Value resolves the pointer against root and returns the addressed
// node. Absence of any kind yields ok=false; an explicit null and an
// absent value are indistinguishable to callers holding only ok.
func (p *Pointer) Value(root *ir.Node) (v *ir.Node, ok bool) {
	if p.root {
		return root, true
	}
	parent, found, err := p.ResolveParent(root)
	if err != nil || !found {
		return nil, false
	}
	v, err = ir.Get(parent, p.last)
	if err != nil {
		return nil, false
	}
	return v, true
}

package predicate

import (
	"github.com/jasnell/json-tools/ir"
	"github.com/jasnell/json-tools/pointer"
)

func defined(_ *Registry, op, doc *ir.Node) bool {
	pathNode := op.Field("path")
	if pathNode == nil || pathNode.Type != ir.StringType {
		return false
	}
	ptr, err := pointer.Parse(pathNode.String)
	if err != nil {
		return false
	}
	return ptr.Exists(doc)
}

// undefined is not the negation of defined: a malformed descriptor is
// false for both.
func undefined(_ *Registry, op, doc *ir.Node) bool {
	pathNode := op.Field("path")
	if pathNode == nil || pathNode.Type != ir.StringType {
		return false
	}
	ptr, err := pointer.Parse(pathNode.String)
	if err != nil {
		return false
	}
	return !ptr.Exists(doc)
}

// typeOf compares the kind of the resolved value against the expected
// type name in "value", one of number, string, boolean, object, array
// or null. An absent value matches the name "undefined"; unrecognized
// names are false.
func typeOf(_ *Registry, op, doc *ir.Node) bool {
	want := op.Field("value")
	if want == nil || want.Type != ir.StringType {
		return false
	}
	val, ok := value(op, doc)
	if !ok {
		return want.String == "undefined"
	}
	return typeName(val.Type) == want.String
}

func typeName(t ir.Type) string {
	switch t {
	case ir.NumberType:
		return "number"
	case ir.StringType:
		return "string"
	case ir.BoolType:
		return "boolean"
	case ir.ObjectType:
		return "object"
	case ir.ArrayType:
		return "array"
	case ir.NullType:
		return "null"
	default:
		return ""
	}
}

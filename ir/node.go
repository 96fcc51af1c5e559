// Package ir holds the document value model: a closed tagged union over
// the JSON data kinds (object, array, string, number, bool, null).
// Objects preserve insertion order of their members.
package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type Type

	// Keys and Values are parallel for ObjectType; ArrayType uses
	// Values alone.
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Int64   *int64
	Float64 *float64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Keys = slices.Clone(y.Keys)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	dst.String = y.String
	dst.Bool = y.Bool
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	return dst
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Int64: &v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Float64: &f}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromMap(yMap map[string]*Node) *Node {
	res := NewObject()
	keys := slices.Sorted(maps.Keys(yMap))
	res.Keys = keys
	res.Values = make([]*Node, len(keys))
	for i, key := range keys {
		res.Values[i] = yMap[key]
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: ySlice,
	}
}

// Field returns the value of the named object member, or nil when y is
// not an object or has no such member.
func (y *Node) Field(name string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, key := range y.Keys {
		if key == name {
			return y.Values[i]
		}
	}
	return nil
}

// Float returns the numeric value of a Number node, widening integers.
func (y *Node) Float() float64 {
	if y.Int64 != nil {
		return float64(*y.Int64)
	}
	if y.Float64 != nil {
		return *y.Float64
	}
	return 0
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

package ir

import (
	"testing"
)

func TestCloneIndependence(t *testing.T) {
	orig, err := Decode([]byte(`{"a":{"b":[1,2,3]},"s":"x"}`))
	if err != nil {
		t.Fatal(err)
	}
	clone := orig.Clone()
	if !Equal(orig, clone) {
		t.Fatalf("clone differs: %s vs %s", Encode(orig), Encode(clone))
	}
	if err := Insert(clone.Field("a").Field("b"), "-", FromInt(4)); err != nil {
		t.Fatal(err)
	}
	clone.Field("a").Field("b").Values[0] = FromString("mutated")
	if got, want := string(Encode(orig)), `{"a":{"b":[1,2,3]},"s":"x"}`; got != want {
		t.Errorf("original mutated through clone: got %s, want %s", got, want)
	}
}

func TestField(t *testing.T) {
	y, err := Decode([]byte(`{"a":1,"b":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if v := y.Field("a"); v == nil || v.Int64 == nil || *v.Int64 != 1 {
		t.Errorf("Field(a) = %v", v)
	}
	if v := y.Field("b"); v == nil || v.Type != NullType {
		t.Errorf("Field(b) = %v", v)
	}
	if v := y.Field("c"); v != nil {
		t.Errorf("Field(c) = %s, want nil", Encode(v))
	}
	if v := FromString("x").Field("a"); v != nil {
		t.Errorf("Field on scalar = %s, want nil", Encode(v))
	}
}

func TestFromMapSortsKeys(t *testing.T) {
	y := FromMap(map[string]*Node{
		"b": FromInt(2),
		"a": FromInt(1),
	})
	if got, want := string(Encode(y)), `{"a":1,"b":2}`; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFloat(t *testing.T) {
	if got := FromInt(3).Float(); got != 3 {
		t.Errorf("FromInt(3).Float() = %v", got)
	}
	if got := FromFloat(2.5).Float(); got != 2.5 {
		t.Errorf("FromFloat(2.5).Float() = %v", got)
	}
}

func TestVisit(t *testing.T) {
	y, err := Decode([]byte(`{"a":[1,2],"b":"s"}`))
	if err != nil {
		t.Fatal(err)
	}
	count := 0
	err = y.Visit(func(y *Node, isPost bool) (bool, error) {
		if !isPost {
			count++
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// object, array, 2 numbers, string
	if count != 5 {
		t.Errorf("visited %d nodes, want 5", count)
	}
}

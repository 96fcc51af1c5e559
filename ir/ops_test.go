package ir

import (
	"errors"
	"testing"
)

func mustDecode(t *testing.T, d string) *Node {
	t.Helper()
	y, err := Decode([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestGet(t *testing.T) {
	doc := mustDecode(t, `{"a":[10,20],"b":"x"}`)
	v, err := Get(doc, "b")
	if err != nil || v.String != "x" {
		t.Errorf("Get(b) = %v, %v", v, err)
	}
	arr := doc.Field("a")
	v, err = Get(arr, "1")
	if err != nil || *v.Int64 != 20 {
		t.Errorf("Get(a/1) = %v, %v", v, err)
	}
	for _, key := range []string{"2", "-1", "x", "-"} {
		if _, err := Get(arr, key); !errors.Is(err, ErrKey) {
			t.Errorf("Get(a/%s) err = %v, want ErrKey", key, err)
		}
	}
	if _, err := Get(doc, "missing"); !errors.Is(err, ErrKey) {
		t.Errorf("Get(missing) err = %v, want ErrKey", err)
	}
	if _, err := Get(doc.Field("b"), "a"); !errors.Is(err, ErrKey) {
		t.Errorf("Get on scalar err = %v, want ErrKey", err)
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
		val  *Node
		want string
		fail bool
	}{
		{name: "object new member", doc: `{"a":1}`, key: "b", val: FromInt(2), want: `{"a":1,"b":2}`},
		{name: "object overwrite keeps position", doc: `{"a":1,"b":2}`, key: "a", val: FromInt(9), want: `{"a":9,"b":2}`},
		{name: "array insert shifts", doc: `[1,2,3]`, key: "1", val: FromInt(9), want: `[1,9,2,3]`},
		{name: "array insert at end", doc: `[1,2]`, key: "2", val: FromInt(3), want: `[1,2,3]`},
		{name: "array append marker", doc: `[1,2,3]`, key: "-", val: FromInt(4), want: `[1,2,3,4]`},
		{name: "array index past end", doc: `[1]`, key: "2", val: FromInt(0), fail: true},
		{name: "array non-numeric index", doc: `[1]`, key: "x", val: FromInt(0), fail: true},
		{name: "scalar container", doc: `"s"`, key: "0", val: FromInt(0), fail: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDecode(t, tc.doc)
			err := Insert(doc, tc.key, tc.val)
			if tc.fail {
				if !errors.Is(err, ErrKey) {
					t.Fatalf("err = %v, want ErrKey", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := string(Encode(doc)); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		key  string
		want string
		fail bool
	}{
		{name: "object member", doc: `{"a":1,"b":2}`, key: "a", want: `{"b":2}`},
		{name: "array shifts left", doc: `[1,2,3]`, key: "1", want: `[1,3]`},
		{name: "object missing", doc: `{"a":1}`, key: "b", fail: true},
		{name: "array out of bounds", doc: `[1]`, key: "1", fail: true},
		{name: "array append marker invalid", doc: `[1]`, key: "-", fail: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := mustDecode(t, tc.doc)
			err := Delete(doc, tc.key)
			if tc.fail {
				if !errors.Is(err, ErrKey) {
					t.Fatalf("err = %v, want ErrKey", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := string(Encode(doc)); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

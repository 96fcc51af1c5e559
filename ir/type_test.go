package ir

import "testing"

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Type
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != typ {
			t.Errorf("%s round-tripped to %s", typ, got)
		}
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Frob")); err == nil {
		t.Error("unrecognized name should error")
	}
}

func TestTypeIsLeaf(t *testing.T) {
	for _, typ := range Types() {
		want := typ != ObjectType && typ != ArrayType
		if got := typ.IsLeaf(); got != want {
			t.Errorf("%s.IsLeaf() = %v, want %v", typ, got, want)
		}
	}
}

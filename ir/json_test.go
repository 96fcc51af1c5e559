package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	tests := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-42`,
		`2.5`,
		`"hello"`,
		`"esc \"quotes\""`,
		`[]`,
		`{}`,
		`[1,"two",null,{"three":3}]`,
		`{"z":1,"a":2,"m":[true,false]}`,
		`{"nested":{"deep":{"deeper":[{"x":null}]}}}`,
	}
	for _, tc := range tests {
		t.Run(tc, func(t *testing.T) {
			y, err := Decode([]byte(tc))
			if err != nil {
				t.Fatal(err)
			}
			if got := string(Encode(y)); got != tc {
				t.Errorf("round trip %s -> %s", tc, got)
			}
		})
	}
}

func TestDecodePreservesMemberOrder(t *testing.T) {
	y, err := Decode([]byte(`{"z":1,"a":2,"m":3}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"z", "a", "m"}, y.Keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestDecodeDuplicateKeysLastWins(t *testing.T) {
	y, err := Decode([]byte(`{"a":1,"a":2}`))
	if err != nil {
		t.Fatal(err)
	}
	if got := string(Encode(y)); got != `{"a":2}` {
		t.Errorf("got %s", got)
	}
}

func TestDecodeNumbers(t *testing.T) {
	y, err := Decode([]byte(`[1,2.5,1e3]`))
	if err != nil {
		t.Fatal(err)
	}
	if y.Values[0].Int64 == nil {
		t.Error("1 should decode as integer")
	}
	if y.Values[1].Float64 == nil {
		t.Error("2.5 should decode as float")
	}
	if y.Values[2].Float64 == nil || *y.Values[2].Float64 != 1000 {
		t.Error("1e3 should decode as float 1000")
	}
}

func TestDecodeErrors(t *testing.T) {
	for _, tc := range []string{``, `{`, `{"a"}`, `[1,]`, `1 2`, `{"a":1}x`} {
		if _, err := Decode([]byte(tc)); !errors.Is(err, ErrParse) {
			t.Errorf("Decode(%q) err = %v, want ErrParse", tc, err)
		}
	}
}

func TestDecodeEqualIgnoresWhitespace(t *testing.T) {
	a, err := Decode([]byte(`{"a": [1, 2],  "b": null}`))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode([]byte(`{"a":[1,2],"b":null}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("trees differ (-a +b):\n%s", diff)
	}
}

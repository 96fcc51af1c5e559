package ir

import "testing"

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "ints", a: `1`, b: `1`, want: true},
		{name: "int and float", a: `1`, b: `1.0`, want: true},
		{name: "different numbers", a: `1`, b: `2`, want: false},
		{name: "strings", a: `"a"`, b: `"a"`, want: true},
		{name: "string vs number", a: `"1"`, b: `1`, want: false},
		{name: "nulls", a: `null`, b: `null`, want: true},
		{name: "bools", a: `true`, b: `true`, want: true},
		{name: "bool mismatch", a: `true`, b: `false`, want: false},
		{name: "arrays", a: `[1,2,3]`, b: `[1,2,3]`, want: true},
		{name: "array order matters", a: `[1,2]`, b: `[2,1]`, want: false},
		{name: "array length", a: `[1,2]`, b: `[1,2,3]`, want: false},
		{name: "objects", a: `{"a":1,"b":2}`, b: `{"a":1,"b":2}`, want: true},
		{name: "object member order ignored", a: `{"a":1,"b":2}`, b: `{"b":2,"a":1}`, want: true},
		{name: "object member missing", a: `{"a":1}`, b: `{"a":1,"b":2}`, want: false},
		{name: "object value differs", a: `{"a":1}`, b: `{"a":2}`, want: false},
		{name: "nested", a: `{"a":{"b":[1,{"c":null}]}}`, b: `{"a":{"b":[1,{"c":null}]}}`, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := mustDecode(t, tc.a)
			b := mustDecode(t, tc.b)
			if got := Equal(a, b); got != tc.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := Equal(b, a); got != tc.want {
				t.Errorf("Equal(%s, %s) = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestCompareRanks(t *testing.T) {
	// Null < Bool < Number < String < Array < Object
	ordered := []string{`null`, `false`, `1`, `"a"`, `[]`, `{}`}
	for i := range ordered {
		for j := range ordered {
			a := mustDecode(t, ordered[i])
			b := mustDecode(t, ordered[j])
			got := Compare(a, b)
			switch {
			case i < j && got >= 0:
				t.Errorf("Compare(%s, %s) = %d, want < 0", ordered[i], ordered[j], got)
			case i > j && got <= 0:
				t.Errorf("Compare(%s, %s) = %d, want > 0", ordered[i], ordered[j], got)
			case i == j && got != 0:
				t.Errorf("Compare(%s, %s) = %d, want 0", ordered[i], ordered[j], got)
			}
		}
	}
}

func TestCompareNil(t *testing.T) {
	y := Null()
	if Compare(nil, y) != -1 || Compare(y, nil) != 1 || Compare(nil, nil) != 0 {
		t.Error("nil comparison")
	}
}

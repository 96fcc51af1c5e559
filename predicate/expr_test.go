package predicate

import (
	"testing"

	"github.com/jasnell/json-tools/ir"
)

func TestExpr(t *testing.T) {
	reg := WithExpr(Default())
	y := doc(t)
	tests := []struct {
		name string
		pred string
		want bool
	}{
		{name: "value binding", pred: `{"op":"expr","path":"/num","value":"value > 5"}`, want: true},
		{name: "value binding false", pred: `{"op":"expr","path":"/num","value":"value > 50"}`, want: false},
		{name: "string helpers", pred: `{"op":"expr","path":"/name","value":"value startsWith 'Bob'"}`, want: true},
		{name: "getpath", pred: `{"op":"expr","path":"/num","value":"value == getpath('/arr/1') * 5"}`, want: true},
		{name: "exists", pred: `{"op":"expr","path":"/num","value":"exists('/a/b') && !exists('/a/x')"}`, want: true},
		{name: "absent path", pred: `{"op":"expr","path":"/missing","value":"true"}`, want: false},
		{name: "non-bool result", pred: `{"op":"expr","path":"/num","value":"value + 1"}`, want: false},
		{name: "compile error", pred: `{"op":"expr","path":"/num","value":"value >"}`, want: false},
		{name: "missing expression", pred: `{"op":"expr","path":"/num"}`, want: false},
		{name: "inside combinator", pred: `{"op":"and","apply":[
			{"op":"expr","path":"/num","value":"value % 2 == 0"},
			{"op":"defined","path":"/num"}]}`, want: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pred, err := ir.Decode([]byte(tc.pred))
			if err != nil {
				t.Fatal(err)
			}
			if got := reg.Eval(pred, y); got != tc.want {
				t.Errorf("Eval(%s) = %v, want %v", tc.pred, got, tc.want)
			}
		})
	}
}

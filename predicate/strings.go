package predicate

import (
	"regexp"
	"strings"

	"github.com/jasnell/json-tools/ir"
)

// stringCheck resolves "path", requires both the resolved value and
// "value" to be strings, and hands them to f. The "ignore_case" option
// uppercases copies of both operands first.
func stringCheck(op, doc *ir.Node, f func(have, want string) bool) bool {
	val, ok := value(op, doc)
	if !ok || val.Type != ir.StringType {
		return false
	}
	want := op.Field("value")
	if want == nil || want.Type != ir.StringType {
		return false
	}
	have, wantS := val.String, want.String
	if ignoreCase(op) {
		have = strings.ToUpper(have)
		wantS = strings.ToUpper(wantS)
	}
	return f(have, wantS)
}

func ignoreCase(op *ir.Node) bool {
	ic := op.Field("ignore_case")
	return ic != nil && ic.Type == ir.BoolType && ic.Bool
}

func contains(_ *Registry, op, doc *ir.Node) bool {
	return stringCheck(op, doc, strings.Contains)
}

func starts(_ *Registry, op, doc *ir.Node) bool {
	return stringCheck(op, doc, strings.HasPrefix)
}

func ends(_ *Registry, op, doc *ir.Node) bool {
	return stringCheck(op, doc, strings.HasSuffix)
}

// matches runs "value" as a regular expression search over the
// resolved string; the pattern is not anchored. "ignore_case" toggles
// case-insensitive matching rather than uppercasing the operands.
func matches(_ *Registry, op, doc *ir.Node) bool {
	val, ok := value(op, doc)
	if !ok || val.Type != ir.StringType {
		return false
	}
	want := op.Field("value")
	if want == nil || want.Type != ir.StringType {
		return false
	}
	pat := want.String
	if ignoreCase(op) {
		pat = "(?i)" + pat
	}
	re, err := regexp.Compile(pat)
	if err != nil {
		return false
	}
	return re.MatchString(val.String)
}

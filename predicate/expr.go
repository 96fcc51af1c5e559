package predicate

import (
	"github.com/expr-lang/expr"

	"github.com/jasnell/json-tools/ir"
	"github.com/jasnell/json-tools/pointer"
)

// WithExpr registers the "expr" extension predicate on r. The
// descriptor's "value" member holds an expr-lang expression evaluated
// with the value at "path" bound to `value`, plus helper functions
// resolving further pointers against the document root. The predicate
// is true only when the expression evaluates to true; compile and
// runtime errors are false, like any other predicate failure.
func WithExpr(r *Registry) *Registry {
	r.Register("expr", evalExpr)
	return r
}

func evalExpr(_ *Registry, op, doc *ir.Node) bool {
	src := op.Field("value")
	if src == nil || src.Type != ir.StringType {
		return false
	}
	val, ok := value(op, doc)
	if !ok {
		return false
	}
	env := map[string]any{
		"value": ir.ToAny(val),
	}
	opts := []expr.Option{
		expr.Env(env),
		expr.Function("getpath", func(params ...any) (any, error) {
			ptr, err := pointer.Parse(params[0].(string))
			if err != nil {
				return nil, err
			}
			v, ok := ptr.Value(doc)
			if !ok {
				return nil, nil
			}
			return ir.ToAny(v), nil
		},
			new(func(string) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			ptr, err := pointer.Parse(params[0].(string))
			if err != nil {
				return false, nil
			}
			return ptr.Exists(doc), nil
		},
			new(func(string) bool)),
	}
	prog, err := expr.Compile(src.String, opts...)
	if err != nil {
		return false
	}
	out, err := expr.Run(prog, env)
	if err != nil {
		return false
	}
	b, ok := out.(bool)
	return ok && b
}

package ir

// ToAny converts a Node tree to the plain Go representation used by
// encoding/json: map[string]any, []any, string, float64/int, bool, nil.
// Object member order is not preserved.
func ToAny(y *Node) any {
	switch y.Type {
	case ObjectType:
		res := make(map[string]any, len(y.Keys))
		for i, key := range y.Keys {
			res[key] = ToAny(y.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case StringType:
		return y.String
	case NumberType:
		if y.Int64 != nil {
			return int(*y.Int64)
		}
		return y.Float()
	case BoolType:
		return y.Bool
	case NullType:
		return nil
	default:
		panic("type")
	}
}

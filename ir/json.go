package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Decode parses JSON text into a Node tree, preserving the order of
// object members as written.
func Decode(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	y, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing data after document", ErrParse)
	}
	return y, nil
}

func decodeValue(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			y := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				// duplicate keys: last one wins
				if err := Insert(y, key, val); err != nil {
					return nil, err
				}
			}
			// closing '}'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return y, nil
		case '[':
			y := FromSlice(nil)
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				y.Values = append(y.Values, val)
			}
			// closing ']'
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return y, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return FromString(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case bool:
		return FromBool(t), nil
	case nil:
		return Null(), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// Encode renders a Node tree as compact JSON text. Object member order
// is preserved.
func Encode(y *Node) []byte {
	return Append(nil, y)
}

func Append(dst []byte, y *Node) []byte {
	if y == nil {
		return append(dst, "null"...)
	}
	switch y.Type {
	case NullType:
		return append(dst, "null"...)
	case BoolType:
		return strconv.AppendBool(dst, y.Bool)
	case NumberType:
		if y.Int64 != nil {
			return strconv.AppendInt(dst, *y.Int64, 10)
		}
		return strconv.AppendFloat(dst, y.Float(), 'g', -1, 64)
	case StringType:
		return appendString(dst, y.String)
	case ArrayType:
		dst = append(dst, '[')
		for i, yv := range y.Values {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = Append(dst, yv)
		}
		return append(dst, ']')
	case ObjectType:
		dst = append(dst, '{')
		for i, key := range y.Keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, key)
			dst = append(dst, ':')
			dst = Append(dst, y.Values[i])
		}
		return append(dst, '}')
	default:
		panic("type")
	}
}

func appendString(dst []byte, s string) []byte {
	q, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return append(dst, q...)
}

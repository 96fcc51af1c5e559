package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/jasnell/json-tools/ir"
)

// getDoc reads a document from a file, from stdin when path is "-", or
// from the argument itself when it looks like an inline document.
func getDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	if strings.HasPrefix(path, "{") || strings.HasPrefix(path, "[") {
		return decode(cfg, []byte(path))
	}
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return decode(cfg, d)
}

func decode(cfg *MainConfig, d []byte) (*ir.Node, error) {
	if cfg.Y {
		return decodeYAML(d)
	}
	return ir.Decode(d)
}

func decodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return fromYAML(v)
}

func fromYAML(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t > math.MaxInt64 {
			return ir.FromFloat(float64(t)), nil
		}
		return ir.FromInt(int64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		vals := make([]*ir.Node, len(t))
		for i, elt := range t {
			val, err := fromYAML(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = val
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		res := ir.NewObject()
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				return nil, fmt.Errorf("unsupported object key %v (%T)", item.Key, item.Key)
			}
			val, err := fromYAML(item.Value)
			if err != nil {
				return nil, err
			}
			if err := ir.Insert(res, key, val); err != nil {
				return nil, err
			}
		}
		return res, nil
	default:
		return nil, fmt.Errorf("unsupported yaml value of type %T", v)
	}
}

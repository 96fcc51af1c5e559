package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/jasnell/json-tools/ir"
)

// writeDoc renders a document as indented JSON, colored when the
// output is a terminal or --color is set.
func writeDoc(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	if useColor(cfg, w) {
		return encodeColor(w, y)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, ir.Encode(y), "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func useColor(cfg *MainConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type colors struct {
	field  func(string, ...any) string
	punct  func(string, ...any) string
	byType map[ir.Type]func(string, ...any) string
}

func newColors() *colors {
	return &colors{
		field: color.RGB(196, 96, 16).SprintfFunc(),
		punct: color.RGB(255, 0, 196).SprintfFunc(),
		byType: map[ir.Type]func(string, ...any) string{
			ir.NumberType: color.RGB(128, 216, 236).SprintfFunc(),
			ir.StringType: color.GreenString,
			ir.BoolType:   color.YellowString,
			ir.NullType:   color.BlueString,
		},
	}
}

func encodeColor(w io.Writer, y *ir.Node) error {
	var buf bytes.Buffer
	cs := newColors()
	cs.encode(&buf, y, 0)
	buf.WriteByte('\n')
	_, err := w.Write(buf.Bytes())
	return err
}

func (cs *colors) encode(buf *bytes.Buffer, y *ir.Node, depth int) {
	if y.Type.IsLeaf() {
		f := cs.byType[y.Type]
		buf.WriteString(f("%s", ir.Encode(y)))
		return
	}
	switch y.Type {
	case ir.ObjectType:
		if len(y.Keys) == 0 {
			buf.WriteString(cs.punct("{}"))
			return
		}
		buf.WriteString(cs.punct("{"))
		buf.WriteByte('\n')
		for i, key := range y.Keys {
			indent(buf, depth+1)
			buf.WriteString(cs.field("%s", quote(key)))
			buf.WriteString(cs.punct(":"))
			buf.WriteByte(' ')
			cs.encode(buf, y.Values[i], depth+1)
			if i < len(y.Keys)-1 {
				buf.WriteString(cs.punct(","))
			}
			buf.WriteByte('\n')
		}
		indent(buf, depth)
		buf.WriteString(cs.punct("}"))
	case ir.ArrayType:
		if len(y.Values) == 0 {
			buf.WriteString(cs.punct("[]"))
			return
		}
		buf.WriteString(cs.punct("["))
		buf.WriteByte('\n')
		for i, yv := range y.Values {
			indent(buf, depth+1)
			cs.encode(buf, yv, depth+1)
			if i < len(y.Values)-1 {
				buf.WriteString(cs.punct(","))
			}
			buf.WriteByte('\n')
		}
		indent(buf, depth)
		buf.WriteString(cs.punct("]"))
	}
}

func indent(buf *bytes.Buffer, depth int) {
	for range depth {
		buf.WriteString("  ")
	}
}

func quote(key string) string {
	return string(ir.Encode(ir.FromString(key)))
}

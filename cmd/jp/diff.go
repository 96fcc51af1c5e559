package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	jsontools "github.com/jasnell/json-tools"
	"github.com/jasnell/json-tools/ir"
)

type diffConfig struct {
	*cli.Command
	main *MainConfig
}

// DiffCommand returns the diff subcommand, which applies a patch and
// shows a text diff between the document before and after.
func DiffCommand(main *MainConfig) *cli.Command {
	cfg := &diffConfig{main: main}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "diff").
		WithSynopsis("diff PATCH FILE - show what a patch would change").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *diffConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 arguments, a patch document and a file", cli.ErrUsage)
	}
	ops, err := getDoc(cfg.main, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := getDoc(cfg.main, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	p, err := jsontools.NewPatch(ops)
	if err != nil {
		return err
	}
	res, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	before, err := pretty(doc)
	if err != nil {
		return err
	}
	after, err := pretty(res)
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	if useColor(cfg.main, cc.Out) {
		fmt.Fprintln(cc.Out, dmp.DiffPrettyText(diffs))
		return nil
	}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(cc.Out, "{+%s+}", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(cc.Out, "[-%s-]", d.Text)
		case diffpatch.DiffEqual:
			fmt.Fprint(cc.Out, d.Text)
		}
	}
	fmt.Fprintln(cc.Out)
	return nil
}

func pretty(y *ir.Node) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, ir.Encode(y), "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	jsontools "github.com/jasnell/json-tools"
	"github.com/jasnell/json-tools/ir"
)

type patchConfig struct {
	*cli.Command
	main    *MainConfig
	InPlace bool `cli:"name=w desc='write the result back to FILE'"`
}

// PatchCommand returns the patch subcommand.
func PatchCommand(main *MainConfig) *cli.Command {
	cfg := &patchConfig{main: main}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "patch").
		WithSynopsis("patch [-w] PATCH FILE - apply a patch document to FILE").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *patchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch document and a file to apply it to", cli.ErrUsage)
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
	if cfg.InPlace && args[1] != "-" {
		return os.WriteFile(args[1], append(ir.Encode(res), '\n'), 0644)
	}
	return writeDoc(cfg.main, cc.Out, res)
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jasnell/json-tools/predicate"
)

type testConfig struct {
	*cli.Command
	main *MainConfig
}

// TestCommand returns the test subcommand, which evaluates a predicate
// document and exits non-zero when it is false.
func TestCommand(main *MainConfig) *cli.Command {
	cfg := &testConfig{main: main}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "test").
		WithSynopsis("test PRED FILE - evaluate a predicate document against FILE").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *testConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: test requires 2 arguments, a predicate document and a file", cli.ErrUsage)
	}
	pred, err := getDoc(cfg.main, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	doc, err := getDoc(cfg.main, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	reg := predicate.WithExpr(predicate.Default())
	ok := reg.Eval(pred, doc)
	fmt.Fprintln(cc.Out, ok)
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/jasnell/json-tools/pointer"
)

type getConfig struct {
	*cli.Command
	main *MainConfig
}

// GetCommand returns the get subcommand.
func GetCommand(main *MainConfig) *cli.Command {
	cfg := &getConfig{main: main}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "get").
		WithSynopsis("get POINTER FILE... - print the value at an RFC 6901 pointer").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *getConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		cfg.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: get requires a pointer and at least one file", cli.ErrUsage)
	}
	ptr, err := pointer.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range args[1:] {
		doc, err := getDoc(cfg.main, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		v, ok := ptr.Value(doc)
		if !ok {
			return fmt.Errorf("%s: no value at %q", arg, args[0])
		}
		if err := writeDoc(cfg.main, cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}

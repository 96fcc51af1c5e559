package main

import (
	"github.com/scott-cotton/cli"
)

const usageText = `jp - JSON pointer, patch, and predicate tool

Usage:
  jp patch PATCH FILE        Apply a patch document to FILE
  jp get POINTER FILE        Print the value at an RFC 6901 pointer
  jp test PRED FILE          Evaluate a predicate document against FILE
  jp diff PATCH FILE         Show what a patch would change

FILE and PATCH may be "-" to read from stdin. Documents are JSON by
default; pass --yaml to decode YAML input instead.

Examples:
  jp get /a/b/c doc.json
  jp patch ops.json doc.json
  jp test '{"op":"contains","path":"/name","value":"bob"}' doc.json
  jp diff ops.json doc.json`

type MainConfig struct {
	*cli.Command
	Y     bool `cli:"name=y aliases=yaml desc='decode input documents as yaml'"`
	Color bool `cli:"name=color desc='force colored output'"`
}

// MainCommand returns the root command for jp.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Command, "jp").
		WithSynopsis("jp - JSON pointer, patch, and predicate tool").
		WithDescription(usageText).
		WithOpts(opts...).
		WithSubs(
			PatchCommand(cfg),
			GetCommand(cfg),
			TestCommand(cfg),
			DiffCommand(cfg),
		)
}

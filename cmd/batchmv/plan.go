package main

import (
	"flag"
	"os"

	"github.com/spf13/afero"

	"github.com/batchmv/batchmv/internal/rename"
)

func runPlan(args []string) error {
	fsys := afero.NewOsFs()
	cfg, err := rename.LoadConfig(fsys, ".")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("plan", flag.ContinueOnError)
	src := addSourceFlags(fs, cfg)
	format := fs.String("format", "text", "output format (json or text)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	pairs, err := src.gather(fsys, fs.Args())
	if err != nil {
		return err
	}
	q, err := rename.NewQueue(fsys, pairs, cfg.DefaultPolicy())
	if err != nil {
		return err
	}

	switch *format {
	case "json":
		return printPlanJSON(os.Stdout, q)
	default:
		printPlanText(os.Stdout, q)
		return nil
	}
}

package main

import (
	"flag"
	"os"

	"github.com/spf13/afero"

	"github.com/batchmv/batchmv/internal/rename"
)

func runStatus(args []string) error {
	fsys := afero.NewOsFs()
	cfg, err := rename.LoadConfig(fsys, ".")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	statePath := fs.String("state", "", "JSON state snapshot to inspect")
	journalPath := fs.String("journal", "", "SQLite journal to inspect")
	format := fs.String("format", "text", "output format (json or text)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := validateFormat(*format); err != nil {
		return err
	}

	q, journal, err := loadSaved(fsys, *statePath, *journalPath, cfg.DefaultPolicy())
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}

	switch *format {
	case "json":
		return printStatusJSON(os.Stdout, q)
	default:
		printStatusText(os.Stdout, q)
		return nil
	}
}

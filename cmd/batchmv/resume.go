package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/batchmv/batchmv/internal/rename"
)

func runResume(args []string) error {
	fsys := afero.NewOsFs()
	cfg, err := rename.LoadConfig(fsys, ".")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("resume", flag.ContinueOnError)
	statePath := fs.String("state", "", "JSON state snapshot to resume from")
	journalPath := fs.String("journal", "", "SQLite journal to resume from")
	atomic := fs.Bool("atomic", false, "revert completed steps automatically if a step fails")
	verbose := fs.Bool("verbose", false, "log every step")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	q, journal, err := loadSaved(fsys, *statePath, *journalPath, cfg.DefaultPolicy())
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}
	remaining := len(q.Pending())

	var runErr error
	if *atomic {
		runErr = q.RenameAtomic()
	} else {
		runErr = q.Rename()
	}

	if *statePath != "" {
		if err := rename.SaveState(fsys, *statePath, q); err != nil {
			if runErr != nil {
				return fmt.Errorf("%w (also failed to save state: %v)", runErr, err)
			}
			return err
		}
	}
	if runErr != nil {
		return runErr
	}
	if journal != nil {
		if err := journal.Clear(); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "renamed %d remaining entries\n", remaining)
	return nil
}

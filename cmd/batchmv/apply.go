package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/batchmv/batchmv/internal/rename"
)

func runApply(args []string) error {
	fsys := afero.NewOsFs()
	cfg, err := rename.LoadConfig(fsys, ".")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	src := addSourceFlags(fs, cfg)
	atomic := fs.Bool("atomic", false, "revert completed steps automatically if a step fails")
	statePath := fs.String("state", "", "write a JSON state snapshot to this file after the run")
	journalPath := fs.String("journal", "", "checkpoint every step to this SQLite journal")
	filesOnly := fs.Bool("files-only", cfg.DefaultPolicy().FilesOnly, "refuse to rename directories")
	verbose := fs.Bool("verbose", false, "log every step")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	pairs, err := src.gather(fsys, fs.Args())
	if err != nil {
		return err
	}
	q, err := rename.NewQueue(fsys, pairs, rename.Policy{FilesOnly: *filesOnly})
	if err != nil {
		return err
	}

	observers := multiObserver{logObserver{}}
	var journal *rename.Journal
	if *journalPath != "" {
		journal, err = rename.OpenJournal(*journalPath)
		if err != nil {
			return err
		}
		defer journal.Close()
		if err := journal.Begin(q); err != nil {
			return err
		}
		observers = append(observers, journal)
	}
	q.SetObserver(observers)

	var runErr error
	if *atomic {
		runErr = q.RenameAtomic()
	} else {
		runErr = q.Rename()
	}

	// The snapshot is written even when the run failed; it is what makes
	// the partial result revertible later.
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

	fmt.Fprintf(os.Stdout, "renamed %d entries\n", q.Len())
	return nil
}

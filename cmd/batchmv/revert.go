package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/batchmv/batchmv/internal/rename"
)

func runRevert(args []string) error {
	fsys := afero.NewOsFs()
	cfg, err := rename.LoadConfig(fsys, ".")
	if err != nil {
		return err
	}
	fs := flag.NewFlagSet("revert", flag.ContinueOnError)
	statePath := fs.String("state", "", "JSON state snapshot to revert from")
	journalPath := fs.String("journal", "", "SQLite journal to revert from")
	atomic := fs.Bool("atomic", false, "re-apply reverted steps automatically if a step fails")
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
	reverted := len(q.Renamed())

	var runErr error
	if *atomic {
		runErr = q.RevertAtomic()
	} else {
		runErr = q.Revert()
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
	if journal != nil && len(q.Renamed()) == 0 {
		if err := journal.Clear(); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "reverted %d entries\n", reverted)
	return nil
}

// loadSaved reconstructs a queue from exactly one of the two persistence
// forms, returning the open journal (with its observer already attached)
// when that form was chosen.
func loadSaved(fsys afero.Fs, statePath, journalPath string, policy rename.Policy) (*rename.Queue, *rename.Journal, error) {
	switch {
	case statePath != "" && journalPath != "":
		return nil, nil, fmt.Errorf("--state and --journal are mutually exclusive")
	case statePath != "":
		q, err := rename.LoadState(fsys, statePath, policy)
		if err != nil {
			return nil, nil, err
		}
		q.SetObserver(multiObserver{logObserver{}})
		return q, nil, nil
	case journalPath != "":
		journal, err := rename.OpenJournal(journalPath)
		if err != nil {
			return nil, nil, err
		}
		q, err := journal.Load(fsys, policy)
		if err != nil {
			journal.Close()
			return nil, nil, err
		}
		q.SetObserver(multiObserver{logObserver{}, journal})
		return q, journal, nil
	default:
		return nil, nil, fmt.Errorf("either --state or --journal is required")
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

var version = "dev"

func main() {
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(logrus.InfoLevel)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "apply":
		err = runApply(os.Args[2:])
	case "revert":
		err = runRevert(os.Args[2:])
	case "resume":
		err = runResume(os.Args[2:])
	case "status":
		err = runStatus(os.Args[2:])
	case "--version":
		printVersion(os.Stdout)
		return
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion(w io.Writer) {
	v := version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	fmt.Fprintf(w, "batchmv version %s\n", v)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `Usage: batchmv <command> [options]

Commands:
  plan     Resolve a batch of renames and print the execution order
  apply    Resolve and execute a batch of renames
  revert   Undo a previously applied batch from its state or journal
  resume   Continue an interrupted batch from its state or journal
  status   Show applied and pending steps of a saved batch

Rename pairs come from a TSV file (--pairs FILE, "-" for stdin) or from
walking a directory with a --find regexp and --replace template.

Run 'batchmv <command> --help' for command-specific help.
Use 'batchmv --version' for version information.
`)
}

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"

	"github.com/batchmv/batchmv/internal/rename"
	"github.com/batchmv/batchmv/internal/walkdir"
)

// sourceFlags are the flags shared by plan and apply for producing the
// rename pairs, either from a pairs file or by walking a directory.
type sourceFlags struct {
	pairsFile *string
	find      *string
	replace   *string
	depth     *int
	dirs      *bool
	symlinks  *bool
	exclude   *multiString
}

func addSourceFlags(fs *flag.FlagSet, cfg rename.Config) sourceFlags {
	var exclude multiString
	fs.Var(&exclude, "exclude", "glob pattern for names to skip when discovering (repeatable)")
	return sourceFlags{
		pairsFile: fs.String("pairs", "", `pairs file with one "src<TAB>dst" per line ("-" for stdin)`),
		find:      fs.String("find", "", "regexp applied to entry names during discovery"),
		replace:   fs.String("replace", "", "replacement template for --find"),
		depth:     fs.Int("depth", cfg.Walk.MaxDepth, "maximum traversal depth (0 = unlimited, 1 = top level)"),
		dirs:      fs.Bool("dirs", cfg.Walk.Dirs, "include directories during discovery"),
		symlinks:  fs.Bool("symlinks", cfg.IncludeSymlinks(), "include symlinks during discovery"),
		exclude:   &exclude,
	}
}

// gather produces the rename pairs from whichever source was selected.
func (sf sourceFlags) gather(fsys afero.Fs, roots []string) ([]rename.Mapping, error) {
	switch {
	case *sf.pairsFile != "" && *sf.find != "":
		return nil, fmt.Errorf("--pairs and --find are mutually exclusive")
	case *sf.pairsFile != "":
		if *sf.pairsFile == "-" {
			return readPairs(os.Stdin)
		}
		f, err := fsys.Open(*sf.pairsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readPairs(f)
	case *sf.find != "":
		root := "."
		switch len(roots) {
		case 0:
		case 1:
			root = roots[0]
		default:
			return nil, fmt.Errorf("--find takes at most one directory argument")
		}
		return sf.discover(fsys, root)
	default:
		return nil, fmt.Errorf("either --pairs or --find is required")
	}
}

// readPairs parses TSV pair lines. Blank lines and lines starting with "#"
// are skipped.
func readPairs(r io.Reader) ([]rename.Mapping, error) {
	var pairs []rename.Mapping
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected \"src<TAB>dst\", got %q", line, text)
		}
		pairs = append(pairs, rename.Mapping{Src: fields[0], Dst: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}

// discover walks root and builds a pair for every entry whose name the
// --find regexp rewrites to something different.
func (sf sourceFlags) discover(fsys afero.Fs, root string) ([]rename.Mapping, error) {
	re, err := regexp.Compile(*sf.find)
	if err != nil {
		return nil, fmt.Errorf("--find: %w", err)
	}
	entries, err := walkdir.Collect(fsys, root, *sf.depth)
	if err != nil {
		return nil, err
	}
	var pairs []rename.Mapping
	for _, e := range entries {
		switch {
		case e.IsFile():
		case e.IsDir():
			if !*sf.dirs {
				continue
			}
		case e.IsSymlink():
			if !*sf.symlinks {
				continue
			}
		default:
			continue
		}
		name := filepath.Base(e.Path())
		if sf.excluded(name) {
			continue
		}
		renamed := re.ReplaceAllString(name, *sf.replace)
		if renamed == name {
			continue
		}
		pairs = append(pairs, rename.Mapping{
			Src: e.Path(),
			Dst: filepath.Join(filepath.Dir(e.Path()), renamed),
		})
	}
	return pairs, nil
}

func (sf sourceFlags) excluded(name string) bool {
	for _, pattern := range *sf.exclude {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/batchmv/batchmv/internal/rename"
)

// validateFormat checks that format is "json" or "text".
func validateFormat(format string) error {
	if format != "json" && format != "text" {
		return fmt.Errorf("invalid format: %q (must be json or text)", format)
	}
	return nil
}

func printPlanText(w io.Writer, q *rename.Queue) {
	if q.Len() == 0 {
		fmt.Fprintln(w, "nothing to rename")
		return
	}
	for i, m := range q.Pending() {
		fmt.Fprintf(w, "%3d. %s -> %s\n", i+1, m.Src, m.Dst)
	}
}

func printPlanJSON(w io.Writer, q *rename.Queue) error {
	type step struct {
		Src string `json:"src"`
		Dst string `json:"dst"`
	}
	steps := make([]step, 0, q.Len())
	for _, m := range q.Pending() {
		steps = append(steps, step{Src: m.Src, Dst: m.Dst})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Steps []step `json:"steps"`
	}{Steps: steps})
}

func printStatusText(w io.Writer, q *rename.Queue) {
	fmt.Fprintf(w, "renamed %d of %d steps\n", len(q.Renamed()), q.Len())
	if len(q.Renamed()) > 0 {
		fmt.Fprintln(w, "renamed:")
		for _, m := range q.Renamed() {
			fmt.Fprintf(w, "  %s -> %s\n", m.Src, m.Dst)
		}
	}
	if len(q.Pending()) > 0 {
		fmt.Fprintln(w, "pending:")
		for _, m := range q.Pending() {
			fmt.Fprintf(w, "  %s -> %s\n", m.Src, m.Dst)
		}
	}
}

func printStatusJSON(w io.Writer, q *rename.Queue) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(q.State())
}

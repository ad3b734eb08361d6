package main

import (
	"strings"
	"testing"
)

func TestRunPlan_InvalidFlag(t *testing.T) {
	err := runPlan([]string{"--invalid"})
	if err == nil {
		t.Error("expected error for invalid flag")
	}
}

func TestRunPlan_InvalidFormat(t *testing.T) {
	err := runPlan([]string{"--pairs", "x.tsv", "--format", "yaml"})
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("expected invalid format error, got: %v", err)
	}
}

func TestRunPlan_MissingSource(t *testing.T) {
	err := runPlan(nil)
	if err == nil || !strings.Contains(err.Error(), "--pairs or --find") {
		t.Errorf("expected missing source error, got: %v", err)
	}
}

func TestRunApply_MissingSource(t *testing.T) {
	err := runApply(nil)
	if err == nil || !strings.Contains(err.Error(), "--pairs or --find") {
		t.Errorf("expected missing source error, got: %v", err)
	}
}

func TestRunRevert_MissingState(t *testing.T) {
	err := runRevert(nil)
	if err == nil || !strings.Contains(err.Error(), "--state or --journal") {
		t.Errorf("expected missing state error, got: %v", err)
	}
}

func TestRunResume_BothStateAndJournal(t *testing.T) {
	err := runResume([]string{"--state", "a.json", "--journal", "a.sqlite"})
	if err == nil || !strings.Contains(err.Error(), "mutually exclusive") {
		t.Errorf("expected mutually exclusive error, got: %v", err)
	}
}

func TestRunStatus_InvalidFormat(t *testing.T) {
	err := runStatus([]string{"--state", "a.json", "--format", "yaml"})
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("expected invalid format error, got: %v", err)
	}
}

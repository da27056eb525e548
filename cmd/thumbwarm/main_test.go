package main

import (
	"bytes"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	cmd := newRootCommand()

	want := map[string]bool{
		"preload": false,
		"config":  false,
		"version": false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestPreloadRequiresDirectory(t *testing.T) {
	_, err := executeCommand(t, "preload")
	if err == nil {
		t.Fatal("expected error without a directory")
	}
	if !strings.Contains(err.Error(), "specify a directory") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPreloadRejectsConflictingDirectoryArguments(t *testing.T) {
	_, err := executeCommand(t, "preload", "--dir", "/a", "/b")
	if err == nil {
		t.Fatal("expected error for conflicting arguments")
	}
	if !strings.Contains(err.Error(), "not both") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVersionCommandPrintsName(t *testing.T) {
	out, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "thumbwarm") {
		t.Fatalf("unexpected output: %q", out)
	}
}

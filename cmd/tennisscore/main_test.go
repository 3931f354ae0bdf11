package main

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCli(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	var logger = log.New(&stderr, "", 0)
	var code, err = run(context.Background(), args, strings.NewReader(stdin), &stdout, logger)
	if err != nil {
		stderr.WriteString(err.Error())
	}
	return code, stdout.String(), stderr.String()
}

func TestNewCommandArgs(t *testing.T) {
	var tests = []struct {
		args         []string
		input        string
		nameA, nameB string
	}{
		{[]string{"3-5"}, "3-5", "Player 1", "Player 2"},
		{[]string{"3-5", "--names", "Serena", "Naomi"}, "3-5", "Serena", "Naomi"},
		{[]string{"-names", "Djokovic", "Nadal", "scores.txt"}, "scores.txt", "Djokovic", "Nadal"},
		{[]string{"-"}, "-", "Player 1", "Player 2"},
	}
	for _, test := range tests {
		var ca, err = NewCommandArgs(test.args)
		if err != nil {
			t.Errorf("%v: %v", test.args, err)
			continue
		}
		var nameA, nameB = ca.GetPair("names", "Player 1", "Player 2")
		if ca.Input() != test.input || nameA != test.nameA || nameB != test.nameB {
			t.Errorf("%v: got %q %q %q", test.args, ca.Input(), nameA, nameB)
		}
	}
}

func TestNewCommandArgsErrors(t *testing.T) {
	for _, args := range [][]string{
		{"3-5", "--names", "Serena"},
		{"3-5", "4-1"},
		{"--bogus", "3-5"},
	} {
		if _, err := NewCommandArgs(args); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}

func TestRunSingle(t *testing.T) {
	var tests = []struct {
		args []string
		want string
	}{
		{[]string{"0-0"}, "Current Score: Love-All\n"},
		{[]string{"3-5", "--names", "Serena", "Naomi"}, "Current Score: Win for Naomi\n"},
		{[]string{"4-3"}, "Current Score: Advantage for Player 1\n"},
		{[]string{"6-9"}, "Current Score: Invalid Score\n"},
		{[]string{"x-y"}, "Invalid input. Please provide scores in the format 'X-Y' or a valid file path.\n"},
	}
	for _, test := range tests {
		var code, stdout, stderr = runCli(t, "", test.args...)
		if code != 0 || stdout != test.want {
			t.Errorf("%v: code %v stdout %q stderr %q", test.args, code, stdout, stderr)
		}
	}
}

func TestRunBatchFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "scores.txt")
	if err := os.WriteFile(path, []byte("3-2\nx-y\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var code, stdout, _ = runCli(t, "", path, "-names", "Djokovic", "Nadal")
	var want = "3-2 -> Forty-Thirty\n" +
		"Invalid input: x-y, Please provide scores in the format 'X-Y'\n"
	if code != 0 || stdout != want {
		t.Errorf("code %v stdout %q", code, stdout)
	}
}

func TestRunMissingFile(t *testing.T) {
	var path = filepath.Join(t.TempDir(), "nope.txt")
	var code, stdout, _ = runCli(t, "", path)
	if code != 0 || stdout != "File not found: "+path+"\n" {
		t.Errorf("code %v stdout %q", code, stdout)
	}
}

func TestRunStdin(t *testing.T) {
	var code, stdout, _ = runCli(t, "4-4\n5-4\n", "-", "-names", "A", "B")
	if code != 0 || stdout != "4-4 -> Deuce\n5-4 -> Advantage for A\n" {
		t.Errorf("code %v stdout %q", code, stdout)
	}
}

func TestRunUsage(t *testing.T) {
	var code, _, stderr = runCli(t, "")
	if code != 2 || !strings.Contains(stderr, "usage:") {
		t.Errorf("code %v stderr %q", code, stderr)
	}
	code, _, stderr = runCli(t, "", "3-5", "--names", "Serena")
	if code != 2 || !strings.Contains(stderr, "needs 2 values") {
		t.Errorf("code %v stderr %q", code, stderr)
	}
}

func TestRunVerbose(t *testing.T) {
	var code, stdout, stderr = runCli(t, "", "0-0", "-v", "-names", "A", "B")
	if code != 0 || stdout != "Current Score: Love-All\n" {
		t.Errorf("code %v stdout %q", code, stdout)
	}
	for _, s := range []string{"VersionName", "RuntimeVersion", "NameA:A", "NameB:B"} {
		if !strings.Contains(stderr, s) {
			t.Errorf("stderr %q does not contain %q", stderr, s)
		}
	}
	_, _, stderr = runCli(t, "", "0-0")
	if stderr != "" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}
